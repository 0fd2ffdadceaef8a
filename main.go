package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"ticketing/api"
	"ticketing/config"
	"ticketing/db"
	"ticketing/message"
	"ticketing/service"
	observability "ticketing/trace"
)

func main() {
	cfg := config.Load()

	tp := observability.ConfigureTraceProvider()
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logrus.WithError(err).Warn("Could not shut down trace provider")
		}
	}()

	conn, err := db.NewDBConn(cfg.PostgresURL)
	if err != nil {
		logrus.WithError(err).Fatal("Could not connect to Postgres")
	}
	defer conn.Close()
	conn.MigrateSchema()

	redisClient := message.NewRedisClient(cfg.RedisAddr)
	defer redisClient.Close()

	payments := api.NewStripePaymentsClient(cfg.StripeSecretKey)
	notifier := api.NewEmailNotifier(api.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.EmailFrom,
	})

	svc := service.New(cfg.HTTPAddr, redisClient, conn, payments, notifier, cfg.OpsEmail)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logrus.Info("Service starting...")
	if err := svc.Run(ctx); err != nil {
		logrus.WithError(err).Fatal("Service stopped with error")
	}
}
