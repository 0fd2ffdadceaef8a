package service

import (
	"context"

	watermillMessage "github.com/ThreeDotsLabs/watermill/message"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"ticketing/db"
	ticketingHttp "ticketing/http"
	"ticketing/message"
	"ticketing/message/command"
	"ticketing/message/event"
	"ticketing/message/outbox"
	"ticketing/pkg/log"
	"ticketing/refunds"
)

func init() {
	log.Init(logrus.InfoLevel)
}

type Service struct {
	watermillRouter *watermillMessage.Router
	echoRouter      *echo.Echo
	httpAddr        string
}

func New(
	httpAddr string,
	redisClient *redis.Client,
	conn db.DB,
	payments refunds.PaymentProvider,
	notifier event.NotificationSender,
	opsEmail string,
) Service {
	watermillLogger := log.NewWatermill(log.FromContext(context.Background()))

	redisPublisher := message.NewRedisPublisher(redisClient, watermillLogger)

	eventBus := event.NewBus(redisPublisher)
	commandBus := command.NewCommandBus(redisPublisher)

	eventRepo := db.NewEventRepository(&conn)
	orderRepo := db.NewOrderRepository(&conn)
	ticketRepo := db.NewTicketRepository(&conn)
	refundRepo := db.NewRefundRequestRepository(&conn)
	auditRepo := db.NewAuditRepository(&conn)

	orchestrator := refunds.NewOrchestrator(eventRepo, orderRepo, refundRepo, payments, eventBus)

	eventsHandler := event.NewHandler(commandBus, notifier, auditRepo, opsEmail)
	commandsHandler := command.NewHandler(orchestrator)

	eventProcessorConfig := event.NewProcessorConfig(redisClient, watermillLogger)
	commandProcessorConfig := command.NewCommandProcessorConfig(redisClient, watermillLogger)

	pgSubscriber := outbox.SubscribeForPGMessages(conn.Conn, watermillLogger)
	watermillRouter := message.NewWatermillRouter(
		pgSubscriber,
		redisPublisher,
		commandProcessorConfig,
		eventProcessorConfig,
		commandsHandler,
		eventsHandler,
		watermillLogger,
	)

	echoRouter := ticketingHttp.NewHttpRouter(
		eventBus,
		orchestrator,
		eventRepo,
		refundRepo,
		ticketRepo,
	)

	return Service{
		watermillRouter: watermillRouter,
		echoRouter:      echoRouter,
		httpAddr:        httpAddr,
	}
}

func (s Service) Run(ctx context.Context) error {
	errgrp, ctx := errgroup.WithContext(ctx)

	errgrp.Go(func() error {
		return s.watermillRouter.Run(ctx)
	})

	errgrp.Go(func() error {
		// the HTTP server starts after the router so the service is not
		// reported healthy before handlers are running
		<-s.watermillRouter.Running()

		return s.echoRouter.Start(s.httpAddr)
	})

	errgrp.Go(func() error {
		<-ctx.Done()
		return s.echoRouter.Shutdown(context.Background())
	})

	return errgrp.Wait()
}
