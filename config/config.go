package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPAddr    string
	PostgresURL string
	RedisAddr   string

	StripeSecretKey string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	EmailFrom    string

	// OpsEmail receives failed-refund notices for manual retries.
	OpsEmail string
}

func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	return Config{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		PostgresURL:     os.Getenv("POSTGRES_URL"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPPort:        getEnvInt("SMTP_PORT", 587),
		SMTPUsername:    os.Getenv("SMTP_USERNAME"),
		SMTPPassword:    os.Getenv("SMTP_PASSWORD"),
		EmailFrom:       getEnv("EMAIL_FROM", "noreply@ticketing.local"),
		OpsEmail:        getEnv("OPS_EMAIL", "ops@ticketing.local"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}
