package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"intake/internal/app"
	"intake/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}

	log.Init(cfg.Level())

	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to the database")
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.NotificationsEnabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
		defer redisClient.Close()
	}

	watermillLogger := log.NewWatermill(logrus.NewEntry(logrus.StandardLogger()))

	a, err := app.NewApp(cfg, watermillLogger, db, redisClient)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create the app")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logrus.Info("Server starting...")

	if err := a.Run(ctx); err != nil {
		logrus.WithError(err).Error("Server stopped with error")
		os.Exit(1)
	}
}
