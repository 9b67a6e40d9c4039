package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const DefaultDatabaseURL = "postgres://postgres:postgres@db:5432/tourdb?sslmode=disable"

type App struct {
	// DB
	DatabaseURL string `envconfig:"DATABASE_URL"`
	// Network
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8000"`
	// Booking notifications are disabled when empty
	RedisAddr string `envconfig:"REDIS_ADDR"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (App, error) {
	var c App
	if err := envconfig.Process("", &c); err != nil {
		return App{}, fmt.Errorf("failed to load config: %w", err)
	}

	if c.DatabaseURL == "" {
		c.DatabaseURL = DefaultDatabaseURL
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return App{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return c, nil
}

func (c App) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func (c App) NotificationsEnabled() bool {
	return c.RedisAddr != ""
}
