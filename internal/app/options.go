package app

import (
	"log/slog"

	"github.com/thenoetrevino/termllo/internal/trello"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	remote trello.API
	logger *slog.Logger
}

// WithRemote replaces the Trello client, used by tests to inject a fake
func WithRemote(remote trello.API) Option {
	return func(cfg *appConfig) {
		cfg.remote = remote
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
