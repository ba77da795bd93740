package cli

import (
	"context"
	"errors"

	"github.com/thenoetrevino/termllo/internal/app"
	"github.com/thenoetrevino/termllo/internal/config"
)

type contextKey string

const (
	appKey    contextKey = "termllo.app"
	configKey contextKey = "termllo.config"
)

// ErrNoConfig is returned when a command runs without the root command's setup
var ErrNoConfig = errors.New("configuration not loaded")

// WithConfig stores the loaded configuration for subcommands
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the configuration stored by WithConfig
func ConfigFromContext(ctx context.Context) (*config.Config, bool) {
	cfg, ok := ctx.Value(configKey).(*config.Config)
	return cfg, ok && cfg != nil
}

// WithApp injects a ready App, used by tests to run commands against a fake remote
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI for the command context.
// An injected App is reused as is; otherwise one is built from the
// configuration in ctx. Callers must Close the result.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, borrowed: true}, nil
	}

	cfg, ok := ConfigFromContext(ctx)
	if !ok {
		return nil, ErrNoConfig
	}
	return NewCLI(ctx, cfg)
}
