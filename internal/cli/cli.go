package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/termllo/internal/app"
	"github.com/thenoetrevino/termllo/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// borrowed is set when the App was injected and belongs to the caller
	borrowed bool
}

// NewCLI initializes the CLI with a fresh App built from cfg
func NewCLI(ctx context.Context, cfg *config.Config, opts ...app.Option) (*CLI, error) {
	a, err := app.New(ctx, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize termllo: %w", err)
	}
	return &CLI{App: a}, nil
}

// Close flushes pending moves and releases the App, unless it was injected
func (c *CLI) Close() error {
	if c.borrowed {
		return nil
	}
	return c.App.Close()
}
