package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/termllo/internal/config"
	"github.com/thenoetrevino/termllo/internal/database"
	"github.com/thenoetrevino/termllo/internal/loader"
	cardservice "github.com/thenoetrevino/termllo/internal/services/card"
	"github.com/thenoetrevino/termllo/internal/snapshot"
	"github.com/thenoetrevino/termllo/internal/store"
	"github.com/thenoetrevino/termllo/internal/trello"
)

// flushTimeout bounds how long Close waits for pending moves
const flushTimeout = 5 * time.Second

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	// Store is shared by the loader and the card service; the TUI only reads it
	Store       *store.Store
	Loader      *loader.Loader
	CardService cardservice.Service

	// Cache is nil when snapshots are disabled
	Cache *snapshot.Cache

	db *sql.DB
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	options := appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&options)
	}

	remote := options.remote
	if remote == nil {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		remote = trello.NewClient(cfg.Trello.APIKey, cfg.Trello.Token,
			trello.WithBaseURL(cfg.Trello.BaseURL),
			trello.WithTimeout(cfg.Sync.RequestTimeout))
	}

	a := &App{
		Config: cfg,
		Logger: options.logger,
		Store:  store.New(),
	}

	var cache snapshot.Store = snapshot.Disabled{}
	if !cfg.Cache.Disabled {
		db, err := database.InitDB(ctx, cfg.Cache.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open snapshot cache: %w", err)
		}
		a.db = db
		a.Cache = snapshot.New(db, snapshot.WithMaxAge(cfg.Cache.MaxAge))
		cache = a.Cache
	}

	a.CardService = cardservice.NewService(remote, a.Store,
		cardservice.WithLogger(options.logger),
		cardservice.WithMoveDebounce(cfg.Sync.MoveDebounce),
		cardservice.WithRequestTimeout(cfg.Sync.RequestTimeout))
	a.Loader = loader.New(remote, cache, a.Store,
		loader.WithLogger(options.logger),
		loader.WithBeforeReload(a.CardService.Flush))

	return a, nil
}

// Close sends any moves still waiting for their debounce window, then closes
// the snapshot database.
func (a *App) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	var errs []error
	if err := a.CardService.Flush(ctx); err != nil {
		errs = append(errs, fmt.Errorf("pending moves not confirmed: %w", err))
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
