package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/campus-companion/config"
	"github.com/daniilsolovey/campus-companion/internal/campus"
	"github.com/daniilsolovey/campus-companion/internal/db"
	"github.com/daniilsolovey/campus-companion/internal/memstore"
	"github.com/daniilsolovey/campus-companion/internal/rest"
	"github.com/daniilsolovey/campus-companion/internal/rpc"
	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
)

const rpcPath = "/rpc"

type App struct {
	Store   campus.Storage
	Manager *campus.Manager
	Logger  *slog.Logger
	Echo    *echo.Echo
	Config  config.Config
}

// OpenStorage returns the backend selected by cfg.App.Storage. The postgres
// backend is migrated before it is returned.
func OpenStorage(ctx context.Context, cfg config.Config, logger *slog.Logger) (campus.Storage, error) {
	switch cfg.App.Storage {
	case config.StorageMemory:
		logger.Info("using in-memory storage")
		return memstore.New(), nil
	case config.StoragePostgres:
		return openPostgres(ctx, cfg.Database, logger)
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.App.Storage)
	}
}

func openPostgres(ctx context.Context, cfg config.Database, logger *slog.Logger) (campus.Storage, error) {
	opt, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx, cfg.URL); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	conn := pg.Connect(opt)
	if cfg.LogQueries {
		conn.AddQueryHook(db.NewQueryHook(logger))
	}

	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.Info("using postgres storage", "addr", opt.Addr, "database", opt.Database)
	return db.New(conn), nil
}

// New wires the HTTP and JSON-RPC surfaces over store and seeds it when
// configured.
func New(ctx context.Context, cfg config.Config, store campus.Storage, logger *slog.Logger) (*App, error) {
	manager := campus.NewManager(store, logger)

	if cfg.App.Seed {
		if _, err := manager.Seed(ctx); err != nil {
			return nil, fmt.Errorf("seed storage: %w", err)
		}
	}

	e := rest.NewHandler(manager, logger, cfg.App.StaticDir).RegisterRoutes()

	rpcHandler := echo.WrapHandler(rpc.New(logger, manager))
	e.Any(rpcPath, rpcHandler)
	e.Any(rpcPath+"/", rpcHandler)

	return &App{
		Store:   store,
		Manager: manager,
		Logger:  logger,
		Echo:    e,
		Config:  cfg,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	addr := a.Config.App.Addr()
	a.Logger.InfoContext(ctx, "service starting", "addr", addr)

	err := a.Echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// GracefulShutdown stops accepting requests, waits for in-flight ones and
// closes the store.
func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	if closeErr := a.Store.Close(); closeErr != nil {
		err = errors.Join(err, fmt.Errorf("close storage: %w", closeErr))
	}

	return err
}
