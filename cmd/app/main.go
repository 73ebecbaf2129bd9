package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/namsral/flag"

	"github.com/daniilsolovey/campus-companion/config"
	_ "github.com/daniilsolovey/campus-companion/docs"
	"github.com/daniilsolovey/campus-companion/internal/app"
)

var (
	flConfig = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug  = flag.Bool("debug", false, "enable debug mode")
	lg       *slog.Logger
)

// @title Campus Companion API
// @version 1.0
// @description Backend of the campus companion app: news, teachers, quick links, buildings and settings
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	cfg, err := config.Load(*flConfig)
	exitOnError(err)

	ctx := context.Background()

	store, err := app.OpenStorage(ctx, cfg, lg)
	exitOnError(err)

	service, err := app.New(ctx, cfg, store, lg)
	if err != nil {
		_ = store.Close()
		exitOnError(err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
