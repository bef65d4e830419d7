package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"localflavor/internal/config"
	httpapi "localflavor/internal/http"
	"localflavor/internal/service"
	"localflavor/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		slog.Error("api stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		return err
	}

	shutdownTelemetry, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:     cfg.OTelEnabled,
		ServiceName: cfg.OTelServiceName,
		LogLevel:    cfg.LogLevel,
	})
	if err != nil {
		slog.Error("setup telemetry", "error", err)
		return err
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			slog.Error("shutdown telemetry", "error", err)
		}
	}()

	svc := service.New(
		service.WithAuthConfig(cfg.JWTSecret, cfg.JWTIssuer),
		service.WithBatchLimits(cfg.BatchMaxItems, cfg.BatchConcurrency),
	)
	if !svc.AuthEnabled() {
		slog.Warn("JWT_SECRET not set, validation routes are unauthenticated")
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httpapi.NewRouter(svc, cfg.OTelServiceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("api listening", "port", cfg.Port, "validators", len(service.DefaultFields()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		slog.Info("shutting down api")
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
