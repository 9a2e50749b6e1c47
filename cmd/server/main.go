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

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"

	"marketer_backend/internal/app/cleanup"
	"marketer_backend/internal/app/di"
	"marketer_backend/internal/app/router"
	"marketer_backend/internal/platform/config"
	"marketer_backend/internal/platform/db"
	"marketer_backend/internal/platform/http/handler"
	infraredis "marketer_backend/internal/platform/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.SetDefault(cfg.Log.NewLogger())
	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	database, err := db.Open(cfg.DB, di.Models()...)
	if err != nil {
		return err
	}
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Redis（無くても動作する）
	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis); err != nil {
			slog.Warn("Redis unavailable. Storing sessions in the database.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	app, err := di.Build(ctx, cfg, database, rdb)
	if err != nil {
		return err
	}
	defer app.Close()

	if cfg.JWT.Secret == "" {
		slog.Warn("JWT_SECRET is not set. Authenticated routes will return 500.")
	}

	checks := map[string]handler.Checker{"db": sqlDB.PingContext}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	engine := router.NewRouter(ctx, app.Handlers, router.Options{
		JWTSecret:     cfg.JWT.Secret,
		ResearchRPM:   cfg.RateLimit.ResearchPerMinute,
		ResearchBurst: cfg.RateLimit.ResearchBurst,
		ReadyChecks:   checks,
		CORSOrigins:   cfg.Server.CORSAllowedOrigins,
	})

	go cleanup.RunSessionCleanup(ctx, app.Sessions, cfg.Server.SessionCleanupInterval)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
