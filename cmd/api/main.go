// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

// Command api runs the LabarinTech newsroom API server.
//
// With no configuration it serves entirely from memory, which is the mode
// used in development and CI. Setting DATABASE_URL switches content storage
// to PostgreSQL (running migrations at boot); setting REDIS_URL moves
// refresh sessions to Redis.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/matthansbello/labarintech/internal/api"
	"github.com/matthansbello/labarintech/internal/news/article"
	"github.com/matthansbello/labarintech/internal/news/category"
	"github.com/matthansbello/labarintech/internal/news/newsletter"
	"github.com/matthansbello/labarintech/internal/platform/config"
	"github.com/matthansbello/labarintech/internal/platform/constants"
	"github.com/matthansbello/labarintech/internal/platform/migration"
	"github.com/matthansbello/labarintech/internal/platform/postgres"
	"github.com/matthansbello/labarintech/internal/platform/redis"
	"github.com/matthansbello/labarintech/internal/platform/sec"
	"github.com/matthansbello/labarintech/internal/users/account"
	"github.com/matthansbello/labarintech/internal/users/auth"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", constants.AppName),
	)
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("startup_failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.IsProduction() && cfg.SessionSecret == "labarintech-dev-secret" {
		return errors.New("SESSION_SECRET must be set in production")
	}

	ctx := context.Background()

	// ── Optional PostgreSQL ──────────────────────────────────────────────────
	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, logger); err != nil {
			return err
		}
		pool, err = postgres.NewPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return err
		}
		defer pool.Close()
	} else {
		logger.Info("storage_mode_memory")
	}

	// ── Optional Redis ───────────────────────────────────────────────────────
	var cache *goredis.Client
	if cfg.RedisURL != "" {
		cache, err = redis.NewClient(ctx, cfg.RedisURL, logger)
		if err != nil {
			return err
		}
		defer cache.Close()
	}

	// ── Repositories ─────────────────────────────────────────────────────────
	var (
		articleRepo  article.Repository
		revisionRepo article.RevisionRepository
		categoryRepo category.Repository
		letterRepo   newsletter.Repository
		userRepo     account.Repository
		sessionRepo  auth.SessionRepository
	)
	if pool != nil {
		articleRepo = article.NewPostgresRepository(pool)
		revisionRepo = article.NewPostgresRevisionRepository(pool)
		categoryRepo = category.NewPostgresRepository(pool)
		letterRepo = newsletter.NewPostgresRepository(pool)
		userRepo = account.NewPostgresRepository(pool)
	} else {
		articleStore := article.NewMemoryStore()
		articleRepo = articleStore
		revisionRepo = articleStore.Revisions()
		categoryRepo = category.NewMemoryStore()
		letterRepo = newsletter.NewMemoryStore()
		userRepo = account.NewMemoryStore()
	}
	if cache != nil {
		sessionRepo = auth.NewRedisSessionStore(cache)
	} else {
		sessionRepo = auth.NewMemorySessionStore()
	}

	// ── Services ─────────────────────────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.SessionSecret, constants.AuthIssuer)
	if err != nil {
		return err
	}

	articleService := article.NewService(articleRepo, revisionRepo, logger)
	categoryService := category.NewService(categoryRepo, logger)
	letterService := newsletter.NewService(letterRepo, logger)
	accountService := account.NewService(userRepo, logger)
	authService := auth.NewService(accountService, sessionRepo, tokens, logger)

	if err := categoryService.EnsureDefaults(ctx); err != nil {
		return err
	}

	// ── HTTP server ──────────────────────────────────────────────────────────
	health := &api.HealthHandler{}
	if pool != nil {
		health.CheckDatabase = func(r *http.Request) error {
			return postgres.Ping(r.Context(), pool)
		}
	}
	if cache != nil {
		health.CheckCache = func(r *http.Request) error {
			return redis.Ping(r.Context(), cache)
		}
	}

	server := api.NewServer(cfg, logger, tokens, api.Handlers{
		Articles:   article.NewHandler(articleService),
		Categories: category.NewHandler(categoryService),
		Newsletter: newsletter.NewHandler(letterService),
		Users:      account.NewHandler(accountService),
		Auth:       auth.NewHandler(authService),
		Health:     health,
	})

	// ── Graceful shutdown ────────────────────────────────────────────────────
	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutdown_signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
