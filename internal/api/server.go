// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

/*
Package api assembles the HTTP server from the domain handlers.

It owns the router composition (middleware chain, /api mounts, probe
endpoints) and the server lifecycle, but no business logic: every route
delegates into a domain package.
*/
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/matthansbello/labarintech/internal/news/article"
	"github.com/matthansbello/labarintech/internal/news/category"
	"github.com/matthansbello/labarintech/internal/news/newsletter"
	"github.com/matthansbello/labarintech/internal/platform/config"
	"github.com/matthansbello/labarintech/internal/platform/constants"
	"github.com/matthansbello/labarintech/internal/platform/middleware"
	"github.com/matthansbello/labarintech/internal/users/account"
	"github.com/matthansbello/labarintech/internal/users/auth"
)

// Handlers bundles the domain HTTP handlers mounted by the server.
type Handlers struct {
	Articles   *article.Handler
	Categories *category.Handler
	Newsletter *newsletter.Handler
	Users      *account.Handler
	Auth       *auth.Handler
	Health     *HealthHandler
}

// Server wraps the configured http.Server.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

/*
NewServer builds the router and the underlying http.Server.

Parameters:
  - cfg: *config.Config
  - logger: *slog.Logger (base logger; per-request loggers derive from it)
  - verifier: middleware.TokenVerifier (JWT verification for Authenticate)
  - handlers: Handlers

Returns:
  - *Server: Ready to Start
*/
func NewServer(cfg *config.Config, logger *slog.Logger, verifier middleware.TokenVerifier, handlers Handlers) *Server {
	router := chi.NewRouter()

	// ── Middleware chain (order matters) ─────────────────────────────────────
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(logger))
	router.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	router.Use(middleware.RateLimit(context.Background()))
	router.Use(middleware.PanicRecovery(logger))
	router.Use(middleware.Authenticate(verifier))
	router.Use(middleware.CORS(cfg))
	router.Use(chimw.CleanPath)

	// ── Probes ───────────────────────────────────────────────────────────────
	router.Get("/health", handlers.Health.handleLiveness)
	router.Get("/ready", handlers.Health.handleReadiness)

	// ── Public API ───────────────────────────────────────────────────────────
	router.Route("/api", func(r chi.Router) {
		r.Mount("/articles", handlers.Articles.Routes())
		r.Mount("/categories", handlers.Categories.Routes())
		r.Mount("/newsletter", handlers.Newsletter.Routes())
		r.Mount("/users", handlers.Users.Routes())
		r.Mount("/auth", handlers.Auth.Routes())
		r.Get("/search", handlers.Articles.HandleSearch)
	})

	httpServer := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadTimeout:       constants.DefaultReadTimeout,
		ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		WriteTimeout:      constants.DefaultWriteTimeout,
		IdleTimeout:       constants.DefaultIdleTimeout,
	}

	return &Server{httpServer: httpServer, logger: logger}
}

// Start blocks serving requests until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("server_listening", slog.String("addr", s.httpServer.Addr))

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("listen: %w", err)
	}

	return nil
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server_shutting_down")

	return s.httpServer.Shutdown(ctx)
}
