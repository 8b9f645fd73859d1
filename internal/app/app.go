// Package app wires the HTTP server from configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/dewiktionary/internal/adapter/postgres"
	"github.com/heartmarshall/dewiktionary/internal/adapter/postgres/page"
	"github.com/heartmarshall/dewiktionary/internal/auth"
	"github.com/heartmarshall/dewiktionary/internal/config"
	"github.com/heartmarshall/dewiktionary/internal/service/article"
	"github.com/heartmarshall/dewiktionary/internal/transport/middleware"
	"github.com/heartmarshall/dewiktionary/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to the
// database and serves the HTTP API until ctx is canceled, then shuts the
// server down gracefully.
func Run(ctx context.Context) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", Build().String()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	pages := page.New(pool, postgres.NewTxManager(pool))
	svc := article.NewService(logger, pages)

	limiter := middleware.NewRateLimiter(cfg.Parser.RateLimit, cfg.Parser.RateBurst, time.Minute)
	defer limiter.Stop()

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:  logger,
		CORS:    cfg.CORS,
		Limiter: limiter,
		Tokens:  auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL),
		Health:  rest.NewHealthHandler(pool, Version),
		Pages:   rest.NewPageHandler(svc, logger, cfg.Parser.MaxBodyBytes),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, logger, srv, cfg.Server.ShutdownTimeout)
}

// serve runs srv until it fails or ctx is canceled.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
