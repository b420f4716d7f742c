package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/haiku-judge/internal/adapter/llm/claude"
	"github.com/heartmarshall/haiku-judge/internal/adapter/postgres"
	"github.com/heartmarshall/haiku-judge/internal/adapter/postgres/game"
	"github.com/heartmarshall/haiku-judge/internal/adapter/postgres/submission"
	"github.com/heartmarshall/haiku-judge/internal/auth"
	"github.com/heartmarshall/haiku-judge/internal/config"
	"github.com/heartmarshall/haiku-judge/internal/metrics"
	"github.com/heartmarshall/haiku-judge/internal/service/judging"
	"github.com/heartmarshall/haiku-judge/internal/transport/middleware"
	"github.com/heartmarshall/haiku-judge/internal/transport/rest"
)

// Components is the object graph shared by the server and the judge command.
type Components struct {
	Pool    *pgxpool.Pool
	Metrics *metrics.Metrics
	Judging *judging.Service
}

// Build connects to the database and wires repositories, the model client
// and the judging service. Callers must Close the result.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	svc := judging.NewService(
		logger,
		game.New(pool),
		submission.New(pool),
		postgres.NewTxManager(pool),
		claude.New(cfg.LLM, logger),
		m,
		judging.Options{
			Concurrency: cfg.Judge.Concurrency,
			DryRun:      cfg.Judge.DryRun,
		},
	)

	return &Components{Pool: pool, Metrics: m, Judging: svc}, nil
}

// Close releases the database pool.
func (c *Components) Close() {
	c.Pool.Close()
}

// Run is the HTTP server entry point. It blocks until ctx is cancelled and
// then drains in-flight requests for up to the configured shutdown timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("model", cfg.LLM.Model),
		slog.Bool("dry_run", cfg.Judge.DryRun),
	)

	c, err := Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	limiter := middleware.NewRateLimiter(cfg.Server.RateLimit, 10*time.Minute)
	defer limiter.Stop()

	router := rest.Router{
		Health:      rest.NewHealthHandler(BuildVersion(), rest.Check{Name: "database", Ping: c.Pool.Ping}),
		Scores:      rest.NewScoreHandler(c.Judging, cfg.Server.MaxBodyBytes),
		Games:       rest.NewGameHandler(c.Judging, cfg.Server.MaxBodyBytes, logger),
		Tokens:      auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL),
		RateLimiter: limiter,
		Metrics:     c.Metrics,
		Logger:      logger,
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Handler(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
