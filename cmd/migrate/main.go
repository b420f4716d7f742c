// Command migrate applies the embedded goose migrations.
//
// Usage:
//
//	migrate [--dsn postgres://...] up|down|status|version
//
// The DSN defaults to $DATABASE_DSN.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/haiku-judge/migrations"
)

func main() {
	dsn := flag.String("dsn", os.Getenv("DATABASE_DSN"), "PostgreSQL connection string")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}
	if *dsn == "" {
		logger.Error("no DSN: pass --dsn or set DATABASE_DSN")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, *dsn, command, logger); err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, dsn, command string, logger *slog.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return err
		}
		for _, r := range results {
			logger.Info("applied", slog.String("migration", r.Source.Path), slog.Duration("duration", r.Duration))
		}
	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			return err
		}
		logger.Info("rolled back", slog.String("migration", r.Source.Path))
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			logger.Info("status",
				slog.Int64("version", s.Source.Version),
				slog.String("migration", s.Source.Path),
				slog.String("state", string(s.State)),
			)
		}
	case "version":
		v, err := provider.GetDBVersion(ctx)
		if err != nil {
			return err
		}
		logger.Info("version", slog.Int64("version", v))
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}
