// Package game implements the game repository using PostgreSQL.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/haiku-judge/internal/adapter/postgres"
	"github.com/heartmarshall/haiku-judge/internal/domain"
)

const table = "games"

var columns = []string{"id", "theme", "created_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	Theme     string    `db:"theme"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.Game {
	return &domain.Game{ID: r.ID, Theme: r.Theme, CreatedAt: r.CreatedAt}
}

// Repo provides game persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new game repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a game and returns the stored row.
func (r *Repo) Create(ctx context.Context, g domain.Game) (*domain.Game, error) {
	sql, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(g.ID, g.Theme, g.CreatedAt).
		Suffix("RETURNING id, theme, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("game.Create: build query: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "game", g.ID)
	}
	return out.toDomain(), nil
}

// GetByID returns a game by primary key.
// Returns domain.ErrNotFound if the game does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("game.GetByID: build query: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "game", id)
	}
	return out.toDomain(), nil
}
