package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/haiku-judge/internal/domain"
)

// SeedGame inserts a game with the given theme.
func SeedGame(t *testing.T, pool *pgxpool.Pool, theme string) domain.Game {
	t.Helper()

	g := domain.Game{
		ID:        uuid.New(),
		Theme:     theme,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO games (id, theme, created_at) VALUES ($1, $2, $3)`,
		g.ID, g.Theme, g.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGame: %v", err)
	}

	return g
}

// SeedSubmission inserts a pending submission for gameID. createdAt is offset
// by order so that listing order is deterministic.
func SeedSubmission(t *testing.T, pool *pgxpool.Pool, gameID uuid.UUID, prompt string, order int) domain.Submission {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond).Add(time.Duration(order) * time.Millisecond)
	s := domain.Submission{
		ID:        uuid.New(),
		GameID:    gameID,
		Prompt:    prompt,
		Status:    domain.SubmissionStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO submissions (id, game_id, prompt, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.GameID, s.Prompt, string(s.Status), s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSubmission: %v", err)
	}

	return s
}
