package domain

import (
	"time"

	"github.com/google/uuid"
)

// Game is one haiku contest. Every submission in a game is judged against the
// same theme.
type Game struct {
	ID        uuid.UUID
	Theme     string
	CreatedAt time.Time
}

// NewGame builds a game with a fresh ID and a normalized theme.
// Returns a *ValidationError when the theme is blank.
func NewGame(theme string, now time.Time) (Game, error) {
	theme = NormalizeTheme(theme)
	if theme == "" {
		return Game{}, NewValidationError("theme", "required")
	}
	return Game{
		ID:        uuid.New(),
		Theme:     theme,
		CreatedAt: now,
	}, nil
}
