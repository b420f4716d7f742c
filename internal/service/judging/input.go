package judging

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/haiku-judge/internal/domain"
)

// Limits on user-supplied text.
const (
	MaxThemeRunes     = 100
	MaxPromptRunes    = 4000
	MaxPromptsPerGame = 500
)

// CreateGameInput holds the parameters for creating a game with its
// initial submissions.
type CreateGameInput struct {
	Theme   string
	Prompts []string
}

// Validate checks all fields and collects all errors.
func (i CreateGameInput) Validate() error {
	var errs []domain.FieldError

	theme := domain.NormalizeTheme(i.Theme)
	if theme == "" {
		errs = append(errs, domain.FieldError{Field: "theme", Message: "required"})
	}
	if utf8.RuneCountInString(theme) > MaxThemeRunes {
		errs = append(errs, domain.FieldError{Field: "theme", Message: "max 100 characters"})
	}
	if len(i.Prompts) > MaxPromptsPerGame {
		errs = append(errs, domain.FieldError{Field: "prompts", Message: "max 500 prompts"})
	}
	for _, p := range i.Prompts {
		if msg := promptProblem(p); msg != "" {
			errs = append(errs, domain.FieldError{Field: "prompts", Message: msg})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateSubmissionInput holds the parameters for adding a submission to a game.
type CreateSubmissionInput struct {
	GameID uuid.UUID
	Prompt string
}

// Validate checks all fields and collects all errors.
func (i CreateSubmissionInput) Validate() error {
	var errs []domain.FieldError
	if i.GameID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "game_id", Message: "required"})
	}
	if msg := promptProblem(i.Prompt); msg != "" {
		errs = append(errs, domain.FieldError{Field: "prompt", Message: msg})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func promptProblem(p string) string {
	switch {
	case strings.TrimSpace(p) == "":
		return "required"
	case utf8.RuneCountInString(p) > MaxPromptRunes:
		return "max 4000 characters"
	}
	return ""
}
