package judging

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/haiku-judge/internal/domain"
)

// CreateGame stores a game and its initial submissions in one transaction.
func (s *Service) CreateGame(ctx context.Context, input CreateGameInput) (*GameWithSubmissions, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	game, err := domain.NewGame(input.Theme, now)
	if err != nil {
		return nil, err
	}

	out := &GameWithSubmissions{Submissions: make([]domain.Submission, 0, len(input.Prompts))}
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err := s.games.Create(ctx, game)
		if err != nil {
			return fmt.Errorf("create game: %w", err)
		}
		out.Game = *created

		for _, prompt := range input.Prompts {
			sub, err := domain.NewSubmission(created.ID, prompt, now)
			if err != nil {
				return err
			}
			stored, err := s.submissions.Create(ctx, sub)
			if err != nil {
				return fmt.Errorf("create submission: %w", err)
			}
			out.Submissions = append(out.Submissions, *stored)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "game created",
		slog.String("game_id", out.Game.ID.String()),
		slog.String("theme", out.Game.Theme),
		slog.Int("submissions", len(out.Submissions)),
	)

	return out, nil
}

// CreateSubmission adds a pending submission to an existing game.
func (s *Service) CreateSubmission(ctx context.Context, input CreateSubmissionInput) (*domain.Submission, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.games.GetByID(ctx, input.GameID); err != nil {
		return nil, fmt.Errorf("get game: %w", err)
	}

	sub, err := domain.NewSubmission(input.GameID, input.Prompt, s.now())
	if err != nil {
		return nil, err
	}

	stored, err := s.submissions.Create(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}

	s.log.InfoContext(ctx, "submission created",
		slog.String("game_id", input.GameID.String()),
		slog.String("submission_id", stored.ID.String()),
	)

	return stored, nil
}

// GetSubmission returns one submission of a game.
func (s *Service) GetSubmission(ctx context.Context, gameID, submissionID uuid.UUID) (*domain.Submission, error) {
	sub, err := s.submissions.GetByID(ctx, gameID, submissionID)
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}
	return sub, nil
}
