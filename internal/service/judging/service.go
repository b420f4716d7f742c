// Package judging runs submission prompts through the model and scores the
// haiku that come back.
package judging

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/haiku-judge/internal/domain"
)

// DefaultConcurrency is used when the configured concurrency is not positive.
const DefaultConcurrency = 4

type gameRepo interface {
	Create(ctx context.Context, g domain.Game) (*domain.Game, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Game, error)
}

type submissionRepo interface {
	Create(ctx context.Context, s domain.Submission) (*domain.Submission, error)
	GetByID(ctx context.Context, gameID, id uuid.UUID) (*domain.Submission, error)
	ListByGame(ctx context.Context, gameID uuid.UUID, status *domain.SubmissionStatus) ([]domain.Submission, error)
	ClaimPending(ctx context.Context, gameID uuid.UUID, limit int) ([]domain.Submission, error)
	SaveResult(ctx context.Context, id uuid.UUID, result domain.SubmissionResult) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error
	ResetJudging(ctx context.Context, gameID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type generator interface {
	Generate(ctx context.Context, prompt string) (domain.Completion, error)
}

type recorder interface {
	SubmissionJudged(points int)
	SubmissionScoredDryRun(points int)
	SubmissionFailed()
	TextScored(points int)
	GenerationObserved(d time.Duration)
}

// Options tune batch judging.
type Options struct {
	Concurrency int
	DryRun      bool
}

// Service judges games and scores free text.
type Service struct {
	games       gameRepo
	submissions submissionRepo
	tx          txManager
	gen         generator
	rec         recorder
	opts        Options
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new judging service.
func NewService(
	log *slog.Logger,
	games gameRepo,
	submissions submissionRepo,
	tx txManager,
	gen generator,
	rec recorder,
	opts Options,
) *Service {
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	return &Service{
		games:       games,
		submissions: submissions,
		tx:          tx,
		gen:         gen,
		rec:         rec,
		opts:        opts,
		log:         log.With("service", "judging"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}
