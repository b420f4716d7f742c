package judging

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/haiku-judge/internal/domain"
)

// GameWithSubmissions is a created game together with its submissions.
type GameWithSubmissions struct {
	Game        domain.Game
	Submissions []domain.Submission
}

// Outcome is what happened to one submission during a batch.
type Outcome struct {
	SubmissionID uuid.UUID
	Point        int
	Error        string
}

// Summary reports a batch run over one game.
type Summary struct {
	GameID   uuid.UUID
	Theme    string
	DryRun   bool
	Total    int
	Judged   int
	Failed   int
	Outcomes []Outcome
}

// Standing is one ranked judged submission.
type Standing struct {
	Rank       int
	Submission domain.Submission
}
