package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/haiku-judge/internal/haiku"
)

// SubmissionStatus is the judging state of a submission.
type SubmissionStatus string

const (
	SubmissionStatusPending SubmissionStatus = "pending"
	SubmissionStatusJudging SubmissionStatus = "judging"
	SubmissionStatusJudged  SubmissionStatus = "judged"
	SubmissionStatusFailed  SubmissionStatus = "failed"
)

func (s SubmissionStatus) String() string { return string(s) }

func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionStatusPending, SubmissionStatusJudging, SubmissionStatusJudged, SubmissionStatusFailed:
		return true
	}
	return false
}

// Submission is a contestant's prompt. The prompt may contain ThemePlaceholder,
// which is replaced by the game theme before the model sees it.
type Submission struct {
	ID           uuid.UUID
	GameID       uuid.UUID
	Prompt       string
	Status       SubmissionStatus
	Result       *SubmissionResult
	ErrorMessage *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SubmissionResult is what judging stores on a submission: the model that
// answered, its raw output, and the scored parse of that output.
type SubmissionResult struct {
	Model    string       `json:"model"`
	Output   string       `json:"output"`
	Parsed   haiku.Result `json:"parsed"`
	JudgedAt time.Time    `json:"judged_at"`
}

// NewSubmission builds a pending submission.
// Returns a *ValidationError when the prompt is blank.
func NewSubmission(gameID uuid.UUID, prompt string, now time.Time) (Submission, error) {
	if strings.TrimSpace(prompt) == "" {
		return Submission{}, NewValidationError("prompt", "required")
	}
	return Submission{
		ID:        uuid.New(),
		GameID:    gameID,
		Prompt:    prompt,
		Status:    SubmissionStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Completion is one model answer to a rendered prompt.
type Completion struct {
	Model string
	Text  string
}
