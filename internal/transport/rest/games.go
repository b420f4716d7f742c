package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/haiku-judge/internal/domain"
	"github.com/heartmarshall/haiku-judge/internal/haiku"
	"github.com/heartmarshall/haiku-judge/internal/service/judging"
)

type gameService interface {
	CreateGame(ctx context.Context, input judging.CreateGameInput) (*judging.GameWithSubmissions, error)
	CreateSubmission(ctx context.Context, input judging.CreateSubmissionInput) (*domain.Submission, error)
	GetSubmission(ctx context.Context, gameID, submissionID uuid.UUID) (*domain.Submission, error)
	Standings(ctx context.Context, gameID uuid.UUID) ([]judging.Standing, error)
	JudgeGame(ctx context.Context, gameID uuid.UUID) (*judging.Summary, error)
	JudgeSubmission(ctx context.Context, gameID, submissionID uuid.UUID) (*domain.Submission, error)
}

// GameHandler serves game, submission and judging endpoints.
type GameHandler struct {
	svc          gameService
	maxBodyBytes int64
	log          *slog.Logger
}

// NewGameHandler creates a GameHandler.
func NewGameHandler(svc gameService, maxBodyBytes int64, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		svc:          svc,
		maxBodyBytes: maxBodyBytes,
		log:          logger.With("handler", "games"),
	}
}

// --- DTOs ---

type createGameRequest struct {
	Theme   string   `json:"theme"`
	Prompts []string `json:"prompts"`
}

type createSubmissionRequest struct {
	Prompt string `json:"prompt"`
}

type gameResponse struct {
	ID          string               `json:"id"`
	Theme       string               `json:"theme"`
	CreatedAt   time.Time            `json:"createdAt"`
	Submissions []submissionResponse `json:"submissions"`
}

type submissionResponse struct {
	ID        string          `json:"id"`
	GameID    string          `json:"gameId"`
	Prompt    string          `json:"prompt"`
	Status    string          `json:"status"`
	Result    *resultResponse `json:"result,omitempty"`
	Error     *string         `json:"error,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type resultResponse struct {
	Model    string       `json:"model"`
	Output   string       `json:"output"`
	Parsed   haiku.Result `json:"parsed"`
	JudgedAt time.Time    `json:"judgedAt"`
}

type standingResponse struct {
	Rank         int          `json:"rank"`
	SubmissionID string       `json:"submissionId"`
	Point        int          `json:"point"`
	Parsed       haiku.Result `json:"parsed"`
}

type outcomeResponse struct {
	SubmissionID string `json:"submissionId"`
	Point        int    `json:"point"`
	Error        string `json:"error,omitempty"`
}

type summaryResponse struct {
	GameID   string            `json:"gameId"`
	Theme    string            `json:"theme"`
	DryRun   bool              `json:"dryRun"`
	Total    int               `json:"total"`
	Judged   int               `json:"judged"`
	Failed   int               `json:"failed"`
	Outcomes []outcomeResponse `json:"outcomes"`
}

// --- Handlers ---

// CreateGame handles POST /api/v1/games.
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if !decodeJSON(w, r, h.maxBodyBytes, &req) {
		return
	}

	out, err := h.svc.CreateGame(r.Context(), judging.CreateGameInput{
		Theme:   req.Theme,
		Prompts: req.Prompts,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := gameResponse{
		ID:          out.Game.ID.String(),
		Theme:       out.Game.Theme,
		CreatedAt:   out.Game.CreatedAt,
		Submissions: make([]submissionResponse, 0, len(out.Submissions)),
	}
	for _, s := range out.Submissions {
		resp.Submissions = append(resp.Submissions, toSubmissionResponse(s))
	}
	writeJSON(w, http.StatusCreated, resp)
}

// CreateSubmission handles POST /api/v1/games/{gameID}/submissions.
func (h *GameHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	gameID, ok := pathUUID(w, r, "gameID")
	if !ok {
		return
	}
	var req createSubmissionRequest
	if !decodeJSON(w, r, h.maxBodyBytes, &req) {
		return
	}

	sub, err := h.svc.CreateSubmission(r.Context(), judging.CreateSubmissionInput{
		GameID: gameID,
		Prompt: req.Prompt,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSubmissionResponse(*sub))
}

// GetSubmission handles GET /api/v1/games/{gameID}/submissions/{submissionID}.
func (h *GameHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	gameID, ok := pathUUID(w, r, "gameID")
	if !ok {
		return
	}
	subID, ok := pathUUID(w, r, "submissionID")
	if !ok {
		return
	}

	sub, err := h.svc.GetSubmission(r.Context(), gameID, subID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmissionResponse(*sub))
}

// Standings handles GET /api/v1/games/{gameID}/standings.
func (h *GameHandler) Standings(w http.ResponseWriter, r *http.Request) {
	gameID, ok := pathUUID(w, r, "gameID")
	if !ok {
		return
	}

	standings, err := h.svc.Standings(r.Context(), gameID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]standingResponse, 0, len(standings))
	for _, s := range standings {
		item := standingResponse{Rank: s.Rank, SubmissionID: s.Submission.ID.String()}
		if res := s.Submission.Result; res != nil {
			item.Point = res.Parsed.Point
			item.Parsed = res.Parsed
		}
		resp = append(resp, item)
	}
	writeJSON(w, http.StatusOK, resp)
}

// JudgeGame handles POST /api/v1/games/{gameID}/judge.
func (h *GameHandler) JudgeGame(w http.ResponseWriter, r *http.Request) {
	gameID, ok := pathUUID(w, r, "gameID")
	if !ok {
		return
	}

	summary, err := h.svc.JudgeGame(r.Context(), gameID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := summaryResponse{
		GameID:   summary.GameID.String(),
		Theme:    summary.Theme,
		DryRun:   summary.DryRun,
		Total:    summary.Total,
		Judged:   summary.Judged,
		Failed:   summary.Failed,
		Outcomes: make([]outcomeResponse, 0, len(summary.Outcomes)),
	}
	for _, o := range summary.Outcomes {
		resp.Outcomes = append(resp.Outcomes, outcomeResponse{
			SubmissionID: o.SubmissionID.String(),
			Point:        o.Point,
			Error:        o.Error,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// JudgeSubmission handles POST /api/v1/games/{gameID}/submissions/{submissionID}/judge.
func (h *GameHandler) JudgeSubmission(w http.ResponseWriter, r *http.Request) {
	gameID, ok := pathUUID(w, r, "gameID")
	if !ok {
		return
	}
	subID, ok := pathUUID(w, r, "submissionID")
	if !ok {
		return
	}

	sub, err := h.svc.JudgeSubmission(r.Context(), gameID, subID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmissionResponse(*sub))
}

func toSubmissionResponse(s domain.Submission) submissionResponse {
	resp := submissionResponse{
		ID:        s.ID.String(),
		GameID:    s.GameID.String(),
		Prompt:    s.Prompt,
		Status:    s.Status.String(),
		Error:     s.ErrorMessage,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.Result != nil {
		resp.Result = &resultResponse{
			Model:    s.Result.Model,
			Output:   s.Result.Output,
			Parsed:   s.Result.Parsed,
			JudgedAt: s.Result.JudgedAt,
		}
	}
	return resp
}
