// Package submission implements the submission repository using PostgreSQL.
// Judging state moves pending → judging → judged | failed; the judging
// state is a claim held by one batch run.
package submission

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/haiku-judge/internal/adapter/postgres"
	"github.com/heartmarshall/haiku-judge/internal/domain"
)

const table = "submissions"

var columns = []string{
	"id", "game_id", "prompt", "status", "result", "error_message", "created_at", "updated_at",
}

const returning = "RETURNING id, game_id, prompt, status, result, error_message, created_at, updated_at"

type row struct {
	ID           uuid.UUID `db:"id"`
	GameID       uuid.UUID `db:"game_id"`
	Prompt       string    `db:"prompt"`
	Status       string    `db:"status"`
	Result       []byte    `db:"result"`
	ErrorMessage *string   `db:"error_message"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r row) toDomain() (domain.Submission, error) {
	s := domain.Submission{
		ID:           r.ID,
		GameID:       r.GameID,
		Prompt:       r.Prompt,
		Status:       domain.SubmissionStatus(r.Status),
		ErrorMessage: r.ErrorMessage,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if len(r.Result) > 0 {
		var res domain.SubmissionResult
		if err := json.Unmarshal(r.Result, &res); err != nil {
			return domain.Submission{}, fmt.Errorf("decode result of submission %s: %w", r.ID, err)
		}
		s.Result = &res
	}
	return s, nil
}

func toDomainList(rows []row) ([]domain.Submission, error) {
	out := make([]domain.Submission, 0, len(rows))
	for _, r := range rows {
		s, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Repo provides submission persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new submission repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a submission that belongs to gameID.
// Returns domain.ErrNotFound if it does not exist or belongs to another game.
func (r *Repo) GetByID(ctx context.Context, gameID, id uuid.UUID) (*domain.Submission, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "game_id": gameID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("submission.GetByID: build query: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "submission", id)
	}
	s, err := out.toDomain()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByGame returns a game's submissions in creation order. A nil status
// lists every submission.
func (r *Repo) ListByGame(ctx context.Context, gameID uuid.UUID, status *domain.SubmissionStatus) ([]domain.Submission, error) {
	where := sq.Eq{"game_id": gameID}
	if status != nil {
		where["status"] = string(*status)
	}

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("submission.ListByGame: build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("submission.ListByGame: %w", err)
	}
	return toDomainList(rows)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a pending submission and returns the stored row.
func (r *Repo) Create(ctx context.Context, s domain.Submission) (*domain.Submission, error) {
	sql, args, err := postgres.Builder.
		Insert(table).
		Columns("id", "game_id", "prompt", "status", "created_at", "updated_at").
		Values(s.ID, s.GameID, s.Prompt, string(s.Status), s.CreatedAt, s.UpdatedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("submission.Create: build query: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "submission", s.ID)
	}
	created, err := out.toDomain()
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ClaimPending moves up to limit pending submissions of a game to judging and
// returns them. Rows locked by a concurrent claim are skipped. A limit of zero
// or less claims every pending row.
func (r *Repo) ClaimPending(ctx context.Context, gameID uuid.UUID, limit int) ([]domain.Submission, error) {
	// The subquery keeps '?' placeholders; the outer builder rewrites them.
	pending := sq.Select("id").
		From(table).
		Where(sq.Eq{"game_id": gameID, "status": string(domain.SubmissionStatusPending)}).
		OrderBy("created_at", "id").
		Suffix("FOR UPDATE SKIP LOCKED")
	if limit > 0 {
		pending = pending.Limit(uint64(limit))
	}

	sql, args, err := postgres.Builder.
		Update(table).
		Set("status", string(domain.SubmissionStatusJudging)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Expr("id IN (?)", pending)).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("submission.ClaimPending: build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("submission.ClaimPending: %w", err)
	}
	return toDomainList(rows)
}

// SaveResult stores the judged result and marks the submission judged.
// Returns domain.ErrNotFound if the submission does not exist.
func (r *Repo) SaveResult(ctx context.Context, id uuid.UUID, result domain.SubmissionResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("submission.SaveResult: encode result: %w", err)
	}

	return r.update(ctx, "submission.SaveResult", id, map[string]any{
		"status":        string(domain.SubmissionStatusJudged),
		"result":        payload,
		"error_message": nil,
	})
}

// MarkFailed records why judging failed. A stored result is kept.
func (r *Repo) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	return r.update(ctx, "submission.MarkFailed", id, map[string]any{
		"status":        string(domain.SubmissionStatusFailed),
		"error_message": errMsg,
	})
}

// ResetJudging returns a game's submissions stuck in judging to pending, for
// runs that died holding a claim. Returns the number of rows reset.
func (r *Repo) ResetJudging(ctx context.Context, gameID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder.
		Update(table).
		Set("status", string(domain.SubmissionStatusPending)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"game_id": gameID, "status": string(domain.SubmissionStatusJudging)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("submission.ResetJudging: build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("submission.ResetJudging: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *Repo) update(ctx context.Context, op string, id uuid.UUID, set map[string]any) error {
	sql, args, err := postgres.Builder.
		Update(table).
		SetMap(set).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: build query: %w", op, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "submission", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("submission %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
