package judging

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/haiku-judge/internal/domain"
	"github.com/heartmarshall/haiku-judge/internal/haiku"
)

// JudgeGame judges every pending submission of a game. Submissions are
// claimed first so that concurrent runs never judge the same row, then
// judged with bounded concurrency. A failing submission is marked failed and
// counted; it never stops the batch. In dry-run mode pending rows are read
// without claiming and results are not stored.
//
// If ctx ends mid-batch, submissions not yet started stay claimed until
// ResetStuck returns them to pending.
func (s *Service) JudgeGame(ctx context.Context, gameID uuid.UUID) (*Summary, error) {
	game, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("get game: %w", err)
	}

	var subs []domain.Submission
	if s.opts.DryRun {
		pending := domain.SubmissionStatusPending
		subs, err = s.submissions.ListByGame(ctx, gameID, &pending)
	} else {
		subs, err = s.submissions.ClaimPending(ctx, gameID, 0)
	}
	if err != nil {
		return nil, fmt.Errorf("load pending submissions: %w", err)
	}

	s.log.InfoContext(ctx, "judging started",
		slog.String("game_id", gameID.String()),
		slog.String("theme", game.Theme),
		slog.Int("submissions", len(subs)),
		slog.Int("concurrency", s.opts.Concurrency),
		slog.Bool("dry_run", s.opts.DryRun),
	)

	outcomes := make([]Outcome, len(subs))
	started := make([]bool, len(subs))

	var g errgroup.Group
	g.SetLimit(s.opts.Concurrency)
	for i, sub := range subs {
		if ctx.Err() != nil {
			break
		}
		started[i] = true
		g.Go(func() error {
			outcomes[i] = s.judge(ctx, *game, sub)
			return nil
		})
	}
	_ = g.Wait()

	summary := &Summary{
		GameID: game.ID,
		Theme:  game.Theme,
		DryRun: s.opts.DryRun,
		Total:  len(subs),
	}
	for i, o := range outcomes {
		if !started[i] {
			continue
		}
		if o.Error != "" {
			summary.Failed++
		} else {
			summary.Judged++
		}
		summary.Outcomes = append(summary.Outcomes, o)
	}

	s.log.InfoContext(ctx, "judging finished",
		slog.String("game_id", gameID.String()),
		slog.Int("judged", summary.Judged),
		slog.Int("failed", summary.Failed),
		slog.Int("skipped", summary.Total-summary.Judged-summary.Failed),
	)

	if err := ctx.Err(); err != nil {
		return summary, fmt.Errorf("judge game %s: %w", gameID, err)
	}
	return summary, nil
}

// JudgeSubmission judges one submission now, whatever its status, and
// returns it with the stored result. Failures are recorded on the
// submission and returned.
func (s *Service) JudgeSubmission(ctx context.Context, gameID, submissionID uuid.UUID) (*domain.Submission, error) {
	game, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("get game: %w", err)
	}
	sub, err := s.submissions.GetByID(ctx, gameID, submissionID)
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}

	result, err := s.evaluate(ctx, *game, *sub)
	if err != nil {
		s.fail(ctx, *sub, err)
		return nil, err
	}

	if !s.opts.DryRun {
		if err := s.submissions.SaveResult(ctx, sub.ID, result); err != nil {
			err = fmt.Errorf("save result: %w", err)
			s.fail(ctx, *sub, err)
			return nil, err
		}
		sub.Status = domain.SubmissionStatusJudged
	}
	s.recordScored(result.Parsed.Point)

	sub.Result = &result
	sub.ErrorMessage = nil
	return sub, nil
}

// ResetStuck returns a game's claimed but unfinished submissions to pending.
func (s *Service) ResetStuck(ctx context.Context, gameID uuid.UUID) (int, error) {
	n, err := s.submissions.ResetJudging(ctx, gameID)
	if err != nil {
		return 0, fmt.Errorf("reset judging: %w", err)
	}
	if n > 0 {
		s.log.WarnContext(ctx, "stuck submissions reset",
			slog.String("game_id", gameID.String()),
			slog.Int("count", n),
		)
	}
	return n, nil
}

func (s *Service) judge(ctx context.Context, game domain.Game, sub domain.Submission) Outcome {
	result, err := s.evaluate(ctx, game, sub)
	if err == nil && !s.opts.DryRun {
		if saveErr := s.submissions.SaveResult(ctx, sub.ID, result); saveErr != nil {
			err = fmt.Errorf("save result: %w", saveErr)
		}
	}
	if err != nil {
		s.fail(ctx, sub, err)
		return Outcome{SubmissionID: sub.ID, Error: err.Error()}
	}

	s.recordScored(result.Parsed.Point)
	s.log.InfoContext(ctx, "submission judged",
		slog.String("submission_id", sub.ID.String()),
		slog.Int("point", result.Parsed.Point),
		slog.Bool("parsed", result.Parsed.Parsed()),
	)
	return Outcome{SubmissionID: sub.ID, Point: result.Parsed.Point}
}

// evaluate renders the prompt, asks the model and scores the answer.
func (s *Service) evaluate(ctx context.Context, game domain.Game, sub domain.Submission) (domain.SubmissionResult, error) {
	prompt := domain.RenderPrompt(sub.Prompt, game.Theme)

	start := time.Now()
	completion, err := s.gen.Generate(ctx, prompt)
	s.rec.GenerationObserved(time.Since(start))
	if err != nil {
		return domain.SubmissionResult{}, fmt.Errorf("generate: %w", err)
	}

	return domain.SubmissionResult{
		Model:    completion.Model,
		Output:   completion.Text,
		Parsed:   haiku.Parse(completion.Text),
		JudgedAt: s.now(),
	}, nil
}

func (s *Service) recordScored(points int) {
	if s.opts.DryRun {
		s.rec.SubmissionScoredDryRun(points)
		return
	}
	s.rec.SubmissionJudged(points)
}

// fail records a judging failure. The row is updated even when ctx has been
// cancelled so that it does not stay claimed.
func (s *Service) fail(ctx context.Context, sub domain.Submission, cause error) {
	s.rec.SubmissionFailed()
	s.log.ErrorContext(ctx, "submission judging failed",
		slog.String("submission_id", sub.ID.String()),
		slog.String("error", cause.Error()),
	)
	if s.opts.DryRun {
		return
	}
	if err := s.submissions.MarkFailed(context.WithoutCancel(ctx), sub.ID, cause.Error()); err != nil {
		s.log.ErrorContext(ctx, "mark submission failed",
			slog.String("submission_id", sub.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}
