package judging

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/heartmarshall/haiku-judge/internal/domain"
)

// Standings ranks a game's judged submissions by total points, highest first.
// Equal totals share a rank and keep submission order.
func (s *Service) Standings(ctx context.Context, gameID uuid.UUID) ([]Standing, error) {
	if _, err := s.games.GetByID(ctx, gameID); err != nil {
		return nil, fmt.Errorf("get game: %w", err)
	}

	judged := domain.SubmissionStatusJudged
	subs, err := s.submissions.ListByGame(ctx, gameID, &judged)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	sort.SliceStable(subs, func(i, j int) bool {
		return point(subs[i]) > point(subs[j])
	})

	out := make([]Standing, len(subs))
	for i, sub := range subs {
		rank := i + 1
		if i > 0 && point(sub) == point(subs[i-1]) {
			rank = out[i-1].Rank
		}
		out[i] = Standing{Rank: rank, Submission: sub}
	}
	return out, nil
}

func point(s domain.Submission) int {
	if s.Result == nil {
		return 0
	}
	return s.Result.Parsed.Point
}
