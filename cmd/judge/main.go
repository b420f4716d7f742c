// Command judge runs one judging batch over a game: every pending submission
// has the theme substituted into its prompt, is sent to the model, and has
// the reply scored and stored. It prints a summary and the standings.
//
// Usage:
//
//	judge --game <uuid> [--dry-run] [--reset-stuck] [--timeout 30m]
//
// Exit codes: 0 = batch finished (individual failures are reported in the
// summary), 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/haiku-judge/internal/app"
	"github.com/heartmarshall/haiku-judge/internal/config"
	"github.com/heartmarshall/haiku-judge/internal/service/judging"
)

func main() {
	gameFlag := flag.String("game", "", "game ID to judge (required)")
	dryRun := flag.Bool("dry-run", false, "score without storing results (overrides judge.dry_run)")
	resetStuck := flag.Bool("reset-stuck", false, "return submissions left in judging to pending before the batch")
	timeout := flag.Duration("timeout", 30*time.Minute, "overall batch deadline")
	flag.Parse()

	gameID, err := uuid.Parse(*gameFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "judge: --game must be a valid UUID")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "judge: load config: %v\n", err)
		os.Exit(1)
	}
	if *dryRun {
		cfg.Judge.DryRun = true
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	if err := run(ctx, cfg, logger, gameID, *resetStuck, os.Stdout); err != nil {
		logger.Error("judge failed",
			slog.String("game_id", gameID.String()),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, gameID uuid.UUID, resetStuck bool, out io.Writer) error {
	c, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	if resetStuck {
		if _, err := c.Judging.ResetStuck(ctx, gameID); err != nil {
			return err
		}
	}

	summary, err := c.Judging.JudgeGame(ctx, gameID)
	if summary != nil {
		printSummary(out, summary)
	}
	if err != nil {
		return err
	}

	if summary.DryRun {
		return nil
	}
	standings, err := c.Judging.Standings(ctx, gameID)
	if err != nil {
		return err
	}
	printStandings(out, standings)
	return nil
}

func printSummary(out io.Writer, s *judging.Summary) {
	mode := ""
	if s.DryRun {
		mode = " (dry run)"
	}
	fmt.Fprintf(out, "game %s %q%s: %d submissions, %d judged, %d failed\n",
		s.GameID, s.Theme, mode, s.Total, s.Judged, s.Failed)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SUBMISSION\tPOINT\tERROR")
	for _, o := range s.Outcomes {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", o.SubmissionID, o.Point, o.Error)
	}
	tw.Flush() //nolint:errcheck
}

func printStandings(out io.Writer, standings []judging.Standing) {
	fmt.Fprintln(out)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tPOINT\tHAIKU\tSUBMISSION")
	for _, s := range standings {
		point := 0
		var tokens []string
		if r := s.Submission.Result; r != nil {
			point = r.Parsed.Point
			tokens = r.Parsed.Output.Haiku
		}
		fmt.Fprintf(tw, "%d\t%d\t%v\t%s\n", s.Rank, point, tokens, s.Submission.ID)
	}
	tw.Flush() //nolint:errcheck
}
