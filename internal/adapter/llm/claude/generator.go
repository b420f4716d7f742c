// Package claude generates haiku completions with the Anthropic Messages API.
package claude

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/sethvargo/go-retry"

	"github.com/heartmarshall/haiku-judge/internal/config"
	"github.com/heartmarshall/haiku-judge/internal/domain"
)

// messages is the slice of the SDK the generator calls.
type messages interface {
	New(ctx context.Context, body anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// Generator sends rendered prompts to Claude, one user message per call.
type Generator struct {
	api       messages
	model     string
	maxTokens int64
	timeout   time.Duration
	attempts  uint64
	backoff   time.Duration
	log       *slog.Logger
}

// New builds a Generator from LLM settings. The SDK's own retries are turned
// off; the generator retries with its own backoff.
func New(cfg config.LLMConfig, log *slog.Logger) *Generator {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	)
	return newGenerator(&client.Messages, cfg, log)
}

func newGenerator(api messages, cfg config.LLMConfig, log *slog.Logger) *Generator {
	attempts := cfg.RetryAttempts
	if attempts < 0 {
		attempts = 0
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = 100 * time.Millisecond
	}
	return &Generator{
		api:       api,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
		attempts:  uint64(attempts),
		backoff:   backoff,
		log:       log.With("component", "claude"),
	}
}

// Generate asks the model for a completion of prompt. Text blocks of the
// reply are joined in order. A reply without text returns
// domain.ErrEmptyCompletion. Rate limits, overload, server errors and network
// failures are retried with exponential backoff.
func (g *Generator) Generate(ctx context.Context, prompt string) (domain.Completion, error) {
	backoff := retry.WithMaxRetries(g.attempts, retry.NewExponential(g.backoff))

	var (
		msg     *anthropic.Message
		attempt int
	)
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		callCtx := ctx
		if g.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, g.timeout)
			defer cancel()
		}

		var callErr error
		msg, callErr = g.api.New(callCtx, anthropic.MessageNewParams{
			Model:     anthropic.Model(g.model),
			MaxTokens: g.maxTokens,
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
			},
		})
		if callErr != nil {
			if ctx.Err() == nil && isRetryable(callErr) {
				g.log.WarnContext(ctx, "llm call failed, retrying",
					slog.Int("attempt", attempt),
					slog.String("error", callErr.Error()),
				)
				return retry.RetryableError(callErr)
			}
			return callErr
		}
		return nil
	})
	if err != nil {
		return domain.Completion{}, fmt.Errorf("llm generate after %d attempt(s): %w", attempt, err)
	}

	text := joinText(msg)
	if strings.TrimSpace(text) == "" {
		return domain.Completion{}, fmt.Errorf("llm generate: %w", domain.ErrEmptyCompletion)
	}

	model := string(msg.Model)
	if model == "" {
		model = g.model
	}
	return domain.Completion{Model: model, Text: text}, nil
}

func joinText(msg *anthropic.Message) string {
	if msg == nil {
		return ""
	}
	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}

// isRetryable reports whether a failed call is worth repeating.
func isRetryable(err error) bool {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusTooManyRequests,
			apiErr.StatusCode == http.StatusRequestTimeout,
			apiErr.StatusCode >= http.StatusInternalServerError:
			return true
		}
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
