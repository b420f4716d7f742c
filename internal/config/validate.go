package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; LoadFrom calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if c.Judge.Concurrency < 1 {
		return fmt.Errorf("judge.concurrency must be >= 1 (got %d)", c.Judge.Concurrency)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}

	if c.Server.RateLimit < 1 {
		return fmt.Errorf("server.rate_limit must be >= 1 (got %d)", c.Server.RateLimit)
	}

	return nil
}

func (l *LLMConfig) validate() error {
	if strings.TrimSpace(l.APIKey) == "" {
		return fmt.Errorf("api_key is required")
	}
	if strings.TrimSpace(l.Model) == "" {
		return fmt.Errorf("model is required")
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.RetryAttempts < 0 {
		return fmt.Errorf("retry_attempts must be >= 0 (got %d)", l.RetryAttempts)
	}
	return nil
}
