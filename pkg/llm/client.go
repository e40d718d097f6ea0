// Package llm calls an external language model to analyze meeting
// transcripts and parses its JSON answer.
package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/cnmi-csc/busybee/pkg/config"
)

// Completer sends one system + user prompt pair and returns the raw reply
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
	Name() string
}

// Request is what the model is asked to analyze
type Request struct {
	Transcript  string
	Title       string
	MeetingType string
}

// Client analyzes transcripts with a Completer, retrying transient failures
// up to the configured count.
type Client struct {
	completer  Completer
	model      string
	maxRetries uint64
	interval   time.Duration
	logger     *zap.Logger
}

// NewClient wraps a completer
func NewClient(completer Completer, model string, maxRetries uint64, logger *zap.Logger) *Client {
	return &Client{
		completer:  completer,
		model:      model,
		maxRetries: maxRetries,
		interval:   2 * time.Second,
		logger:     logger,
	}
}

// New builds a client for the configured provider. It returns nil when no
// model is configured.
func New(cfg config.LLMConfig, logger *zap.Logger) (*Client, error) {
	if cfg.Provider == config.ProviderNone || cfg.APIKey == "" {
		return nil, nil
	}

	model := cfg.ModelOrDefault()
	var completer Completer
	switch cfg.Provider {
	case config.ProviderGroq:
		completer = NewGroqCompleter(cfg.APIKey, cfg.BaseURL, model, cfg.Temperature, cfg.MaxTokens, cfg.Timeout)
	case config.ProviderOpenAI:
		completer = NewOpenAICompleter(cfg.APIKey, cfg.BaseURL, model, cfg.Temperature, cfg.MaxTokens, cfg.Timeout)
	case config.ProviderAnthropic:
		completer = NewAnthropicCompleter(cfg.APIKey, cfg.BaseURL, model, cfg.Temperature, cfg.MaxTokens, cfg.Timeout)
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", cfg.Provider)
	}
	return NewClient(completer, model, cfg.MaxRetries, logger), nil
}

// Provider returns the provider name
func (c *Client) Provider() string {
	return c.completer.Name()
}

// Model returns the model name
func (c *Client) Model() string {
	return c.model
}

// Analyze asks the model for structured minutes. A reply that cannot be
// parsed is reported as ErrMalformedResponse and is not retried.
func (c *Client) Analyze(ctx context.Context, req Request) (*Response, error) {
	system := SystemPrompt(req.MeetingType)
	user := UserPrompt(req)

	var resp *Response
	attempt := 0
	op := func() error {
		attempt++
		start := time.Now()
		content, err := c.completer.Complete(ctx, system, user)
		if err != nil {
			if c.logger != nil {
				c.logger.Warn("⚠️ LLM request failed",
					zap.String("provider", c.completer.Name()),
					zap.Int("attempt", attempt),
					zap.Error(err),
				)
			}
			if !IsRetryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}

		parsed, err := ParseResponse(content)
		if err != nil {
			return backoff.Permanent(err)
		}
		if c.logger != nil {
			c.logger.Info("✅ LLM analysis completed",
				zap.String("provider", c.completer.Name()),
				zap.String("model", c.model),
				zap.Duration("duration", time.Since(start)),
			)
		}
		resp = parsed
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.interval
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 60 * time.Second
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, c.maxRetries), ctx)

	if err := backoff.Retry(op, policy); err != nil {
		return nil, fmt.Errorf("%s analysis failed: %w", c.completer.Name(), err)
	}
	return resp, nil
}
