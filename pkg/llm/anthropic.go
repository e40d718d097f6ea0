package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicCompleter calls the Anthropic messages API
type AnthropicCompleter struct {
	client      anthropic.Client
	model       string
	temperature float64
	maxTokens   int64
}

// NewAnthropicCompleter creates an Anthropic completer. Retries are left to Client.
func NewAnthropicCompleter(apiKey, baseURL, model string, temperature float64, maxTokens int, timeout time.Duration) *AnthropicCompleter {
	opts := []anthropicoption.RequestOption{
		anthropicoption.WithAPIKey(apiKey),
		anthropicoption.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, anthropicoption.WithBaseURL(baseURL))
	}
	if timeout > 0 {
		opts = append(opts, anthropicoption.WithRequestTimeout(timeout))
	}
	if maxTokens <= 0 {
		maxTokens = 4096
	}
	return &AnthropicCompleter{
		client:      anthropic.NewClient(opts...),
		model:       model,
		temperature: temperature,
		maxTokens:   int64(maxTokens),
	}
}

// Name returns the provider name
func (a *AnthropicCompleter) Name() string {
	return "anthropic"
}

// Complete sends one message request and joins the text blocks of the reply
func (a *AnthropicCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(a.model),
		MaxTokens:   a.maxTokens,
		Temperature: anthropic.Float(a.temperature),
		System:      []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: no text content returned", ErrMalformedResponse)
	}
	return sb.String(), nil
}
