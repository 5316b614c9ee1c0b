// Package openai translates text with an OpenAI-compatible chat completions API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
	"github.com/KunitakeHyuga/Hackathon/internal/provider"
)

const (
	providerName = "openai"
	DefaultModel = "gpt-4o-mini"
)

// Translator asks a chat model for the translation.
type Translator struct {
	client *goopenai.Client
	model  string
	log    *slog.Logger
}

// NewTranslator creates a Translator. baseURL points at any server speaking
// the chat completions protocol; empty keeps api.openai.com.
func NewTranslator(apiKey, model, baseURL string, timeout time.Duration, logger *slog.Logger) *Translator {
	if model == "" {
		model = DefaultModel
	}

	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &Translator{
		client: goopenai.NewClientWithConfig(cfg),
		model:  model,
		log:    logger.With("adapter", providerName),
	}
}

// Translate returns the first choice's message content, trimmed.
func (t *Translator) Translate(ctx context.Context, text string, dialect domain.Dialect, dir domain.Direction) (string, error) {
	start := time.Now()

	resp, err := t.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: t.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: provider.BuildPrompt(text, dialect, dir)},
		},
	})
	if err != nil {
		perr := domain.NewProviderError(providerName, statusCode(err), err)
		t.log.WarnContext(ctx, "openai request failed", slog.Int("status", perr.StatusCode), slog.String("error", err.Error()))
		return "", perr
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s: no choices: %w", providerName, domain.ErrEmptyResult)
	}
	translated, err := provider.ExtractText(providerName, resp.Choices[0].Message.Content)
	if err != nil {
		return "", err
	}

	t.log.DebugContext(ctx, "openai translated",
		slog.String("dialect", dialect.String()),
		slog.String("direction", dir.String()),
		slog.Duration("duration", time.Since(start)),
	)
	return translated, nil
}

func statusCode(err error) int {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
