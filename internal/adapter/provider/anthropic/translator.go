// Package anthropic translates text with the Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
	"github.com/KunitakeHyuga/Hackathon/internal/provider"
)

const (
	providerName = "anthropic"
	DefaultModel = "claude-3-5-haiku-latest"
	maxTokens    = 512
)

// Translator sends the translation prompt as a single user message.
type Translator struct {
	client sdk.Client
	model  string
	log    *slog.Logger
}

// NewTranslator creates a Translator. An empty baseURL keeps the SDK default.
// SDK retries are disabled so a failure surfaces on the first attempt.
func NewTranslator(apiKey, model, baseURL string, timeout time.Duration, logger *slog.Logger) *Translator {
	if model == "" {
		model = DefaultModel
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(timeout),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &Translator{
		client: sdk.NewClient(opts...),
		model:  model,
		log:    logger.With("adapter", providerName),
	}
}

// Translate returns the first text block of the reply, trimmed.
func (t *Translator) Translate(ctx context.Context, text string, dialect domain.Dialect, dir domain.Direction) (string, error) {
	start := time.Now()

	msg, err := t.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(t.model),
		MaxTokens: maxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(provider.BuildPrompt(text, dialect, dir))),
		},
	})
	if err != nil {
		perr := domain.NewProviderError(providerName, statusCode(err), err)
		t.log.WarnContext(ctx, "anthropic request failed", slog.Int("status", perr.StatusCode), slog.String("error", err.Error()))
		return "", perr
	}

	raw, ok := firstText(msg)
	if !ok {
		return "", fmt.Errorf("%s: no text block: %w", providerName, domain.ErrEmptyResult)
	}
	translated, err := provider.ExtractText(providerName, raw)
	if err != nil {
		return "", err
	}

	t.log.DebugContext(ctx, "anthropic translated",
		slog.String("dialect", dialect.String()),
		slog.String("direction", dir.String()),
		slog.Duration("duration", time.Since(start)),
	)
	return translated, nil
}

func firstText(msg *sdk.Message) (string, bool) {
	if msg == nil {
		return "", false
	}
	for _, block := range msg.Content {
		if block.Type == "text" {
			return block.Text, true
		}
	}
	return "", false
}

func statusCode(err error) int {
	var apiErr *sdk.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
