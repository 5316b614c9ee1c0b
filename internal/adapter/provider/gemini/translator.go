// Package gemini translates text with the Gemini generateContent REST API.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
	"github.com/KunitakeHyuga/Hackathon/internal/provider"
)

const (
	providerName   = "gemini"
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.0-flash"
)

// Translator calls generateContent with the shared translation prompt.
type Translator struct {
	client *resty.Client
	apiKey string
	model  string
	log    *slog.Logger
}

// NewTranslator creates a Translator. Empty baseURL and model fall back to
// the public endpoint and DefaultModel.
func NewTranslator(apiKey, model, baseURL string, timeout time.Duration, logger *slog.Logger) *Translator {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	return &Translator{
		client: client,
		apiKey: apiKey,
		model:  model,
		log:    logger.With("adapter", providerName),
	}
}

// Translate sends one prompt and returns the trimmed answer. No retries.
func (t *Translator) Translate(ctx context.Context, text string, dialect domain.Dialect, dir domain.Direction) (string, error) {
	start := time.Now()

	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: provider.BuildPrompt(text, dialect, dir)}}}},
	}

	resp, err := t.client.R().
		SetContext(ctx).
		SetQueryParam("key", t.apiKey).
		SetBody(req).
		Post("/v1beta/models/" + url.PathEscape(t.model) + ":generateContent")
	if err != nil {
		t.log.ErrorContext(ctx, "gemini request failed", slog.String("error", err.Error()))
		return "", domain.NewProviderError(providerName, 0, err)
	}
	if resp.IsError() {
		err := domain.NewProviderError(providerName, resp.StatusCode(), errors.New(errorMessage(resp.Body())))
		t.log.WarnContext(ctx, "gemini error response", slog.Int("status", resp.StatusCode()), slog.String("error", err.Error()))
		return "", err
	}

	var out generateResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", domain.NewProviderError(providerName, resp.StatusCode(), fmt.Errorf("decode response: %w", err))
	}

	raw, ok := out.firstText()
	if !ok {
		return "", fmt.Errorf("%s: no candidate text: %w", providerName, domain.ErrEmptyResult)
	}
	translated, err := provider.ExtractText(providerName, raw)
	if err != nil {
		return "", err
	}

	t.log.DebugContext(ctx, "gemini translated",
		slog.String("dialect", dialect.String()),
		slog.String("direction", dir.String()),
		slog.Duration("duration", time.Since(start)),
	)
	return translated, nil
}

func errorMessage(body []byte) string {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Error.Message != "" {
		return e.Error.Message
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return "empty error body"
	}
	return msg
}
