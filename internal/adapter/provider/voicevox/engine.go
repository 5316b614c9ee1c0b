// Package voicevox talks to a VOICEVOX engine over its HTTP API.
package voicevox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
)

const providerName = "voicevox"

// Engine synthesizes speech with a VOICEVOX engine. Synthesis is a two-step
// exchange: an audio query is built for the text, then rendered to WAV.
type Engine struct {
	client *resty.Client
	log    *slog.Logger
}

// NewEngine creates an Engine for the engine at baseURL.
func NewEngine(baseURL string, timeout time.Duration, logger *slog.Logger) *Engine {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)
	return &Engine{
		client: client,
		log:    logger.With("adapter", providerName),
	}
}

// AudioQuery asks the engine for the synthesis parameters of text.
// The returned JSON is passed to Synthesis unchanged.
func (e *Engine) AudioQuery(ctx context.Context, text string, speaker int) (json.RawMessage, error) {
	resp, err := e.client.R().
		SetContext(ctx).
		SetQueryParam("text", text).
		SetQueryParam("speaker", strconv.Itoa(speaker)).
		Post("/audio_query")
	if err != nil {
		return nil, domain.NewProviderError(providerName, 0, fmt.Errorf("audio_query: %w", err))
	}
	if resp.IsError() {
		return nil, domain.NewProviderError(providerName, resp.StatusCode(), fmt.Errorf("audio_query: %s", strings.TrimSpace(resp.String())))
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, domain.NewProviderError(providerName, resp.StatusCode(), errors.New("audio_query: invalid JSON"))
	}
	return json.RawMessage(body), nil
}

// Synthesis renders an audio query to WAV bytes.
func (e *Engine) Synthesis(ctx context.Context, query json.RawMessage, speaker int) ([]byte, error) {
	resp, err := e.client.R().
		SetContext(ctx).
		SetQueryParam("speaker", strconv.Itoa(speaker)).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "audio/wav").
		SetBody([]byte(query)).
		Post("/synthesis")
	if err != nil {
		return nil, domain.NewProviderError(providerName, 0, fmt.Errorf("synthesis: %w", err))
	}
	if resp.IsError() {
		return nil, domain.NewProviderError(providerName, resp.StatusCode(), fmt.Errorf("synthesis: %s", strings.TrimSpace(resp.String())))
	}
	if len(resp.Body()) == 0 {
		return nil, fmt.Errorf("%s: synthesis: %w", providerName, domain.ErrEmptyResult)
	}
	return resp.Body(), nil
}

// Synthesize runs AudioQuery followed by Synthesis.
func (e *Engine) Synthesize(ctx context.Context, text string, speaker int) ([]byte, error) {
	start := time.Now()

	query, err := e.AudioQuery(ctx, text, speaker)
	if err != nil {
		e.log.ErrorContext(ctx, "audio query failed", slog.Int("speaker", speaker), slog.String("error", err.Error()))
		return nil, err
	}

	audio, err := e.Synthesis(ctx, query, speaker)
	if err != nil {
		e.log.ErrorContext(ctx, "synthesis failed", slog.Int("speaker", speaker), slog.String("error", err.Error()))
		return nil, err
	}

	e.log.DebugContext(ctx, "speech synthesized",
		slog.Int("speaker", speaker),
		slog.Int("text_runes", len([]rune(text))),
		slog.Int("bytes", len(audio)),
		slog.Duration("duration", time.Since(start)),
	)
	return audio, nil
}

// Version returns the engine version. Used by readiness checks.
func (e *Engine) Version(ctx context.Context) (string, error) {
	var version string
	resp, err := e.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/version")
	if err != nil {
		return "", domain.NewProviderError(providerName, 0, fmt.Errorf("version: %w", err))
	}
	if resp.IsError() {
		return "", domain.NewProviderError(providerName, resp.StatusCode(), errors.New("version"))
	}
	return version, nil
}
