// Package speechapi calls the backend synthesis endpoint.
package speechapi

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
	"github.com/KunitakeHyuga/Hackathon/pkg/ctxutil"
)

const providerName = "speech"

type synthesizeRequest struct {
	Text      string `json:"text"`
	SpeakerID int    `json:"speaker_id"`
}

type synthesizeResponse struct {
	Audio  string `json:"audio"`
	Format string `json:"format"`
}

// Client requests speech from POST /synthesize and returns raw audio bytes.
type Client struct {
	http *resty.Client
	log  *slog.Logger
}

// New creates a Client for the backend at baseURL.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	rc.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if id := ctxutil.RequestIDFromCtx(r.Context()); id != "" {
			r.SetHeader("X-Request-Id", id)
		}
		return nil
	})

	return &Client{http: rc, log: logger.With("adapter", "speechapi")}
}

// Synthesize renders text with the given speaker.
func (c *Client) Synthesize(ctx context.Context, text string, speakerID int) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(synthesizeRequest{Text: text, SpeakerID: speakerID}).
		Post("/synthesize")
	if err != nil {
		return nil, domain.NewProviderError(providerName, 0, err)
	}
	if resp.IsError() {
		c.log.WarnContext(ctx, "synthesis error response", slog.Int("status", resp.StatusCode()))
		return nil, domain.NewProviderError(providerName, resp.StatusCode(), errors.New(strings.TrimSpace(resp.String())))
	}

	var out synthesizeResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, domain.NewProviderError(providerName, resp.StatusCode(), fmt.Errorf("decode response: %w", err))
	}
	if out.Audio == "" {
		return nil, fmt.Errorf("%s: no audio in response: %w", providerName, domain.ErrEmptyResult)
	}

	audio, err := base64.StdEncoding.DecodeString(out.Audio)
	if err != nil {
		return nil, domain.NewProviderError(providerName, resp.StatusCode(), fmt.Errorf("decode audio: %w", err))
	}
	return audio, nil
}
