// Package storeapi is the HTTP client of the conversation/history backend.
package storeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
	"github.com/KunitakeHyuga/Hackathon/pkg/ctxutil"
)

const requestIDHeader = "X-Request-Id"

// Client calls the backend REST API. Every failure to reach the backend or
// an unexpected status is a *domain.StoreError.
type Client struct {
	http *resty.Client
	log  *slog.Logger
}

// New creates a Client for the backend at baseURL.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	rc.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if id := ctxutil.RequestIDFromCtx(r.Context()); id != "" {
			r.SetHeader(requestIDHeader, id)
		}
		return nil
	})

	return &Client{http: rc, log: logger.With("adapter", "storeapi")}
}

// ListConversations returns conversations most recent first.
func (c *Client) ListConversations(ctx context.Context) ([]domain.Conversation, error) {
	const op = "list conversations"

	var dtos []conversationDTO
	if err := c.do(ctx, op, http.MethodGet, "/conversations", nil, nil, &dtos); err != nil {
		return nil, err
	}

	out := make([]domain.Conversation, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// CreateConversation creates a conversation. A nil title leaves it untitled.
func (c *Client) CreateConversation(ctx context.Context, title *string) (domain.Conversation, error) {
	const op = "create conversation"

	var dto conversationDTO
	if err := c.do(ctx, op, http.MethodPost, "/conversations", nil, titleRequest{Title: title}, &dto); err != nil {
		return domain.Conversation{}, err
	}
	return dto.toDomain(), nil
}

// RenameConversation sets the title of conversation id.
func (c *Client) RenameConversation(ctx context.Context, id int64, title string) (domain.Conversation, error) {
	const op = "rename conversation"

	var dto conversationDTO
	path := "/conversations/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, op, http.MethodPut, path, nil, titleRequest{Title: &title}, &dto); err != nil {
		return domain.Conversation{}, err
	}
	return dto.toDomain(), nil
}

// DeleteConversation removes conversation id and all of its history.
func (c *Client) DeleteConversation(ctx context.Context, id int64) error {
	const op = "delete conversation"

	path := "/conversations/" + strconv.FormatInt(id, 10)
	return c.do(ctx, op, http.MethodDelete, path, nil, nil, nil)
}

// ListHistory lists history entries, optionally scoped to one conversation.
func (c *Client) ListHistory(ctx context.Context, conversationID *int64) ([]domain.HistoryEntry, error) {
	const op = "list history"

	var query map[string]string
	if conversationID != nil {
		query = map[string]string{"conversation_id": strconv.FormatInt(*conversationID, 10)}
	}

	var dtos []historyDTO
	if err := c.do(ctx, op, http.MethodGet, "/history", query, nil, &dtos); err != nil {
		return nil, err
	}

	out := make([]domain.HistoryEntry, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// CreateHistory persists one translation exchange.
func (c *Client) CreateHistory(ctx context.Context, entry domain.NewHistoryEntry) (domain.HistoryEntry, error) {
	const op = "create history"

	req := createHistoryRequest{
		UserInput:      entry.UserInput,
		BotOutput:      entry.BotOutput,
		Dialect:        entry.Dialect.String(),
		Direction:      entry.Direction.String(),
		ConversationID: entry.ConversationID,
	}

	var dto historyDTO
	if err := c.do(ctx, op, http.MethodPost, "/history", nil, req, &dto); err != nil {
		return domain.HistoryEntry{}, err
	}
	return dto.toDomain(), nil
}

func (c *Client) do(ctx context.Context, op, method, path string, query map[string]string, body, result any) error {
	req := c.http.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.log.WarnContext(ctx, "store unreachable", slog.String("op", op), slog.String("error", err.Error()))
		return &domain.StoreError{Op: op, Err: err}
	}

	if resp.IsError() {
		return c.statusError(ctx, op, resp)
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), result); err != nil {
		return &domain.StoreError{Op: op, StatusCode: resp.StatusCode(), Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *Client) statusError(ctx context.Context, op string, resp *resty.Response) error {
	msg := errorMessage(resp.Body())

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return fmt.Errorf("store %s: %w", op, domain.ErrNotFound)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("store %s: %w", op, domain.ErrInvalidReference)
	case http.StatusConflict:
		return fmt.Errorf("store %s: %w", op, domain.ErrConflict)
	case http.StatusBadRequest:
		return fmt.Errorf("store %s: %s: %w", op, msg, domain.ErrValidation)
	}

	c.log.WarnContext(ctx, "store error response",
		slog.String("op", op),
		slog.Int("status", resp.StatusCode()),
		slog.String("error", msg),
	)
	return &domain.StoreError{Op: op, StatusCode: resp.StatusCode(), Err: errors.New(msg)}
}

func errorMessage(body []byte) string {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}
	if msg := strings.TrimSpace(string(body)); msg != "" {
		return msg
	}
	return "no response body"
}
