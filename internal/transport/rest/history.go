package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
	"github.com/KunitakeHyuga/Hackathon/internal/service/archive"
)

type historyService interface {
	ListHistory(ctx context.Context, input archive.ListHistoryInput) ([]domain.HistoryEntry, error)
	CreateHistory(ctx context.Context, input domain.NewHistoryEntry) (domain.HistoryEntry, error)
}

// HistoryHandler serves the /history endpoints.
type HistoryHandler struct {
	svc historyService
	log *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc historyService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{svc: svc, log: logger.With("handler", "history")}
}

type historyRequest struct {
	UserInput      string `json:"user_input"`
	BotOutput      string `json:"bot_output"`
	Dialect        string `json:"dialect"`
	Direction      string `json:"direction"`
	ConversationID int64  `json:"conversation_id"`
}

type historyResponse struct {
	ID             int64     `json:"id"`
	UserInput      string    `json:"user_input"`
	BotOutput      string    `json:"bot_output"`
	Dialect        string    `json:"dialect"`
	Direction      string    `json:"direction"`
	ConversationID int64     `json:"conversation_id"`
	CreatedAt      time.Time `json:"created_at"`
}

func toHistoryResponse(e domain.HistoryEntry) historyResponse {
	return historyResponse{
		ID:             e.ID,
		UserInput:      e.UserInput,
		BotOutput:      e.BotOutput,
		Dialect:        e.Dialect.String(),
		Direction:      e.Direction.String(),
		ConversationID: e.ConversationID,
		CreatedAt:      e.CreatedAt,
	}
}

// List handles GET /history?conversation_id=.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	var input archive.ListHistoryInput
	if v := r.URL.Query().Get("conversation_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid conversation_id")
			return
		}
		input.ConversationID = &id
	}

	entries, err := h.svc.ListHistory(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]historyResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toHistoryResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /history.
func (h *HistoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req historyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.svc.CreateHistory(r.Context(), domain.NewHistoryEntry{
		UserInput:      req.UserInput,
		BotOutput:      req.BotOutput,
		Dialect:        domain.Dialect(req.Dialect),
		Direction:      domain.Direction(req.Direction),
		ConversationID: req.ConversationID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toHistoryResponse(entry))
}
