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

type conversationService interface {
	ListConversations(ctx context.Context) ([]domain.Conversation, error)
	CreateConversation(ctx context.Context, input archive.CreateConversationInput) (domain.Conversation, error)
	RenameConversation(ctx context.Context, input archive.RenameConversationInput) (domain.Conversation, error)
	DeleteConversation(ctx context.Context, input archive.DeleteConversationInput) error
}

// ConversationHandler serves the /conversations endpoints.
type ConversationHandler struct {
	svc conversationService
	log *slog.Logger
}

// NewConversationHandler creates a ConversationHandler.
func NewConversationHandler(svc conversationService, logger *slog.Logger) *ConversationHandler {
	return &ConversationHandler{svc: svc, log: logger.With("handler", "conversations")}
}

type conversationRequest struct {
	Title *string `json:"title"`
}

type conversationResponse struct {
	ID        int64     `json:"id"`
	Title     *string   `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

func toConversationResponse(c domain.Conversation) conversationResponse {
	return conversationResponse{ID: c.ID, Title: c.Title, CreatedAt: c.CreatedAt}
}

// List handles GET /conversations.
func (h *ConversationHandler) List(w http.ResponseWriter, r *http.Request) {
	convs, err := h.svc.ListConversations(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]conversationResponse, 0, len(convs))
	for _, c := range convs {
		resp = append(resp, toConversationResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /conversations.
func (h *ConversationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req conversationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	conv, err := h.svc.CreateConversation(r.Context(), archive.CreateConversationInput{Title: req.Title})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toConversationResponse(conv))
}

// Rename handles PUT /conversations/{id}.
func (h *ConversationHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req conversationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	var title string
	if req.Title != nil {
		title = *req.Title
	}

	conv, err := h.svc.RenameConversation(r.Context(), archive.RenameConversationInput{ID: id, Title: title})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toConversationResponse(conv))
}

// Delete handles DELETE /conversations/{id}. History rows go with it.
func (h *ConversationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteConversation(r.Context(), archive.DeleteConversationInput{ID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "conversation and its history deleted"})
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid conversation id")
		return 0, false
	}
	return id, true
}
