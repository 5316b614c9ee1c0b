// Package archive persists conversations and their translation history.
package archive

import (
	"context"
	"log/slog"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
)

type conversationRepo interface {
	List(ctx context.Context) ([]domain.Conversation, error)
	Create(ctx context.Context, title *string) (domain.Conversation, error)
	UpdateTitle(ctx context.Context, id int64, title string) (domain.Conversation, error)
	Delete(ctx context.Context, id int64) error
}

type historyRepo interface {
	List(ctx context.Context, conversationID *int64) ([]domain.HistoryEntry, error)
	Create(ctx context.Context, in domain.NewHistoryEntry) (domain.HistoryEntry, error)
	DeleteByConversation(ctx context.Context, conversationID int64) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides conversation and history operations for the REST API.
type Service struct {
	conversations conversationRepo
	history       historyRepo
	tx            txManager
	log           *slog.Logger
}

// NewService creates a new archive service.
func NewService(
	log *slog.Logger,
	conversations conversationRepo,
	history historyRepo,
	tx txManager,
) *Service {
	return &Service{
		conversations: conversations,
		history:       history,
		tx:            tx,
		log:           log.With("service", "archive"),
	}
}
