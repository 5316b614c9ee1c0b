// Package chat orchestrates a translation chat session: it owns the selected
// conversation, the transcript and the displayed history, and coordinates
// the translator, the history store and speech synthesis.
package chat

import (
	"context"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
)

// FallbackMessage is shown in place of a translation when any step fails.
const FallbackMessage = "翻訳に失敗しました。もう一度お試しください。"

type translator interface {
	Translate(ctx context.Context, text string, dialect domain.Dialect, dir domain.Direction) (string, error)
}

type store interface {
	ListConversations(ctx context.Context) ([]domain.Conversation, error)
	CreateConversation(ctx context.Context, title *string) (domain.Conversation, error)
	RenameConversation(ctx context.Context, id int64, title string) (domain.Conversation, error)
	DeleteConversation(ctx context.Context, id int64) error
	ListHistory(ctx context.Context, conversationID *int64) ([]domain.HistoryEntry, error)
	CreateHistory(ctx context.Context, entry domain.NewHistoryEntry) (domain.HistoryEntry, error)
}

type synthesizer interface {
	Synthesize(ctx context.Context, text string, speakerID int) ([]byte, error)
}
