package archive

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
)

// CreateConversation creates a conversation with an optional title.
func (s *Service) CreateConversation(ctx context.Context, input CreateConversationInput) (domain.Conversation, error) {
	if err := input.Validate(); err != nil {
		return domain.Conversation{}, err
	}

	conv, err := s.conversations.Create(ctx, input.normalizedTitle())
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("create conversation: %w", err)
	}

	s.log.InfoContext(ctx, "conversation created",
		slog.Int64("conversation_id", conv.ID),
		slog.String("title", conv.DisplayTitle()),
	)
	return conv, nil
}
