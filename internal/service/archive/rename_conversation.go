package archive

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
)

// RenameConversation replaces a conversation title and returns the updated record.
func (s *Service) RenameConversation(ctx context.Context, input RenameConversationInput) (domain.Conversation, error) {
	if err := input.Validate(); err != nil {
		return domain.Conversation{}, err
	}

	conv, err := s.conversations.UpdateTitle(ctx, input.ID, domain.NormalizeTitle(input.Title))
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("rename conversation: %w", err)
	}

	s.log.InfoContext(ctx, "conversation renamed",
		slog.Int64("conversation_id", conv.ID),
		slog.String("title", conv.DisplayTitle()),
	)
	return conv, nil
}
