package archive

import (
	"context"
	"fmt"
	"log/slog"
)

// DeleteConversation removes a conversation and all of its history in one
// transaction. Nothing is deleted when the conversation does not exist.
func (s *Service) DeleteConversation(ctx context.Context, input DeleteConversationInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	var removed int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.history.DeleteByConversation(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("delete history: %w", err)
		}
		removed = n

		if err := s.conversations.Delete(txCtx, input.ID); err != nil {
			return fmt.Errorf("delete conversation: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "conversation deleted",
		slog.Int64("conversation_id", input.ID),
		slog.Int64("history_removed", removed),
	)
	return nil
}
