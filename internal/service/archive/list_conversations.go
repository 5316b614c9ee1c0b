package archive

import (
	"context"
	"fmt"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
)

// ListConversations returns all conversations, most recent first.
func (s *Service) ListConversations(ctx context.Context) ([]domain.Conversation, error) {
	list, err := s.conversations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return list, nil
}
