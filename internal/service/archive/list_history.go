package archive

import (
	"context"
	"fmt"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
)

// ListHistory returns the history of one conversation (oldest first) or of
// all conversations (newest first).
func (s *Service) ListHistory(ctx context.Context, input ListHistoryInput) ([]domain.HistoryEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.history.List(ctx, input.ConversationID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}
