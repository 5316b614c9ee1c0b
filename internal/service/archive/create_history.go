package archive

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
)

// CreateHistory persists one translation exchange. It fails with
// domain.ErrInvalidReference when the conversation does not exist.
func (s *Service) CreateHistory(ctx context.Context, input domain.NewHistoryEntry) (domain.HistoryEntry, error) {
	if err := input.Validate(); err != nil {
		return domain.HistoryEntry{}, err
	}

	entry, err := s.history.Create(ctx, input)
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("create history: %w", err)
	}

	s.log.InfoContext(ctx, "history created",
		slog.Int64("history_id", entry.ID),
		slog.Int64("conversation_id", entry.ConversationID),
		slog.String("dialect", entry.Dialect.String()),
		slog.String("direction", entry.Direction.String()),
	)
	return entry, nil
}
