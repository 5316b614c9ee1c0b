package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedConversation inserts a titled conversation and returns it.
func SeedConversation(t *testing.T, pool *pgxpool.Pool) domain.Conversation {
	t.Helper()

	title := "会話 " + uniqueSuffix()
	conv := domain.Conversation{Title: &title}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO conversations (title) VALUES ($1) RETURNING id, created_at`,
		title,
	).Scan(&conv.ID, &conv.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedConversation: %v", err)
	}
	return conv
}

// SeedHistory inserts a history row for conversationID with an explicit
// created_at so ordering assertions are deterministic.
func SeedHistory(t *testing.T, pool *pgxpool.Pool, conversationID int64, createdAt time.Time) domain.HistoryEntry {
	t.Helper()

	entry := domain.HistoryEntry{
		UserInput:      "ありがとう " + uniqueSuffix(),
		BotOutput:      "おおきに",
		Dialect:        domain.DialectKansai,
		Direction:      domain.DirectionStandardToDialect,
		ConversationID: conversationID,
		CreatedAt:      createdAt.UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO history (user_input, bot_output, dialect, direction, conversation_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		entry.UserInput, entry.BotOutput, string(entry.Dialect), string(entry.Direction), entry.ConversationID, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedHistory: %v", err)
	}
	return entry
}
