// Package history implements the translation history repository using PostgreSQL.
package history

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/KunitakeHyuga/Hackathon/internal/adapter/postgres"
	"github.com/KunitakeHyuga/Hackathon/internal/domain"
)

const table = "history"

var columns = []string{"id", "user_input", "bot_output", "dialect", "direction", "conversation_id", "created_at"}

// Repo provides history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// List returns history entries. When conversationID is set, entries of that
// conversation are returned oldest first; otherwise all entries newest first.
func (r *Repo) List(ctx context.Context, conversationID *int64) ([]domain.HistoryEntry, error) {
	q := postgres.Builder().Select(columns...).From(table)
	if conversationID != nil {
		q = q.Where("conversation_id = ?", *conversationID).OrderBy("created_at ASC", "id ASC")
	} else {
		q = q.OrderBy("created_at DESC", "id DESC")
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list history: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "history", 0)
	}
	defer rows.Close()

	result := []domain.HistoryEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, postgres.MapError(err, "history", 0)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "history", 0)
	}
	return result, nil
}

// Create inserts a history entry.
// Returns domain.ErrInvalidReference when the conversation does not exist.
func (r *Repo) Create(ctx context.Context, in domain.NewHistoryEntry) (domain.HistoryEntry, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("user_input", "bot_output", "dialect", "direction", "conversation_id").
		Values(in.UserInput, in.BotOutput, string(in.Dialect), string(in.Direction), in.ConversationID).
		Suffix("RETURNING id, user_input, bot_output, dialect, direction, conversation_id, created_at").
		ToSql()
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("build create history: %w", err)
	}

	e, err := scanEntry(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.HistoryEntry{}, postgres.MapError(err, "history", 0)
	}
	return e, nil
}

// DeleteByConversation removes every entry of a conversation and returns
// how many rows were deleted.
func (r *Repo) DeleteByConversation(ctx context.Context, conversationID int64) (int64, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where("conversation_id = ?", conversationID).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete history: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "history of conversation", conversationID)
	}
	return tag.RowsAffected(), nil
}

func scanEntry(row pgx.Row) (domain.HistoryEntry, error) {
	var (
		e                  domain.HistoryEntry
		dialect, direction string
	)
	if err := row.Scan(&e.ID, &e.UserInput, &e.BotOutput, &dialect, &direction, &e.ConversationID, &e.CreatedAt); err != nil {
		return domain.HistoryEntry{}, err
	}
	e.Dialect = domain.Dialect(dialect)
	e.Direction = domain.Direction(direction)
	return e, nil
}
