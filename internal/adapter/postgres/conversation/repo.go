// Package conversation implements the conversation repository using PostgreSQL.
package conversation

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/KunitakeHyuga/Hackathon/internal/adapter/postgres"
	"github.com/KunitakeHyuga/Hackathon/internal/domain"
)

const table = "conversations"

var columns = []string{"id", "title", "created_at"}

// Repo provides conversation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new conversation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// List returns all conversations, most recent first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]domain.Conversation, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list conversations: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "conversations", 0)
	}
	defer rows.Close()

	result := []domain.Conversation{}
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			return nil, postgres.MapError(err, "conversations", 0)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "conversations", 0)
	}
	return result, nil
}

// GetByID returns a conversation by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Conversation, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("build get conversation: %w", err)
	}

	c, err := scanConversation(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Conversation{}, postgres.MapError(err, "conversation", id)
	}
	return c, nil
}

// Create inserts a conversation. A nil title stores NULL.
func (r *Repo) Create(ctx context.Context, title *string) (domain.Conversation, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("title").
		Values(title).
		Suffix("RETURNING id, title, created_at").
		ToSql()
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("build create conversation: %w", err)
	}

	c, err := scanConversation(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Conversation{}, postgres.MapError(err, "conversation", 0)
	}
	return c, nil
}

// UpdateTitle sets the title and returns the updated row.
// Returns domain.ErrNotFound if the conversation does not exist.
func (r *Repo) UpdateTitle(ctx context.Context, id int64, title string) (domain.Conversation, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("title", title).
		Where("id = ?", id).
		Suffix("RETURNING id, title, created_at").
		ToSql()
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("build update conversation: %w", err)
	}

	c, err := scanConversation(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Conversation{}, postgres.MapError(err, "conversation", id)
	}
	return c, nil
}

// Delete removes the conversation row. History rows must be removed first.
// Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete conversation: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "conversation", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "conversation", id)
	}
	return nil
}

func scanConversation(row pgx.Row) (domain.Conversation, error) {
	var c domain.Conversation
	if err := row.Scan(&c.ID, &c.Title, &c.CreatedAt); err != nil {
		return domain.Conversation{}, err
	}
	return c, nil
}
