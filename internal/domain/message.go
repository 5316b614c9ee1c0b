package domain

import "time"

// Message is a transient transcript line. It is never persisted; it is either
// produced by a live translate action or replayed from a HistoryEntry.
type Message struct {
	ID        int
	Role      MessageRole
	Content   string
	Dialect   *Dialect
	Direction *Direction
	Timestamp time.Time
}

// IsBot reports whether the message was produced by the bot.
func (m Message) IsBot() bool { return m.Role == MessageRoleBot }
