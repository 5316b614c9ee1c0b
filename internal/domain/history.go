package domain

import "time"

// HistoryEntry is one persisted translation exchange. Entries are immutable.
type HistoryEntry struct {
	ID             int64
	UserInput      string
	BotOutput      string
	Dialect        Dialect
	Direction      Direction
	ConversationID int64
	CreatedAt      time.Time
}

// NewHistoryEntry carries the fields needed to persist a translation.
type NewHistoryEntry struct {
	UserInput      string
	BotOutput      string
	Dialect        Dialect
	Direction      Direction
	ConversationID int64
}

// Validate checks the entry before it is persisted.
func (e NewHistoryEntry) Validate() error {
	var errs []FieldError

	if IsBlank(e.UserInput) {
		errs = append(errs, FieldError{Field: "user_input", Message: "required"})
	}
	if IsBlank(e.BotOutput) {
		errs = append(errs, FieldError{Field: "bot_output", Message: "required"})
	}
	if !e.Dialect.IsValid() {
		errs = append(errs, FieldError{Field: "dialect", Message: "unknown dialect"})
	}
	if !e.Direction.IsValid() {
		errs = append(errs, FieldError{Field: "direction", Message: "unknown direction"})
	}
	if e.ConversationID <= 0 {
		errs = append(errs, FieldError{Field: "conversation_id", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
