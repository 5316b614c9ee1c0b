package domain

import (
	"time"
	"unicode/utf8"
)

// PlaceholderConversationTitle is used when a conversation is created
// implicitly by the first translation in a session.
const PlaceholderConversationTitle = "新しい会話"

// MaxTitleLength is the maximum conversation title length in runes.
const MaxTitleLength = 100

// Conversation groups translation exchanges under an optional title.
type Conversation struct {
	ID        int64
	Title     *string
	CreatedAt time.Time
}

// DisplayTitle returns the title, or the placeholder when the title is unset.
func (c Conversation) DisplayTitle() string {
	if c.Title == nil || IsBlank(*c.Title) {
		return PlaceholderConversationTitle
	}
	return *c.Title
}

// WithTitle returns a copy of the conversation carrying the given title.
func (c Conversation) WithTitle(title string) Conversation {
	c.Title = &title
	return c
}

// ValidateTitle checks a title supplied for rename. Blank titles are rejected.
func ValidateTitle(title string) error {
	if IsBlank(title) {
		return NewValidationError("title", "required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return NewValidationError("title", "too long")
	}
	return nil
}
