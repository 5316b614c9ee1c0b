package archive

import (
	"errors"
	"unicode/utf8"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
)

// CreateConversationInput holds the parameters for creating a conversation.
// A nil or blank title creates an untitled conversation.
type CreateConversationInput struct {
	Title *string
}

// Validate checks all fields and collects all errors.
func (i CreateConversationInput) Validate() error {
	if i.Title != nil && utf8.RuneCountInString(domain.NormalizeTitle(*i.Title)) > domain.MaxTitleLength {
		return domain.NewValidationError("title", "max 100 characters")
	}
	return nil
}

// normalizedTitle returns the trimmed title or nil when it is blank.
func (i CreateConversationInput) normalizedTitle() *string {
	if i.Title == nil {
		return nil
	}
	t := domain.NormalizeTitle(*i.Title)
	if t == "" {
		return nil
	}
	return &t
}

// RenameConversationInput holds the parameters for renaming a conversation.
type RenameConversationInput struct {
	ID    int64
	Title string
}

// Validate checks all fields and collects all errors.
func (i RenameConversationInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be positive"})
	}
	if err := domain.ValidateTitle(domain.NormalizeTitle(i.Title)); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			errs = append(errs, ve.Errors...)
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DeleteConversationInput identifies the conversation to delete.
type DeleteConversationInput struct {
	ID int64
}

// Validate checks all fields and collects all errors.
func (i DeleteConversationInput) Validate() error {
	if i.ID <= 0 {
		return domain.NewValidationError("id", "must be positive")
	}
	return nil
}

// ListHistoryInput optionally scopes the listing to one conversation.
type ListHistoryInput struct {
	ConversationID *int64
}

// Validate checks all fields and collects all errors.
func (i ListHistoryInput) Validate() error {
	if i.ConversationID != nil && *i.ConversationID <= 0 {
		return domain.NewValidationError("conversation_id", "must be positive")
	}
	return nil
}
