package storeapi

import (
	"time"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
)

type conversationDTO struct {
	ID        int64     `json:"id"`
	Title     *string   `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

func (d conversationDTO) toDomain() domain.Conversation {
	return domain.Conversation{ID: d.ID, Title: d.Title, CreatedAt: d.CreatedAt}
}

type titleRequest struct {
	Title *string `json:"title"`
}

type historyDTO struct {
	ID             int64     `json:"id"`
	UserInput      string    `json:"user_input"`
	BotOutput      string    `json:"bot_output"`
	Dialect        string    `json:"dialect"`
	Direction      string    `json:"direction"`
	ConversationID int64     `json:"conversation_id"`
	CreatedAt      time.Time `json:"created_at"`
}

func (d historyDTO) toDomain() domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:             d.ID,
		UserInput:      d.UserInput,
		BotOutput:      d.BotOutput,
		Dialect:        domain.Dialect(d.Dialect),
		Direction:      domain.Direction(d.Direction),
		ConversationID: d.ConversationID,
		CreatedAt:      d.CreatedAt,
	}
}

type createHistoryRequest struct {
	UserInput      string `json:"user_input"`
	BotOutput      string `json:"bot_output"`
	Dialect        string `json:"dialect"`
	Direction      string `json:"direction"`
	ConversationID int64  `json:"conversation_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}
