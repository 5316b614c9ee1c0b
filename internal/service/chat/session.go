package chat

import (
	"slices"
	"sync"
	"time"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
)

// Session is the mutable state of one chat session. All fields are guarded
// by mu and only written after the external call that produced them returns.
type Session struct {
	mu            sync.Mutex
	selected      *domain.Conversation
	conversations []domain.Conversation
	history       []domain.HistoryEntry
	transcript    []domain.Message
	nextMessageID int
	dialect       domain.Dialect
	direction     domain.Direction
}

// NewSession creates an empty session with the given translation settings.
func NewSession(dialect domain.Dialect, direction domain.Direction) *Session {
	if !dialect.IsValid() {
		dialect = domain.DefaultDialect
	}
	if !direction.IsValid() {
		direction = domain.DirectionStandardToDialect
	}
	return &Session{dialect: dialect, direction: direction, nextMessageID: 1}
}

// Snapshot is a copy of the session state safe to read without locking.
type Snapshot struct {
	Selected      *domain.Conversation
	Conversations []domain.Conversation
	History       []domain.HistoryEntry
	Transcript    []domain.Message
	Dialect       domain.Dialect
	Direction     domain.Direction
	Submitting    bool
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Conversations: slices.Clone(s.conversations),
		History:       slices.Clone(s.history),
		Transcript:    slices.Clone(s.transcript),
		Dialect:       s.dialect,
		Direction:     s.direction,
	}
	if s.selected != nil {
		sel := *s.selected
		snap.Selected = &sel
	}
	return snap
}

func (s *Session) settings() (domain.Dialect, domain.Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dialect, s.direction
}

func (s *Session) setDialect(d domain.Dialect) {
	s.mu.Lock()
	s.dialect = d
	s.mu.Unlock()
}

func (s *Session) setDirection(d domain.Direction) {
	s.mu.Lock()
	s.direction = d
	s.mu.Unlock()
}

func (s *Session) swapDirection() domain.Direction {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.direction = s.direction.Reverse()
	return s.direction
}

func (s *Session) selectedID() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return 0, false
	}
	return s.selected.ID, true
}

func (s *Session) findConversation(id int64) (domain.Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.conversations {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Conversation{}, false
}

// appendMessage adds a transcript line and returns it with its assigned id.
func (s *Session) appendMessage(m domain.Message) domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.nextMessageID
	s.nextMessageID++
	s.transcript = append(s.transcript, m)
	return m
}

// replaceTranscript discards the transcript in favor of msgs.
func (s *Session) replaceTranscript(msgs ...domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = make([]domain.Message, 0, len(msgs))
	for _, m := range msgs {
		m.ID = s.nextMessageID
		s.nextMessageID++
		s.transcript = append(s.transcript, m)
	}
}

func (s *Session) setConversations(convs []domain.Conversation) {
	s.mu.Lock()
	s.conversations = convs
	s.mu.Unlock()
}

// setHistory stores entries fetched for conversationID. The result is
// dropped when the selection changed while the fetch was in flight.
func (s *Session) setHistory(conversationID *int64, entries []domain.HistoryEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case conversationID == nil && s.selected != nil:
		return false
	case conversationID != nil && (s.selected == nil || s.selected.ID != *conversationID):
		return false
	}
	s.history = entries
	return true
}

// selectConversation makes conv the selected conversation. Displayed history
// is cleared until it is refreshed for the new selection.
func (s *Session) selectConversation(conv domain.Conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil || s.selected.ID != conv.ID {
		s.history = nil
	}
	s.selected = &conv
}

// adoptConversation prepends a freshly created conversation and selects it.
func (s *Session) adoptConversation(conv domain.Conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations = slices.DeleteFunc(s.conversations, func(c domain.Conversation) bool { return c.ID == conv.ID })
	s.conversations = slices.Insert(s.conversations, 0, conv)
	s.selected = &conv
	s.history = nil
}

// applyRename replaces conv in the cached list and in the selection.
func (s *Session) applyRename(conv domain.Conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.conversations {
		if s.conversations[i].ID == conv.ID {
			s.conversations[i].Title = conv.Title
		}
	}
	if s.selected != nil && s.selected.ID == conv.ID {
		s.selected.Title = conv.Title
	}
}

// removeConversation drops id from the cached list. When it was selected,
// the selection, displayed history and transcript are cleared too.
func (s *Session) removeConversation(id int64) (wasSelected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations = slices.DeleteFunc(s.conversations, func(c domain.Conversation) bool { return c.ID == id })
	if s.selected == nil || s.selected.ID != id {
		return false
	}
	s.selected = nil
	s.history = nil
	s.transcript = nil
	return true
}

func newUserMessage(text string, at time.Time) domain.Message {
	return domain.Message{Role: domain.MessageRoleUser, Content: text, Timestamp: at}
}

func newBotMessage(text string, dialect *domain.Dialect, dir *domain.Direction, at time.Time) domain.Message {
	return domain.Message{Role: domain.MessageRoleBot, Content: text, Dialect: dialect, Direction: dir, Timestamp: at}
}
