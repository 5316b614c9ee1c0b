package chat

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
)

// Manager owns conversation selection and the cached conversation list.
type Manager struct {
	store   store
	session *Session
	log     *slog.Logger

	creating singleflight.Group

	mu      sync.Mutex
	pending map[int64]struct{}
}

// NewManager creates a Manager bound to session.
func NewManager(log *slog.Logger, store store, session *Session) *Manager {
	return &Manager{
		store:   store,
		session: session,
		log:     log.With("service", "conversations"),
		pending: make(map[int64]struct{}),
	}
}

// Load fetches the conversation list and the displayed history concurrently.
// Both lists degrade to empty on failure; the first failure is returned.
func (m *Manager) Load(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return m.RefreshConversations(ctx) })
	g.Go(func() error { return m.RefreshHistory(ctx) })
	return g.Wait()
}

// RefreshConversations reloads the cached conversation list.
func (m *Manager) RefreshConversations(ctx context.Context) error {
	convs, err := m.store.ListConversations(ctx)
	if err != nil {
		m.log.WarnContext(ctx, "list conversations failed", slog.String("error", err.Error()))
		m.session.setConversations(nil)
		return fmt.Errorf("list conversations: %w", err)
	}
	m.session.setConversations(convs)
	return nil
}

// RefreshHistory reloads the displayed history for the selected
// conversation, or all history when nothing is selected.
func (m *Manager) RefreshHistory(ctx context.Context) error {
	var scope *int64
	if id, ok := m.session.selectedID(); ok {
		scope = &id
	}
	return m.refreshHistory(ctx, scope)
}

func (m *Manager) refreshHistory(ctx context.Context, scope *int64) error {
	entries, err := m.store.ListHistory(ctx, scope)
	if err != nil {
		m.log.WarnContext(ctx, "list history failed", slog.String("error", err.Error()))
		m.session.setHistory(scope, nil)
		return fmt.Errorf("list history: %w", err)
	}
	m.session.setHistory(scope, entries)
	return nil
}

// Select makes conv the current conversation and loads its history.
func (m *Manager) Select(ctx context.Context, conv domain.Conversation) error {
	m.session.selectConversation(conv)
	id := conv.ID
	return m.refreshHistory(ctx, &id)
}

// SelectByID selects a conversation from the cached list.
func (m *Manager) SelectByID(ctx context.Context, id int64) error {
	conv, ok := m.session.findConversation(id)
	if !ok {
		return fmt.Errorf("conversation %d: %w", id, domain.ErrNotFound)
	}
	return m.Select(ctx, conv)
}

// EnsureConversation returns the selected conversation id, creating and
// selecting a placeholder-titled conversation when there is none.
// Concurrent callers share a single creation. The creation is detached from
// the caller's cancellation so one caller giving up does not fail the others;
// a cancelled caller returns ctx.Err() without waiting for it.
func (m *Manager) EnsureConversation(ctx context.Context) (int64, error) {
	if id, ok := m.session.selectedID(); ok {
		return id, nil
	}

	flight := m.creating.DoChan("ensure", func() (any, error) {
		ctx := context.WithoutCancel(ctx)
		if id, ok := m.session.selectedID(); ok {
			return id, nil
		}

		title := domain.PlaceholderConversationTitle
		conv, err := m.store.CreateConversation(ctx, &title)
		if err != nil {
			return int64(0), fmt.Errorf("create conversation: %w", err)
		}
		m.session.adoptConversation(conv)

		m.log.InfoContext(ctx, "conversation created", slog.Int64("conversation_id", conv.ID))
		return conv.ID, nil
	})

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case res := <-flight:
		if res.Err != nil {
			return 0, res.Err
		}
		return res.Val.(int64), nil
	}
}

// Create starts a new conversation explicitly and selects it. A blank
// title falls back to the placeholder.
func (m *Manager) Create(ctx context.Context, title string) (domain.Conversation, error) {
	title = domain.NormalizeTitle(title)
	if title == "" {
		title = domain.PlaceholderConversationTitle
	}
	if err := domain.ValidateTitle(title); err != nil {
		return domain.Conversation{}, err
	}

	conv, err := m.store.CreateConversation(ctx, &title)
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("create conversation: %w", err)
	}
	m.session.adoptConversation(conv)

	m.log.InfoContext(ctx, "conversation created", slog.Int64("conversation_id", conv.ID))
	return conv, nil
}

// Rename sets the title of conversation id in the store, then in the cached
// list and the selection. Blank titles are rejected before the store call.
func (m *Manager) Rename(ctx context.Context, id int64, title string) (domain.Conversation, error) {
	title = domain.NormalizeTitle(title)
	if err := domain.ValidateTitle(title); err != nil {
		return domain.Conversation{}, err
	}

	release, err := m.begin(id)
	if err != nil {
		return domain.Conversation{}, err
	}
	defer release()

	conv, err := m.store.RenameConversation(ctx, id, title)
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("rename conversation %d: %w", id, err)
	}
	if conv.Title == nil {
		conv = conv.WithTitle(title)
	}
	m.session.applyRename(conv)

	m.log.InfoContext(ctx, "conversation renamed", slog.Int64("conversation_id", id))
	return conv, nil
}

// Delete removes conversation id and its history. Deleting the selected
// conversation clears the selection, displayed history and transcript.
func (m *Manager) Delete(ctx context.Context, id int64) error {
	release, err := m.begin(id)
	if err != nil {
		return err
	}
	defer release()

	if err := m.store.DeleteConversation(ctx, id); err != nil {
		return fmt.Errorf("delete conversation %d: %w", id, err)
	}
	wasSelected := m.session.removeConversation(id)

	m.log.InfoContext(ctx, "conversation deleted",
		slog.Int64("conversation_id", id),
		slog.Bool("was_selected", wasSelected),
	)
	return nil
}

// begin marks id as having a mutation in flight. A second mutation of the
// same id is refused with ErrConflict until release is called.
func (m *Manager) begin(id int64) (release func(), err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, busy := m.pending[id]; busy {
		return nil, fmt.Errorf("conversation %d has a pending change: %w", id, domain.ErrConflict)
	}
	m.pending[id] = struct{}{}

	return func() {
		m.mu.Lock()
		delete(m.pending, id)
		m.mu.Unlock()
	}, nil
}
