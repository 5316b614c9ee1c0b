package chat

import (
	"context"
	"github.com/KunitakeHyuga/Hackathon/internal/domain"
	"sync"
)

var _ store = &storeMock{}

type storeMock struct {
	CreateConversationFunc func(ctx context.Context, title *string) (domain.Conversation, error)
	CreateHistoryFunc      func(ctx context.Context, entry domain.NewHistoryEntry) (domain.HistoryEntry, error)
	DeleteConversationFunc func(ctx context.Context, id int64) error
	ListConversationsFunc  func(ctx context.Context) ([]domain.Conversation, error)
	ListHistoryFunc        func(ctx context.Context, conversationID *int64) ([]domain.HistoryEntry, error)
	RenameConversationFunc func(ctx context.Context, id int64, title string) (domain.Conversation, error)

	calls struct {
		CreateConversation []struct {
			Ctx   context.Context
			Title *string
		}
		CreateHistory []struct {
			Ctx   context.Context
			Entry domain.NewHistoryEntry
		}
		DeleteConversation []struct {
			Ctx context.Context
			Id  int64
		}
		ListConversations []struct {
			Ctx context.Context
		}
		ListHistory []struct {
			Ctx            context.Context
			ConversationID *int64
		}
		RenameConversation []struct {
			Ctx   context.Context
			Id    int64
			Title string
		}
	}
	lockCreateConversation sync.RWMutex
	lockCreateHistory      sync.RWMutex
	lockDeleteConversation sync.RWMutex
	lockListConversations  sync.RWMutex
	lockListHistory        sync.RWMutex
	lockRenameConversation sync.RWMutex
}

func (mock *storeMock) CreateConversation(ctx context.Context, title *string) (domain.Conversation, error) {
	if mock.CreateConversationFunc == nil {
		panic("storeMock.CreateConversationFunc: method is nil but store.CreateConversation was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Title *string
	}{Ctx: ctx, Title: title}
	mock.lockCreateConversation.Lock()
	mock.calls.CreateConversation = append(mock.calls.CreateConversation, callInfo)
	mock.lockCreateConversation.Unlock()
	return mock.CreateConversationFunc(ctx, title)
}

func (mock *storeMock) CreateConversationCalls() []struct {
	Ctx   context.Context
	Title *string
} {
	mock.lockCreateConversation.RLock()
	calls := mock.calls.CreateConversation
	mock.lockCreateConversation.RUnlock()
	return calls
}

func (mock *storeMock) CreateHistory(ctx context.Context, entry domain.NewHistoryEntry) (domain.HistoryEntry, error) {
	if mock.CreateHistoryFunc == nil {
		panic("storeMock.CreateHistoryFunc: method is nil but store.CreateHistory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry domain.NewHistoryEntry
	}{Ctx: ctx, Entry: entry}
	mock.lockCreateHistory.Lock()
	mock.calls.CreateHistory = append(mock.calls.CreateHistory, callInfo)
	mock.lockCreateHistory.Unlock()
	return mock.CreateHistoryFunc(ctx, entry)
}

func (mock *storeMock) CreateHistoryCalls() []struct {
	Ctx   context.Context
	Entry domain.NewHistoryEntry
} {
	mock.lockCreateHistory.RLock()
	calls := mock.calls.CreateHistory
	mock.lockCreateHistory.RUnlock()
	return calls
}

func (mock *storeMock) DeleteConversation(ctx context.Context, id int64) error {
	if mock.DeleteConversationFunc == nil {
		panic("storeMock.DeleteConversationFunc: method is nil but store.DeleteConversation was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockDeleteConversation.Lock()
	mock.calls.DeleteConversation = append(mock.calls.DeleteConversation, callInfo)
	mock.lockDeleteConversation.Unlock()
	return mock.DeleteConversationFunc(ctx, id)
}

func (mock *storeMock) DeleteConversationCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockDeleteConversation.RLock()
	calls := mock.calls.DeleteConversation
	mock.lockDeleteConversation.RUnlock()
	return calls
}

func (mock *storeMock) ListConversations(ctx context.Context) ([]domain.Conversation, error) {
	if mock.ListConversationsFunc == nil {
		panic("storeMock.ListConversationsFunc: method is nil but store.ListConversations was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListConversations.Lock()
	mock.calls.ListConversations = append(mock.calls.ListConversations, callInfo)
	mock.lockListConversations.Unlock()
	return mock.ListConversationsFunc(ctx)
}

func (mock *storeMock) ListConversationsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListConversations.RLock()
	calls := mock.calls.ListConversations
	mock.lockListConversations.RUnlock()
	return calls
}

func (mock *storeMock) ListHistory(ctx context.Context, conversationID *int64) ([]domain.HistoryEntry, error) {
	if mock.ListHistoryFunc == nil {
		panic("storeMock.ListHistoryFunc: method is nil but store.ListHistory was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		ConversationID *int64
	}{Ctx: ctx, ConversationID: conversationID}
	mock.lockListHistory.Lock()
	mock.calls.ListHistory = append(mock.calls.ListHistory, callInfo)
	mock.lockListHistory.Unlock()
	return mock.ListHistoryFunc(ctx, conversationID)
}

func (mock *storeMock) ListHistoryCalls() []struct {
	Ctx            context.Context
	ConversationID *int64
} {
	mock.lockListHistory.RLock()
	calls := mock.calls.ListHistory
	mock.lockListHistory.RUnlock()
	return calls
}

func (mock *storeMock) RenameConversation(ctx context.Context, id int64, title string) (domain.Conversation, error) {
	if mock.RenameConversationFunc == nil {
		panic("storeMock.RenameConversationFunc: method is nil but store.RenameConversation was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    int64
		Title string
	}{Ctx: ctx, Id: id, Title: title}
	mock.lockRenameConversation.Lock()
	mock.calls.RenameConversation = append(mock.calls.RenameConversation, callInfo)
	mock.lockRenameConversation.Unlock()
	return mock.RenameConversationFunc(ctx, id, title)
}

func (mock *storeMock) RenameConversationCalls() []struct {
	Ctx   context.Context
	Id    int64
	Title string
} {
	mock.lockRenameConversation.RLock()
	calls := mock.calls.RenameConversation
	mock.lockRenameConversation.RUnlock()
	return calls
}
