package archive

import (
	"context"
	"github.com/KunitakeHyuga/Hackathon/internal/domain"
	"sync"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	CreateFunc               func(ctx context.Context, in domain.NewHistoryEntry) (domain.HistoryEntry, error)
	DeleteByConversationFunc func(ctx context.Context, conversationID int64) (int64, error)
	ListFunc                 func(ctx context.Context, conversationID *int64) ([]domain.HistoryEntry, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			In  domain.NewHistoryEntry
		}
		DeleteByConversation []struct {
			Ctx            context.Context
			ConversationID int64
		}
		List []struct {
			Ctx            context.Context
			ConversationID *int64
		}
	}
	lockCreate               sync.RWMutex
	lockDeleteByConversation sync.RWMutex
	lockList                 sync.RWMutex
}

func (mock *historyRepoMock) Create(ctx context.Context, in domain.NewHistoryEntry) (domain.HistoryEntry, error) {
	if mock.CreateFunc == nil {
		panic("historyRepoMock.CreateFunc: method is nil but historyRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  domain.NewHistoryEntry
	}{Ctx: ctx, In: in}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, in)
}

func (mock *historyRepoMock) CreateCalls() []struct {
	Ctx context.Context
	In  domain.NewHistoryEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *historyRepoMock) DeleteByConversation(ctx context.Context, conversationID int64) (int64, error) {
	if mock.DeleteByConversationFunc == nil {
		panic("historyRepoMock.DeleteByConversationFunc: method is nil but historyRepo.DeleteByConversation was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		ConversationID int64
	}{Ctx: ctx, ConversationID: conversationID}
	mock.lockDeleteByConversation.Lock()
	mock.calls.DeleteByConversation = append(mock.calls.DeleteByConversation, callInfo)
	mock.lockDeleteByConversation.Unlock()
	return mock.DeleteByConversationFunc(ctx, conversationID)
}

func (mock *historyRepoMock) DeleteByConversationCalls() []struct {
	Ctx            context.Context
	ConversationID int64
} {
	mock.lockDeleteByConversation.RLock()
	calls := mock.calls.DeleteByConversation
	mock.lockDeleteByConversation.RUnlock()
	return calls
}

func (mock *historyRepoMock) List(ctx context.Context, conversationID *int64) ([]domain.HistoryEntry, error) {
	if mock.ListFunc == nil {
		panic("historyRepoMock.ListFunc: method is nil but historyRepo.List was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		ConversationID *int64
	}{Ctx: ctx, ConversationID: conversationID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, conversationID)
}

func (mock *historyRepoMock) ListCalls() []struct {
	Ctx            context.Context
	ConversationID *int64
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
