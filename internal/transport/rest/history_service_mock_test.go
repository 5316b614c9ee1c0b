package rest

import (
	"context"
	"github.com/KunitakeHyuga/Hackathon/internal/domain"
	"github.com/KunitakeHyuga/Hackathon/internal/service/archive"
	"sync"
)

var _ historyService = &historyServiceMock{}

type historyServiceMock struct {
	CreateHistoryFunc func(ctx context.Context, input domain.NewHistoryEntry) (domain.HistoryEntry, error)
	ListHistoryFunc   func(ctx context.Context, input archive.ListHistoryInput) ([]domain.HistoryEntry, error)

	calls struct {
		CreateHistory []struct {
			Ctx   context.Context
			Input domain.NewHistoryEntry
		}
		ListHistory []struct {
			Ctx   context.Context
			Input archive.ListHistoryInput
		}
	}
	lockCreateHistory sync.RWMutex
	lockListHistory   sync.RWMutex
}

func (mock *historyServiceMock) CreateHistory(ctx context.Context, input domain.NewHistoryEntry) (domain.HistoryEntry, error) {
	if mock.CreateHistoryFunc == nil {
		panic("historyServiceMock.CreateHistoryFunc: method is nil but historyService.CreateHistory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input domain.NewHistoryEntry
	}{Ctx: ctx, Input: input}
	mock.lockCreateHistory.Lock()
	mock.calls.CreateHistory = append(mock.calls.CreateHistory, callInfo)
	mock.lockCreateHistory.Unlock()
	return mock.CreateHistoryFunc(ctx, input)
}

func (mock *historyServiceMock) CreateHistoryCalls() []struct {
	Ctx   context.Context
	Input domain.NewHistoryEntry
} {
	mock.lockCreateHistory.RLock()
	calls := mock.calls.CreateHistory
	mock.lockCreateHistory.RUnlock()
	return calls
}

func (mock *historyServiceMock) ListHistory(ctx context.Context, input archive.ListHistoryInput) ([]domain.HistoryEntry, error) {
	if mock.ListHistoryFunc == nil {
		panic("historyServiceMock.ListHistoryFunc: method is nil but historyService.ListHistory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input archive.ListHistoryInput
	}{Ctx: ctx, Input: input}
	mock.lockListHistory.Lock()
	mock.calls.ListHistory = append(mock.calls.ListHistory, callInfo)
	mock.lockListHistory.Unlock()
	return mock.ListHistoryFunc(ctx, input)
}

func (mock *historyServiceMock) ListHistoryCalls() []struct {
	Ctx   context.Context
	Input archive.ListHistoryInput
} {
	mock.lockListHistory.RLock()
	calls := mock.calls.ListHistory
	mock.lockListHistory.RUnlock()
	return calls
}
