package archive

import (
	"context"
	"github.com/KunitakeHyuga/Hackathon/internal/domain"
	"sync"
)

var _ conversationRepo = &conversationRepoMock{}

type conversationRepoMock struct {
	CreateFunc      func(ctx context.Context, title *string) (domain.Conversation, error)
	DeleteFunc      func(ctx context.Context, id int64) error
	ListFunc        func(ctx context.Context) ([]domain.Conversation, error)
	UpdateTitleFunc func(ctx context.Context, id int64, title string) (domain.Conversation, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Title *string
		}
		Delete []struct {
			Ctx context.Context
			Id  int64
		}
		List []struct {
			Ctx context.Context
		}
		UpdateTitle []struct {
			Ctx   context.Context
			Id    int64
			Title string
		}
	}
	lockCreate      sync.RWMutex
	lockDelete      sync.RWMutex
	lockList        sync.RWMutex
	lockUpdateTitle sync.RWMutex
}

func (mock *conversationRepoMock) Create(ctx context.Context, title *string) (domain.Conversation, error) {
	if mock.CreateFunc == nil {
		panic("conversationRepoMock.CreateFunc: method is nil but conversationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Title *string
	}{Ctx: ctx, Title: title}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, title)
}

func (mock *conversationRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Title *string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *conversationRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("conversationRepoMock.DeleteFunc: method is nil but conversationRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *conversationRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *conversationRepoMock) List(ctx context.Context) ([]domain.Conversation, error) {
	if mock.ListFunc == nil {
		panic("conversationRepoMock.ListFunc: method is nil but conversationRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *conversationRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *conversationRepoMock) UpdateTitle(ctx context.Context, id int64, title string) (domain.Conversation, error) {
	if mock.UpdateTitleFunc == nil {
		panic("conversationRepoMock.UpdateTitleFunc: method is nil but conversationRepo.UpdateTitle was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    int64
		Title string
	}{Ctx: ctx, Id: id, Title: title}
	mock.lockUpdateTitle.Lock()
	mock.calls.UpdateTitle = append(mock.calls.UpdateTitle, callInfo)
	mock.lockUpdateTitle.Unlock()
	return mock.UpdateTitleFunc(ctx, id, title)
}

func (mock *conversationRepoMock) UpdateTitleCalls() []struct {
	Ctx   context.Context
	Id    int64
	Title string
} {
	mock.lockUpdateTitle.RLock()
	calls := mock.calls.UpdateTitle
	mock.lockUpdateTitle.RUnlock()
	return calls
}
