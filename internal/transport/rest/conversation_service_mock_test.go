package rest

import (
	"context"
	"github.com/KunitakeHyuga/Hackathon/internal/domain"
	"github.com/KunitakeHyuga/Hackathon/internal/service/archive"
	"sync"
)

var _ conversationService = &conversationServiceMock{}

type conversationServiceMock struct {
	CreateConversationFunc func(ctx context.Context, input archive.CreateConversationInput) (domain.Conversation, error)
	DeleteConversationFunc func(ctx context.Context, input archive.DeleteConversationInput) error
	ListConversationsFunc  func(ctx context.Context) ([]domain.Conversation, error)
	RenameConversationFunc func(ctx context.Context, input archive.RenameConversationInput) (domain.Conversation, error)

	calls struct {
		CreateConversation []struct {
			Ctx   context.Context
			Input archive.CreateConversationInput
		}
		DeleteConversation []struct {
			Ctx   context.Context
			Input archive.DeleteConversationInput
		}
		ListConversations []struct {
			Ctx context.Context
		}
		RenameConversation []struct {
			Ctx   context.Context
			Input archive.RenameConversationInput
		}
	}
	lockCreateConversation sync.RWMutex
	lockDeleteConversation sync.RWMutex
	lockListConversations  sync.RWMutex
	lockRenameConversation sync.RWMutex
}

func (mock *conversationServiceMock) CreateConversation(ctx context.Context, input archive.CreateConversationInput) (domain.Conversation, error) {
	if mock.CreateConversationFunc == nil {
		panic("conversationServiceMock.CreateConversationFunc: method is nil but conversationService.CreateConversation was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input archive.CreateConversationInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateConversation.Lock()
	mock.calls.CreateConversation = append(mock.calls.CreateConversation, callInfo)
	mock.lockCreateConversation.Unlock()
	return mock.CreateConversationFunc(ctx, input)
}

func (mock *conversationServiceMock) CreateConversationCalls() []struct {
	Ctx   context.Context
	Input archive.CreateConversationInput
} {
	mock.lockCreateConversation.RLock()
	calls := mock.calls.CreateConversation
	mock.lockCreateConversation.RUnlock()
	return calls
}

func (mock *conversationServiceMock) DeleteConversation(ctx context.Context, input archive.DeleteConversationInput) error {
	if mock.DeleteConversationFunc == nil {
		panic("conversationServiceMock.DeleteConversationFunc: method is nil but conversationService.DeleteConversation was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input archive.DeleteConversationInput
	}{Ctx: ctx, Input: input}
	mock.lockDeleteConversation.Lock()
	mock.calls.DeleteConversation = append(mock.calls.DeleteConversation, callInfo)
	mock.lockDeleteConversation.Unlock()
	return mock.DeleteConversationFunc(ctx, input)
}

func (mock *conversationServiceMock) DeleteConversationCalls() []struct {
	Ctx   context.Context
	Input archive.DeleteConversationInput
} {
	mock.lockDeleteConversation.RLock()
	calls := mock.calls.DeleteConversation
	mock.lockDeleteConversation.RUnlock()
	return calls
}

func (mock *conversationServiceMock) ListConversations(ctx context.Context) ([]domain.Conversation, error) {
	if mock.ListConversationsFunc == nil {
		panic("conversationServiceMock.ListConversationsFunc: method is nil but conversationService.ListConversations was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListConversations.Lock()
	mock.calls.ListConversations = append(mock.calls.ListConversations, callInfo)
	mock.lockListConversations.Unlock()
	return mock.ListConversationsFunc(ctx)
}

func (mock *conversationServiceMock) ListConversationsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListConversations.RLock()
	calls := mock.calls.ListConversations
	mock.lockListConversations.RUnlock()
	return calls
}

func (mock *conversationServiceMock) RenameConversation(ctx context.Context, input archive.RenameConversationInput) (domain.Conversation, error) {
	if mock.RenameConversationFunc == nil {
		panic("conversationServiceMock.RenameConversationFunc: method is nil but conversationService.RenameConversation was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input archive.RenameConversationInput
	}{Ctx: ctx, Input: input}
	mock.lockRenameConversation.Lock()
	mock.calls.RenameConversation = append(mock.calls.RenameConversation, callInfo)
	mock.lockRenameConversation.Unlock()
	return mock.RenameConversationFunc(ctx, input)
}

func (mock *conversationServiceMock) RenameConversationCalls() []struct {
	Ctx   context.Context
	Input archive.RenameConversationInput
} {
	mock.lockRenameConversation.RLock()
	calls := mock.calls.RenameConversation
	mock.lockRenameConversation.RUnlock()
	return calls
}
