package chat

import (
	"context"
	"github.com/KunitakeHyuga/Hackathon/internal/domain"
	"sync"
)

var _ translator = &translatorMock{}

type translatorMock struct {
	TranslateFunc func(ctx context.Context, text string, dialect domain.Dialect, dir domain.Direction) (string, error)

	calls struct {
		Translate []struct {
			Ctx     context.Context
			Text    string
			Dialect domain.Dialect
			Dir     domain.Direction
		}
	}
	lockTranslate sync.RWMutex
}

func (mock *translatorMock) Translate(ctx context.Context, text string, dialect domain.Dialect, dir domain.Direction) (string, error) {
	if mock.TranslateFunc == nil {
		panic("translatorMock.TranslateFunc: method is nil but translator.Translate was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Text    string
		Dialect domain.Dialect
		Dir     domain.Direction
	}{Ctx: ctx, Text: text, Dialect: dialect, Dir: dir}
	mock.lockTranslate.Lock()
	mock.calls.Translate = append(mock.calls.Translate, callInfo)
	mock.lockTranslate.Unlock()
	return mock.TranslateFunc(ctx, text, dialect, dir)
}

func (mock *translatorMock) TranslateCalls() []struct {
	Ctx     context.Context
	Text    string
	Dialect domain.Dialect
	Dir     domain.Direction
} {
	mock.lockTranslate.RLock()
	calls := mock.calls.Translate
	mock.lockTranslate.RUnlock()
	return calls
}
