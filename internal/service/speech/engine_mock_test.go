package speech

import (
	"context"
	"sync"
)

var _ engine = &engineMock{}

type engineMock struct {
	SynthesizeFunc func(ctx context.Context, text string, speaker int) ([]byte, error)

	calls struct {
		Synthesize []struct {
			Ctx     context.Context
			Text    string
			Speaker int
		}
	}
	lockSynthesize sync.RWMutex
}

func (mock *engineMock) Synthesize(ctx context.Context, text string, speaker int) ([]byte, error) {
	if mock.SynthesizeFunc == nil {
		panic("engineMock.SynthesizeFunc: method is nil but engine.Synthesize was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Text    string
		Speaker int
	}{Ctx: ctx, Text: text, Speaker: speaker}
	mock.lockSynthesize.Lock()
	mock.calls.Synthesize = append(mock.calls.Synthesize, callInfo)
	mock.lockSynthesize.Unlock()
	return mock.SynthesizeFunc(ctx, text, speaker)
}

func (mock *engineMock) SynthesizeCalls() []struct {
	Ctx     context.Context
	Text    string
	Speaker int
} {
	mock.lockSynthesize.RLock()
	calls := mock.calls.Synthesize
	mock.lockSynthesize.RUnlock()
	return calls
}
