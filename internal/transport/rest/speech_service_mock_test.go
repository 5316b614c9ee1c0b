package rest

import (
	"context"
	"github.com/KunitakeHyuga/Hackathon/internal/service/speech"
	"sync"
)

var _ speechService = &speechServiceMock{}

type speechServiceMock struct {
	SynthesizeFunc func(ctx context.Context, input speech.SynthesizeInput) (speech.Audio, error)

	calls struct {
		Synthesize []struct {
			Ctx   context.Context
			Input speech.SynthesizeInput
		}
	}
	lockSynthesize sync.RWMutex
}

func (mock *speechServiceMock) Synthesize(ctx context.Context, input speech.SynthesizeInput) (speech.Audio, error) {
	if mock.SynthesizeFunc == nil {
		panic("speechServiceMock.SynthesizeFunc: method is nil but speechService.Synthesize was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input speech.SynthesizeInput
	}{Ctx: ctx, Input: input}
	mock.lockSynthesize.Lock()
	mock.calls.Synthesize = append(mock.calls.Synthesize, callInfo)
	mock.lockSynthesize.Unlock()
	return mock.SynthesizeFunc(ctx, input)
}

func (mock *speechServiceMock) SynthesizeCalls() []struct {
	Ctx   context.Context
	Input speech.SynthesizeInput
} {
	mock.lockSynthesize.RLock()
	calls := mock.calls.Synthesize
	mock.lockSynthesize.RUnlock()
	return calls
}
