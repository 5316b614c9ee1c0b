package chat

import (
	"context"
	"sync"
)

var _ synthesizer = &synthesizerMock{}

type synthesizerMock struct {
	SynthesizeFunc func(ctx context.Context, text string, speakerID int) ([]byte, error)

	calls struct {
		Synthesize []struct {
			Ctx       context.Context
			Text      string
			SpeakerID int
		}
	}
	lockSynthesize sync.RWMutex
}

func (mock *synthesizerMock) Synthesize(ctx context.Context, text string, speakerID int) ([]byte, error) {
	if mock.SynthesizeFunc == nil {
		panic("synthesizerMock.SynthesizeFunc: method is nil but synthesizer.Synthesize was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Text      string
		SpeakerID int
	}{Ctx: ctx, Text: text, SpeakerID: speakerID}
	mock.lockSynthesize.Lock()
	mock.calls.Synthesize = append(mock.calls.Synthesize, callInfo)
	mock.lockSynthesize.Unlock()
	return mock.SynthesizeFunc(ctx, text, speakerID)
}

func (mock *synthesizerMock) SynthesizeCalls() []struct {
	Ctx       context.Context
	Text      string
	SpeakerID int
} {
	mock.lockSynthesize.RLock()
	calls := mock.calls.Synthesize
	mock.lockSynthesize.RUnlock()
	return calls
}
