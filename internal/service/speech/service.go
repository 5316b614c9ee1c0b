// Package speech validates synthesis requests and forwards them to the engine.
package speech

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
)

// FormatWAV is the only audio format the engine produces.
const FormatWAV = "wav"

type engine interface {
	Synthesize(ctx context.Context, text string, speaker int) ([]byte, error)
}

// Service synthesizes speech for translated text.
type Service struct {
	engine         engine
	defaultSpeaker int
	log            *slog.Logger
}

// NewService creates a speech service. defaultSpeaker is used when a request
// does not name a speaker.
func NewService(log *slog.Logger, engine engine, defaultSpeaker int) *Service {
	return &Service{
		engine:         engine,
		defaultSpeaker: defaultSpeaker,
		log:            log.With("service", "speech"),
	}
}

// SynthesizeInput holds the parameters of a synthesis request.
type SynthesizeInput struct {
	Text      string
	SpeakerID *int
}

// Validate checks all fields and collects all errors.
func (i SynthesizeInput) Validate() error {
	var errs []domain.FieldError

	if domain.IsBlank(i.Text) {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if i.SpeakerID != nil && *i.SpeakerID < 0 {
		errs = append(errs, domain.FieldError{Field: "speaker_id", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Audio is synthesized speech.
type Audio struct {
	Data      []byte
	Format    string
	SpeakerID int
}

// Synthesize renders text to WAV audio.
func (s *Service) Synthesize(ctx context.Context, input SynthesizeInput) (Audio, error) {
	if err := input.Validate(); err != nil {
		return Audio{}, err
	}

	speaker := s.defaultSpeaker
	if input.SpeakerID != nil {
		speaker = *input.SpeakerID
	}

	data, err := s.engine.Synthesize(ctx, input.Text, speaker)
	if err != nil {
		return Audio{}, fmt.Errorf("synthesize: %w", err)
	}

	s.log.InfoContext(ctx, "speech synthesized",
		slog.Int("speaker_id", speaker),
		slog.Int("bytes", len(data)),
	)
	return Audio{Data: data, Format: FormatWAV, SpeakerID: speaker}, nil
}
