package rest

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/KunitakeHyuga/Hackathon/internal/service/speech"
)

type speechService interface {
	Synthesize(ctx context.Context, input speech.SynthesizeInput) (speech.Audio, error)
}

// SpeechHandler serves POST /synthesize.
type SpeechHandler struct {
	svc speechService
	log *slog.Logger
}

// NewSpeechHandler creates a SpeechHandler.
func NewSpeechHandler(svc speechService, logger *slog.Logger) *SpeechHandler {
	return &SpeechHandler{svc: svc, log: logger.With("handler", "speech")}
}

type synthesizeRequest struct {
	Text      string `json:"text"`
	SpeakerID *int   `json:"speaker_id"`
}

type synthesizeResponse struct {
	Audio  string `json:"audio"`
	Format string `json:"format"`
}

// Synthesize renders text to speech and returns it base64-encoded.
func (h *SpeechHandler) Synthesize(w http.ResponseWriter, r *http.Request) {
	var req synthesizeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	audio, err := h.svc.Synthesize(r.Context(), speech.SynthesizeInput{Text: req.Text, SpeakerID: req.SpeakerID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, synthesizeResponse{
		Audio:  base64.StdEncoding.EncodeToString(audio.Data),
		Format: audio.Format,
	})
}
