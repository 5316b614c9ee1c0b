package rest

import (
	"net/http"

	"github.com/KunitakeHyuga/Hackathon/internal/transport/middleware"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Conversations *ConversationHandler
	History       *HistoryHandler
	Speech        *SpeechHandler
	Health        *HealthHandler
}

// NewRouter registers every backend route. speechLimit guards the synthesis
// endpoint and metrics serves GET /metrics; both may be nil.
func NewRouter(h Handlers, speechLimit middleware.Middleware, metrics http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /conversations", h.Conversations.List)
	mux.HandleFunc("POST /conversations", h.Conversations.Create)
	mux.HandleFunc("PUT /conversations/{id}", h.Conversations.Rename)
	mux.HandleFunc("DELETE /conversations/{id}", h.Conversations.Delete)

	mux.HandleFunc("GET /history", h.History.List)
	mux.HandleFunc("POST /history", h.History.Create)

	var synth http.Handler = http.HandlerFunc(h.Speech.Synthesize)
	if speechLimit != nil {
		synth = speechLimit(synth)
	}
	mux.Handle("POST /synthesize", synth)

	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}

	return mux
}
