package rest

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const healthCheckTimeout = 3 * time.Second

// Health statuses, from best to worst.
const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

// speechEngine reports the version of the synthesis engine.
type speechEngine interface {
	Version(ctx context.Context) (string, error)
}

// HealthHandler serves the liveness, readiness and full health endpoints.
type HealthHandler struct {
	db      dbPinger
	engine  speechEngine
	version string
}

// NewHealthHandler creates a HealthHandler. engine may be nil, in which case
// the synthesis engine is not reported.
func NewHealthHandler(db dbPinger, engine speechEngine, version string) *HealthHandler {
	return &HealthHandler{db: db, engine: engine, version: version}
}

// HealthResponse is the body of /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the result of checking one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Version string `json:"version,omitempty"`
}

// Live reports that the process is serving.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready is 200 while the database answers and 503 otherwise. The synthesis
// engine is not consulted: history keeps working without it.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: statusDown, Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Health checks the database and the synthesis engine in parallel. A dead
// database is "down" with 503; a dead engine only degrades the result.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	var (
		mu         sync.Mutex
		components = make(map[string]CompStatus, 2)
		g          errgroup.Group
	)
	record := func(name string, c CompStatus) {
		mu.Lock()
		components[name] = c
		mu.Unlock()
	}

	g.Go(func() error {
		record("database", probe(func() (string, error) { return "", h.db.Ping(ctx) }))
		return nil
	})
	if h.engine != nil {
		g.Go(func() error {
			record("voicevox", probe(func() (string, error) { return h.engine.Version(ctx) }))
			return nil
		})
	}
	_ = g.Wait()

	overall := statusOK
	if c, ok := components["voicevox"]; ok && c.Status == statusDown {
		overall = statusDegraded
	}
	code := http.StatusOK
	if components["database"].Status == statusDown {
		overall = statusDown
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

// probe times check and converts its outcome into a CompStatus.
func probe(check func() (string, error)) CompStatus {
	start := time.Now()
	version, err := check()
	if err != nil {
		return CompStatus{Status: statusDown}
	}
	return CompStatus{Status: statusOK, Latency: time.Since(start).String(), Version: version}
}
