package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/heartmarshall/dewiktionary/internal/wikitext"
	"github.com/heartmarshall/dewiktionary/internal/wiktionary"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and full health probes.
type HealthHandler struct {
	db      dbPinger
	version string
	started time.Time
	canary  wikitext.Page
}

// pingTimeout bounds the database check of /ready and /health.
const pingTimeout = 3 * time.Second

// canarySource is parsed by /health to confirm the parser tables are intact.
const canarySource = "== Haus ({{Sprache|Deutsch}}) ==\n=== {{Wortart|Substantiv|Deutsch}} ===\n"

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		version: version,
		started: time.Now(),
		canary:  wikitext.ParsePage("Haus", canarySource),
	}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

const (
	statusOK   = "ok"
	statusDown = "down"
)

// Live always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready returns 503 while the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.checkDatabase(r.Context())
	resp := HealthResponse{Status: db.Status, Timestamp: time.Now()}
	writeJSON(w, httpStatus(resp.Status), resp)
}

// Health reports every component with its latency, plus version and uptime.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := map[string]CompStatus{
		"database": h.checkDatabase(r.Context()),
		"parser":   h.checkParser(),
	}

	overall := statusOK
	for _, c := range components {
		if c.Status != statusOK {
			overall = statusDown
		}
	}

	writeJSON(w, httpStatus(overall), HealthResponse{
		Status:     overall,
		Version:    h.version,
		Uptime:     time.Since(h.started).Round(time.Second).String(),
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: statusDown, Error: err.Error()}
	}
	return CompStatus{Status: statusOK, Latency: time.Since(start).String()}
}

func (h *HealthHandler) checkParser() CompStatus {
	start := time.Now()
	out := wiktionary.ParsePage(h.canary)
	if out.PosCount() != 1 {
		return CompStatus{Status: statusDown, Error: "canary page did not parse to one entry"}
	}
	return CompStatus{Status: statusOK, Latency: time.Since(start).String()}
}

func httpStatus(status string) int {
	if status == statusOK {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
