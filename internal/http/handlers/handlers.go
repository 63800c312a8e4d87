package handlers

import (
	"context"
	"net/http"
	"time"

	"homecare-scheduler/internal/logx"
)

const healthTimeout = time.Second

// Pinger reports whether a backing store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers serves the service endpoints: ping, healthcheck and the JSON 404.
type Handlers struct {
	logger logx.Logger
	db     Pinger
}

// New creates Handlers. A nil logger discards output.
func New(logger logx.Logger) *Handlers {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Handlers{logger: logger}
}

// WithPinger makes the healthcheck depend on db.
func (h *Handlers) WithPinger(db Pinger) *Handlers {
	h.db = db
	return h
}

// Ping handles GET /ping.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"message": "pong"})
}

// HealthcheckHead handles HEAD /healthcheck: 204 when healthy, 503 when the database does not answer.
func (h *Handlers) HealthcheckHead(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			h.logger.Warn("healthcheck failed",
				logx.String("event", "healthcheck_failed"),
				logx.Err(err),
			)
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// NotFound answers unknown routes with a JSON 404.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(h.logger, w, r, http.StatusNotFound, "route not found")
}
