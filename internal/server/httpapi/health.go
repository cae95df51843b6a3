package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/invtrack/internal/logging"
)

const readyTimeout = 2 * time.Second

// HandleRoot is the liveness message served at /.
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	h.respondMessage(w, r, http.StatusOK, MsgServerRunning)
}

// HandleHealthz reports that the process is up.
func (h *Handler) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}

// HandleReadyz reports whether the store answers a ping.
func (h *Handler) HandleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logging.FromContext(ctx, h.logger).Warn(ctx, "readiness check failed", "error", err)
		h.respondJSON(w, r, http.StatusServiceUnavailable, HealthResponse{
			Status:  "unavailable",
			Message: "store unreachable",
		})
		return
	}

	h.respondJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}
