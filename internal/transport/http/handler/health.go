package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HealthHandler serves /health-check/{action}. "ping" reports liveness;
// "ready" also checks the store.
type HealthHandler struct {
	ready func(ctx context.Context) error
}

// NewHealthHandler builds a HealthHandler. ready may be nil, in which case
// readiness is the same as liveness.
func NewHealthHandler(ready func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{ready: ready}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "action") {
	case "ping":
		writeJSON(w, http.StatusOK, MessageEnvelope{Message: "pong"})
	case "ready":
		if h.ready != nil {
			if err := h.ready(r.Context()); err != nil {
				writeError(w, http.StatusServiceUnavailable, "store unavailable")
				return
			}
		}
		writeJSON(w, http.StatusOK, MessageEnvelope{Message: "ready"})
	default:
		writeError(w, http.StatusBadRequest, "unknown action")
	}
}
