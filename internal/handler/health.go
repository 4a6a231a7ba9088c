package handler

import (
	"context"
	"net/http"
)

// Pinger reports whether the snapshot store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles liveness checks
type HealthHandler struct {
	store Pinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// Check handles GET /health - liveness plus snapshot-store reachability.
// The directory serves from memory, so a down store degrades the response
// body without failing the check.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{
		"status":  "ok",
		"storage": "ok",
	}
	if h.store != nil {
		if err := h.store.Ping(r.Context()); err != nil {
			status["status"] = "degraded"
			status["storage"] = "unreachable"
		}
	}
	WriteJSON(w, http.StatusOK, status)
}
