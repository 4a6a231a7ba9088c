package handler

import (
	"net/http"

	"github.com/fernweh/api/internal/model"
	"github.com/fernweh/api/internal/service"
)

// PlanHandler handles daily plan HTTP requests
type PlanHandler struct {
	svc *service.PlanService
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(svc *service.PlanService) *PlanHandler {
	return &PlanHandler{svc: svc}
}

// List handles GET /v1/users/{userId}/plans - plan IDs, sorted
func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		WriteError(w, model.NewBadRequestError("user ID required"))
		return
	}

	ids, err := h.svc.ListPlans(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, ids, len(ids))
}

// Get handles GET /v1/users/{userId}/plans/{planId} - resolved plan
func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		WriteError(w, model.NewBadRequestError("user ID required"))
		return
	}
	planID := r.PathValue("planId")
	if planID == "" {
		WriteError(w, model.NewBadRequestError("plan ID required"))
		return
	}

	plan, err := h.svc.GetPlan(r.Context(), userID, planID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, plan, nil)
}

// AddStop handles PUT /v1/users/{userId}/plans/{planId}/places - append a
// stored place to the plan, creating the plan on first use
func (h *PlanHandler) AddStop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.PathValue("userId")
	if userID == "" {
		WriteError(w, model.NewBadRequestError("user ID required"))
		return
	}
	planID := r.PathValue("planId")
	if planID == "" {
		WriteError(w, model.NewBadRequestError("plan ID required"))
		return
	}

	var req model.AddStopRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	plan, err := h.svc.AddStop(ctx, userID, planID, req.PlaceID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, plan, nil)
}

// RemoveStop handles DELETE /v1/users/{userId}/plans/{planId}/places/{placeId}
func (h *PlanHandler) RemoveStop(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		WriteError(w, model.NewBadRequestError("user ID required"))
		return
	}
	planID := r.PathValue("planId")
	if planID == "" {
		WriteError(w, model.NewBadRequestError("plan ID required"))
		return
	}
	placeID := r.PathValue("placeId")
	if placeID == "" {
		WriteError(w, model.NewBadRequestError("place ID required"))
		return
	}

	if err := h.svc.RemoveStop(r.Context(), userID, planID, placeID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// Route handles GET /v1/users/{userId}/plans/{planId}/route - straight-line
// distance summary starting from the user's home
func (h *PlanHandler) Route(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		WriteError(w, model.NewBadRequestError("user ID required"))
		return
	}
	planID := r.PathValue("planId")
	if planID == "" {
		WriteError(w, model.NewBadRequestError("plan ID required"))
		return
	}

	route, err := h.svc.Route(r.Context(), userID, planID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, route, nil)
}
