package handler

import (
	"net/http"

	"github.com/fernweh/api/internal/model"
	"github.com/fernweh/api/internal/service"
)

// ActivityHandler handles activity group and place HTTP requests
type ActivityHandler struct {
	svc *service.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(svc *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// CreateGroup handles POST /v1/users/{userId}/groups - create an empty group
func (h *ActivityHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.PathValue("userId")
	if userID == "" {
		WriteError(w, model.NewBadRequestError("user ID required"))
		return
	}

	var req model.CreateGroupRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if err := h.svc.CreateGroup(ctx, userID, req.Name); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, model.ActivityGroup{Name: req.Name, Places: []model.Place{}}, nil)
}

// ListGroups handles GET /v1/users/{userId}/groups - group names, sorted
func (h *ActivityHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		WriteError(w, model.NewBadRequestError("user ID required"))
		return
	}

	names, err := h.svc.ListGroups(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, names, len(names))
}

// GetGroup handles GET /v1/users/{userId}/groups/{group} - group with places
func (h *ActivityHandler) GetGroup(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		WriteError(w, model.NewBadRequestError("user ID required"))
		return
	}
	name := r.PathValue("group")
	if name == "" {
		WriteError(w, model.NewBadRequestError("group name required"))
		return
	}

	group, err := h.svc.GetGroup(r.Context(), userID, name)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, group, nil)
}

// DeleteGroup handles DELETE /v1/users/{userId}/groups/{group} - drop a group
func (h *ActivityHandler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		WriteError(w, model.NewBadRequestError("user ID required"))
		return
	}
	name := r.PathValue("group")
	if name == "" {
		WriteError(w, model.NewBadRequestError("group name required"))
		return
	}

	if err := h.svc.DeleteGroup(r.Context(), userID, name); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// AddPlace handles POST /v1/users/{userId}/groups/{group}/places - resolve a
// free-text query through the place provider and file the result
func (h *ActivityHandler) AddPlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.PathValue("userId")
	if userID == "" {
		WriteError(w, model.NewBadRequestError("user ID required"))
		return
	}
	group := r.PathValue("group")
	if group == "" {
		WriteError(w, model.NewBadRequestError("group name required"))
		return
	}

	var req model.AddPlaceRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	place, err := h.svc.AddPlace(ctx, userID, group, req.Query)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, place, nil)
}

// ListPlaces handles GET /v1/users/{userId}/places - every stored place;
// with ?name= it becomes a case-insensitive single-place lookup
func (h *ActivityHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.PathValue("userId")
	if userID == "" {
		WriteError(w, model.NewBadRequestError("user ID required"))
		return
	}

	if name := r.URL.Query().Get("name"); name != "" {
		place, err := h.svc.FindPlace(ctx, userID, name)
		if err != nil {
			WriteError(w, MapServiceError(err))
			return
		}
		WriteData(w, http.StatusOK, place, nil)
		return
	}

	places, err := h.svc.ListPlaces(ctx, userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, places, len(places))
}

// RemovePlace handles DELETE /v1/users/{userId}/groups/{group}/places/{placeId}
func (h *ActivityHandler) RemovePlace(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		WriteError(w, model.NewBadRequestError("user ID required"))
		return
	}
	group := r.PathValue("group")
	if group == "" {
		WriteError(w, model.NewBadRequestError("group name required"))
		return
	}
	placeID := r.PathValue("placeId")
	if placeID == "" {
		WriteError(w, model.NewBadRequestError("place ID required"))
		return
	}

	if err := h.svc.RemovePlace(r.Context(), userID, group, placeID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
