package handler

import (
	"net/http"

	"github.com/fernweh/api/internal/model"
	"github.com/fernweh/api/internal/service"
)

// UserHandler handles user and homebase HTTP requests
type UserHandler struct {
	svc *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// RegisterHomebase handles POST /v1/homebase - register a user at an address
func (h *UserHandler) RegisterHomebase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterHomebaseRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	user, err := h.svc.RegisterHomebase(ctx, req.Address)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, user, nil)
}

// UpdateHomebase handles PUT /v1/users/{userId}/homebase - move a user's home
func (h *UserHandler) UpdateHomebase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.PathValue("userId")
	if userID == "" {
		WriteError(w, model.NewBadRequestError("user ID required"))
		return
	}

	var req model.UpdateHomebaseRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	user, err := h.svc.UpdateHomebase(ctx, userID, req.Address)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, user, nil)
}

// List handles GET /v1/users - list users in registration order
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, users, len(users))
}

// Get handles GET /v1/users/{userId} - full record with groups and plans
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		WriteError(w, model.NewBadRequestError("user ID required"))
		return
	}

	user, err := h.svc.GetUser(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, user, nil)
}
