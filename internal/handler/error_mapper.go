package handler

import (
	"errors"
	"log/slog"

	"github.com/fernweh/api/internal/model"
	"github.com/fernweh/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API. The three not-found
// flavors stay distinguishable in the detail: the user, the container (group
// or plan), and the member (place) each name themselves.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("user")
	case errors.Is(err, service.ErrGroupNotFound):
		return model.NewNotFoundError("activity group")
	case errors.Is(err, service.ErrPlanNotFound):
		return model.NewNotFoundError("daily plan")
	case errors.Is(err, service.ErrPlaceNotFound):
		return model.NewNotFoundError("place")

	// ===== Upstream Resolution Misses → 404 =====
	// The provider answered, it just found nothing. Not a gateway failure.
	case errors.Is(err, service.ErrAddressNotFound):
		pd := model.NewNotFoundError("address")
		pd.Detail = "the address did not resolve to any location"
		return pd
	case errors.Is(err, service.ErrPlaceQueryNotFound):
		pd := model.NewNotFoundError("place")
		pd.Detail = "the query did not match any place"
		return pd

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrGroupExists):
		return model.NewConflictError("an activity group with this name already exists")

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrAddressRequired),
		errors.Is(err, service.ErrAddressTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "address", Message: err.Error()}})
	case errors.Is(err, service.ErrGroupNameRequired),
		errors.Is(err, service.ErrGroupNameTooLong),
		errors.Is(err, service.ErrGroupNameWhitespace),
		errors.Is(err, service.ErrPlaceNameRequired):
		return model.NewValidationError([]model.FieldError{{Field: "name", Message: err.Error()}})
	case errors.Is(err, service.ErrPlaceQueryRequired),
		errors.Is(err, service.ErrPlaceQueryTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "query", Message: err.Error()}})
	case errors.Is(err, service.ErrPlaceIDRequired):
		return model.NewValidationError([]model.FieldError{{Field: "place_id", Message: err.Error()}})
	case errors.Is(err, service.ErrPlanIDRequired),
		errors.Is(err, service.ErrPlanIDTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "plan_id", Message: err.Error()}})

	// ===== Gateway Errors → 502 =====
	case errors.Is(err, service.ErrGatewayUnavailable):
		return model.NewUpstreamError("")

	// ===== Default → 500 =====
	default:
		slog.Error("unhandled service error", "error", err)
		return model.NewInternalError("")
	}
}
