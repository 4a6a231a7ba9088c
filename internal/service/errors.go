package service

import (
	"errors"
	"fmt"

	"github.com/fernweh/api/internal/directory"
	"github.com/fernweh/api/internal/gateway"
)

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== User Errors =====
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrAddressRequired = errors.New("address is required")
	ErrAddressTooLong  = errors.New("address exceeds maximum length")
	ErrAddressNotFound = errors.New("address did not resolve to a location")
)

// ===== Activity Group Errors =====
var (
	ErrGroupNotFound       = errors.New("activity group not found")
	ErrGroupExists         = errors.New("an activity group with this name already exists")
	ErrGroupNameRequired   = errors.New("activity group name is required")
	ErrGroupNameTooLong    = errors.New("activity group name exceeds maximum length")
	ErrGroupNameWhitespace = errors.New("activity group name has leading or trailing spaces")
)

// ===== Place Errors =====
var (
	ErrPlaceNotFound      = errors.New("place not found for this user")
	ErrPlaceIDRequired    = errors.New("place id is required")
	ErrPlaceNameRequired  = errors.New("place name is required")
	ErrPlaceQueryRequired = errors.New("place query is required")
	ErrPlaceQueryTooLong  = errors.New("place query exceeds maximum length")
	ErrPlaceQueryNotFound = errors.New("place query did not resolve to a result")
)

// ===== Daily Plan Errors =====
var (
	ErrPlanNotFound   = errors.New("daily plan not found")
	ErrPlanIDRequired = errors.New("daily plan id is required")
	ErrPlanIDTooLong  = errors.New("daily plan id exceeds maximum length")
)

// ===== Gateway Errors =====
var (
	ErrGatewayUnavailable = errors.New("geocoding provider unavailable")
)

// mapDirectoryErr translates directory sentinels into service errors so
// handlers only ever deal with this package's error set.
func mapDirectoryErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, directory.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, directory.ErrGroupNotFound):
		return ErrGroupNotFound
	case errors.Is(err, directory.ErrGroupExists):
		return ErrGroupExists
	case errors.Is(err, directory.ErrPlanNotFound):
		return ErrPlanNotFound
	case errors.Is(err, directory.ErrPlaceNotFound):
		return ErrPlaceNotFound
	default:
		return err
	}
}

// mapGeocodeErr translates gateway errors from address lookups
func mapGeocodeErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gateway.ErrNotFound):
		return ErrAddressNotFound
	default:
		return fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
}

// mapPlaceSearchErr translates gateway errors from place queries
func mapPlaceSearchErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gateway.ErrNotFound):
		return ErrPlaceQueryNotFound
	default:
		return fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
}
