// Package handler provides HTTP request handlers for the Fernweh API.
//
// The handler package contains all HTTP endpoint implementations organized by
// domain. Each handler struct encapsulates the service it serves requests for
// (users and homebases, activity groups and places, daily plans).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the service it fronts
//   - Methods handle specific HTTP endpoints using Go 1.22 path values
//   - Response helpers from response.go standardize output format
//   - MapServiceError translates service errors to RFC 9457 Problem Details
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteData: Single resource with optional HATEOAS links
//   - WriteCollection: List of resources with a total count
//   - WriteJSON: Raw JSON response
//   - WriteError: RFC 9457 Problem Details error response
//
// # Example Usage
//
//	handler := NewPlanHandler(planService)
//	mux.HandleFunc("GET /v1/users/{userId}/plans", handler.List)
//	mux.HandleFunc("GET /v1/users/{userId}/plans/{planId}/route", handler.Route)
package handler
