// Package helpers provides test utility functions for the Fernweh API.
//
// The helpers package contains common test utilities for building requests
// and asserting on responses and directory state.
//
// # Request Building
//
// Construct JSON requests fluently:
//
//	req := helpers.NewRequest(t, http.MethodPost, "/v1/homebase").
//	    WithBody(map[string]string{"address": "Paris"}).
//	    WithHeader("Idempotency-Key", "abc").
//	    Build()
//
// # Assertion Helpers
//
// Validate response status, RFC 9457 problem bodies, and field errors:
//
//	helpers.AssertStatus(t, rr, http.StatusCreated)
//	helpers.AssertProblemDetails(t, rr, http.StatusNotFound, model.ErrCodeNotFound)
//	helpers.AssertValidationError(t, rr, "address")
//
// # Envelope Helpers
//
// Unwrap the data envelope:
//
//	data := helpers.GetDataFromResponse(t, rr)
//	items, total := helpers.GetCollectionFromResponse(t, rr)
//
// # Directory Assertions
//
// Check stored state directly:
//
//	helpers.AssertUserExists(t, dir, userID)
//	helpers.AssertGroupExists(t, dir, userID, "museums")
package helpers
