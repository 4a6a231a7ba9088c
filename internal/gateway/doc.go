// Package gateway provides the HTTP client for the geocoding and place
// search provider used by the Fernweh API.
//
// The client speaks the Google Maps web service endpoints
// (/maps/api/geocode/json and /maps/api/place/textsearch/json) with plain
// net/http. The base URL is configurable so tests can point the client at a
// local fake server.
//
// # Result Semantics
//
// Both operations take the provider's first result and discard the rest.
// Place search is biased toward a caller-supplied coordinate (the user's
// home) within a configurable radius, 100 km by default.
//
// # Error Types
//
// Standard error types for provider calls:
//
//   - ErrNotFound: the provider answered but had no results for the query
//   - ErrUnavailable: transport failure, timeout, non-200 response, or a
//     provider status other than OK/ZERO_RESULTS
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, gateway.ErrNotFound) {
//	    // Address or place does not resolve
//	}
//
// The client never retries and never logs; callers decide on timeouts by
// bounding ctx and on retry policy themselves.
package gateway
