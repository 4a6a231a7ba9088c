// Package model defines domain entities and data structures for the Fernweh API.
//
// The model package contains all struct definitions for domain objects, request
// types, snapshot formats, and error definitions. Models are used across all
// layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - Coordinate: WGS84 point in decimal degrees, range-checked on construction
//   - Place: immutable point of interest resolved through the geocoding provider
//   - ActivityGroup: named, ordered collection of a user's places
//   - DailyPlan: ordered list of place ID references forming one day's itinerary
//   - UserSummary / UserRecord: listing and full projections of a user
//
// # JSON Serialization
//
// API payloads use snake_case json struct tags:
//
//	type Place struct {
//	    Name     string     `json:"name"`
//	    ID       string     `json:"place_id"`
//	    Location Coordinate `json:"location"`
//	}
//
// Snapshot types in snapshot.go use a separate persistence layout (camelCase
// keys, home as a [lat, lon] pair) that must stay stable independently of API
// payload changes.
//
// # Validation Constants
//
// The package defines validation constants:
//
//	const (
//	    MaxGroupNameLength = 100
//	    MaxQueryLength     = 256
//	    MaxPlanIDLength    = 64
//	)
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string    `json:"type"`
//	    Title   string    `json:"title"`
//	    Status  int       `json:"status"`
//	    Detail  string    `json:"detail"`
//	}
package model
