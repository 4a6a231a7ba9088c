package model

// Validation limits
const (
	MaxGroupNameLength = 100
	MaxQueryLength     = 256
)

// ActivityGroup represents a named, ordered collection of places a user has
// gathered for one kind of activity ("museums", "day one", ...). Group names
// are unique per user; place order is insertion order.
type ActivityGroup struct {
	Name   string  `json:"name"`
	Places []Place `json:"places"`
}

// CreateGroupRequest represents a request to create an activity group
type CreateGroupRequest struct {
	Name string `json:"name"`
}

// AddPlaceRequest represents a request to resolve a place through the
// geocoding provider and file it into a group
type AddPlaceRequest struct {
	Query string `json:"query"`
}
