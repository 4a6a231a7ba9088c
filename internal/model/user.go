package model

// UserSummary is the listing projection of a user
type UserSummary struct {
	ID   string     `json:"id"`
	Home Coordinate `json:"home"`
}

// UserRecord is the full view of a user's stored state. Groups map group
// names to their places; plans map plan IDs to their place ID references.
type UserRecord struct {
	ID     string              `json:"id"`
	Home   Coordinate          `json:"home"`
	Groups map[string][]Place  `json:"activity_groups"`
	Plans  map[string][]string `json:"daily_plans"`
}

// RegisterHomebaseRequest represents a request to geocode an address and
// register a new user anchored at it
type RegisterHomebaseRequest struct {
	Address string `json:"address"`
}

// UpdateHomebaseRequest represents a request to re-anchor an existing user
type UpdateHomebaseRequest struct {
	Address string `json:"address"`
}
