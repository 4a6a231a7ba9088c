package model

// Plan ID limits
const (
	MaxPlanIDLength = 64
)

// DailyPlan represents an ordered itinerary for one day. Stops reference
// places by provider ID rather than embedding them; the same place may
// appear more than once.
type DailyPlan struct {
	ID       string   `json:"id"`
	PlaceIDs []string `json:"place_ids"`
}

// ResolvedPlan pairs a plan's raw references with the places they currently
// resolve to. References whose place has since been removed are kept in
// PlaceIDs but absent from Stops, so clients can prune stale entries.
type ResolvedPlan struct {
	ID       string   `json:"id"`
	PlaceIDs []string `json:"place_ids"`
	Stops    []Place  `json:"stops"`
}

// AddStopRequest represents a request to append a place reference to a plan
type AddStopRequest struct {
	PlaceID string `json:"place_id"`
}

// RouteStop is one leg endpoint in a route summary
type RouteStop struct {
	Place Place   `json:"place"`
	LegKm float64 `json:"leg_km"`
	AggKm float64 `json:"agg_km"`
}

// RouteSummary describes a daily plan as straight-line legs starting from
// the user's home. Distances are great-circle kilometers, not road distance.
type RouteSummary struct {
	PlanID  string      `json:"plan_id"`
	Origin  Coordinate  `json:"origin"`
	Stops   []RouteStop `json:"stops"`
	TotalKm float64     `json:"total_km"`
}
