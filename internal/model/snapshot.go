package model

// Snapshot is the serialized form of the whole directory. The user array
// preserves registration order so listings stay stable across a restore.
//
// Snapshot JSON uses its own field names (camelCase, compact home pair)
// independent of the API payload shapes; the layout is a persistence format
// and changes to API projections must not silently change it.
type Snapshot struct {
	Users []UserSnapshot `json:"users"`
}

// UserSnapshot is one user's state in a snapshot. Home is [lat, lon].
type UserSnapshot struct {
	ID             string                     `json:"id"`
	Home           [2]float64                 `json:"home"`
	ActivityGroups map[string][]PlaceSnapshot `json:"activityGroups"`
	DailyPlans     map[string][]string        `json:"dailyPlans"`
}

// PlaceSnapshot is one stored place in a snapshot
type PlaceSnapshot struct {
	Name string  `json:"name"`
	ID   string  `json:"id"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}
