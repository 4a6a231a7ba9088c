// Package fixtures provides test data factories for the Fernweh API.
//
// The fixtures package contains factory functions for creating test data
// with sensible defaults and optional customization.
//
// # Factory Pattern
//
// Create a factory over a directory:
//
//	f := fixtures.New(dir)
//
// # Creating Test Data
//
// Factory methods create domain entities:
//
//	userID := f.CreateUser(t)                  // Paris homebase
//	group := f.CreateGroup(t, userID)
//	place := f.CreatePlace(t, userID, group)
//	planID := f.CreatePlan(t, userID, place.ID)
//
// # Customization
//
// Use option functions for customization:
//
//	userID := f.CreateUser(t, func(o *fixtures.UserOpts) {
//	    o.Home = model.Coordinate{Latitude: 52.52, Longitude: 13.405}
//	})
//
// # Random Data
//
// Unique identifiers are generated automatically:
//
//	user1 := f.CreateUser(t) // user_abc123
//	user2 := f.CreateUser(t) // user_def456
package fixtures
