package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/fernweh/api/internal/directory"
	"github.com/fernweh/api/internal/model"
)

// Factory creates test entities in a directory
type Factory struct {
	dir *directory.Directory
}

// New creates a new fixture factory
func New(dir *directory.Directory) *Factory {
	return &Factory{dir: dir}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context with timeout
func ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	// Store cancel to prevent leak warning
	_ = cancel
	return c
}

// ============================================================================
// User Fixtures
// ============================================================================

// UserOpts customizes user creation
type UserOpts struct {
	ID   string
	Home model.Coordinate
}

// CreateUser registers a user with a homebase, defaulting to central Paris
func (f *Factory) CreateUser(t *testing.T, opts ...func(*UserOpts)) string {
	t.Helper()

	o := &UserOpts{
		ID:   fmt.Sprintf("user_%s", randomID()),
		Home: model.Coordinate{Latitude: 48.8566, Longitude: 2.3522},
	}
	for _, fn := range opts {
		fn(o)
	}

	if err := f.dir.AddUser(ctx(), o.ID, o.Home); err != nil {
		t.Fatalf("fixtures: failed to create user: %v", err)
	}
	return o.ID
}

// ============================================================================
// Activity Group Fixtures
// ============================================================================

// GroupOpts customizes activity group creation
type GroupOpts struct {
	Name string
}

// CreateGroup adds an empty activity group for the user
func (f *Factory) CreateGroup(t *testing.T, userID string, opts ...func(*GroupOpts)) string {
	t.Helper()

	o := &GroupOpts{
		Name: fmt.Sprintf("group_%s", randomID()),
	}
	for _, fn := range opts {
		fn(o)
	}

	if err := f.dir.AddGroup(ctx(), userID, o.Name); err != nil {
		t.Fatalf("fixtures: failed to create group: %v", err)
	}
	return o.Name
}

// ============================================================================
// Place Fixtures
// ============================================================================

// PlaceOpts customizes place creation
type PlaceOpts struct {
	Name string
	ID   string
	Lat  float64
	Lon  float64
}

// CreatePlace stores a resolved place in the given group, defaulting to a
// spot near the default Paris homebase
func (f *Factory) CreatePlace(t *testing.T, userID, group string, opts ...func(*PlaceOpts)) model.Place {
	t.Helper()

	o := &PlaceOpts{
		Name: fmt.Sprintf("Place %s", randomID()),
		ID:   fmt.Sprintf("place_%s", randomID()),
		Lat:  48.8606,
		Lon:  2.3376,
	}
	for _, fn := range opts {
		fn(o)
	}

	place, err := model.NewPlace(o.Name, o.ID, o.Lat, o.Lon)
	if err != nil {
		t.Fatalf("fixtures: invalid place: %v", err)
	}
	if err := f.dir.AddPlace(ctx(), userID, group, place); err != nil {
		t.Fatalf("fixtures: failed to create place: %v", err)
	}
	return place
}

// ============================================================================
// Daily Plan Fixtures
// ============================================================================

// CreatePlan appends the given place IDs to a fresh plan and returns the
// plan ID. The places must already exist in one of the user's groups.
func (f *Factory) CreatePlan(t *testing.T, userID string, placeIDs ...string) string {
	t.Helper()

	planID := fmt.Sprintf("plan_%s", randomID())
	for _, pid := range placeIDs {
		if err := f.dir.PlanAppend(ctx(), userID, planID, pid); err != nil {
			t.Fatalf("fixtures: failed to append %s to plan: %v", pid, err)
		}
	}
	return planID
}
