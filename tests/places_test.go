package tests

/*
FEATURE: Place Search & Storage
DOMAIN: Place Provider Integration

ACCEPTANCE CRITERIA:
===================

AC-PLC-001: Add Place
  GIVEN a user with a group and a provider result for the query
  WHEN the user adds a place by free-text query
  THEN the first provider result is stored in the group

AC-PLC-002: Add Place - Home Bias
  GIVEN a user anchored at a homebase
  WHEN a place query is sent to the provider
  THEN the request carries the home coordinate and the configured radius

AC-PLC-003: Add Place - Query Miss
  GIVEN the provider has no result for the query
  WHEN the user adds a place
  THEN the request fails with a query-not-found error

AC-PLC-004: Add Place - Provider Outage
  GIVEN the provider is failing
  WHEN the user adds a place
  THEN the request fails with an upstream error

AC-PLC-005: List Places
  GIVEN places spread across several groups
  WHEN the user lists places
  THEN all places come back, groups in name order

AC-PLC-006: Find Place By Name
  GIVEN a stored place named "Louvre"
  WHEN the user searches for "louvre"
  THEN the lookup matches case-insensitively

AC-PLC-007: Remove Place
  GIVEN a place stored twice in a group
  WHEN the user removes it
  THEN every occurrence is gone; removing again is a no-op
*/

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernweh/api/internal/service"
	"github.com/fernweh/api/internal/testing/fixtures"
)

func TestPlaces_Add(t *testing.T) {
	// AC-PLC-001: Add Place
	svc, gw, f, _ := newActivityService(t)
	ctx := context.Background()

	userID := f.CreateUser(t)
	group := f.CreateGroup(t, userID)

	gw.SetPlace("louvre museum", "Louvre Museum", "place-louvre", 48.8606, 2.3376)

	place, err := svc.AddPlace(ctx, userID, group, "louvre museum")
	require.NoError(t, err)
	require.NotNil(t, place)
	assert.Equal(t, "Louvre Museum", place.Name)
	assert.Equal(t, "place-louvre", place.ID)
	assert.InDelta(t, 48.8606, place.Location.Latitude, 1e-9)

	fetched, err := svc.GetGroup(ctx, userID, group)
	require.NoError(t, err)
	require.Len(t, fetched.Places, 1)
	assert.Equal(t, "place-louvre", fetched.Places[0].ID)
}

func TestPlaces_Add_HomeBias(t *testing.T) {
	// AC-PLC-002: Add Place - Home Bias
	svc, gw, f, _ := newActivityService(t)
	ctx := context.Background()

	userID := f.CreateUser(t, func(o *fixtures.UserOpts) {
		o.Home.Latitude = 38.7223
		o.Home.Longitude = -9.1393
	})
	group := f.CreateGroup(t, userID)

	gw.SetPlace("pastel shop", "Pasteis de Belem", "place-belem", 38.6975, -9.2033)

	_, err := svc.AddPlace(ctx, userID, group, "pastel shop")
	require.NoError(t, err)

	bias, radius := gw.LastBias()
	assert.Equal(t, "38.7223,-9.1393", bias)
	assert.NotEmpty(t, radius)
}

func TestPlaces_Add_QueryMiss(t *testing.T) {
	// AC-PLC-003: Add Place - Query Miss
	svc, _, f, _ := newActivityService(t)
	ctx := context.Background()

	userID := f.CreateUser(t)
	group := f.CreateGroup(t, userID)

	place, err := svc.AddPlace(ctx, userID, group, "nowhere at all")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrPlaceQueryNotFound)
	assert.Nil(t, place)
}

func TestPlaces_Add_ProviderOutage(t *testing.T) {
	// AC-PLC-004: Add Place - Provider Outage
	svc, gw, f, _ := newActivityService(t)
	ctx := context.Background()

	userID := f.CreateUser(t)
	group := f.CreateGroup(t, userID)

	gw.FailWithStatus("REQUEST_DENIED")

	place, err := svc.AddPlace(ctx, userID, group, "anything")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrGatewayUnavailable)
	assert.Nil(t, place)
}

func TestPlaces_Add_MissingGroup_NoProviderCall(t *testing.T) {
	svc, gw, f, _ := newActivityService(t)
	ctx := context.Background()

	userID := f.CreateUser(t)

	_, err := svc.AddPlace(ctx, userID, "nope", "anything")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrGroupNotFound)

	// The group check happens before the lookup
	assert.Equal(t, 0, gw.PlaceCalls())
}

func TestPlaces_Add_EmptyQuery(t *testing.T) {
	svc, _, f, _ := newActivityService(t)
	ctx := context.Background()

	userID := f.CreateUser(t)
	group := f.CreateGroup(t, userID)

	_, err := svc.AddPlace(ctx, userID, group, "")
	assert.ErrorIs(t, err, service.ErrPlaceQueryRequired)
}

func TestPlaces_List_AcrossGroups(t *testing.T) {
	// AC-PLC-005: List Places
	svc, _, f, _ := newActivityService(t)
	ctx := context.Background()

	userID := f.CreateUser(t)
	f.CreateGroup(t, userID, func(o *fixtures.GroupOpts) { o.Name = "beaches" })
	f.CreateGroup(t, userID, func(o *fixtures.GroupOpts) { o.Name = "museums" })

	beach := f.CreatePlace(t, userID, "beaches", func(o *fixtures.PlaceOpts) { o.Name = "Guincho" })
	museum := f.CreatePlace(t, userID, "museums", func(o *fixtures.PlaceOpts) { o.Name = "Louvre" })

	places, err := svc.ListPlaces(ctx, userID)
	require.NoError(t, err)
	require.Len(t, places, 2)
	// Groups are walked in name order: beaches before museums
	assert.Equal(t, beach.ID, places[0].ID)
	assert.Equal(t, museum.ID, places[1].ID)
}

func TestPlaces_FindByName_CaseInsensitive(t *testing.T) {
	// AC-PLC-006: Find Place By Name
	svc, _, f, _ := newActivityService(t)
	ctx := context.Background()

	userID := f.CreateUser(t)
	group := f.CreateGroup(t, userID)
	stored := f.CreatePlace(t, userID, group, func(o *fixtures.PlaceOpts) { o.Name = "Louvre" })

	place, err := svc.FindPlace(ctx, userID, "louvre")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, place.ID)

	place, err = svc.FindPlace(ctx, userID, "LOUVRE")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, place.ID)
}

func TestPlaces_FindByName_Missing(t *testing.T) {
	svc, _, f, _ := newActivityService(t)
	ctx := context.Background()

	userID := f.CreateUser(t)
	f.CreateGroup(t, userID)

	place, err := svc.FindPlace(ctx, userID, "nothing here")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrPlaceNotFound)
	assert.Nil(t, place)
}

func TestPlaces_Remove_EveryOccurrence(t *testing.T) {
	// AC-PLC-007: Remove Place
	svc, _, f, _ := newActivityService(t)
	ctx := context.Background()

	userID := f.CreateUser(t)
	group := f.CreateGroup(t, userID)

	// Store the same place twice; duplicates are kept, not collapsed
	place := f.CreatePlace(t, userID, group, func(o *fixtures.PlaceOpts) { o.ID = "place-dup" })
	f.CreatePlace(t, userID, group, func(o *fixtures.PlaceOpts) {
		o.ID = place.ID
		o.Name = place.Name
	})

	places, err := svc.ListPlaces(ctx, userID)
	require.NoError(t, err)
	require.Len(t, places, 2)

	require.NoError(t, svc.RemovePlace(ctx, userID, group, place.ID))

	places, err = svc.ListPlaces(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, places)

	// Absent place is a no-op, not an error
	assert.NoError(t, svc.RemovePlace(ctx, userID, group, place.ID))
}

func TestPlaces_Remove_MissingGroup(t *testing.T) {
	svc, _, f, _ := newActivityService(t)
	ctx := context.Background()

	userID := f.CreateUser(t)

	err := svc.RemovePlace(ctx, userID, "nope", "place-1")
	assert.ErrorIs(t, err, service.ErrGroupNotFound)
}
