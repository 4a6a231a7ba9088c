package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fernweh/api/internal/directory"
	"github.com/fernweh/api/internal/model"
	"github.com/fernweh/api/internal/service"
)

// ============================================================================
// Test Helpers
// ============================================================================

func newPlanTestMux() (*http.ServeMux, *directory.Directory) {
	dir := directory.New()
	svc := service.NewPlanService(service.PlanServiceConfig{Directory: dir})
	h := NewPlanHandler(svc)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/users/{userId}/plans", h.List)
	mux.HandleFunc("GET /v1/users/{userId}/plans/{planId}", h.Get)
	mux.HandleFunc("PUT /v1/users/{userId}/plans/{planId}/places", h.AddStop)
	mux.HandleFunc("DELETE /v1/users/{userId}/plans/{planId}/places/{placeId}", h.RemoveStop)
	mux.HandleFunc("GET /v1/users/{userId}/plans/{planId}/route", h.Route)
	return mux, dir
}

// seedPlaces registers u-1 with a museums group holding two places.
func seedPlaces(t *testing.T, dir *directory.Directory) {
	t.Helper()
	ctx := context.Background()
	mustAddUser(t, dir, "u-1", 48.8566, 2.3522)
	if err := dir.AddGroup(ctx, "u-1", "museums"); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	louvre, _ := model.NewPlace("Louvre Museum", "p-louvre", 48.8606, 2.3376)
	eiffel, _ := model.NewPlace("Eiffel Tower", "p-eiffel", 48.8584, 2.2945)
	if err := dir.AddPlace(ctx, "u-1", "museums", louvre); err != nil {
		t.Fatalf("AddPlace: %v", err)
	}
	if err := dir.AddPlace(ctx, "u-1", "museums", eiffel); err != nil {
		t.Fatalf("AddPlace: %v", err)
	}
}

// ============================================================================
// AddStop Tests
// ============================================================================

func TestAddStop_CreatesPlanLazily(t *testing.T) {
	t.Parallel()

	mux, dir := newPlanTestMux()
	seedPlaces(t, dir)

	req := makeJSONRequest(http.MethodPut, "/v1/users/u-1/plans/day-1/places",
		model.AddStopRequest{PlaceID: "p-louvre"})
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var resp struct {
		Data model.ResolvedPlan `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.ID != "day-1" || len(resp.Data.Stops) != 1 {
		t.Errorf("unexpected plan %+v", resp.Data)
	}
	if resp.Data.Stops[0].Name != "Louvre Museum" {
		t.Errorf("expected resolved stop, got %+v", resp.Data.Stops[0])
	}
}

func TestAddStop_DuplicateStopsAllowed(t *testing.T) {
	t.Parallel()

	mux, dir := newPlanTestMux()
	seedPlaces(t, dir)

	for i := 0; i < 2; i++ {
		req := makeJSONRequest(http.MethodPut, "/v1/users/u-1/plans/day-1/places",
			model.AddStopRequest{PlaceID: "p-louvre"})
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
		}
	}

	plan, err := dir.Plan(context.Background(), "u-1", "day-1")
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(plan.PlaceIDs) != 2 {
		t.Errorf("expected 2 references, got %v", plan.PlaceIDs)
	}
}

func TestAddStop_UnknownPlace_NotFound(t *testing.T) {
	t.Parallel()

	mux, dir := newPlanTestMux()
	seedPlaces(t, dir)

	req := makeJSONRequest(http.MethodPut, "/v1/users/u-1/plans/day-1/places",
		model.AddStopRequest{PlaceID: "p-nope"})
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
	pd := decodeProblem(t, rr)
	if !strings.Contains(pd.Detail, "place") {
		t.Errorf("expected place-flavored detail, got %q", pd.Detail)
	}

	// a failed append must not create the plan
	ids, err := dir.PlanIDs(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("PlanIDs: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected no plans, got %v", ids)
	}
}

func TestAddStop_MissingPlaceID_Validation(t *testing.T) {
	t.Parallel()

	mux, dir := newPlanTestMux()
	seedPlaces(t, dir)

	req := makeJSONRequest(http.MethodPut, "/v1/users/u-1/plans/day-1/places",
		model.AddStopRequest{})
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, rr.Code)
	}
}

// ============================================================================
// RemoveStop Tests
// ============================================================================

func TestRemoveStop_NoContent(t *testing.T) {
	t.Parallel()

	mux, dir := newPlanTestMux()
	seedPlaces(t, dir)
	ctx := context.Background()
	if err := dir.PlanAppend(ctx, "u-1", "day-1", "p-louvre"); err != nil {
		t.Fatalf("PlanAppend: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/v1/users/u-1/plans/day-1/places/p-louvre", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rr.Code)
	}

	plan, err := dir.Plan(ctx, "u-1", "day-1")
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(plan.PlaceIDs) != 0 {
		t.Errorf("expected empty plan, got %v", plan.PlaceIDs)
	}
}

func TestRemoveStop_MissingPlan_NotFound(t *testing.T) {
	t.Parallel()

	mux, dir := newPlanTestMux()
	seedPlaces(t, dir)

	req := httptest.NewRequest(http.MethodDelete, "/v1/users/u-1/plans/day-9/places/p-louvre", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
	pd := decodeProblem(t, rr)
	if !strings.Contains(pd.Detail, "daily plan") {
		t.Errorf("expected plan-flavored detail, got %q", pd.Detail)
	}
}

// ============================================================================
// Get / List Tests
// ============================================================================

func TestGetPlan_SkipsDanglingReferences(t *testing.T) {
	t.Parallel()

	mux, dir := newPlanTestMux()
	seedPlaces(t, dir)
	ctx := context.Background()
	if err := dir.PlanAppend(ctx, "u-1", "day-1", "p-louvre"); err != nil {
		t.Fatalf("PlanAppend: %v", err)
	}
	if err := dir.PlanAppend(ctx, "u-1", "day-1", "p-eiffel"); err != nil {
		t.Fatalf("PlanAppend: %v", err)
	}
	// delete the louvre's group place; the plan keeps the raw reference
	if err := dir.RemovePlace(ctx, "u-1", "museums", "p-louvre"); err != nil {
		t.Fatalf("RemovePlace: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/users/u-1/plans/day-1", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp struct {
		Data model.ResolvedPlan `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data.PlaceIDs) != 2 {
		t.Errorf("expected both raw references, got %v", resp.Data.PlaceIDs)
	}
	if len(resp.Data.Stops) != 1 || resp.Data.Stops[0].ID != "p-eiffel" {
		t.Errorf("expected only the eiffel stop to resolve, got %+v", resp.Data.Stops)
	}
}

func TestListPlans_Sorted(t *testing.T) {
	t.Parallel()

	mux, dir := newPlanTestMux()
	seedPlaces(t, dir)
	ctx := context.Background()
	if err := dir.PlanAppend(ctx, "u-1", "day-2", "p-louvre"); err != nil {
		t.Fatalf("PlanAppend: %v", err)
	}
	if err := dir.PlanAppend(ctx, "u-1", "day-1", "p-eiffel"); err != nil {
		t.Fatalf("PlanAppend: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/users/u-1/plans", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp struct {
		Data []string       `json:"data"`
		Meta CollectionMeta `json:"meta"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Meta.Total != 2 || len(resp.Data) != 2 {
		t.Fatalf("expected 2 plans, got %+v", resp)
	}
	if resp.Data[0] != "day-1" || resp.Data[1] != "day-2" {
		t.Errorf("expected sorted plan ids, got %v", resp.Data)
	}
}

// ============================================================================
// Route Tests
// ============================================================================

func TestRoute_SummarizesLegsFromHome(t *testing.T) {
	t.Parallel()

	mux, dir := newPlanTestMux()
	seedPlaces(t, dir)
	ctx := context.Background()
	if err := dir.PlanAppend(ctx, "u-1", "day-1", "p-louvre"); err != nil {
		t.Fatalf("PlanAppend: %v", err)
	}
	if err := dir.PlanAppend(ctx, "u-1", "day-1", "p-eiffel"); err != nil {
		t.Fatalf("PlanAppend: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/users/u-1/plans/day-1/route", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var resp struct {
		Data model.RouteSummary `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.PlanID != "day-1" || len(resp.Data.Stops) != 2 {
		t.Fatalf("unexpected route %+v", resp.Data)
	}
	if resp.Data.Origin.Latitude != 48.8566 {
		t.Errorf("expected origin at home, got %+v", resp.Data.Origin)
	}
	// both stops are within Paris; sanity-check magnitudes, not exact values
	if resp.Data.Stops[0].LegKm <= 0 || resp.Data.Stops[0].LegKm > 5 {
		t.Errorf("leg 1 out of range: %f", resp.Data.Stops[0].LegKm)
	}
	if resp.Data.TotalKm <= resp.Data.Stops[0].LegKm {
		t.Errorf("total %f should exceed first leg %f", resp.Data.TotalKm, resp.Data.Stops[0].LegKm)
	}
}

func TestRoute_MissingPlan_NotFound(t *testing.T) {
	t.Parallel()

	mux, dir := newPlanTestMux()
	seedPlaces(t, dir)

	req := httptest.NewRequest(http.MethodGet, "/v1/users/u-1/plans/day-9/route", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
}

func TestRoute_UnknownUser_NotFound(t *testing.T) {
	t.Parallel()

	mux, _ := newPlanTestMux()

	req := httptest.NewRequest(http.MethodGet, "/v1/users/ghost/plans/day-1/route", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
	pd := decodeProblem(t, rr)
	if !strings.Contains(pd.Detail, "user") {
		t.Errorf("expected user-flavored detail, got %q", pd.Detail)
	}
}
