package service

import (
	"context"

	"github.com/fernweh/api/internal/model"
)

// PlanDirectory defines the interface for daily plan storage
type PlanDirectory interface {
	Home(ctx context.Context, userID string) (model.Coordinate, error)
	PlanAppend(ctx context.Context, userID, planID, placeID string) error
	PlanRemove(ctx context.Context, userID, planID, placeID string) error
	Plan(ctx context.Context, userID, planID string) (*model.ResolvedPlan, error)
	PlanIDs(ctx context.Context, userID string) ([]string, error)
}

// PlanService handles daily plans and their route summaries
type PlanService struct {
	dir PlanDirectory
	geo *GeoService
}

// PlanServiceConfig holds configuration for the plan service
type PlanServiceConfig struct {
	Directory PlanDirectory
	Geo       *GeoService
}

// NewPlanService creates a new plan service
func NewPlanService(cfg PlanServiceConfig) *PlanService {
	geo := cfg.Geo
	if geo == nil {
		geo = NewGeoService()
	}
	return &PlanService{
		dir: cfg.Directory,
		geo: geo,
	}
}

// AddStop appends a place reference to a daily plan, creating the plan on
// first use. The reference must name a place the user currently holds.
func (s *PlanService) AddStop(ctx context.Context, userID, planID, placeID string) (*model.ResolvedPlan, error) {
	if err := validatePlanID(planID); err != nil {
		return nil, err
	}
	if placeID == "" {
		return nil, ErrPlaceIDRequired
	}

	if err := s.dir.PlanAppend(ctx, userID, planID, placeID); err != nil {
		return nil, mapDirectoryErr(err)
	}
	plan, err := s.dir.Plan(ctx, userID, planID)
	if err != nil {
		return nil, mapDirectoryErr(err)
	}
	return plan, nil
}

// RemoveStop deletes every occurrence of the reference from an existing
// plan. A reference that is not present is a no-op; a missing plan is not.
func (s *PlanService) RemoveStop(ctx context.Context, userID, planID, placeID string) error {
	if err := validatePlanID(planID); err != nil {
		return err
	}
	if placeID == "" {
		return ErrPlaceIDRequired
	}
	return mapDirectoryErr(s.dir.PlanRemove(ctx, userID, planID, placeID))
}

// GetPlan resolves a daily plan. Stops list the places the references
// resolve to today; stale references stay visible in PlaceIDs.
func (s *PlanService) GetPlan(ctx context.Context, userID, planID string) (*model.ResolvedPlan, error) {
	plan, err := s.dir.Plan(ctx, userID, planID)
	if err != nil {
		return nil, mapDirectoryErr(err)
	}
	return plan, nil
}

// ListPlans returns the user's plan IDs in lexicographic order
func (s *PlanService) ListPlans(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.dir.PlanIDs(ctx, userID)
	if err != nil {
		return nil, mapDirectoryErr(err)
	}
	return ids, nil
}

// Route summarizes a daily plan as straight-line legs starting from the
// user's home. Unresolvable references are skipped, matching GetPlan.
func (s *PlanService) Route(ctx context.Context, userID, planID string) (*model.RouteSummary, error) {
	home, err := s.dir.Home(ctx, userID)
	if err != nil {
		return nil, mapDirectoryErr(err)
	}
	plan, err := s.dir.Plan(ctx, userID, planID)
	if err != nil {
		return nil, mapDirectoryErr(err)
	}

	summary := &model.RouteSummary{
		PlanID: planID,
		Origin: home,
		Stops:  make([]model.RouteStop, 0, len(plan.Stops)),
	}

	prev := home
	total := 0.0
	for _, place := range plan.Stops {
		leg := s.geo.HaversineDistance(prev, place.Location)
		total += leg
		summary.Stops = append(summary.Stops, model.RouteStop{
			Place: place,
			LegKm: leg,
			AggKm: total,
		})
		prev = place.Location
	}
	summary.TotalKm = total
	return summary, nil
}

func validatePlanID(planID string) error {
	if planID == "" {
		return ErrPlanIDRequired
	}
	if len(planID) > model.MaxPlanIDLength {
		return ErrPlanIDTooLong
	}
	return nil
}
