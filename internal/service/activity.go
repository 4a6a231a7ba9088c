package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fernweh/api/internal/model"
)

// ActivityDirectory defines the interface for group and place storage
type ActivityDirectory interface {
	Home(ctx context.Context, userID string) (model.Coordinate, error)
	AddGroup(ctx context.Context, userID, name string) error
	GroupExists(ctx context.Context, userID, name string) (bool, error)
	GroupNames(ctx context.Context, userID string) ([]string, error)
	Group(ctx context.Context, userID, name string) (*model.ActivityGroup, error)
	RemoveGroup(ctx context.Context, userID, name string) error
	AddPlace(ctx context.Context, userID, group string, place model.Place) error
	FindPlaceByName(ctx context.Context, userID, name string) (model.Place, error)
	Places(ctx context.Context, userID string) ([]model.Place, error)
	RemovePlace(ctx context.Context, userID, group, placeID string) error
}

// PlaceFinder defines the interface for place resolution
type PlaceFinder interface {
	FindPlace(ctx context.Context, query string, bias model.Coordinate) (model.Place, error)
}

// ActivityService handles activity groups and the places filed into them
type ActivityService struct {
	dir            ActivityDirectory
	finder         PlaceFinder
	geo            *GeoService
	gatewayTimeout time.Duration
	biasRadiusKm   float64
	logger         *slog.Logger
}

// ActivityServiceConfig holds configuration for the activity service
type ActivityServiceConfig struct {
	Directory      ActivityDirectory
	Finder         PlaceFinder
	Geo            *GeoService
	GatewayTimeout time.Duration // DefaultGatewayTimeout when zero
	BiasRadiusKm   float64       // used only to flag far-off results in logs
	Logger         *slog.Logger
}

// NewActivityService creates a new activity service
func NewActivityService(cfg ActivityServiceConfig) *ActivityService {
	timeout := cfg.GatewayTimeout
	if timeout == 0 {
		timeout = DefaultGatewayTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	geo := cfg.Geo
	if geo == nil {
		geo = NewGeoService()
	}
	return &ActivityService{
		dir:            cfg.Directory,
		finder:         cfg.Finder,
		geo:            geo,
		gatewayTimeout: timeout,
		biasRadiusKm:   cfg.BiasRadiusKm,
		logger:         logger,
	}
}

// CreateGroup creates an empty activity group for the user
func (s *ActivityService) CreateGroup(ctx context.Context, userID, name string) error {
	if err := validateGroupName(name); err != nil {
		return err
	}
	return mapDirectoryErr(s.dir.AddGroup(ctx, userID, name))
}

// GetGroup returns one activity group with its places
func (s *ActivityService) GetGroup(ctx context.Context, userID, name string) (*model.ActivityGroup, error) {
	group, err := s.dir.Group(ctx, userID, name)
	if err != nil {
		return nil, mapDirectoryErr(err)
	}
	return group, nil
}

// ListGroups returns the user's group names in lexicographic order
func (s *ActivityService) ListGroups(ctx context.Context, userID string) ([]string, error) {
	names, err := s.dir.GroupNames(ctx, userID)
	if err != nil {
		return nil, mapDirectoryErr(err)
	}
	return names, nil
}

// DeleteGroup removes a group and every place in it
func (s *ActivityService) DeleteGroup(ctx context.Context, userID, name string) error {
	return mapDirectoryErr(s.dir.RemoveGroup(ctx, userID, name))
}

// AddPlace resolves a free-text query through the place provider, biased
// toward the user's home, and files the first result into the named group.
// The user and group are checked before the provider call so a bad request
// fails without burning an upstream lookup; the group can still disappear
// between the check and the insert, which surfaces as ErrGroupNotFound.
func (s *ActivityService) AddPlace(ctx context.Context, userID, group, query string) (*model.Place, error) {
	if query == "" {
		return nil, ErrPlaceQueryRequired
	}
	if len(query) > model.MaxQueryLength {
		return nil, ErrPlaceQueryTooLong
	}

	home, err := s.dir.Home(ctx, userID)
	if err != nil {
		return nil, mapDirectoryErr(err)
	}
	exists, err := s.dir.GroupExists(ctx, userID, group)
	if err != nil {
		return nil, mapDirectoryErr(err)
	}
	if !exists {
		return nil, ErrGroupNotFound
	}

	gctx, cancel := context.WithTimeout(ctx, s.gatewayTimeout)
	defer cancel()
	place, err := s.finder.FindPlace(gctx, query, home)
	if err != nil {
		return nil, mapPlaceSearchErr(err)
	}

	// The provider treats the bias as a preference, not a filter; a query
	// like "Eiffel Tower" still resolves from anywhere. Worth a note in
	// the logs when that happens.
	if s.biasRadiusKm > 0 && !s.geo.IsWithinRadius(home, place.Location, s.biasRadiusKm) {
		s.logger.Warn("resolved place outside bias radius",
			"user_id", userID,
			"place_id", place.ID,
			"distance_km", s.geo.HaversineDistance(home, place.Location),
		)
	}

	if err := s.dir.AddPlace(ctx, userID, group, place); err != nil {
		return nil, mapDirectoryErr(err)
	}
	return &place, nil
}

// FindPlace looks a stored place up by display name, case-insensitively
func (s *ActivityService) FindPlace(ctx context.Context, userID, name string) (*model.Place, error) {
	if name == "" {
		return nil, ErrPlaceNameRequired
	}
	place, err := s.dir.FindPlaceByName(ctx, userID, name)
	if err != nil {
		return nil, mapDirectoryErr(err)
	}
	return &place, nil
}

// ListPlaces returns every place the user has stored, flattened across
// groups in deterministic order
func (s *ActivityService) ListPlaces(ctx context.Context, userID string) ([]model.Place, error) {
	places, err := s.dir.Places(ctx, userID)
	if err != nil {
		return nil, mapDirectoryErr(err)
	}
	return places, nil
}

// RemovePlace deletes every occurrence of the place from the named group
func (s *ActivityService) RemovePlace(ctx context.Context, userID, group, placeID string) error {
	if placeID == "" {
		return ErrPlaceIDRequired
	}
	return mapDirectoryErr(s.dir.RemovePlace(ctx, userID, group, placeID))
}

func validateGroupName(name string) error {
	if name == "" {
		return ErrGroupNameRequired
	}
	if len(name) > model.MaxGroupNameLength {
		return ErrGroupNameTooLong
	}
	if strings.TrimSpace(name) != name {
		return ErrGroupNameWhitespace
	}
	return nil
}
