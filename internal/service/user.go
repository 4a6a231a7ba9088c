package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fernweh/api/internal/model"
)

// DefaultGatewayTimeout bounds each provider call made by services
const DefaultGatewayTimeout = 10 * time.Second

// UserDirectory defines the interface for user storage
type UserDirectory interface {
	AddUser(ctx context.Context, id string, home model.Coordinate) error
	SetHome(ctx context.Context, userID string, home model.Coordinate) error
	Home(ctx context.Context, userID string) (model.Coordinate, error)
	Users(ctx context.Context) []model.UserSummary
	User(ctx context.Context, userID string) (*model.UserRecord, error)
}

// Geocoder defines the interface for address resolution
type Geocoder interface {
	Geocode(ctx context.Context, address string) (model.Coordinate, error)
}

// UserService handles user registration and listing
type UserService struct {
	users          UserDirectory
	geocoder       Geocoder
	gatewayTimeout time.Duration
	newID          func() string
}

// UserServiceConfig holds configuration for the user service
type UserServiceConfig struct {
	Users          UserDirectory
	Geocoder       Geocoder
	GatewayTimeout time.Duration // DefaultGatewayTimeout when zero
}

// NewUserService creates a new user service
func NewUserService(cfg UserServiceConfig) *UserService {
	timeout := cfg.GatewayTimeout
	if timeout == 0 {
		timeout = DefaultGatewayTimeout
	}
	return &UserService{
		users:          cfg.Users,
		geocoder:       cfg.Geocoder,
		gatewayTimeout: timeout,
		newID:          uuid.NewString,
	}
}

// RegisterHomebase geocodes an address and registers a new user anchored at
// it. The provider call happens before any directory state is touched and is
// bounded by the configured gateway timeout.
func (s *UserService) RegisterHomebase(ctx context.Context, address string) (*model.UserSummary, error) {
	if err := validateAddress(address); err != nil {
		return nil, err
	}

	gctx, cancel := context.WithTimeout(ctx, s.gatewayTimeout)
	defer cancel()
	home, err := s.geocoder.Geocode(gctx, address)
	if err != nil {
		return nil, mapGeocodeErr(err)
	}

	id := s.newID()
	if err := s.users.AddUser(ctx, id, home); err != nil {
		return nil, mapDirectoryErr(err)
	}
	return &model.UserSummary{ID: id, Home: home}, nil
}

// UpdateHomebase re-anchors an existing user at a new address. The address
// is resolved first; an unknown user fails after the provider call, never
// with a half-applied update.
func (s *UserService) UpdateHomebase(ctx context.Context, userID, address string) (*model.UserSummary, error) {
	if err := validateAddress(address); err != nil {
		return nil, err
	}

	gctx, cancel := context.WithTimeout(ctx, s.gatewayTimeout)
	defer cancel()
	home, err := s.geocoder.Geocode(gctx, address)
	if err != nil {
		return nil, mapGeocodeErr(err)
	}

	if err := s.users.SetHome(ctx, userID, home); err != nil {
		return nil, mapDirectoryErr(err)
	}
	return &model.UserSummary{ID: userID, Home: home}, nil
}

// ListUsers returns all users in registration order
func (s *UserService) ListUsers(ctx context.Context) ([]model.UserSummary, error) {
	return s.users.Users(ctx), nil
}

// GetUser returns the full record for one user
func (s *UserService) GetUser(ctx context.Context, userID string) (*model.UserRecord, error) {
	rec, err := s.users.User(ctx, userID)
	if err != nil {
		return nil, mapDirectoryErr(err)
	}
	return rec, nil
}

func validateAddress(address string) error {
	if address == "" {
		return ErrAddressRequired
	}
	if len(address) > model.MaxQueryLength {
		return ErrAddressTooLong
	}
	return nil
}
