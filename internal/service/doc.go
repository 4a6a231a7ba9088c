// Package service implements the business logic layer for the Fernweh API.
//
// The service package contains all domain logic, validation rules, and
// orchestration of directory and gateway operations. Services are the
// primary abstraction between HTTP handlers and state.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with dependencies
//   - Methods implement business operations with proper validation
//   - Errors are returned as sentinel errors or wrapped errors for context
//   - Context is passed through for cancellation and request-scoped values
//
// # Directory and Gateway Interfaces
//
// Services define their own narrow interfaces over the directory and the
// geocoding gateway, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from the concrete store and provider client
//   - Clear contracts for what each service touches
//
// # Gateway Discipline
//
// Methods that call the provider (RegisterHomebase, UpdateHomebase,
// AddPlace) always resolve upstream first, bounded by a per-call timeout,
// and only then touch the directory. No directory state is held across a
// network call.
//
// # Error Handling
//
// Services return domain-specific errors defined as package-level variables:
//
//	var (
//	    ErrGroupNotFound = errors.New("activity group not found")
//	    ErrGroupExists   = errors.New("an activity group with this name already exists")
//	)
//
// Directory and gateway sentinels are translated at this layer; handlers
// only ever see this package's error set.
//
// # Example Usage
//
//	service := NewActivityService(ActivityServiceConfig{
//	    Directory: dir,
//	    Finder:    mapsClient,
//	})
//	place, err := service.AddPlace(ctx, userID, "museums", "musee d'orsay")
package service
