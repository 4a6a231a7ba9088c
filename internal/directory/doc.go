// Package directory provides the in-memory store of record for the Fernweh API.
//
// The Directory holds every user together with their activity groups and daily
// plans. It is the source of truth at runtime; the snapshot subsystem persists
// and restores it but never owns the data.
//
// # Concurrency Model
//
// Locking is two-level. A directory-level RWMutex guards the user table and
// registration order, and is held only long enough to look up, insert, or
// remove an entry. Each user entry carries its own RWMutex guarding that
// user's groups and plans. Operations on different users therefore never
// contend; operations on the same user serialize writer-exclusive.
//
// No directory lock is ever held across a network call. Callers resolve
// external lookups (geocoding, place search) first and only then mutate the
// directory.
//
// # Copy Discipline
//
// Every value returned by a Directory method is a copy. Callers cannot reach
// internal state through a returned slice or struct, and stored places are
// never mutated after insertion.
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrUserNotFound: user ID does not exist
//   - ErrGroupNotFound: activity group does not exist for this user
//   - ErrPlanNotFound: daily plan does not exist for this user
//   - ErrPlaceNotFound: place does not exist for this user
//   - ErrGroupExists: activity group name already taken for this user
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, directory.ErrGroupNotFound) {
//	    // Handle missing group
//	}
//
// # Snapshots
//
// Snapshot() produces a consistent point-in-time model.Snapshot; Restore()
// replaces all state from one. Registration order is part of the snapshot, so
// user listings stay stable across a restart.
package directory
