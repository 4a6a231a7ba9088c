package storage

import (
	"context"
	"errors"

	"github.com/fernweh/api/internal/model"
)

// Standard errors for snapshot operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrNoSnapshot indicates the store holds no snapshot yet.
	ErrNoSnapshot = errors.New("no snapshot stored")

	// ErrCorrupt indicates the stored payload failed to decode.
	ErrCorrupt = errors.New("corrupt snapshot")
)

// Store defines the interface for snapshot persistence
type Store interface {
	// Save serializes and stores a snapshot
	Save(ctx context.Context, snap *model.Snapshot) error

	// LoadLatest returns the most recently saved snapshot
	LoadLatest(ctx context.Context) (*model.Snapshot, error)

	// Ping verifies the store is reachable
	Ping(ctx context.Context) error

	// Close releases the underlying resources
	Close() error
}
