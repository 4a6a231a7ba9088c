// Package storage persists directory snapshots for the Fernweh API.
//
// The directory is the runtime source of truth; this package only gives it a
// crash-recovery boundary. Snapshots are serialized JSON blobs written on an
// interval and at shutdown, and the newest one is loaded at boot. A crash
// loses at most the window since the last write.
//
// # Store Interface
//
// The Store interface defines core operations:
//
//	type Store interface {
//	    Save(ctx context.Context, snap *model.Snapshot) error
//	    LoadLatest(ctx context.Context) (*model.Snapshot, error)
//	    Ping(ctx context.Context) error
//	    Close() error
//	}
//
// # SQLite Implementation
//
// SQLiteStore implements Store over modernc.org/sqlite (pure Go, no cgo):
//
//	store, err := storage.OpenSQLite(storage.SQLiteConfig{
//	    Path: "fernweh.db",
//	    Keep: 5,
//	})
//
// Each Save inserts a new row and prunes the table down to the Keep newest
// rows, so a corrupted final write still leaves earlier snapshots to fall
// back to by hand.
//
// # Error Types
//
// Standard error types for snapshot operations:
//
//   - ErrNoSnapshot: the store holds no snapshot yet
//   - ErrCorrupt: the newest snapshot payload failed to decode
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, storage.ErrNoSnapshot) {
//	    // First boot; start empty
//	}
package storage
