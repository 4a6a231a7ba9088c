package jobs

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fernweh/api/internal/directory"
	"github.com/fernweh/api/internal/storage"
)

// SnapshotWriter periodically persists the directory to the snapshot store
type SnapshotWriter struct {
	dir      *directory.Directory
	store    storage.Store
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex

	// lastRevision is the directory revision of the last saved snapshot.
	// Cycles where the revision has not moved skip the write entirely.
	lastRevision atomic.Int64
}

// NewSnapshotWriter creates a new snapshot writer job. The current directory
// revision counts as already saved, so a freshly restored directory is not
// re-persisted until something changes.
func NewSnapshotWriter(dir *directory.Directory, store storage.Store, interval time.Duration) *SnapshotWriter {
	if interval == 0 {
		interval = 5 * time.Minute
	}
	w := &SnapshotWriter{
		dir:      dir,
		store:    store,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
	w.lastRevision.Store(dir.Revision())
	return w
}

// Start begins the snapshot writer job
func (w *SnapshotWriter) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	w.wg.Add(1)
	go w.run()
	slog.Info("snapshot writer started", "interval", w.interval)
}

// Stop gracefully stops the snapshot writer job
func (w *SnapshotWriter) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	w.wg.Wait()
	slog.Info("snapshot writer stopped")
}

// run is the main loop
func (w *SnapshotWriter) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.writeSnapshot()
		case <-w.stopCh:
			return
		}
	}
}

// writeSnapshot runs one persistence cycle with a bounded timeout
func (w *SnapshotWriter) writeSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := w.RunOnce(ctx); err != nil {
		slog.Error("snapshot write failed", "error", err)
	}
}

// RunOnce persists a snapshot immediately when the directory has changed
// since the last save. It is also called directly during shutdown for a
// final save.
func (w *SnapshotWriter) RunOnce(ctx context.Context) error {
	rev := w.dir.Revision()
	if rev == w.lastRevision.Load() {
		return nil
	}

	snap := w.dir.Snapshot(ctx)
	if err := w.store.Save(ctx, snap); err != nil {
		return err
	}
	w.lastRevision.Store(rev)

	slog.Info("snapshot saved", "revision", rev, "users", len(snap.Users))
	return nil
}

// IsRunning returns whether the writer is running
func (w *SnapshotWriter) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}
