// Package jobs implements background job processing for the Fernweh API.
//
// The jobs package contains scheduled tasks that run independently of HTTP
// request handling.
//
// # Job Types
//
// Available background jobs:
//
//   - SnapshotWriter: periodic persistence of the directory to SQLite
//
// # Lifecycle
//
// Jobs expose Start and Stop and manage their own goroutine:
//
//	writer := jobs.NewSnapshotWriter(dir, store, 5*time.Minute)
//	writer.Start()
//	defer writer.Stop()
//
// Stop blocks until the in-flight cycle finishes, so a final RunOnce during
// shutdown never races the scheduler loop.
//
// # Error Handling
//
// Jobs log errors but don't crash the application. A failed snapshot write
// is retried on the next cycle.
package jobs
