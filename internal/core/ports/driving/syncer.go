package driving

import (
	"context"

	"github.com/custodia-labs/docsync-cli/internal/core/domain"
)

// Syncer coordinates one synchronisation run per call. Every entry
// point performs a knowledge-base health preflight, detects the change
// set for its mode, processes it, and returns the batch counters.
type Syncer interface {
	// SyncSince synchronises changes made since the given commit.
	SyncSince(ctx context.Context, commit string) (domain.BatchResult, error)

	// SyncBetween synchronises changes between two commits.
	SyncBetween(ctx context.Context, from, to string) (domain.BatchResult, error)

	// SyncStaged synchronises currently staged changes.
	SyncStaged(ctx context.Context) (domain.BatchResult, error)

	// Status returns a snapshot of the current run.
	Status() SyncStatus
}

// SyncStatus is a point-in-time snapshot of a running or idle syncer.
type SyncStatus struct {
	// Running is true while a sync is in progress.
	Running bool

	// Processed is the number of changes applied so far.
	Processed int

	// Failed is the number of changes that failed so far.
	Failed int
}
