package driven

import (
	"context"

	"github.com/custodia-labs/docsync-cli/internal/core/domain"
)

// RunStore persists the outcome of completed synchronisation runs for
// operator visibility. History is append-only observability data; no
// sync decision ever reads it.
type RunStore interface {
	// Record appends one completed run.
	Record(ctx context.Context, run domain.SyncRun) error

	// ListRecent returns up to limit runs, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.SyncRun, error)

	// Close releases resources.
	Close() error
}
