package driven

import (
	"context"

	"github.com/custodia-labs/docsync-cli/internal/core/domain"
)

// ChangeSource produces the ordered change set between two repository
// states, already filtered by the sync policy.
//
// Implementations treat a failing or unparseable version-control
// invocation as an empty change set (logged, not returned as an error),
// so a broken working copy degrades to "nothing to do" rather than a
// failed run. The error return is reserved for programming errors such
// as invalid arguments.
type ChangeSource interface {
	// ChangesSince returns changes between commit and HEAD.
	ChangesSince(ctx context.Context, commit string) ([]domain.Change, error)

	// ChangesBetween returns changes between two commits.
	ChangesBetween(ctx context.Context, from, to string) ([]domain.Change, error)

	// StagedChanges returns changes currently staged in the index.
	StagedChanges(ctx context.Context) ([]domain.Change, error)
}
