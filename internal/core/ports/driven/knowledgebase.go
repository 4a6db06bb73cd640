package driven

import (
	"context"

	"github.com/custodia-labs/docsync-cli/internal/core/domain"
)

// KnowledgeBase is the write-side interface to the external document
// service. Each call performs at most one HTTP request; there are no
// retries and a failed call is final for that operation. The single
// deliberate exception, the update-then-insert fallback for modified
// files, lives in the change processor, not here.
type KnowledgeBase interface {
	// Health checks that the service is reachable and ready.
	// Returns nil when healthy.
	Health(ctx context.Context) error

	// Insert stores a new document. The service assigns storage;
	// callers identify documents through metadata and DocumentID.
	Insert(ctx context.Context, content string, metadata map[string]any) error

	// Update replaces the document addressed by docID.
	Update(ctx context.Context, docID, content string, metadata map[string]any) error

	// Delete removes the document addressed by docID.
	Delete(ctx context.Context, docID string) error

	// Search queries indexed documents. Search is advisory: failures
	// are logged by the implementation and reported as an empty result,
	// never as an error.
	Search(ctx context.Context, query string, limit int) []domain.SearchResult
}
