package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsync-cli/internal/core/domain"
)

func TestKnowledgeBaseHealth(t *testing.T) {
	kb := NewKnowledgeBase()

	assert.NoError(t, kb.Health(context.Background()))
}

func TestKnowledgeBaseInsertAndSearch(t *testing.T) {
	kb := NewKnowledgeBase()
	ctx := context.Background()

	metadata := map[string]any{"file_path": "docs/guide.md"}
	require.NoError(t, kb.Insert(ctx, "# Installation Guide", metadata))

	results := kb.Search(ctx, "installation", 10)
	require.Len(t, results, 1)
	assert.Equal(t, domain.DocumentID("docs/guide.md"), results[0].ID)
	assert.Equal(t, "# Installation Guide", results[0].Content)
}

func TestKnowledgeBaseInsertKeysByPath(t *testing.T) {
	kb := NewKnowledgeBase()
	ctx := context.Background()

	metadata := map[string]any{"file_path": "docs/guide.md"}
	require.NoError(t, kb.Insert(ctx, "first", metadata))
	require.NoError(t, kb.Insert(ctx, "second", metadata))

	// Same path means same identity; the second insert replaces the first.
	assert.Equal(t, 1, kb.Len())
}

func TestKnowledgeBaseUpdate(t *testing.T) {
	kb := NewKnowledgeBase()
	ctx := context.Background()

	metadata := map[string]any{"file_path": "docs/guide.md"}
	require.NoError(t, kb.Insert(ctx, "old", metadata))

	docID := domain.DocumentID("docs/guide.md")
	require.NoError(t, kb.Update(ctx, docID, "new", metadata))

	results := kb.Search(ctx, "new", 10)
	require.Len(t, results, 1)
	assert.Equal(t, "new", results[0].Content)
}

func TestKnowledgeBaseUpdateUnknownDocument(t *testing.T) {
	kb := NewKnowledgeBase()

	err := kb.Update(context.Background(), "missing", "content", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestKnowledgeBaseDelete(t *testing.T) {
	kb := NewKnowledgeBase()
	ctx := context.Background()

	require.NoError(t, kb.Insert(ctx, "content", map[string]any{"file_path": "docs/guide.md"}))
	require.NoError(t, kb.Delete(ctx, domain.DocumentID("docs/guide.md")))

	assert.Equal(t, 0, kb.Len())

	// Deleting again is not an error.
	assert.NoError(t, kb.Delete(ctx, domain.DocumentID("docs/guide.md")))
}

func TestKnowledgeBaseSearchHonoursLimit(t *testing.T) {
	kb := NewKnowledgeBase()
	ctx := context.Background()

	require.NoError(t, kb.Insert(ctx, "shared term one", map[string]any{"file_path": "a.md"}))
	require.NoError(t, kb.Insert(ctx, "shared term two", map[string]any{"file_path": "b.md"}))
	require.NoError(t, kb.Insert(ctx, "shared term three", map[string]any{"file_path": "c.md"}))

	assert.Len(t, kb.Search(ctx, "shared", 2), 2)
}

func TestKnowledgeBaseSearchNoMatch(t *testing.T) {
	kb := NewKnowledgeBase()
	ctx := context.Background()

	require.NoError(t, kb.Insert(ctx, "content", map[string]any{"file_path": "a.md"}))

	assert.Empty(t, kb.Search(ctx, "absent", 10))
}
