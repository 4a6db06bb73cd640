// Package memory provides in-memory adapter implementations used for
// local development and testing without a running knowledge-base
// service.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/custodia-labs/docsync-cli/internal/core/domain"
	"github.com/custodia-labs/docsync-cli/internal/core/ports/driven"
)

// Ensure KnowledgeBase implements the interface.
var _ driven.KnowledgeBase = (*KnowledgeBase)(nil)

// document is one stored entry.
type document struct {
	content  string
	metadata map[string]any
}

// KnowledgeBase is an in-memory implementation of driven.KnowledgeBase.
// Documents are keyed by the identity derived from the file path in
// their metadata, mirroring how the remote service addresses them.
type KnowledgeBase struct {
	mu        sync.RWMutex
	documents map[string]document
}

// NewKnowledgeBase creates a new in-memory knowledge base.
func NewKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{
		documents: make(map[string]document),
	}
}

// Health always reports healthy.
func (k *KnowledgeBase) Health(_ context.Context) error {
	return nil
}

// Insert stores a new document.
func (k *KnowledgeBase) Insert(_ context.Context, content string, metadata map[string]any) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.documents[docIDFor(content, metadata)] = document{content: content, metadata: metadata}
	return nil
}

// Update replaces the document with the given identity.
func (k *KnowledgeBase) Update(_ context.Context, docID, content string, metadata map[string]any) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if _, ok := k.documents[docID]; !ok {
		return domain.ErrNotFound
	}
	k.documents[docID] = document{content: content, metadata: metadata}
	return nil
}

// Delete removes the document with the given identity. Deleting an
// unknown document is not an error, matching the remote service.
func (k *KnowledgeBase) Delete(_ context.Context, docID string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.documents, docID)
	return nil
}

// Search returns documents whose content contains the query,
// case-insensitively. Scores are uniform; this fake has no ranking.
func (k *KnowledgeBase) Search(_ context.Context, query string, limit int) []domain.SearchResult {
	k.mu.RLock()
	defer k.mu.RUnlock()

	needle := strings.ToLower(query)
	var results []domain.SearchResult
	for id, doc := range k.documents {
		if !strings.Contains(strings.ToLower(doc.content), needle) {
			continue
		}
		results = append(results, domain.SearchResult{
			ID:       id,
			Content:  doc.content,
			Score:    1.0,
			Metadata: doc.metadata,
		})
		if limit > 0 && len(results) >= limit {
			break
		}
	}
	return results
}

// Len returns the number of stored documents.
func (k *KnowledgeBase) Len() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.documents)
}

// docIDFor derives the document identity from metadata when a file
// path is present, falling back to the content hash.
func docIDFor(content string, metadata map[string]any) string {
	if path, ok := metadata["file_path"].(string); ok && path != "" {
		return domain.DocumentID(path)
	}
	return domain.ContentHash(content)
}
