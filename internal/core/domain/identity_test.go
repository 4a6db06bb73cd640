package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentIDDeterministic(t *testing.T) {
	first := DocumentID("docs/readme.md")
	second := DocumentID("docs/readme.md")

	assert.Equal(t, first, second, "same path must always yield the same identifier")
	assert.Len(t, first, 64, "identifier is a hex SHA-256 digest")
}

func TestDocumentIDDistinctPaths(t *testing.T) {
	assert.NotEqual(t, DocumentID("docs/a.md"), DocumentID("docs/b.md"))
	assert.NotEqual(t, DocumentID("docs/a.md"), DocumentID("documentation/a.md"))
}

func TestDocumentIDKnownValue(t *testing.T) {
	// Pinned so the identifier scheme cannot drift silently between
	// releases; existing knowledge-base documents are addressed by it.
	assert.Equal(t,
		"311fffb2f63c2d97ead8bee2b1b6ea35591871552bc00d572c3670212b043a34",
		DocumentID("docs/readme.md"))
}

func TestContentHashMatchesContentNotPath(t *testing.T) {
	hash := ContentHash("# Title")

	assert.Equal(t, hash, ContentHash("# Title"))
	assert.NotEqual(t, hash, ContentHash("# Other"))
	assert.NotEmpty(t, ContentHash(""), "empty content still hashes")
}
