package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeTypeString(t *testing.T) {
	tests := []struct {
		changeType ChangeType
		want       string
	}{
		{ChangeAdded, "added"},
		{ChangeModified, "modified"},
		{ChangeDeleted, "deleted"},
		{ChangeRenamed, "renamed"},
		{ChangeType(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.changeType.String())
	}
}

func TestChangeHasContent(t *testing.T) {
	withContent := Change{
		Path:        "docs/new.md",
		Type:        ChangeAdded,
		Content:     "# New",
		ContentHash: ContentHash("# New"),
	}
	assert.True(t, withContent.HasContent())

	// An empty file is still content: the hash marks presence.
	emptyFile := Change{
		Path:        "docs/empty.md",
		Type:        ChangeAdded,
		ContentHash: ContentHash(""),
	}
	assert.True(t, emptyFile.HasContent())

	unreadable := Change{Path: "docs/gone.md", Type: ChangeModified}
	assert.False(t, unreadable.HasContent())
}
