package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPolicy() SyncPolicy {
	return SyncPolicy{
		WatchDirectories: []string{"docs/", "documentation/"},
		FileExtensions:   []string{".md", ".markdown"},
		ExcludePatterns:  []string{"**/node_modules/**", "**/build/**", "*.draft.md"},
	}
}

func TestPolicyAllows(t *testing.T) {
	policy := testPolicy()

	assert.True(t, policy.Allows("docs/readme.md"))
	assert.True(t, policy.Allows("documentation/guide.markdown"))
	assert.True(t, policy.Allows("docs/nested/deep/page.md"))
}

// Each of the three filter conditions has an independent falsifying case.

func TestPolicyRejectsOutsideWatchedDirectories(t *testing.T) {
	policy := testPolicy()

	assert.False(t, policy.Allows("src/readme.md"), "right extension, wrong directory")
	assert.False(t, policy.Allows("readme.md"), "repository root is not watched")
}

func TestPolicyRejectsUnacceptedExtension(t *testing.T) {
	policy := testPolicy()

	assert.False(t, policy.Allows("docs/diagram.png"), "right directory, wrong extension")
	assert.False(t, policy.Allows("docs/readme"), "no extension at all")
}

func TestPolicyRejectsExcludedPaths(t *testing.T) {
	policy := testPolicy()

	assert.False(t, policy.Allows("docs/node_modules/pkg/readme.md"))
	assert.False(t, policy.Allows("docs/build/output.md"))
	assert.False(t, policy.Allows("docs/page.draft.md"), "filename glob exclude")
}

func TestPolicyEmptyWatchListRejectsEverything(t *testing.T) {
	policy := SyncPolicy{FileExtensions: []string{".md"}}

	assert.False(t, policy.Allows("docs/readme.md"))
}

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"*.md", "readme.md", true},
		{"*.md", "docs/readme.md", true}, // base-name match
		{"docs/*.md", "docs/readme.md", true},
		{"docs/*.md", "docs/sub/readme.md", false},
		{"**/node_modules/**", "a/node_modules/b/c.md", true},
		{"**/node_modules/**", "node_modules/c.md", true},
		{"**/node_modules/**", "docs/modules/c.md", false},
		{"docs/**", "docs/a/b/c.md", true},
		{"docs/**", "src/a.md", false},
		{"**/*.tmp", "deep/nested/file.tmp", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, matchGlob(tt.pattern, tt.path),
			"pattern %q against %q", tt.pattern, tt.path)
	}
}
