package domain

// ChangeType represents the kind of file-level change.
type ChangeType int

const (
	// ChangeAdded indicates a newly created file.
	ChangeAdded ChangeType = iota

	// ChangeModified indicates a file whose content changed.
	ChangeModified

	// ChangeDeleted indicates a removed file.
	ChangeDeleted

	// ChangeRenamed indicates a file that moved to a new path.
	ChangeRenamed
)

// String returns the lowercase name of the change type.
// Used in knowledge-base metadata and log output.
func (t ChangeType) String() string {
	switch t {
	case ChangeAdded:
		return "added"
	case ChangeModified:
		return "modified"
	case ChangeDeleted:
		return "deleted"
	case ChangeRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// Change represents one file-level difference between two repository
// states. Changes are produced by the change detector, consumed by the
// change processor, and never persisted across runs.
type Change struct {
	// Path is the repository-relative path. For renames this is the
	// new path.
	Path string

	// Type is the kind of change.
	Type ChangeType

	// OldPath is the prior path for renamed files. Empty for every
	// other change type.
	OldPath string

	// Content is the full file text at the target state. Empty for
	// deleted files and for files that could not be read.
	Content string

	// ContentHash is the digest of Content. Set exactly when content
	// was read; a change with an empty hash carries no usable content.
	ContentHash string
}

// HasContent reports whether the change carries readable file content.
// Content and ContentHash are always set together, so the hash doubles
// as the presence marker (an empty file still hashes to a non-empty
// digest).
func (c *Change) HasContent() bool {
	return c.ContentHash != ""
}
