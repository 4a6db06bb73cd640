package domain

import "time"

// BatchResult accumulates the outcome counters for one processing run.
// Counters only ever increase during a run; results are never merged
// across runs.
type BatchResult struct {
	// Processed is the number of changes applied successfully.
	Processed int

	// Failed is the number of changes that could not be applied.
	Failed int

	// Skipped is reserved for future filtering policy. No current code
	// path increments it, but the field is part of the reported result.
	Skipped int
}

// Total returns the number of changes accounted for.
func (r BatchResult) Total() int {
	return r.Processed + r.Failed + r.Skipped
}

// Sync run modes.
const (
	// ModeSince synchronises changes between a commit and HEAD.
	ModeSince = "since"

	// ModeBetween synchronises changes between two commits.
	ModeBetween = "between"

	// ModeStaged synchronises currently staged changes.
	ModeStaged = "staged"
)

// SyncRun is the record of one completed synchronisation run, kept for
// operator visibility. Run history is observability only; the change
// set itself is recomputed from the repository on every invocation.
type SyncRun struct {
	// ID uniquely identifies the run.
	ID string

	// Mode is the invocation mode (since, between, staged).
	Mode string

	// FromRev is the starting revision, empty for staged mode.
	FromRev string

	// ToRev is the ending revision, empty unless the mode names one.
	ToRev string

	// Result holds the final batch counters.
	Result BatchResult

	// StartedAt is when the run began.
	StartedAt time.Time

	// FinishedAt is when the run completed.
	FinishedAt time.Time
}

// SearchResult is one advisory search hit returned by the knowledge
// base. Search is diagnostic only and never part of the write path.
type SearchResult struct {
	// ID is the knowledge-base document identifier, when reported.
	ID string

	// Content is the matched content or snippet.
	Content string

	// Score is the relevance score, when reported.
	Score float64

	// Metadata contains service-specific key-value pairs.
	Metadata map[string]any
}
