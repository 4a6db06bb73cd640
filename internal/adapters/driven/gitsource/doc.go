// Package gitsource implements the ChangeSource port by invoking the
// git binary. It runs name-status diffs between revisions (or against
// the index for staged mode), classifies each status line into a typed
// change record, filters by the sync policy, and reads file content
// from the working tree.
//
// A failing git invocation degrades to an empty change set: the error
// is logged and the run continues with nothing to do. Git itself is
// never reimplemented here.
package gitsource
