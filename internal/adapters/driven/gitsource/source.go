package gitsource

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/docsync-cli/internal/core/domain"
	"github.com/custodia-labs/docsync-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docsync-cli/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.ChangeSource = (*Source)(nil)

// Source detects documentation changes in a git repository.
type Source struct {
	runner   Runner
	repoPath string
	policy   domain.SyncPolicy
}

// New creates a change source for the repository at repoPath, filtered
// by the given policy.
func New(repoPath string, policy domain.SyncPolicy) *Source {
	return &Source{
		runner:   &execRunner{dir: repoPath},
		repoPath: repoPath,
		policy:   policy,
	}
}

// NewWithRunner creates a change source with a custom command runner.
// Used by tests to avoid a real repository.
func NewWithRunner(runner Runner, repoPath string, policy domain.SyncPolicy) *Source {
	return &Source{
		runner:   runner,
		repoPath: repoPath,
		policy:   policy,
	}
}

// ChangesSince returns changes between commit and HEAD.
func (s *Source) ChangesSince(ctx context.Context, commit string) ([]domain.Change, error) {
	return s.diff(ctx, "diff", "--name-status", commit, "HEAD")
}

// ChangesBetween returns changes between two commits.
func (s *Source) ChangesBetween(ctx context.Context, from, to string) ([]domain.Change, error) {
	return s.diff(ctx, "diff", "--name-status", from, to)
}

// StagedChanges returns changes currently staged in the index.
func (s *Source) StagedChanges(ctx context.Context) ([]domain.Change, error) {
	return s.diff(ctx, "diff", "--cached", "--name-status")
}

// diff runs one git diff invocation and converts its output to change
// records. Git failure is a recoverable condition: the error is logged
// and an empty change set returned, so a broken checkout degrades to
// "nothing to synchronise" instead of failing the run.
func (s *Source) diff(ctx context.Context, args ...string) ([]domain.Change, error) {
	output, err := s.runner.Run(ctx, args...)
	if err != nil {
		logger.Error("git command failed: %v", err)
		return nil, nil
	}

	changes := []domain.Change{}
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		change, ok := s.parseLine(line)
		if !ok {
			continue
		}
		changes = append(changes, change)
	}

	return changes, nil
}

// parseLine converts one name-status line into a change record.
//
// Lines have the form "<status>\t<path>" or, for renames,
// "<status>\t<old>\t<new>". Lines with unrecognised status codes or
// paths outside the sync policy are dropped.
func (s *Source) parseLine(line string) (domain.Change, bool) {
	if line == "" {
		return domain.Change{}, false
	}

	parts := strings.Split(line, "\t")
	if len(parts) < 2 {
		return domain.Change{}, false
	}

	status := parts[0]
	path := parts[1]
	oldPath := ""

	var changeType domain.ChangeType
	switch {
	case strings.HasPrefix(status, "A"):
		changeType = domain.ChangeAdded
	case strings.HasPrefix(status, "M"):
		changeType = domain.ChangeModified
	case strings.HasPrefix(status, "D"):
		changeType = domain.ChangeDeleted
	case strings.HasPrefix(status, "R"):
		if len(parts) < 3 {
			return domain.Change{}, false
		}
		changeType = domain.ChangeRenamed
		oldPath = parts[1]
		path = parts[2]
	default:
		// Copies, unmerged paths and anything exotic are not
		// synchronised.
		return domain.Change{}, false
	}

	if !s.policy.Allows(path) {
		return domain.Change{}, false
	}

	change := domain.Change{
		Path:    path,
		Type:    changeType,
		OldPath: oldPath,
	}

	if changeType != domain.ChangeDeleted {
		s.readContent(&change)
	}

	return change, true
}

// readContent loads the file from the working tree and records its
// hash. A read failure keeps the record but leaves it content-less;
// the processor fails such records individually.
func (s *Source) readContent(change *domain.Change) {
	content, err := os.ReadFile(filepath.Join(s.repoPath, change.Path))
	if err != nil {
		logger.Warn("could not read file %s: %v", change.Path, err)
		return
	}

	change.Content = string(content)
	change.ContentHash = domain.ContentHash(change.Content)
}
