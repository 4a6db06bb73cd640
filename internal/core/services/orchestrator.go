package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/docsync-cli/internal/core/domain"
	"github.com/custodia-labs/docsync-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docsync-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docsync-cli/internal/logger"
)

// Ensure SyncOrchestrator implements the interface.
var _ driving.Syncer = (*SyncOrchestrator)(nil)

// SyncOrchestrator coordinates one synchronisation run per call:
// knowledge-base health preflight, change detection for the requested
// mode, batch processing, and run-history recording.
//
// Execution is fully sequential: detection runs to completion before
// processing begins, and each change is processed to completion before
// the next. The only shared mutable state is the status snapshot,
// which is guarded for readers polling from another goroutine.
type SyncOrchestrator struct {
	source driven.ChangeSource
	kb     driven.KnowledgeBase
	runs   driven.RunStore // optional; nil disables history
	policy domain.SyncPolicy

	mu     sync.RWMutex
	status driving.SyncStatus
}

// NewSyncOrchestrator creates a new sync orchestrator. The run store
// is optional: pass nil to disable run-history recording.
func NewSyncOrchestrator(
	source driven.ChangeSource,
	kb driven.KnowledgeBase,
	runs driven.RunStore,
	policy domain.SyncPolicy,
) *SyncOrchestrator {
	return &SyncOrchestrator{
		source: source,
		kb:     kb,
		runs:   runs,
		policy: policy,
	}
}

// SyncSince synchronises changes made since the given commit.
func (o *SyncOrchestrator) SyncSince(ctx context.Context, commit string) (domain.BatchResult, error) {
	logger.Info("Analysing changes since commit %s", commit)
	return o.run(ctx, domain.ModeSince, commit, "HEAD", func() ([]domain.Change, error) {
		return o.source.ChangesSince(ctx, commit)
	})
}

// SyncBetween synchronises changes between two commits.
func (o *SyncOrchestrator) SyncBetween(ctx context.Context, from, to string) (domain.BatchResult, error) {
	logger.Info("Analysing changes between %s and %s", from, to)
	return o.run(ctx, domain.ModeBetween, from, to, func() ([]domain.Change, error) {
		return o.source.ChangesBetween(ctx, from, to)
	})
}

// SyncStaged synchronises currently staged changes.
func (o *SyncOrchestrator) SyncStaged(ctx context.Context) (domain.BatchResult, error) {
	logger.Info("Analysing staged changes")
	return o.run(ctx, domain.ModeStaged, "", "", func() ([]domain.Change, error) {
		return o.source.StagedChanges(ctx)
	})
}

// Status returns a snapshot of the current run.
func (o *SyncOrchestrator) Status() driving.SyncStatus {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.status
}

// run is the shared path behind the three entry points.
func (o *SyncOrchestrator) run(
	ctx context.Context,
	mode, fromRev, toRev string,
	detect func() ([]domain.Change, error),
) (domain.BatchResult, error) {
	// Preflight: an unreachable knowledge base fails the whole run
	// before any record is touched. The health check is not retried.
	if err := o.kb.Health(ctx); err != nil {
		return domain.BatchResult{}, fmt.Errorf("%w: %v", domain.ErrKnowledgeBaseUnavailable, err)
	}

	startedAt := time.Now()
	o.setStatus(driving.SyncStatus{Running: true})
	defer o.setStatus(driving.SyncStatus{})

	changes, err := detect()
	if err != nil {
		return domain.BatchResult{}, fmt.Errorf("detect changes: %w", err)
	}
	logger.Info("Found %d documentation changes", len(changes))

	processor := NewChangeProcessor(o.kb, o.policy)
	processor.onProgress = func(r domain.BatchResult) {
		o.setStatus(driving.SyncStatus{Running: true, Processed: r.Processed, Failed: r.Failed})
	}

	result := processor.Process(ctx, changes)
	o.recordRun(ctx, mode, fromRev, toRev, result, startedAt)

	return result, nil
}

// recordRun appends the run outcome to history. Dry runs are not
// recorded, and a history failure never fails the sync itself.
func (o *SyncOrchestrator) recordRun(
	ctx context.Context,
	mode, fromRev, toRev string,
	result domain.BatchResult,
	startedAt time.Time,
) {
	if o.runs == nil || o.policy.DryRun {
		return
	}

	run := domain.SyncRun{
		ID:         uuid.NewString(),
		Mode:       mode,
		FromRev:    fromRev,
		ToRev:      toRev,
		Result:     result,
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
	}
	if err := o.runs.Record(ctx, run); err != nil {
		logger.Warn("recording run history: %v", err)
	}
}

func (o *SyncOrchestrator) setStatus(status driving.SyncStatus) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.status = status
}
