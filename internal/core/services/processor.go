package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/docsync-cli/internal/core/domain"
	"github.com/custodia-labs/docsync-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docsync-cli/internal/logger"
)

// ChangeProcessor applies a batch of change records to the knowledge
// base, one record at a time. Counters are owned by the processor for
// the duration of one Process call; there is no concurrent access.
type ChangeProcessor struct {
	kb     driven.KnowledgeBase
	policy domain.SyncPolicy

	// onProgress, when set, is invoked after each record with the
	// counters so far. Used by the orchestrator for status reporting.
	onProgress func(domain.BatchResult)
}

// NewChangeProcessor creates a processor writing to the given
// knowledge base under the given policy.
func NewChangeProcessor(kb driven.KnowledgeBase, policy domain.SyncPolicy) *ChangeProcessor {
	return &ChangeProcessor{kb: kb, policy: policy}
}

// Process applies every change in input order and returns the batch
// counters. A failing record never aborts the batch: failures are
// logged, counted, and processing continues with the next record.
//
// In dry-run mode the intended action is logged and counted as
// processed without any knowledge-base traffic. The flag is checked
// per record so an interrupted batch still reports a consistent
// partial count.
func (p *ChangeProcessor) Process(ctx context.Context, changes []domain.Change) domain.BatchResult {
	var result domain.BatchResult

	for i := range changes {
		change := &changes[i]

		if p.policy.DryRun {
			logger.Info("DRY RUN: would process %s for %s", change.Type, change.Path)
			result.Processed++
			p.reportProgress(result)
			continue
		}

		if err := p.processOne(ctx, change); err != nil {
			logger.Error("processing %s for %s: %v", change.Type, change.Path, err)
			result.Failed++
		} else {
			result.Processed++
		}
		p.reportProgress(result)
	}

	return result
}

// processOne dispatches a single change by type. Panics raised while
// handling one record are converted to errors so a single bad record
// cannot take down the batch.
func (p *ChangeProcessor) processOne(ctx context.Context, change *domain.Change) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while processing %s: %v", change.Path, r)
		}
	}()

	docID := domain.DocumentID(change.Path)

	switch change.Type {
	case domain.ChangeAdded:
		return p.handleAdded(ctx, change)
	case domain.ChangeModified:
		return p.handleModified(ctx, change, docID)
	case domain.ChangeDeleted:
		return p.handleDeleted(ctx, docID)
	case domain.ChangeRenamed:
		return p.handleRenamed(ctx, change)
	default:
		return fmt.Errorf("%w: change type %d", domain.ErrInvalidInput, change.Type)
	}
}

// handleAdded inserts a new document. Content is required.
func (p *ChangeProcessor) handleAdded(ctx context.Context, change *domain.Change) error {
	if !change.HasContent() {
		return fmt.Errorf("%w for added file %s", domain.ErrMissingContent, change.Path)
	}

	return p.kb.Insert(ctx, change.Content, metadataFor(change))
}

// handleModified updates the existing document, falling back to an
// insert when the update fails. The fallback is self-healing for
// documents the knowledge base does not yet know about; the batch
// counter reflects whichever call ultimately succeeds.
func (p *ChangeProcessor) handleModified(ctx context.Context, change *domain.Change, docID string) error {
	if !change.HasContent() {
		return fmt.Errorf("%w for modified file %s", domain.ErrMissingContent, change.Path)
	}

	metadata := metadataFor(change)
	if err := p.kb.Update(ctx, docID, change.Content, metadata); err != nil {
		logger.Info("update failed for %s, trying insert: %v", change.Path, err)
		return p.kb.Insert(ctx, change.Content, metadata)
	}

	return nil
}

// handleDeleted removes the document addressed by the path identity.
func (p *ChangeProcessor) handleDeleted(ctx context.Context, docID string) error {
	return p.kb.Delete(ctx, docID)
}

// handleRenamed is two-phase: delete the old identity, then insert the
// content under the new one. A delete failure aborts the insert so a
// rename never leaves two live copies of stale content. It can leave
// zero live copies when the delete reports failure after partially
// applying; that trade-off is accepted rather than papered over with
// compensation logic.
func (p *ChangeProcessor) handleRenamed(ctx context.Context, change *domain.Change) error {
	if change.OldPath != "" {
		if err := p.kb.Delete(ctx, domain.DocumentID(change.OldPath)); err != nil {
			return fmt.Errorf("deleting old path %s: %w", change.OldPath, err)
		}
	}

	if !change.HasContent() {
		// Old copy is gone and there is nothing to insert; the rename
		// itself succeeded.
		return nil
	}

	metadata := metadataFor(change)
	metadata["old_path"] = change.OldPath

	return p.kb.Insert(ctx, change.Content, metadata)
}

// reportProgress publishes counters after each record when a listener
// is registered.
func (p *ChangeProcessor) reportProgress(result domain.BatchResult) {
	if p.onProgress != nil {
		p.onProgress(result)
	}
}

// metadataFor builds the metadata payload sent with inserts and
// updates.
func metadataFor(change *domain.Change) map[string]any {
	return map[string]any{
		"file_path":    change.Path,
		"change_type":  change.Type.String(),
		"content_hash": change.ContentHash,
	}
}
