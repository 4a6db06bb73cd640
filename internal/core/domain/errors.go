package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrKnowledgeBaseUnavailable indicates the knowledge-base health
	// check failed. A run aborts before processing any records.
	ErrKnowledgeBaseUnavailable = errors.New("knowledge base unavailable")

	// ErrMissingContent indicates a change that requires file content
	// arrived without it (the file could not be read at detection time).
	ErrMissingContent = errors.New("no content available")

	// ErrSyncInProgress indicates a sync is already running.
	ErrSyncInProgress = errors.New("sync in progress")
)
