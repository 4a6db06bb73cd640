// Package domain contains the core business entities for docsync.
//
// The domain layer has no dependencies on adapters or external services.
// It defines the change records produced by the change detector, the
// document identity scheme used to address knowledge-base documents, the
// synchronisation policy, and the batch accounting types.
package domain
