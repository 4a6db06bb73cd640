// Package services implements the docsync core: the change processor
// that applies individual file changes to the knowledge base, and the
// sync orchestrator that wires change detection, processing and run
// accounting together for each invocation mode.
package services
