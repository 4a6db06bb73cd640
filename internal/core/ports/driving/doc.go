// Package driving defines the inbound port interfaces through which
// the CLI drives the docsync core.
package driving
