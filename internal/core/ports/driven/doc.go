// Package driven defines the outbound port interfaces of the docsync
// core: the knowledge base, the repository change source, and the run
// history store. Adapters implement these interfaces so the services
// can be tested against in-memory fakes.
package driven
