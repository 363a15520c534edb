// Package driven defines the interfaces the core depends on: storage for
// documents and jobs, and the analysis engine. Adapters implement these.
package driven
