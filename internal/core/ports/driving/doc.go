// Package driving defines the interfaces through which the outside world
// (CLI, HTTP API) drives the core services.
package driving
