// Package sqlite provides the on-disk document store backed by an
// embedded SQLite database. Schema changes ship as embedded SQL
// migrations applied on open.
package sqlite
