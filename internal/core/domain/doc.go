// Package domain contains the core business entities and errors for the
// document similarity service. It has no dependencies on adapters or
// infrastructure.
package domain
