package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Analysis submission errors. Surfaced immediately; no job is created.

	// ErrInvalidThreshold indicates the similarity threshold is outside [0.5, 1.0].
	ErrInvalidThreshold = errors.New("threshold must be between 0.5 and 1.0")

	// ErrInsufficientDocuments indicates fewer than two documents resolved
	// for analysis.
	ErrInsufficientDocuments = errors.New("at least 2 documents required for analysis")

	// Job lookup errors.

	// ErrJobNotFound indicates the requested analysis job does not exist.
	ErrJobNotFound = errors.New("analysis job not found")

	// ErrResultNotReady indicates the job has not completed yet.
	// The caller should keep polling the job status.
	ErrResultNotReady = errors.New("analysis result not ready")

	// ErrJobFailed indicates the job finished in the failed state.
	// The job's ErrorMessage carries the reason; a failed job is terminal
	// and must be resubmitted.
	ErrJobFailed = errors.New("analysis job failed")

	// Processing errors. Surfaced as a failed job state, never across the
	// API boundary.

	// ErrNoExtractableTerms indicates no document in the corpus produced
	// a single recognised token.
	ErrNoExtractableTerms = errors.New("no extractable terms in corpus")

	// ErrEngineClosed indicates the analysis engine has been shut down.
	ErrEngineClosed = errors.New("analysis engine closed")
)
