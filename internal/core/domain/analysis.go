package domain

import (
	"fmt"
	"time"
)

// Threshold bounds and the minimum corpus size for an analysis.
const (
	MinThreshold = 0.5
	MaxThreshold = 1.0
	MinDocuments = 2
)

// JobStatus is the lifecycle state of an analysis job.
// Valid transitions: pending -> running -> {completed, failed}.
// Completed and failed are terminal; a terminal job is never re-executed.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// Terminal reports whether the status is an end state.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// AnalysisConfig is the immutable input to an analysis job.
type AnalysisConfig struct {
	// Threshold is the similarity score at or above which a pair is
	// flagged. Must be within [MinThreshold, MaxThreshold].
	Threshold float64

	// IncludeAllPairs retains every compared pair in the result when
	// true; otherwise only flagged pairs are retained. The similarity
	// matrix always covers all documents either way.
	IncludeAllPairs bool

	// DocumentIDs restricts the analysis to specific documents.
	// Nil means all stored documents.
	DocumentIDs []string
}

// DefaultAnalysisConfig returns the config used when the caller does not
// override anything.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		Threshold:       0.7,
		IncludeAllPairs: true,
	}
}

// Validate checks the config against the allowed ranges.
func (c AnalysisConfig) Validate() error {
	if c.Threshold < MinThreshold || c.Threshold > MaxThreshold {
		return fmt.Errorf("%w: got %.2f", ErrInvalidThreshold, c.Threshold)
	}
	return nil
}

// SimilarityPair is one unordered document pair with its cosine similarity.
// Pairs are generated once per analysis and never mutated.
type SimilarityPair struct {
	// Doc1ID and Doc2ID identify the pair. Doc1 always precedes Doc2 in
	// the corpus ordering of the job.
	Doc1ID string
	Doc2ID string

	// Doc1Name and Doc2Name are the display names.
	Doc1Name string
	Doc2Name string

	// Similarity is the cosine similarity in [0, 1], rounded to four
	// decimal places.
	Similarity float64

	// Flagged is true when Similarity >= the job threshold.
	Flagged bool
}

// Statistics summarises a completed analysis.
type Statistics struct {
	// TotalDocuments is the corpus size of the job.
	TotalDocuments int

	// TotalComparisons is the number of unordered pairs compared,
	// n*(n-1)/2.
	TotalComparisons int

	// FlaggedCount is the number of pairs at or above the threshold,
	// regardless of IncludeAllPairs.
	FlaggedCount int

	// AvgSimilarity, MinSimilarity and MaxSimilarity are computed over
	// the retained pair list. All zero when the list is empty.
	AvgSimilarity float64
	MinSimilarity float64
	MaxSimilarity float64

	// ProcessingTimeMs is wall-clock time from job start to completion,
	// measured by the orchestrator.
	ProcessingTimeMs int64
}

// AnalysisResult is the immutable outcome of a completed job.
type AnalysisResult struct {
	// Pairs is the retained pair list, ordered by descending similarity.
	Pairs []SimilarityPair

	// Matrix is the full symmetric similarity matrix with a 1.0
	// diagonal, indexed by position in DocumentIDs.
	Matrix [][]float64

	// DocumentIDs and DocumentNames map matrix indices to documents.
	DocumentIDs   []string
	DocumentNames []string

	// Statistics summarises the run.
	Statistics Statistics
}

// AnalysisJob tracks one submitted analysis through its lifecycle.
// Only the orchestrator mutates a job; everyone else sees snapshots.
type AnalysisJob struct {
	// ID is the job identifier (UUID).
	ID string

	// Status is the current lifecycle state.
	Status JobStatus

	// Config is the immutable submission config.
	Config AnalysisConfig

	// TotalDocuments is the resolved corpus size at submission time.
	TotalDocuments int

	// CreatedAt is the submission time.
	CreatedAt time.Time

	// CompletedAt is set when the job reaches a terminal state.
	CompletedAt *time.Time

	// Result is attached when the job completes.
	Result *AnalysisResult

	// ErrorMessage carries the human-readable failure reason for failed
	// jobs. Never contains internal paths or stack traces.
	ErrorMessage string
}

// Clone returns a snapshot of the job safe to hand to concurrent readers.
// The result is shared because it is immutable once attached.
func (j *AnalysisJob) Clone() *AnalysisJob {
	c := *j
	if j.CompletedAt != nil {
		t := *j.CompletedAt
		c.CompletedAt = &t
	}
	return &c
}
