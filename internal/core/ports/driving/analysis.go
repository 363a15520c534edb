package driving

import (
	"context"

	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/domain"
)

// Analyzer submits similarity analyses and answers status queries.
// Submission is non-blocking: the pipeline runs in the background and
// clients discover completion by polling Status. There is no push
// notification and no mid-pipeline cancellation; a submitted job runs to
// completion or failure.
type Analyzer interface {
	// Submit validates the config, resolves the document set and creates
	// a pending job, returning its ID immediately.
	//
	// Fails with domain.ErrInvalidThreshold, domain.ErrInsufficientDocuments
	// or domain.ErrNotFound (unknown document ID in a filtered request)
	// without creating a job.
	Submit(ctx context.Context, cfg domain.AnalysisConfig) (string, error)

	// Status returns the current job snapshot.
	// Fails with domain.ErrJobNotFound for unknown IDs.
	Status(ctx context.Context, jobID string) (*domain.AnalysisJob, error)

	// Result returns the result of a completed job.
	// Fails with domain.ErrJobNotFound, domain.ErrResultNotReady for
	// pending/running jobs, or domain.ErrJobFailed for failed jobs.
	Result(ctx context.Context, jobID string) (*domain.AnalysisResult, error)

	// Jobs returns snapshots of all jobs, newest first.
	Jobs(ctx context.Context) ([]domain.AnalysisJob, error)

	// Delete removes a job record. Fails with domain.ErrJobNotFound.
	Delete(ctx context.Context, jobID string) error
}
