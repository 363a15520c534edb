package driven

import (
	"context"

	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/domain"
)

// JobStore tracks analysis jobs. It must support concurrent status reads
// while a running job transitions state; implementations lock per job
// entry, not with one global lock serialising all jobs.
//
// Jobs are retained until explicitly deleted or process restart; no
// persistence is guaranteed.
type JobStore interface {
	// Create stores a new job. Returns domain.ErrAlreadyExists if the
	// job ID is taken.
	Create(ctx context.Context, job *domain.AnalysisJob) error

	// Get returns a snapshot of the job. Returns domain.ErrJobNotFound
	// if the ID is unknown.
	Get(ctx context.Context, id string) (*domain.AnalysisJob, error)

	// Update applies fn to the job under the entry lock. fn must be
	// short and must not block. Returns domain.ErrJobNotFound if the ID
	// is unknown.
	Update(ctx context.Context, id string, fn func(*domain.AnalysisJob)) error

	// List returns snapshots of all jobs, newest first.
	List(ctx context.Context) ([]domain.AnalysisJob, error)

	// Delete removes a job. Returns domain.ErrJobNotFound if the ID is
	// unknown.
	Delete(ctx context.Context, id string) error
}
