package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/domain"
	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/ports/driven"
	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/ports/driving"
	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/logger"
)

// DefaultMaxConcurrentJobs bounds how many analyses run at once when the
// caller does not override it.
const DefaultMaxConcurrentJobs = 2

var _ driving.Analyzer = (*AnalysisOrchestrator)(nil)

// AnalysisOrchestrator implements the Analyzer port. Submit registers a
// job and returns immediately; the analysis runs on its own goroutine,
// gated by a weighted semaphore so at most maxConcurrent jobs execute
// simultaneously while the rest wait in pending. Callers observe
// progress by polling Status and fetch the outcome with Result.
type AnalysisOrchestrator struct {
	docs   driven.DocumentStore
	jobs   driven.JobStore
	engine driven.AnalysisEngine

	sem *semaphore.Weighted
	wg  sync.WaitGroup
}

// NewAnalysisOrchestrator wires the orchestrator. maxConcurrent values
// below 1 fall back to DefaultMaxConcurrentJobs.
func NewAnalysisOrchestrator(
	docs driven.DocumentStore,
	jobs driven.JobStore,
	engine driven.AnalysisEngine,
	maxConcurrent int,
) *AnalysisOrchestrator {
	if maxConcurrent < 1 {
		maxConcurrent = DefaultMaxConcurrentJobs
	}
	return &AnalysisOrchestrator{
		docs:   docs,
		jobs:   jobs,
		engine: engine,
		sem:    semaphore.NewWeighted(int64(maxConcurrent)),
	}
}

// Submit validates the request, snapshots the documents to analyze and
// registers a pending job, then starts the analysis in the background.
// The returned job ID is valid for Status and Result immediately.
func (o *AnalysisOrchestrator) Submit(ctx context.Context, cfg domain.AnalysisConfig) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	docs, err := o.resolveDocuments(ctx, cfg.DocumentIDs)
	if err != nil {
		return "", err
	}
	if len(docs) < domain.MinDocuments {
		return "", fmt.Errorf("%w: %d available, need at least %d",
			domain.ErrInsufficientDocuments, len(docs), domain.MinDocuments)
	}

	job := &domain.AnalysisJob{
		ID:             uuid.NewString(),
		Status:         domain.JobStatusPending,
		Config:         cfg,
		TotalDocuments: len(docs),
		CreatedAt:      time.Now().UTC(),
	}
	if err := o.jobs.Create(ctx, job); err != nil {
		return "", fmt.Errorf("register job: %w", err)
	}

	logger.Info("Job %s submitted: %d documents, threshold %.2f", job.ID, len(docs), cfg.Threshold)

	o.wg.Add(1)
	go o.run(job.ID, docs, cfg)

	return job.ID, nil
}

// resolveDocuments loads the batch. An empty ID list means the whole
// collection; explicit IDs must all exist.
func (o *AnalysisOrchestrator) resolveDocuments(ctx context.Context, ids []string) ([]domain.Document, error) {
	if len(ids) == 0 {
		docs, err := o.docs.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list documents: %w", err)
		}
		return docs, nil
	}

	docs := make([]domain.Document, 0, len(ids))
	for _, id := range ids {
		doc, err := o.docs.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("document %s: %w", id, err)
		}
		docs = append(docs, *doc)
	}
	return docs, nil
}

// run executes one job to its terminal state. It owns the job's whole
// lifecycle after Submit: acquire a slot, flip to running, analyze, and
// record either the result or the failure. The job context is detached
// from the submitter because the work must survive the request.
func (o *AnalysisOrchestrator) run(jobID string, docs []domain.Document, cfg domain.AnalysisConfig) {
	defer o.wg.Done()

	ctx := context.Background()

	if err := o.sem.Acquire(ctx, 1); err != nil {
		o.fail(ctx, jobID, fmt.Errorf("acquire worker slot: %w", err))
		return
	}
	defer o.sem.Release(1)

	if err := o.jobs.Update(ctx, jobID, func(j *domain.AnalysisJob) {
		j.Status = domain.JobStatusRunning
	}); err != nil {
		logger.Warn("job %s: mark running: %v", jobID, err)
		return
	}

	started := time.Now()
	result, err := o.engine.Analyze(ctx, docs, cfg)
	if err != nil {
		o.fail(ctx, jobID, err)
		return
	}
	result.Statistics.ProcessingTimeMs = time.Since(started).Milliseconds()

	if err := o.jobs.Update(ctx, jobID, func(j *domain.AnalysisJob) {
		now := time.Now().UTC()
		j.Status = domain.JobStatusCompleted
		j.CompletedAt = &now
		j.Result = result
	}); err != nil {
		logger.Warn("job %s: record result: %v", jobID, err)
	}

	o.markProcessed(ctx, docs)
}

// markProcessed flips every analyzed document from uploaded to
// processed. Best effort; a document deleted mid-analysis is skipped.
func (o *AnalysisOrchestrator) markProcessed(ctx context.Context, docs []domain.Document) {
	for i := range docs {
		if docs[i].Status == domain.DocumentStatusProcessed {
			continue
		}
		if _, err := o.docs.Get(ctx, docs[i].ID); err != nil {
			continue
		}
		docs[i].Status = domain.DocumentStatusProcessed
		if err := o.docs.Save(ctx, &docs[i]); err != nil {
			logger.Warn("document %s: mark processed: %v", docs[i].ID, err)
		}
	}
}

func (o *AnalysisOrchestrator) fail(ctx context.Context, jobID string, cause error) {
	logger.Warn("job %s failed: %v", jobID, cause)
	if err := o.jobs.Update(ctx, jobID, func(j *domain.AnalysisJob) {
		now := time.Now().UTC()
		j.Status = domain.JobStatusFailed
		j.CompletedAt = &now
		j.ErrorMessage = cause.Error()
	}); err != nil {
		logger.Warn("job %s: record failure: %v", jobID, err)
	}
}

// Status returns a snapshot of the job.
func (o *AnalysisOrchestrator) Status(ctx context.Context, jobID string) (*domain.AnalysisJob, error) {
	job, err := o.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return job, nil
}

// Result returns the finished analysis. Pending and running jobs yield
// ErrResultNotReady; failed jobs yield ErrJobFailed carrying the
// recorded message.
func (o *AnalysisOrchestrator) Result(ctx context.Context, jobID string) (*domain.AnalysisResult, error) {
	job, err := o.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}

	switch job.Status {
	case domain.JobStatusCompleted:
		return job.Result, nil
	case domain.JobStatusFailed:
		return nil, fmt.Errorf("%w: %s", domain.ErrJobFailed, job.ErrorMessage)
	default:
		return nil, fmt.Errorf("%w: job is %s", domain.ErrResultNotReady, job.Status)
	}
}

// Jobs lists every known job, newest first.
func (o *AnalysisOrchestrator) Jobs(ctx context.Context) ([]domain.AnalysisJob, error) {
	return o.jobs.List(ctx)
}

// Delete removes a job record. Running jobs keep executing; only the
// record disappears, so cancellation stays out of the contract.
func (o *AnalysisOrchestrator) Delete(ctx context.Context, jobID string) error {
	return o.jobs.Delete(ctx, jobID)
}

// Wait blocks until every in-flight job reaches a terminal state. Used
// on shutdown so results are not lost mid-write.
func (o *AnalysisOrchestrator) Wait() {
	o.wg.Wait()
}
