package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/domain"
	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/ports/driven"
)

var _ driven.JobStore = (*JobStore)(nil)

// jobEntry pairs a job with its own mutex so a long status read on one
// job never blocks progress on another.
type jobEntry struct {
	mu  sync.Mutex
	job *domain.AnalysisJob
}

// JobStore is the in-memory job registry. The outer RWMutex guards only
// the map structure; per-job state is guarded by the entry mutex, so
// concurrent polling of different jobs does not serialise.
type JobStore struct {
	mu      sync.RWMutex
	entries map[string]*jobEntry
}

// NewJobStore creates an empty job store.
func NewJobStore() *JobStore {
	return &JobStore{entries: make(map[string]*jobEntry)}
}

func (s *JobStore) Create(_ context.Context, job *domain.AnalysisJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[job.ID]; exists {
		return fmt.Errorf("job %s: %w", job.ID, domain.ErrAlreadyExists)
	}
	s.entries[job.ID] = &jobEntry{job: job.Clone()}
	return nil
}

func (s *JobStore) lookup(id string) (*jobEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, fmt.Errorf("job %s: %w", id, domain.ErrJobNotFound)
	}
	return e, nil
}

func (s *JobStore) Get(_ context.Context, id string) (*domain.AnalysisJob, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.job.Clone(), nil
}

func (s *JobStore) Update(_ context.Context, id string, fn func(*domain.AnalysisJob)) error {
	e, err := s.lookup(id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.job)
	return nil
}

func (s *JobStore) List(_ context.Context) ([]domain.AnalysisJob, error) {
	s.mu.RLock()
	entries := make([]*jobEntry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	out := make([]domain.AnalysisJob, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		out = append(out, *e.job.Clone())
		e.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *JobStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return fmt.Errorf("job %s: %w", id, domain.ErrJobNotFound)
	}
	delete(s.entries, id)
	return nil
}
