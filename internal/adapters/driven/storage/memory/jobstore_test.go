package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/domain"
)

func newJob(id string, createdAt time.Time) *domain.AnalysisJob {
	return &domain.AnalysisJob{
		ID:             id,
		Status:         domain.JobStatusPending,
		Config:         domain.DefaultAnalysisConfig(),
		TotalDocuments: 3,
		CreatedAt:      createdAt,
	}
}

func TestJobStoreCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewJobStore()

	require.NoError(t, s.Create(ctx, newJob("j1", time.Now().UTC())))

	got, err := s.Get(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusPending, got.Status)

	err = s.Create(ctx, newJob("j1", time.Now().UTC()))
	require.ErrorIs(t, err, domain.ErrAlreadyExists)

	_, err = s.Get(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrJobNotFound)
}

func TestJobStoreUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewJobStore()

	require.NoError(t, s.Create(ctx, newJob("j1", time.Now().UTC())))

	err := s.Update(ctx, "j1", func(j *domain.AnalysisJob) {
		j.Status = domain.JobStatusRunning
	})
	require.NoError(t, err)

	got, err := s.Get(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusRunning, got.Status)

	err = s.Update(ctx, "missing", func(*domain.AnalysisJob) {})
	require.ErrorIs(t, err, domain.ErrJobNotFound)
}

func TestJobStoreGetReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	s := NewJobStore()

	require.NoError(t, s.Create(ctx, newJob("j1", time.Now().UTC())))

	snap, err := s.Get(ctx, "j1")
	require.NoError(t, err)
	snap.Status = domain.JobStatusFailed

	got, err := s.Get(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusPending, got.Status)
}

func TestJobStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewJobStore()

	base := time.Now().UTC()
	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("j%d", i)
		require.NoError(t, s.Create(ctx, newJob(id, base.Add(time.Duration(i)*time.Second))))
	}

	jobs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "j2", jobs[0].ID)
	assert.Equal(t, "j0", jobs[2].ID)
}

func TestJobStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := NewJobStore()

	require.NoError(t, s.Create(ctx, newJob("j1", time.Now().UTC())))
	require.NoError(t, s.Delete(ctx, "j1"))
	require.ErrorIs(t, s.Delete(ctx, "j1"), domain.ErrJobNotFound)
}

func TestJobStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewJobStore()

	const jobs = 8
	for i := 0; i < jobs; i++ {
		require.NoError(t, s.Create(ctx, newJob(fmt.Sprintf("j%d", i), time.Now().UTC())))
	}

	var wg sync.WaitGroup
	for i := 0; i < jobs; i++ {
		id := fmt.Sprintf("j%d", i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 100; k++ {
				_ = s.Update(ctx, id, func(j *domain.AnalysisJob) {
					j.TotalDocuments++
				})
				_, _ = s.Get(ctx, id)
			}
		}()
	}
	wg.Wait()

	for i := 0; i < jobs; i++ {
		got, err := s.Get(ctx, fmt.Sprintf("j%d", i))
		require.NoError(t, err)
		assert.Equal(t, 3+100, got.TotalDocuments)
	}
}
