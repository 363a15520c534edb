package driven

import (
	"context"

	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/domain"
)

// AnalysisEngine turns a document batch into a similarity result.
// The engine is an explicitly constructed handle with its own lifecycle;
// there is no shared global instance. Each call builds its vocabulary
// from scratch over the given batch: term statistics are corpus-relative
// and never reused across jobs.
type AnalysisEngine interface {
	// Analyze tokenizes, vectorizes and compares the batch, returning
	// pairs, the full similarity matrix and statistics (minus the
	// processing time, which the orchestrator injects).
	Analyze(ctx context.Context, docs []domain.Document, cfg domain.AnalysisConfig) (*domain.AnalysisResult, error)

	// Close shuts the engine down. Analyze returns domain.ErrEngineClosed
	// afterwards.
	Close() error
}
