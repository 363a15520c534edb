package similarity

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/domain"
	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/ports/driven"
	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/logger"
)

// Ensure Engine implements the interface.
var _ driven.AnalysisEngine = (*Engine)(nil)

// Options configures an Engine.
type Options struct {
	// MinTokenLength drops tokens shorter than this many runes.
	MinTokenLength int

	// MaxVocabularySize caps the per-batch vocabulary to the top-N terms
	// by corpus frequency. Zero means unlimited.
	MaxVocabularySize int

	// Parallelism bounds the goroutines used for pairwise comparison.
	// Values below 1 fall back to GOMAXPROCS.
	Parallelism int
}

// DefaultOptions returns the options used when the caller does not
// override anything.
func DefaultOptions() Options {
	return Options{
		MinTokenLength:    2,
		MaxVocabularySize: 10000,
		Parallelism:       runtime.GOMAXPROCS(0),
	}
}

// Engine computes similarity results for document batches. It holds no
// per-job state: every Analyze call builds its own vocabulary and vector
// set, so concurrent calls do not interact. Construct with New and
// release with Close.
type Engine struct {
	opts      Options
	tokenizer *Tokenizer
	closed    atomic.Bool
}

// New creates an analysis engine.
func New(opts Options) *Engine {
	if opts.Parallelism < 1 {
		opts.Parallelism = runtime.GOMAXPROCS(0)
	}
	return &Engine{
		opts:      opts,
		tokenizer: NewTokenizer(opts.MinTokenLength),
	}
}

// Close shuts the engine down. Subsequent Analyze calls fail with
// domain.ErrEngineClosed.
func (e *Engine) Close() error {
	e.closed.Store(true)
	return nil
}

// Analyze runs the full pipeline over the batch: tokenize, build the
// vocabulary, vectorize, compute the pairwise cosine matrix and
// summarise. The returned statistics carry everything except the
// processing time, which the orchestrator measures and injects.
func (e *Engine) Analyze(
	ctx context.Context,
	docs []domain.Document,
	cfg domain.AnalysisConfig,
) (*domain.AnalysisResult, error) {
	if e.closed.Load() {
		return nil, domain.ErrEngineClosed
	}
	if len(docs) < domain.MinDocuments {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInsufficientDocuments, len(docs))
	}

	logger.Section("Similarity Analysis")
	logger.Info("Analyzing %d documents (threshold=%.2f)", len(docs), cfg.Threshold)

	// Tokenize every document.
	docTokens := make([][]string, len(docs))
	recognized := 0
	for i := range docs {
		docTokens[i] = e.tokenizer.Tokenize(docs[i].Content)
		if len(docTokens[i]) > 0 {
			recognized++
		}
		logger.Debug("Tokenized %s: %d tokens", docs[i].Name, len(docTokens[i]))
	}
	if recognized == 0 {
		return nil, domain.ErrNoExtractableTerms
	}

	// Per-batch vocabulary and TF-IDF vectors.
	vocab := buildVocabulary(docTokens, e.opts.MaxVocabularySize)
	logger.Debug("Vocabulary: %d terms", vocab.Size())

	vectors := make([]Vector, len(docs))
	for i, tokens := range docTokens {
		vectors[i] = vectorize(tokens, vocab)
	}

	compareStart := time.Now()
	matrix, err := e.similarityMatrix(ctx, vectors)
	if err != nil {
		return nil, err
	}
	logger.Elapsed("pairwise comparison", compareStart)

	result := assembleResult(docs, matrix, cfg)
	logger.Info("Analysis complete: %d comparisons, %d flagged",
		result.Statistics.TotalComparisons, result.Statistics.FlaggedCount)
	return result, nil
}

// similarityMatrix computes the full symmetric cosine matrix with raw,
// unrounded scores. Rows are distributed over a bounded errgroup; each
// pair is computed exactly once and mirrored, and the workers only read
// the shared immutable vector set. The diagonal is 1.0 by convention.
func (e *Engine) similarityMatrix(ctx context.Context, vectors []Vector) ([][]float64, error) {
	n := len(vectors)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		matrix[i][i] = 1.0
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Parallelism)

	for i := 0; i < n-1; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for j := i + 1; j < n; j++ {
				sim := Cosine(vectors[i], vectors[j])
				matrix[i][j] = sim
				matrix[j][i] = sim
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("compute similarity matrix: %w", err)
	}
	return matrix, nil
}

// assembleResult builds the pair list and statistics from the raw
// matrix. Pairs are flagged against the unrounded score; rounding is a
// display concern and happens afterwards, so a score just under the
// threshold never rounds its way into a flag. The retained list holds
// all pairs or only flagged ones depending on cfg, ordered by
// descending similarity; flagged pairs are counted either way. The
// matrix is rounded in place before it is returned to callers.
func assembleResult(docs []domain.Document, matrix [][]float64, cfg domain.AnalysisConfig) *domain.AnalysisResult {
	n := len(docs)

	pairs := make([]domain.SimilarityPair, 0, n*(n-1)/2)
	flagged := 0
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			sim := matrix[i][j]
			isFlagged := sim >= cfg.Threshold
			if isFlagged {
				flagged++
			}
			if !cfg.IncludeAllPairs && !isFlagged {
				continue
			}
			pairs = append(pairs, domain.SimilarityPair{
				Doc1ID:     docs[i].ID,
				Doc2ID:     docs[j].ID,
				Doc1Name:   docs[i].Name,
				Doc2Name:   docs[j].Name,
				Similarity: round4(sim),
				Flagged:    isFlagged,
			})
		}
	}

	for i := range matrix {
		for j := range matrix[i] {
			matrix[i][j] = round4(matrix[i][j])
		}
	}

	// Descending by similarity; corpus order breaks ties so repeated
	// runs produce identical output.
	sort.SliceStable(pairs, func(a, b int) bool {
		return pairs[a].Similarity > pairs[b].Similarity
	})

	ids := make([]string, n)
	names := make([]string, n)
	for i := range docs {
		ids[i] = docs[i].ID
		names[i] = docs[i].Name
	}

	return &domain.AnalysisResult{
		Pairs:         pairs,
		Matrix:        matrix,
		DocumentIDs:   ids,
		DocumentNames: names,
		Statistics:    summarize(pairs, flagged, n),
	}
}
