package driving

import (
	"context"

	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/domain"
)

// DocumentService manages the corpus of uploaded documents.
// Text extraction happens upstream; Add receives plain text.
type DocumentService interface {
	// Add stores a new document with the given display name and text.
	// Fails with domain.ErrInvalidInput for empty text.
	Add(ctx context.Context, name, text string) (*domain.Document, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// List returns all documents ordered by upload time.
	List(ctx context.Context) ([]domain.Document, error)

	// Delete removes a document by ID.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every document and returns the removed count.
	DeleteAll(ctx context.Context) (int, error)
}
