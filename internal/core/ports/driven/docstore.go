package driven

import (
	"context"

	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/domain"
)

// DocumentStore persists documents and their extracted text.
// Backed by SQLite for on-disk storage; an in-memory variant exists for
// tests. The core never mutates stored document content.
type DocumentStore interface {
	// Save stores or updates a document.
	Save(ctx context.Context, doc *domain.Document) error

	// Get retrieves a document by ID. Returns domain.ErrNotFound if the
	// ID is unknown.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// List returns all stored documents ordered by upload time.
	List(ctx context.Context) ([]domain.Document, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)

	// Delete removes a document. Returns domain.ErrNotFound if the ID is
	// unknown.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every document and returns how many were removed.
	DeleteAll(ctx context.Context) (int, error)
}
