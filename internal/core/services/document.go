package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/domain"
	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/ports/driven"
	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/ports/driving"
	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/logger"
)

var _ driving.DocumentService = (*DocumentManager)(nil)

// DocumentManager implements the DocumentService port on top of a
// DocumentStore.
type DocumentManager struct {
	store driven.DocumentStore
}

// NewDocumentManager creates the document service.
func NewDocumentManager(store driven.DocumentStore) *DocumentManager {
	return &DocumentManager{store: store}
}

// Add ingests one document. Name and content must be non-empty; the
// word count is computed at ingest time and stored with the document.
// New documents start as uploaded; an analysis run marks them
// processed.
func (m *DocumentManager) Add(ctx context.Context, name, content string) (*domain.Document, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: document name is empty", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: document %q has no content", domain.ErrInvalidInput, name)
	}

	doc := &domain.Document{
		ID:         uuid.NewString(),
		Name:       name,
		Content:    content,
		WordCount:  domain.CountWords(content),
		Status:     domain.DocumentStatusUploaded,
		UploadedAt: time.Now().UTC(),
	}

	if err := m.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("save document %q: %w", name, err)
	}

	logger.Debug("Added document %s (%s, %d words)", doc.ID, doc.Name, doc.WordCount)
	return doc, nil
}

// Get returns one document by ID.
func (m *DocumentManager) Get(ctx context.Context, id string) (*domain.Document, error) {
	return m.store.Get(ctx, id)
}

// List returns every stored document in upload order.
func (m *DocumentManager) List(ctx context.Context) ([]domain.Document, error) {
	return m.store.List(ctx)
}

// Delete removes one document by ID.
func (m *DocumentManager) Delete(ctx context.Context, id string) error {
	return m.store.Delete(ctx, id)
}

// DeleteAll clears the collection and reports how many documents were
// removed.
func (m *DocumentManager) DeleteAll(ctx context.Context) (int, error) {
	return m.store.DeleteAll(ctx)
}
