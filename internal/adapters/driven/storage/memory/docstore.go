package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/domain"
	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/ports/driven"
)

var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore keeps documents in a map guarded by one RWMutex. Reads
// dominate and entries are immutable once saved, so a single lock is
// enough here.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]domain.Document
	seq  map[string]int
	next int
}

// NewDocumentStore creates an empty in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		docs: make(map[string]domain.Document),
		seq:  make(map[string]int),
	}
}

func (s *DocumentStore) Save(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.docs[doc.ID]; !exists {
		s.seq[doc.ID] = s.next
		s.next++
	}
	s.docs[doc.ID] = *doc
	return nil
}

func (s *DocumentStore) Get(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	return &doc, nil
}

func (s *DocumentStore) List(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Document, 0, len(s.docs))
	for _, doc := range s.docs {
		out = append(out, doc)
	}
	// Insertion order, matching the on-disk store's upload ordering.
	sort.Slice(out, func(i, j int) bool {
		return s.seq[out[i].ID] < s.seq[out[j].ID]
	})
	return out, nil
}

func (s *DocumentStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs), nil
}

func (s *DocumentStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	delete(s.docs, id)
	delete(s.seq, id)
	return nil
}

func (s *DocumentStore) DeleteAll(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.docs)
	s.docs = make(map[string]domain.Document)
	s.seq = make(map[string]int)
	s.next = 0
	return n, nil
}
