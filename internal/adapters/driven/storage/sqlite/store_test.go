package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/domain"
	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/ports/driven"
)

func newTestStore(t *testing.T) driven.DocumentStore {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store.DocumentStore()
}

func sampleDoc(id, name string) *domain.Document {
	return &domain.Document{
		ID:         id,
		Name:       name,
		Content:    "sample text for " + name,
		WordCount:  4,
		Status:     domain.DocumentStatusProcessed,
		UploadedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestStoreCreatesSchema(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	assert.NotEmpty(t, store.Path())

	// Re-opening the same directory must not re-run migrations.
	again, err := NewStore(store.Path()[:len(store.Path())-len("/documents.db")])
	require.NoError(t, err)
	require.NoError(t, again.Close())
}

func TestDocumentStoreSaveGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	docs := newTestStore(t)

	doc := sampleDoc("d1", "one.txt")
	require.NoError(t, docs.Save(ctx, doc))

	got, err := docs.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, doc.Name, got.Name)
	assert.Equal(t, doc.Content, got.Content)
	assert.Equal(t, doc.WordCount, got.WordCount)
	assert.Equal(t, domain.DocumentStatusProcessed, got.Status)
	assert.True(t, doc.UploadedAt.Equal(got.UploadedAt))
}

func TestDocumentStoreGetUnknown(t *testing.T) {
	docs := newTestStore(t)

	_, err := docs.Get(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStoreSaveUpsert(t *testing.T) {
	ctx := context.Background()
	docs := newTestStore(t)

	doc := sampleDoc("d1", "one.txt")
	require.NoError(t, docs.Save(ctx, doc))

	doc.Name = "renamed.txt"
	require.NoError(t, docs.Save(ctx, doc))

	got, err := docs.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "renamed.txt", got.Name)

	n, err := docs.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDocumentStoreListOrderedByUpload(t *testing.T) {
	ctx := context.Background()
	docs := newTestStore(t)

	base := time.Now().UTC().Truncate(time.Second)
	for i, id := range []string{"d2", "d0", "d1"} {
		doc := sampleDoc(id, id+".txt")
		doc.UploadedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, docs.Save(ctx, doc))
	}

	list, err := docs.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "d2", list[0].ID)
	assert.Equal(t, "d0", list[1].ID)
	assert.Equal(t, "d1", list[2].ID)
}

func TestDocumentStoreDelete(t *testing.T) {
	ctx := context.Background()
	docs := newTestStore(t)

	require.NoError(t, docs.Save(ctx, sampleDoc("d1", "one.txt")))
	require.NoError(t, docs.Delete(ctx, "d1"))
	require.ErrorIs(t, docs.Delete(ctx, "d1"), domain.ErrNotFound)
}

func TestDocumentStoreDeleteAll(t *testing.T) {
	ctx := context.Background()
	docs := newTestStore(t)

	require.NoError(t, docs.Save(ctx, sampleDoc("d1", "one.txt")))
	require.NoError(t, docs.Save(ctx, sampleDoc("d2", "two.txt")))

	removed, err := docs.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	n, err := docs.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
