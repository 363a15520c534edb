package domain

import (
	"strings"
	"time"
)

// DocumentStatus describes where a document is in its lifecycle.
type DocumentStatus string

const (
	// DocumentStatusUploaded means the document text has been stored but
	// has not taken part in an analysis yet.
	DocumentStatusUploaded DocumentStatus = "uploaded"

	// DocumentStatusProcessed means the document has been part of at
	// least one completed analysis.
	DocumentStatusProcessed DocumentStatus = "processed"
)

// Document is a corpus member with its extracted plain text.
// Text extraction (PDF, etc.) happens upstream; the core only ever sees
// plain strings. Identity is the ID: two documents with equal ID are the
// same entity for the duration of an analysis.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Name is the human-readable name, typically the original filename.
	Name string

	// Content is the full extracted text.
	Content string

	// WordCount is the number of whitespace-separated words in Content.
	WordCount int

	// Status is the document lifecycle state.
	Status DocumentStatus

	// UploadedAt is when the document was first stored.
	UploadedAt time.Time
}

// Preview returns the first n characters of the content, cut at a word
// boundary, for display in listings.
func (d *Document) Preview(n int) string {
	content := strings.Join(strings.Fields(d.Content), " ")
	if len(content) <= n {
		return content
	}
	cut := content[:n]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}

// CountWords counts whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
