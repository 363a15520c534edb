package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords(""))
	assert.Equal(t, 0, CountWords("   \n\t"))
	assert.Equal(t, 3, CountWords("one two three"))
	assert.Equal(t, 3, CountWords("  one\ntwo\t three "))
}

func TestDocumentPreview(t *testing.T) {
	doc := &Document{Content: "the quick brown fox jumps over the lazy dog"}

	// Short content is returned whole.
	assert.Equal(t, doc.Content, doc.Preview(100))

	// Long content is cut at a word boundary with an ellipsis.
	preview := doc.Preview(20)
	assert.True(t, strings.HasSuffix(preview, "..."))
	assert.LessOrEqual(t, len(preview), 23)
	assert.False(t, strings.HasSuffix(strings.TrimSuffix(preview, "..."), " "))
}

func TestDocumentPreviewCollapsesWhitespace(t *testing.T) {
	doc := &Document{Content: "line one\n\nline   two"}
	assert.Equal(t, "line one line two", doc.Preview(100))
}
