package similarity

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Tokenizer turns raw text into a normalized token sequence.
// It is pure and deterministic: the same input always yields the same
// sequence, independent of the rest of the corpus.
type Tokenizer struct {
	minTokenLength int
	stopwords      map[string]struct{}
}

// NewTokenizer creates a tokenizer. Tokens shorter than minTokenLength
// runes are dropped; values below 1 fall back to the default of 2.
func NewTokenizer(minTokenLength int) *Tokenizer {
	if minTokenLength < 1 {
		minTokenLength = 2
	}
	return &Tokenizer{
		minTokenLength: minTokenLength,
		stopwords:      stopwordSet(),
	}
}

// Tokenize lower-cases the text, replaces every non-alphanumeric rune
// with a space, splits on whitespace and drops stop words and short
// tokens. Empty input yields an empty sequence, not an error.
func (t *Tokenizer) Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	// Unicode compatibility fold so that full-width and composed forms
	// compare equal before the ASCII-ish cleanup below.
	text = norm.NFKC.String(text)

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return unicode.ToLower(r)
		default:
			return ' '
		}
	}, text)

	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < t.minTokenLength {
			continue
		}
		if _, stop := t.stopwords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
