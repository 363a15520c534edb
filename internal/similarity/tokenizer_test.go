package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeBasic(t *testing.T) {
	tok := NewTokenizer(2)

	tokens := tok.Tokenize("The Quick Brown Fox jumps over the lazy dog!")
	assert.Equal(t, []string{"quick", "brown", "fox", "jumps", "lazy", "dog"}, tokens)
}

func TestTokenizeStripsPunctuationAndDigitsKept(t *testing.T) {
	tok := NewTokenizer(2)

	tokens := tok.Tokenize("version 42 of report-2024: final_draft (v2)")
	assert.Equal(t, []string{"version", "42", "report", "2024", "final", "draft", "v2"}, tokens)
}

func TestTokenizeDropsStopwordsAndShortTokens(t *testing.T) {
	tok := NewTokenizer(3)

	tokens := tok.Tokenize("a an the cat is on it")
	// "cat" survives the length cutoff, stop words never do.
	assert.Equal(t, []string{"cat"}, tokens)
}

func TestTokenizeEmptyAndWhitespace(t *testing.T) {
	tok := NewTokenizer(2)

	assert.Empty(t, tok.Tokenize(""))
	assert.Empty(t, tok.Tokenize("   \t\n  "))
	assert.Empty(t, tok.Tokenize("!!! ??? ..."))
}

func TestTokenizeDeterministic(t *testing.T) {
	tok := NewTokenizer(2)

	text := "Reliability testing requires identical outputs across runs."
	first := tok.Tokenize(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, tok.Tokenize(text))
	}
}

func TestTokenizeUnicode(t *testing.T) {
	tok := NewTokenizer(2)

	tokens := tok.Tokenize("Café CAFÉ café")
	assert.Equal(t, []string{"café", "café", "café"}, tokens)
}

func TestNewTokenizerDefaultsMinLength(t *testing.T) {
	tok := NewTokenizer(0)

	tokens := tok.Tokenize("x xy xyz")
	assert.Equal(t, []string{"xy", "xyz"}, tokens)
}
