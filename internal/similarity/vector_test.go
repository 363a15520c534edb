package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorizeCountsAndNorm(t *testing.T) {
	docs := [][]string{
		{"cat", "cat", "dog"},
		{"dog", "fish"},
	}
	v := buildVocabulary(docs, 0)

	vec := vectorize(docs[0], v)
	require.Equal(t, 2, vec.NonZero())
	assert.Greater(t, vec.Norm(), 0.0)
}

func TestVectorizeIgnoresOutOfVocabularyTerms(t *testing.T) {
	docs := [][]string{{"known"}}
	v := buildVocabulary(docs, 0)

	vec := vectorize([]string{"known", "unknown", "unknown"}, v)
	assert.Equal(t, 1, vec.NonZero())
}

func TestVectorizeEmptyTokens(t *testing.T) {
	docs := [][]string{{"term"}}
	v := buildVocabulary(docs, 0)

	vec := vectorize(nil, v)
	assert.Equal(t, 0, vec.NonZero())
	assert.Equal(t, 0.0, vec.Norm())
}

func TestCosineIdenticalVectors(t *testing.T) {
	docs := [][]string{
		{"alpha", "beta", "gamma"},
		{"alpha", "beta", "gamma"},
	}
	v := buildVocabulary(docs, 0)

	a := vectorize(docs[0], v)
	b := vectorize(docs[1], v)
	assert.InDelta(t, 1.0, Cosine(a, b), 1e-9)
}

func TestCosineDisjointVectors(t *testing.T) {
	docs := [][]string{
		{"alpha", "beta"},
		{"gamma", "delta"},
	}
	v := buildVocabulary(docs, 0)

	a := vectorize(docs[0], v)
	b := vectorize(docs[1], v)
	assert.Equal(t, 0.0, Cosine(a, b))
}

func TestCosineZeroNormIsZero(t *testing.T) {
	docs := [][]string{{"term"}}
	v := buildVocabulary(docs, 0)

	filled := vectorize([]string{"term"}, v)
	empty := vectorize(nil, v)

	assert.Equal(t, 0.0, Cosine(filled, empty))
	assert.Equal(t, 0.0, Cosine(empty, empty))
}

func TestCosineSymmetricAndBounded(t *testing.T) {
	docs := [][]string{
		{"shared", "shared", "one"},
		{"shared", "two", "two"},
	}
	v := buildVocabulary(docs, 0)

	a := vectorize(docs[0], v)
	b := vectorize(docs[1], v)

	ab := Cosine(a, b)
	ba := Cosine(b, a)
	assert.Equal(t, ab, ba)
	assert.GreaterOrEqual(t, ab, 0.0)
	assert.LessOrEqual(t, ab, 1.0)
}

func TestRound4(t *testing.T) {
	assert.Equal(t, 0.1234, round4(0.12344))
	assert.Equal(t, 0.1235, round4(0.12346))
	assert.Equal(t, 1.0, round4(0.99999))
	assert.Equal(t, 0.0, round4(0.00004))
}
