package similarity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVocabularyOrdering(t *testing.T) {
	docs := [][]string{
		{"apple", "banana", "apple"},
		{"apple", "cherry"},
	}

	v := buildVocabulary(docs, 0)

	require.Equal(t, 3, v.Size())

	// Highest corpus frequency first, ties by first appearance.
	assert.Equal(t, "apple", v.Term(0))
	assert.Equal(t, "banana", v.Term(1))
	assert.Equal(t, "cherry", v.Term(2))
}

func TestBuildVocabularyCap(t *testing.T) {
	docs := [][]string{
		{"alpha", "alpha", "alpha", "beta", "beta", "gamma"},
	}

	v := buildVocabulary(docs, 2)

	require.Equal(t, 2, v.Size())
	_, ok := v.Index("gamma")
	assert.False(t, ok, "capped term should be absent")

	idx, ok := v.Index("alpha")
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestBuildVocabularyDocFreq(t *testing.T) {
	docs := [][]string{
		{"shared", "only1"},
		{"shared", "only2"},
		{"shared"},
	}

	v := buildVocabulary(docs, 0)

	idx, ok := v.Index("shared")
	require.True(t, ok)
	assert.Equal(t, 3, v.DocFreq(idx))
	assert.Equal(t, 3, v.DocCount())

	idx, ok = v.Index("only1")
	require.True(t, ok)
	assert.Equal(t, 1, v.DocFreq(idx))
}

func TestIDFSmoothed(t *testing.T) {
	docs := [][]string{
		{"everywhere", "rare"},
		{"everywhere"},
		{"everywhere"},
	}

	v := buildVocabulary(docs, 0)

	everywhere, ok := v.Index("everywhere")
	require.True(t, ok)
	rare, ok := v.Index("rare")
	require.True(t, ok)

	// ln((3+1)/(3+1)) + 1 = 1 for the ubiquitous term.
	assert.InDelta(t, 1.0, v.IDF(everywhere), 1e-12)
	// ln((3+1)/(1+1)) + 1 = ln(2) + 1 for the rare one.
	assert.InDelta(t, math.Log(2)+1, v.IDF(rare), 1e-12)

	// Smoothing keeps every IDF strictly positive.
	for i := 0; i < v.Size(); i++ {
		assert.Greater(t, v.IDF(i), 0.0)
	}
}

func TestBuildVocabularyEmptyCorpus(t *testing.T) {
	v := buildVocabulary([][]string{{}, nil}, 0)
	assert.Equal(t, 0, v.Size())
	assert.Equal(t, 2, v.DocCount())
}
