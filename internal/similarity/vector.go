package similarity

import (
	"math"
	"sort"
)

// Vector is a sparse TF-IDF feature vector. Entries are stored as
// parallel index/value slices sorted by index. Values are raw TF-IDF
// weights; length normalization happens at comparison time so the raw
// vectors stay usable for diagnostics.
type Vector struct {
	indices []int
	values  []float64
	norm    float64
}

// vectorize computes the TF-IDF vector for one token sequence against
// the batch vocabulary. Term frequency is the raw in-document count;
// terms outside the vocabulary are dropped.
func vectorize(tokens []string, vocab *Vocabulary) Vector {
	counts := make(map[int]int, len(tokens))
	for _, tok := range tokens {
		if idx, ok := vocab.Index(tok); ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return Vector{}
	}

	indices := make([]int, 0, len(counts))
	for idx := range counts {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	values := make([]float64, len(indices))
	var norm2 float64
	for i, idx := range indices {
		w := float64(counts[idx]) * vocab.IDF(idx)
		values[i] = w
		norm2 += w * w
	}

	return Vector{
		indices: indices,
		values:  values,
		norm:    math.Sqrt(norm2),
	}
}

// NonZero returns the number of non-zero entries.
func (v Vector) NonZero() int {
	return len(v.indices)
}

// Norm returns the Euclidean norm. Zero only when the document had no
// recognized terms.
func (v Vector) Norm() float64 {
	return v.norm
}

// Dot returns the dot product of two sparse vectors via a sorted merge.
func (v Vector) Dot(o Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v.indices) && j < len(o.indices) {
		switch {
		case v.indices[i] == o.indices[j]:
			sum += v.values[i] * o.values[j]
			i++
			j++
		case v.indices[i] < o.indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// Cosine returns the cosine similarity of two vectors, defined as 0
// when either norm is zero, clamped into [0, 1].
func Cosine(a, b Vector) float64 {
	if a.norm == 0 || b.norm == 0 {
		return 0
	}
	sim := a.Dot(b) / (a.norm * b.norm)
	// Float rounding can push the ratio a hair outside the valid range.
	return math.Max(0, math.Min(1, sim))
}

// round4 rounds to four decimal places, the precision reported for all
// similarity scores.
func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
