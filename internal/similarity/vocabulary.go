package similarity

import (
	"math"
	"sort"
)

// Vocabulary maps normalized terms to dense indices for one analysis
// batch. Indices are contiguous [0, Size()); the mapping is immutable
// once built and never reused across jobs, because document frequencies
// are corpus-relative.
type Vocabulary struct {
	index    map[string]int
	terms    []string
	docFreq  []int
	docCount int
}

// buildVocabulary derives the term->index mapping from the tokenized
// batch. Indices are assigned by descending corpus term frequency, ties
// broken by first-seen order, so vocabularies are reproducible. When
// maxTerms > 0 only the top maxTerms terms are kept; dropped terms
// vanish from all vectors.
func buildVocabulary(docTokens [][]string, maxTerms int) *Vocabulary {
	type termStat struct {
		term      string
		count     int
		firstSeen int
	}

	stats := make(map[string]*termStat)
	order := 0
	for _, tokens := range docTokens {
		for _, tok := range tokens {
			s, ok := stats[tok]
			if !ok {
				s = &termStat{term: tok, firstSeen: order}
				stats[tok] = s
				order++
			}
			s.count++
		}
	}

	ranked := make([]*termStat, 0, len(stats))
	for _, s := range stats {
		ranked = append(ranked, s)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].firstSeen < ranked[j].firstSeen
	})

	if maxTerms > 0 && len(ranked) > maxTerms {
		ranked = ranked[:maxTerms]
	}

	v := &Vocabulary{
		index:    make(map[string]int, len(ranked)),
		terms:    make([]string, len(ranked)),
		docFreq:  make([]int, len(ranked)),
		docCount: len(docTokens),
	}
	for i, s := range ranked {
		v.index[s.term] = i
		v.terms[i] = s.term
	}

	// Document frequency per retained term: number of documents
	// containing the term at least once.
	for _, tokens := range docTokens {
		seen := make(map[int]struct{}, len(tokens))
		for _, tok := range tokens {
			if idx, ok := v.index[tok]; ok {
				seen[idx] = struct{}{}
			}
		}
		for idx := range seen {
			v.docFreq[idx]++
		}
	}

	return v
}

// Size returns the number of terms in the vocabulary.
func (v *Vocabulary) Size() int {
	return len(v.terms)
}

// Index returns the dense index for a term.
func (v *Vocabulary) Index(term string) (int, bool) {
	i, ok := v.index[term]
	return i, ok
}

// Term returns the term at a dense index.
func (v *Vocabulary) Term(i int) string {
	return v.terms[i]
}

// DocFreq returns the number of documents containing the term at index i.
func (v *Vocabulary) DocFreq(i int) int {
	return v.docFreq[i]
}

// DocCount returns the batch size the vocabulary was built over.
func (v *Vocabulary) DocCount() int {
	return v.docCount
}

// IDF returns the smoothed inverse document frequency for the term at
// index i: ln((N+1)/(df+1)) + 1. The smoothing keeps IDF strictly
// positive, including for terms present in every document.
func (v *Vocabulary) IDF(i int) float64 {
	n := float64(v.docCount)
	df := float64(v.docFreq[i])
	return math.Log((n+1)/(df+1)) + 1
}
