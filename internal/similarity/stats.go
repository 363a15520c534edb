package similarity

import "github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/domain"

// summarize derives the analysis statistics from the retained pair list.
// Average, minimum and maximum cover the retained pairs only; an empty
// list yields zeros for all three. The flagged count always reflects
// every pair at or above the threshold regardless of retention.
func summarize(retained []domain.SimilarityPair, flaggedCount, totalDocs int) domain.Statistics {
	stats := domain.Statistics{
		TotalDocuments:   totalDocs,
		TotalComparisons: totalDocs * (totalDocs - 1) / 2,
		FlaggedCount:     flaggedCount,
	}

	if len(retained) == 0 {
		return stats
	}

	sum := 0.0
	stats.MinSimilarity = retained[0].Similarity
	stats.MaxSimilarity = retained[0].Similarity
	for _, p := range retained {
		sum += p.Similarity
		if p.Similarity < stats.MinSimilarity {
			stats.MinSimilarity = p.Similarity
		}
		if p.Similarity > stats.MaxSimilarity {
			stats.MaxSimilarity = p.Similarity
		}
	}
	stats.AvgSimilarity = round4(sum / float64(len(retained)))

	return stats
}
