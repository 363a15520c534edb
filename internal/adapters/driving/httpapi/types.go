package httpapi

import (
	"fmt"
	"time"

	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/domain"
)

// Wire types for the JSON API. Field names are part of the public
// contract; keep them stable.

type documentResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	WordCount  int       `json:"word_count"`
	Status     string    `json:"status"`
	Preview    string    `json:"preview"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type documentListResponse struct {
	Documents []documentResponse `json:"documents"`
	Total     int                `json:"total"`
}

type addDocumentRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type analyzeRequest struct {
	Threshold       *float64 `json:"threshold,omitempty"`
	IncludeAllPairs *bool    `json:"include_all_pairs,omitempty"`
	DocumentIDs     []string `json:"document_ids,omitempty"`
}

type analyzeResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

type pairResponse struct {
	Doc1       string  `json:"doc1"`
	Doc2       string  `json:"doc2"`
	Doc1ID     string  `json:"doc1_id"`
	Doc2ID     string  `json:"doc2_id"`
	Similarity float64 `json:"similarity"`
	Percentage string  `json:"percentage"`
	Flagged    bool    `json:"flagged"`
}

type statisticsResponse struct {
	TotalDocuments    int     `json:"total_documents"`
	TotalComparisons  int     `json:"total_comparisons"`
	FlaggedCount      int     `json:"flagged_count"`
	AverageSimilarity float64 `json:"average_similarity"`
	MinSimilarity     float64 `json:"min_similarity"`
	MaxSimilarity     float64 `json:"max_similarity"`
}

type jobResponse struct {
	JobID            string              `json:"job_id"`
	Status           string              `json:"status"`
	TotalDocuments   int                 `json:"total_documents"`
	TotalComparisons int                 `json:"total_comparisons,omitempty"`
	SimilarPairs     []pairResponse      `json:"similar_pairs,omitempty"`
	SimilarityMatrix [][]float64         `json:"similarity_matrix,omitempty"`
	DocumentNames    []string            `json:"document_names,omitempty"`
	Statistics       *statisticsResponse `json:"statistics,omitempty"`
	ProcessingTime   string              `json:"processing_time,omitempty"`
	ErrorMessage     string              `json:"error_message,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	CompletedAt      *time.Time          `json:"completed_at,omitempty"`
}

type jobListResponse struct {
	Jobs  []jobResponse `json:"jobs"`
	Total int           `json:"total"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func toDocumentResponse(doc *domain.Document) documentResponse {
	return documentResponse{
		ID:         doc.ID,
		Name:       doc.Name,
		WordCount:  doc.WordCount,
		Status:     string(doc.Status),
		Preview:    doc.Preview(200),
		UploadedAt: doc.UploadedAt,
	}
}

func toJobResponse(job *domain.AnalysisJob) jobResponse {
	resp := jobResponse{
		JobID:          job.ID,
		Status:         string(job.Status),
		TotalDocuments: job.TotalDocuments,
		ErrorMessage:   job.ErrorMessage,
		CreatedAt:      job.CreatedAt,
		CompletedAt:    job.CompletedAt,
	}

	if job.Result == nil {
		return resp
	}

	r := job.Result
	resp.TotalComparisons = r.Statistics.TotalComparisons
	resp.SimilarityMatrix = r.Matrix
	resp.DocumentNames = r.DocumentNames
	resp.ProcessingTime = formatDuration(time.Duration(r.Statistics.ProcessingTimeMs) * time.Millisecond)
	resp.Statistics = &statisticsResponse{
		TotalDocuments:    r.Statistics.TotalDocuments,
		TotalComparisons:  r.Statistics.TotalComparisons,
		FlaggedCount:      r.Statistics.FlaggedCount,
		AverageSimilarity: r.Statistics.AvgSimilarity,
		MinSimilarity:     r.Statistics.MinSimilarity,
		MaxSimilarity:     r.Statistics.MaxSimilarity,
	}

	resp.SimilarPairs = make([]pairResponse, len(r.Pairs))
	for i, p := range r.Pairs {
		resp.SimilarPairs[i] = pairResponse{
			Doc1:       p.Doc1Name,
			Doc2:       p.Doc2Name,
			Doc1ID:     p.Doc1ID,
			Doc2ID:     p.Doc2ID,
			Similarity: p.Similarity,
			Percentage: formatPercentage(p.Similarity),
			Flagged:    p.Flagged,
		}
	}

	return resp
}

// formatPercentage renders a similarity score as a display percentage,
// one decimal place.
func formatPercentage(similarity float64) string {
	return fmt.Sprintf("%.1f%%", similarity*100)
}

// formatDuration renders an elapsed time compactly: milliseconds under a
// second, fractional seconds under a minute, then minute and hour forms.
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d < time.Hour:
		m := int(d.Minutes())
		s := int(d.Seconds()) - m*60
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		h := int(d.Hours())
		m := int(d.Minutes()) - h*60
		return fmt.Sprintf("%dh %dm", h, m)
	}
}
