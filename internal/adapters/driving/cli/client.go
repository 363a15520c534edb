package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// flagServer overrides the server address used by the remote job
// commands.
var flagServer string

// Jobs live inside the serving process, so 'docsim results' and
// 'docsim jobs' talk to a running server over its API instead of
// wiring their own stores.

type jobView struct {
	JobID            string     `json:"job_id"`
	Status           string     `json:"status"`
	TotalDocuments   int        `json:"total_documents"`
	TotalComparisons int        `json:"total_comparisons"`
	SimilarPairs     []pairView `json:"similar_pairs"`
	Statistics       *statsView `json:"statistics"`
	ProcessingTime   string     `json:"processing_time"`
	ErrorMessage     string     `json:"error_message"`
	CreatedAt        time.Time  `json:"created_at"`
	CompletedAt      *time.Time `json:"completed_at"`
}

type pairView struct {
	Doc1       string `json:"doc1"`
	Doc2       string `json:"doc2"`
	Percentage string `json:"percentage"`
	Flagged    bool   `json:"flagged"`
}

type statsView struct {
	TotalDocuments    int     `json:"total_documents"`
	TotalComparisons  int     `json:"total_comparisons"`
	FlaggedCount      int     `json:"flagged_count"`
	AverageSimilarity float64 `json:"average_similarity"`
	MinSimilarity     float64 `json:"min_similarity"`
	MaxSimilarity     float64 `json:"max_similarity"`
}

type jobListView struct {
	Jobs  []jobView `json:"jobs"`
	Total int       `json:"total"`
}

type apiErrorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type apiClient struct {
	base string
	http *http.Client
}

// newAPIClient resolves the server address: the --server flag wins,
// then the configured listen address, then the default.
func newAPIClient() *apiClient {
	addr := flagServer
	if addr == "" && appConfig != nil {
		addr = appConfig.API.Listen
	}
	if addr == "" {
		addr = "127.0.0.1:8080"
	}
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	return &apiClient{
		base: strings.TrimRight(addr, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *apiClient) getJob(id string) (*jobView, error) {
	var job jobView
	if err := c.do(http.MethodGet, "/api/results/"+id, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *apiClient) listJobs() ([]jobView, error) {
	var list jobListView
	if err := c.do(http.MethodGet, "/api/jobs", &list); err != nil {
		return nil, err
	}
	return list.Jobs, nil
}

func (c *apiClient) deleteJob(id string) error {
	return c.do(http.MethodDelete, "/api/jobs/"+id, nil)
}

func (c *apiClient) do(method, path string, out any) error {
	req, err := http.NewRequest(method, c.base+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("contacting %s (is 'docsim serve' running?): %w", c.base, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var body apiErrorBody
		if json.NewDecoder(resp.Body).Decode(&body) == nil && body.Error.Message != "" {
			return fmt.Errorf("server: %s", body.Error.Message)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
