package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/adapters/driven/storage/memory"
	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/services"
	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/similarity"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	docStore := memory.NewDocumentStore()
	jobStore := memory.NewJobStore()
	engine := similarity.New(similarity.DefaultOptions())
	t.Cleanup(func() { _ = engine.Close() })

	analyzer := services.NewAnalysisOrchestrator(docStore, jobStore, engine, 2)
	docs := services.NewDocumentManager(docStore)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler, cleanup := Handler(analyzer, docs, DefaultConfig(), logger)
	t.Cleanup(cleanup)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func addDocument(t *testing.T, srv *httptest.Server, name, content string) string {
	t.Helper()

	resp, data := doJSON(t, http.MethodPost, srv.URL+"/api/documents", map[string]string{
		"name":    name,
		"content": content,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))

	var doc struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.NotEmpty(t, doc.ID)
	return doc.ID
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, data := doJSON(t, http.MethodGet, srv.URL+"/api/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(data))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestDocumentLifecycle(t *testing.T) {
	srv := newTestServer(t)

	id := addDocument(t, srv, "essay.txt", "an essay about document similarity detection")

	resp, data := doJSON(t, http.MethodGet, srv.URL+"/api/documents/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var doc struct {
		Name      string `json:"name"`
		WordCount int    `json:"word_count"`
		Preview   string `json:"preview"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "essay.txt", doc.Name)
	assert.Equal(t, 6, doc.WordCount)
	assert.NotEmpty(t, doc.Preview)

	resp, data = doJSON(t, http.MethodGet, srv.URL+"/api/documents", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(data, &list))
	assert.Equal(t, 1, list.Total)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/documents/"+id, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/documents/"+id, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAddDocumentRejectsEmptyContent(t *testing.T) {
	srv := newTestServer(t)

	resp, data := doJSON(t, http.MethodPost, srv.URL+"/api/documents", map[string]string{
		"name":    "empty.txt",
		"content": "  ",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var e struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(data, &e))
	assert.Equal(t, "bad_request", e.Error.Code)
}

func TestClearDocuments(t *testing.T) {
	srv := newTestServer(t)

	addDocument(t, srv, "a.txt", "first document content")
	addDocument(t, srv, "b.txt", "second document content")

	resp, data := doJSON(t, http.MethodDelete, srv.URL+"/api/documents", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"deleted":2}`, string(data))
}

func pollJob(t *testing.T, srv *httptest.Server, jobID string) map[string]any {
	t.Helper()

	var job map[string]any
	require.Eventually(t, func() bool {
		resp, data := doJSON(t, http.MethodGet, srv.URL+"/api/results/"+jobID, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.NoError(t, json.Unmarshal(data, &job))
		status := job["status"].(string)
		return status == "completed" || status == "failed"
	}, 5*time.Second, 20*time.Millisecond)
	return job
}

func TestAnalyzeFlow(t *testing.T) {
	srv := newTestServer(t)

	addDocument(t, srv, "a.txt", "the quick brown fox jumps over the lazy dog")
	addDocument(t, srv, "b.txt", "the quick brown fox jumps over the lazy dog")
	addDocument(t, srv, "c.txt", "stock markets rallied sharply this morning")

	resp, data := doJSON(t, http.MethodPost, srv.URL+"/api/analyze", map[string]any{
		"threshold": 0.8,
	})
	require.Equal(t, http.StatusAccepted, resp.StatusCode, string(data))

	var accepted struct {
		JobID  string `json:"job_id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(data, &accepted))
	require.NotEmpty(t, accepted.JobID)
	assert.Equal(t, "pending", accepted.Status)

	job := pollJob(t, srv, accepted.JobID)
	require.Equal(t, "completed", job["status"])

	assert.EqualValues(t, 3, job["total_documents"])
	assert.EqualValues(t, 3, job["total_comparisons"])
	assert.NotEmpty(t, job["processing_time"])
	assert.NotNil(t, job["similarity_matrix"])

	pairs := job["similar_pairs"].([]any)
	require.NotEmpty(t, pairs)
	top := pairs[0].(map[string]any)
	assert.Equal(t, "a.txt", top["doc1"])
	assert.Equal(t, "b.txt", top["doc2"])
	assert.Equal(t, "100.0%", top["percentage"])
	assert.Equal(t, true, top["flagged"])

	stats := job["statistics"].(map[string]any)
	assert.EqualValues(t, 1, stats["flagged_count"])
}

func TestAnalyzeInvalidThreshold(t *testing.T) {
	srv := newTestServer(t)

	addDocument(t, srv, "a.txt", "content one")
	addDocument(t, srv, "b.txt", "content two")

	resp, data := doJSON(t, http.MethodPost, srv.URL+"/api/analyze", map[string]any{
		"threshold": 0.2,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(data), "invalid_threshold")
}

func TestAnalyzeInsufficientDocuments(t *testing.T) {
	srv := newTestServer(t)

	addDocument(t, srv, "a.txt", "only one document")

	resp, data := doJSON(t, http.MethodPost, srv.URL+"/api/analyze", map[string]any{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(data), "insufficient_documents")
}

func TestResultsUnknownJob(t *testing.T) {
	srv := newTestServer(t)

	resp, data := doJSON(t, http.MethodGet, srv.URL+"/api/results/no-such-job", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(data), "job_not_found")
}

func TestJobsListAndDelete(t *testing.T) {
	srv := newTestServer(t)

	addDocument(t, srv, "a.txt", "shared words in documents")
	addDocument(t, srv, "b.txt", "shared words in documents")

	resp, data := doJSON(t, http.MethodPost, srv.URL+"/api/analyze", map[string]any{})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	var accepted struct {
		JobID string `json:"job_id"`
	}
	require.NoError(t, json.Unmarshal(data, &accepted))
	pollJob(t, srv, accepted.JobID)

	resp, data = doJSON(t, http.MethodGet, srv.URL+"/api/jobs", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(data, &list))
	assert.Equal(t, 1, list.Total)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/jobs/"+accepted.JobID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/jobs/"+accepted.JobID, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAnalyzeSubset(t *testing.T) {
	srv := newTestServer(t)

	a := addDocument(t, srv, "a.txt", "alpha beta gamma delta epsilon")
	b := addDocument(t, srv, "b.txt", "alpha beta gamma delta zeta")
	addDocument(t, srv, "c.txt", "unrelated content entirely")

	resp, data := doJSON(t, http.MethodPost, srv.URL+"/api/analyze", map[string]any{
		"document_ids": []string{a, b},
	})
	require.Equal(t, http.StatusAccepted, resp.StatusCode, string(data))

	var accepted struct {
		JobID string `json:"job_id"`
	}
	require.NoError(t, json.Unmarshal(data, &accepted))

	job := pollJob(t, srv, accepted.JobID)
	require.Equal(t, "completed", job["status"])
	assert.EqualValues(t, 2, job["total_documents"])
	assert.EqualValues(t, 1, job["total_comparisons"])
}

func TestAnalyzeUnknownDocumentID(t *testing.T) {
	srv := newTestServer(t)

	addDocument(t, srv, "a.txt", "content one here")
	addDocument(t, srv, "b.txt", "content two here")

	resp, data := doJSON(t, http.MethodPost, srv.URL+"/api/analyze", map[string]any{
		"document_ids": []string{"missing-id", "another-missing"},
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(data), "not_found")
}

func TestInvalidJSONBody(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/documents", "application/json",
		bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "85.0%", formatPercentage(0.85))
	assert.Equal(t, "100.0%", formatPercentage(1))

	assert.Equal(t, "250ms", formatDuration(250*time.Millisecond))
	assert.Equal(t, "1.50s", formatDuration(1500*time.Millisecond))
	assert.Equal(t, "2m 5s", formatDuration(125*time.Second))
	assert.Equal(t, "1h 30m", formatDuration(90*time.Minute))
}

func TestRateLimiting(t *testing.T) {
	docStore := memory.NewDocumentStore()
	jobStore := memory.NewJobStore()
	engine := similarity.New(similarity.DefaultOptions())
	t.Cleanup(func() { _ = engine.Close() })

	analyzer := services.NewAnalysisOrchestrator(docStore, jobStore, engine, 1)
	docs := services.NewDocumentManager(docStore)

	cfg := DefaultConfig()
	cfg.RequestsPerMinute = 3

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler, cleanup := Handler(analyzer, docs, cfg, logger)
	t.Cleanup(cleanup)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	limited := false
	for i := 0; i < 10; i++ {
		resp, err := http.Get(srv.URL + "/api/health")
		require.NoError(t, err)
		resp.Body.Close()
		if resp.StatusCode == http.StatusTooManyRequests {
			limited = true
			assert.Equal(t, "60", resp.Header.Get("Retry-After"))
			break
		}
	}
	assert.True(t, limited, "expected a 429 within the burst window")
}
