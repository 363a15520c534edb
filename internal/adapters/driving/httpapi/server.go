// Package httpapi exposes the document collection and the analysis
// pipeline over a JSON HTTP API. Clients upload documents, start an
// analysis and poll the job endpoint until it reports a terminal state.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/domain"
	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/ports/driving"
)

// Config holds configurable limits and request defaults for the server.
type Config struct {
	MaxRequestBody    int64   // bytes, for JSON endpoints
	RequestsPerMinute int     // per-client rate limit
	DefaultThreshold  float64 // applied when a request omits threshold
	IncludeAllPairs   bool    // applied when a request omits the flag
}

// DefaultConfig returns reasonable defaults.
func DefaultConfig() *Config {
	return &Config{
		MaxRequestBody:    10 << 20,
		RequestsPerMinute: 120,
		DefaultThreshold:  0.7,
		IncludeAllPairs:   true,
	}
}

type server struct {
	analyzer driving.Analyzer
	docs     driving.DocumentService
	cfg      *Config
	logger   *slog.Logger
}

// Handler creates the HTTP handler with all routes and middleware.
// The returned cleanup function stops background goroutines and should be
// called on server shutdown.
func Handler(
	analyzer driving.Analyzer,
	docs driving.DocumentService,
	cfg *Config,
	logger *slog.Logger,
) (http.Handler, func()) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &server{
		analyzer: analyzer,
		docs:     docs,
		cfg:      cfg,
		logger:   logger,
	}

	rl := newRateLimiter(cfg.RequestsPerMinute)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handleHealth)

	mux.HandleFunc("POST /api/documents", s.handleAddDocument)
	mux.HandleFunc("GET /api/documents", s.handleListDocuments)
	mux.HandleFunc("GET /api/documents/{id}", s.handleGetDocument)
	mux.HandleFunc("DELETE /api/documents/{id}", s.handleDeleteDocument)
	mux.HandleFunc("DELETE /api/documents", s.handleClearDocuments)

	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("GET /api/results/{job_id}", s.handleResults)
	mux.HandleFunc("GET /api/jobs", s.handleListJobs)
	mux.HandleFunc("DELETE /api/jobs/{job_id}", s.handleDeleteJob)

	// Execution order: request ID -> logging -> recovery -> rate limit
	handler := applyMiddleware(mux,
		requestIDMiddleware,
		loggingMiddleware(logger),
		recoveryMiddleware(logger),
		rl.middleware,
	)

	cleanup := func() {
		rl.Stop()
	}

	return handler, cleanup
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleAddDocument(w http.ResponseWriter, r *http.Request) {
	var req addDocumentRequest
	if err := readJSON(r, s.cfg.MaxRequestBody, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	doc, err := s.docs.Add(r.Context(), req.Name, req.Content)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDocumentResponse(doc))
}

func (s *server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.docs.List(r.Context())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	resp := documentListResponse{
		Documents: make([]documentResponse, len(docs)),
		Total:     len(docs),
	}
	for i := range docs {
		resp.Documents[i] = toDocumentResponse(&docs[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.docs.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDocumentResponse(doc))
}

func (s *server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.docs.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleClearDocuments(w http.ResponseWriter, r *http.Request) {
	removed, err := s.docs.DeleteAll(r.Context())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"deleted": removed})
}

// handleAnalyze accepts the analysis request, registers a job and
// returns 202 with the job ID. Completion is observed via the results
// endpoint.
func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := readJSON(r, s.cfg.MaxRequestBody, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	cfg := domain.AnalysisConfig{
		Threshold:       s.cfg.DefaultThreshold,
		IncludeAllPairs: s.cfg.IncludeAllPairs,
		DocumentIDs:     req.DocumentIDs,
	}
	if req.Threshold != nil {
		cfg.Threshold = *req.Threshold
	}
	if req.IncludeAllPairs != nil {
		cfg.IncludeAllPairs = *req.IncludeAllPairs
	}

	jobID, err := s.analyzer.Submit(r.Context(), cfg)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, analyzeResponse{
		JobID:  jobID,
		Status: string(domain.JobStatusPending),
	})
}

// handleResults returns the full job snapshot. Non-terminal jobs come
// back with their current status and no result; clients poll until the
// status is completed or failed.
func (s *server) handleResults(w http.ResponseWriter, r *http.Request) {
	job, err := s.analyzer.Status(r.Context(), r.PathValue("job_id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toJobResponse(job))
}

func (s *server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.analyzer.Jobs(r.Context())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	resp := jobListResponse{
		Jobs:  make([]jobResponse, len(jobs)),
		Total: len(jobs),
	}
	for i := range jobs {
		resp.Jobs[i] = toJobResponse(&jobs[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	if err := s.analyzer.Delete(r.Context(), r.PathValue("job_id")); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeDomainError maps domain sentinel errors to HTTP responses.
func (s *server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrJobNotFound):
		writeError(w, http.StatusNotFound, "job_not_found", err.Error())
	case errors.Is(err, domain.ErrInvalidThreshold):
		writeError(w, http.StatusBadRequest, "invalid_threshold", err.Error())
	case errors.Is(err, domain.ErrInsufficientDocuments):
		writeError(w, http.StatusBadRequest, "insufficient_documents", err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
	default:
		s.logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // response already committed
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

func readJSON(r *http.Request, maxSize int64, v any) error {
	limited := io.LimitReader(r.Body, maxSize)
	if err := json.NewDecoder(limited).Decode(v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}
