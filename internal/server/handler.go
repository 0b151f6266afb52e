package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/opmodel/bfhl/internal/classify"
	"github.com/opmodel/bfhl/internal/output"
)

// errorResponse is returned for requests rejected before classification.
type errorResponse struct {
	IsSuccess bool   `json:"is_success"`
	Error     string `json:"error"`
}

// handleBFHL classifies the request's data list. Pipeline failures are
// reported in the body with status 200; only undecodable or oversized
// bodies are rejected at the transport level.
func (s *Server) handleBFHL(w http.ResponseWriter, r *http.Request) {
	log := output.FromContext(r.Context())

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.metrics.decodeErrors.Inc()
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
			return
		}
		log.Warn("reading request body", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "could not read request body"})
		return
	}

	tokens, err := classify.DecodeTokens(body)
	if err != nil {
		s.metrics.decodeErrors.Inc()
		log.Debug("rejecting request", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	res := s.pipeline.Process(tokens, s.identity)
	if res.Cause != nil {
		log.Error("classification failed", "error", res.Cause, "tokens", len(tokens))
	} else {
		log.Debug("classified", "tokens", len(tokens), "sum", res.Sum)
	}
	s.metrics.observeResult(res)

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		output.Warn("writing response", "error", err)
	}
}
