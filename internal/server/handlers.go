package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/brewlab/mixtree/pkg/errors"
	"github.com/brewlab/mixtree/pkg/pipeline"
)

// contentTypes maps output formats to their media types.
var contentTypes = map[string]string{
	pipeline.FormatJSON: "application/json",
	pipeline.FormatDOT:  "text/vnd.graphviz",
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleDrugs lists every drug name in the catalog.
func (s *Server) handleDrugs(w http.ResponseWriter, r *http.Request) {
	cat, _, err := s.runner.LoadCatalog(r.Context(), s.base)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"drugs": cat.Names()})
}

// handleFlowchart serves the flowchart for a drug as JSON.
func (s *Server) handleFlowchart(w http.ResponseWriter, r *http.Request) {
	s.serve(w, r, pipeline.FormatJSON)
}

// handleArtifact serves a rendered artifact in the requested format.
func (s *Server) handleArtifact(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.serve(w, r, format)
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request, format string) {
	drug := chi.URLParam(r, "drug")
	opts := s.requestOptions(r, drug)
	opts.Formats = []string{format}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	w.Write(result.Artifacts[format])
}

// requestOptions merges the server's base options with per-request query
// parameters.
func (s *Server) requestOptions(r *http.Request, drug string) pipeline.Options {
	opts := s.base
	opts.Drug = drug
	opts.Detailed = r.URL.Query().Get("detailed") == "true"
	opts.Refresh = r.URL.Query().Get("refresh") == "true"
	opts.Logger = s.logger
	return opts
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed",
		"id", RequestID(r.Context()),
		"path", r.URL.Path,
		"err", err)

	body := map[string]string{"error": apperrors.UserMessage(err)}
	if code := apperrors.GetCode(err); code != "" {
		body["code"] = string(code)
	}
	writeJSON(w, statusFor(err), body)
}

// statusFor maps structured error codes to HTTP status codes.
func statusFor(err error) int {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidDrug,
		apperrors.ErrCodeInvalidFormat, apperrors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
