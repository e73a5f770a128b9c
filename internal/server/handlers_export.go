package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/jonathan/resume-builder/internal/browser"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// exportRequest is the export endpoint's JSON body. Template defaults to
// the registry's default when unset.
type exportRequest struct {
	ResumeData json.RawMessage `json:"resumeData"`
	Template   string          `json:"template"`
}

// handleExportPDF runs the full export pipeline for one request and
// responds with either a complete PDF attachment or a structured error
// body, never both.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if len(req.ResumeData) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "resumeData is required", "")
		return
	}

	if err := schemas.ValidateResumeJSON(req.ResumeData); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume data", err.Error())
		return
	}

	var resume types.Resume
	if err := json.Unmarshal(req.ResumeData, &resume); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume data", err.Error())
		return
	}
	if err := resume.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume data", err.Error())
		return
	}

	// One engine instance per request; the semaphore only bounds how many
	// run at once.
	ctx := r.Context()
	if err := s.exportSem.Acquire(ctx, 1); err != nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "export queue full", "")
		return
	}
	defer s.exportSem.Release(1)

	artifact, err := s.exporter.Export(ctx, &resume, req.Template)
	if err != nil {
		s.exportErrorResponse(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(artifact.PDF)))
	if _, err := w.Write(artifact.PDF); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}

// handleListTemplates returns the selectable template catalogue.
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string][]rendering.TemplateInfo{
		"templates": s.exporter.Templates(),
	})
}

// exportErrorResponse maps pipeline failures onto the structured error
// body. Engine-not-found keeps its remediation message; nothing here ever
// exposes a stack trace.
func (s *Server) exportErrorResponse(w http.ResponseWriter, err error) {
	var notFound *rendering.TemplateNotFoundError
	var engineErr *browser.EngineNotFoundError
	var timeoutErr *browser.RenderTimeoutError

	switch {
	case errors.As(err, &notFound):
		s.errorResponse(w, http.StatusInternalServerError, "unknown template", notFound.Error())
	case errors.As(err, &engineErr):
		s.errorResponse(w, http.StatusInternalServerError, "rendering engine unavailable", engineErr.Error())
	case errors.As(err, &timeoutErr):
		s.errorResponse(w, http.StatusInternalServerError, "PDF rendering timed out", timeoutErr.Error())
	default:
		s.errorResponse(w, http.StatusInternalServerError, "failed to generate PDF", err.Error())
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message, details string) {
	body := map[string]string{"error": message}
	if details != "" {
		body["details"] = details
	}
	s.jsonResponse(w, status, body)
}
