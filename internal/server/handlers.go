package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/project-advisor/internal/fetch"
	"github.com/jonathan/project-advisor/internal/ingestion"
	"github.com/jonathan/project-advisor/internal/resume"
	"github.com/jonathan/project-advisor/internal/schemas"
	"github.com/jonathan/project-advisor/internal/scholar"
	"github.com/jonathan/project-advisor/internal/suggest"
	"github.com/jonathan/project-advisor/internal/types"
	"github.com/jonathan/project-advisor/internal/validation"
)

// handleParseResume accepts a multipart résumé upload, extracts its text
// and returns the structured record. The file passes through a temp file
// that is removed on every exit path.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer func() { _ = file.Close() }()

	mimeType := header.Header.Get("Content-Type")
	if !validation.AllowedResumeType(mimeType) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid file type. Only PDF and DOCX allowed.")
		return
	}
	if !validation.WithinSizeLimit(header.Size) {
		s.errorResponse(w, http.StatusBadRequest, "File size too large. Max is 5MB.")
		return
	}

	path, cleanup, err := ingestion.SaveTemp(header.Filename, file)
	if err != nil {
		log.Printf("Resume upload error: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to parse resume. Please try again.")
		return
	}
	defer cleanup()

	text, err := ingestion.ExtractText(path, mimeType)
	if err != nil {
		log.Printf("Resume extraction error: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to parse resume. Please try again.")
		return
	}

	s.jsonResponse(w, http.StatusOK, resume.Extract(text))
}

// handleParseResumeText runs the field extractor over pasted résumé text.
func (s *Server) handleParseResumeText(w http.ResponseWriter, r *http.Request) {
	var req types.ParseResumeTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Resume text is required")
		return
	}

	s.jsonResponse(w, http.StatusOK, resume.Extract(req.Text))
}

// handleScholarProfile fetches and scrapes a Google Scholar profile. The
// URL is sanitized and checked for the scholar domain before any network
// traffic happens.
func (s *Server) handleScholarProfile(w http.ResponseWriter, r *http.Request) {
	var req types.ScholarProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Profile URL is required")
		return
	}

	sanitized := validation.SanitizeURL(req.ProfileURL)
	if !validation.IsScholarURL(sanitized) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid Google Scholar URL")
		return
	}

	opts := &scholar.Options{
		Fetch: &fetch.Options{
			Timeout:   s.cfg.FetchTimeout,
			UserAgent: fetch.DefaultUserAgent,
		},
		UseBrowser: s.cfg.UseBrowser,
		Verbose:    s.cfg.Verbose,
	}

	record, err := scholar.Scrape(r.Context(), sanitized, opts)
	if err != nil {
		// Fetch failures and scrape failures collapse into one generic
		// client message; the detail stays in the server log.
		log.Printf("Scholar profile error: %v", err)
		s.errorResponse(w, http.StatusInternalServerError,
			"Cannot fetch Google Scholar profile. Please check the URL and try again.")
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleSuggestProjects combines a résumé record and a scholar record into
// the suggestion catalog. Either record may be omitted, but not both; any
// record present must match its schema.
func (s *Server) handleSuggestProjects(w http.ResponseWriter, r *http.Request) {
	var req types.SuggestProjectsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if !req.HasResumeData() && !req.HasScholarData() {
		s.errorResponse(w, http.StatusBadRequest, "Resume data or Scholar data is required")
		return
	}

	var resumeData types.ResumeRecord
	if req.HasResumeData() {
		if err := schemas.ValidateResumeRecord(string(req.ResumeData)); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid resume data: "+err.Error())
			return
		}
		if err := json.Unmarshal(req.ResumeData, &resumeData); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid resume data: "+err.Error())
			return
		}
	}

	var scholarData types.ScholarRecord
	if req.HasScholarData() {
		if err := schemas.ValidateScholarRecord(string(req.ScholarData)); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid scholar data: "+err.Error())
			return
		}
		if err := json.Unmarshal(req.ScholarData, &scholarData); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid scholar data: "+err.Error())
			return
		}
	}

	catalog := suggest.Generate(resumeData, scholarData)
	s.jsonResponse(w, http.StatusOK, map[string]any{"suggestions": catalog})
}
