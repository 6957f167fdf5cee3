package types

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// ScholarProfileRequest is the request body for the scholar-profile endpoint.
type ScholarProfileRequest struct {
	ProfileURL string `json:"profileUrl" validate:"required"`
}

// ParseResumeTextRequest is the request body for the pasted-text résumé
// endpoint.
type ParseResumeTextRequest struct {
	Text string `json:"text" validate:"required"`
}

// SuggestProjectsRequest is the request body for the suggest-projects
// endpoint. Both payloads are kept raw so their shape can be validated
// against JSON Schemas before unmarshaling; either may be omitted, but not
// both.
type SuggestProjectsRequest struct {
	ResumeData  json.RawMessage `json:"resumeData,omitempty"`
	ScholarData json.RawMessage `json:"scholarData,omitempty"`
}

// Validate validates the ScholarProfileRequest using the validator.
func (r *ScholarProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ParseResumeTextRequest using the validator.
func (r *ParseResumeTextRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// HasResumeData reports whether the request carries a résumé payload.
func (r *SuggestProjectsRequest) HasResumeData() bool {
	return rawPresent(r.ResumeData)
}

// HasScholarData reports whether the request carries a scholar payload.
func (r *SuggestProjectsRequest) HasScholarData() bool {
	return rawPresent(r.ScholarData)
}

func rawPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
