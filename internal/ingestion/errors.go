// Package ingestion handles résumé document ingestion: temp-file lifecycle
// for uploads and text extraction from PDF and DOCX files.
package ingestion

import "fmt"

// ExtractionError represents a failure while decoding a résumé document.
type ExtractionError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error for %s: %s", e.Path, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
