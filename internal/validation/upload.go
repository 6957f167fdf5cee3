package validation

import "github.com/jonathan/project-advisor/internal/ingestion"

// MaxUploadSize is the résumé upload limit in bytes.
const MaxUploadSize = 5 << 20 // 5 MiB

var allowedResumeTypes = map[string]bool{
	ingestion.MIMETypePDF:  true,
	ingestion.MIMETypeDOCX: true,
}

// AllowedResumeType reports whether the upload MIME type is accepted.
// Only PDF and the DOCX office type are; pasted plain text goes through a
// separate endpoint.
func AllowedResumeType(mimeType string) bool {
	return allowedResumeTypes[mimeType]
}

// WithinSizeLimit reports whether the declared upload size is acceptable.
func WithinSizeLimit(size int64) bool {
	return size <= MaxUploadSize
}
