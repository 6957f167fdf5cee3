// Package types provides type definitions for structured data used throughout the project advisor system.
package types

// ResumeRecord holds the structured fields extracted from a résumé document.
// All list fields are non-nil so they serialize as empty arrays.
type ResumeRecord struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Skills     []string `json:"skills"`
	Education  []string `json:"education"`
	Experience []string `json:"experience"`
	RawText    string   `json:"rawText"`
}
