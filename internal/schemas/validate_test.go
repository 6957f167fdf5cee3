package schemas

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumeRecord_Valid(t *testing.T) {
	payload := `{
		"name": "Jane Doe",
		"email": "jane@example.com",
		"phone": "555-123-4567",
		"skills": ["python", "react"],
		"education": ["Bachelor of Science in Computer Science"],
		"experience": ["Software Engineer at Acme"],
		"rawText": "Jane Doe..."
	}`
	assert.NoError(t, ValidateResumeRecord(payload))
}

func TestValidateResumeRecord_EmptyObjectValid(t *testing.T) {
	// All fields are optional; an empty record is schema-valid.
	assert.NoError(t, ValidateResumeRecord(`{}`))
}

func TestValidateResumeRecord_WrongFieldType(t *testing.T) {
	err := ValidateResumeRecord(`{"skills": "not an array"}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Equal(t, "skills", validationErr.Errors[0].Field)
}

func TestValidateResumeRecord_NotAnObject(t *testing.T) {
	err := ValidateResumeRecord(`[1, 2, 3]`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateResumeRecord_MalformedJSON(t *testing.T) {
	err := ValidateResumeRecord(`{"skills": [`)
	require.Error(t, err)

	// Malformed JSON is a run failure, not a field-level report.
	var validationErr *ValidationError
	assert.False(t, errors.As(err, &validationErr))
}

func TestValidateScholarRecord_Valid(t *testing.T) {
	payload := `{
		"name": "Jane Researcher",
		"affiliation": "Example University",
		"totalCitations": 1234,
		"hIndex": 42,
		"researchInterests": ["Machine Learning"],
		"publications": [
			{"title": "A Paper", "authors": "J Researcher", "year": "2019", "citations": 10}
		]
	}`
	assert.NoError(t, ValidateScholarRecord(payload))
}

func TestValidateScholarRecord_TooManyPublications(t *testing.T) {
	var pubs []string
	for i := 0; i < 11; i++ {
		pubs = append(pubs, `{"title": "P"}`)
	}
	payload := `{"publications": [` + strings.Join(pubs, ",") + `]}`

	err := ValidateScholarRecord(payload)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "publications")
}

func TestValidateScholarRecord_WrongCitationType(t *testing.T) {
	err := ValidateScholarRecord(`{"totalCitations": "many"}`)
	require.Error(t, err)
}

func TestValidationError_MessageListsFields(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "skills", Message: "Invalid type"},
		{Field: "name", Message: "Invalid type"},
	}}
	msg := err.Error()
	assert.Contains(t, msg, "skills")
	assert.Contains(t, msg, "name")
}
