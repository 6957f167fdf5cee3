// Package resume extracts structured fields from raw résumé text using
// rule-based heuristics: regex matching for contact details, vocabulary
// containment for skills, and keyword-driven section capture for education
// and experience entries.
package resume

import (
	"regexp"
	"strings"

	"github.com/jonathan/project-advisor/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// Extract parses raw résumé text into a structured record. It never fails:
// fields that cannot be found keep their empty values, and an empty input
// yields a record with only RawText set.
func Extract(rawText string) types.ResumeRecord {
	lines := splitLines(rawText)

	record := types.ResumeRecord{
		Skills:     []string{},
		Education:  []string{},
		Experience: []string{},
		RawText:    rawText,
	}
	if len(lines) > 0 {
		record.Name = lines[0]
	}

	// Contact patterns run against the original text, not the line list,
	// so matches split across surrounding whitespace survive.
	record.Email = emailPattern.FindString(rawText)
	record.Phone = phonePattern.FindString(rawText)
	record.Skills = matchSkills(rawText)

	record.Education = captureSection(lines, educationOpeners, educationClosers)
	record.Experience = captureSection(lines, experienceOpeners, experienceClosers)

	return record
}

// splitLines splits text into trimmed, non-empty lines.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// matchSkills tests every vocabulary term for substring containment against
// the lowercased text. Each matching term contributes exactly one entry, in
// vocabulary order. Containment means a term inside a longer word also
// matches ("go" inside "ergonomics"); that looseness is accepted.
func matchSkills(text string) []string {
	lowered := strings.ToLower(text)
	skills := []string{}
	for _, skill := range skillVocabulary {
		if strings.Contains(lowered, skill) {
			skills = append(skills, skill)
		}
	}
	return skills
}
