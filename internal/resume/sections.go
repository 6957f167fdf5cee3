package resume

import "strings"

// minSectionLineLength is the shortest line kept as section content.
// Shorter lines are assumed to be headings, dates or stray fragments.
const minSectionLineLength = 10

var (
	educationOpeners = []string{"education", "degree", "university", "college", "bachelor", "master", "phd"}
	educationClosers = []string{"experience", "skills"}

	experienceOpeners = []string{"experience", "work", "employment", "position", "job"}
	experienceClosers = []string{"education", "skills"}
)

// captureSection folds over the line sequence carrying an explicit
// in-section state. The per-line order is fixed: open-check, append,
// close-check. Consequences of that order are deliberate: a section heading
// longer than the minimum length is itself captured, and a line that both
// opens and closes the section still lands in it.
//
// Education and experience run as independent passes over the same lines,
// so one line can appear in both sections.
func captureSection(lines []string, openers, closers []string) []string {
	captured := []string{}
	inSection := false
	for _, line := range lines {
		lowered := strings.ToLower(line)
		if containsAny(lowered, openers) {
			inSection = true
		}
		if inSection && len(line) > minSectionLineLength {
			captured = append(captured, line)
		}
		if containsAny(lowered, closers) {
			inSection = false
		}
	}
	return captured
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
