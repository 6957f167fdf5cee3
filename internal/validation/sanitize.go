// Package validation provides input sanitization and upload checks for the
// request handlers.
package validation

import (
	"regexp"
	"strings"
)

var (
	scriptTagPattern    = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	jsURIPattern        = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerPattern = regexp.MustCompile(`(?i)on\w+\s*=`)
)

// SanitizeURL strips script tags, javascript: URIs and inline
// event-handler attribute patterns from untrusted URL input. It runs before
// any domain check so a smuggled payload cannot survive into a fetch or an
// error message.
func SanitizeURL(input string) string {
	input = scriptTagPattern.ReplaceAllString(input, "")
	input = jsURIPattern.ReplaceAllString(input, "")
	input = eventHandlerPattern.ReplaceAllString(input, "")
	return strings.TrimSpace(input)
}

// scholarDomain is the required substring for profile URLs.
const scholarDomain = "scholar.google.com"

// IsScholarURL reports whether the sanitized URL points at Google Scholar.
func IsScholarURL(url string) bool {
	return strings.Contains(url, scholarDomain)
}
