// Package scholar scrapes public Google Scholar profile pages into a fixed
// record schema.
package scholar

import "fmt"

// FetchError indicates the profile page could not be retrieved: a network
// failure or a non-2xx response. The cause is kept for server-side logging
// but handlers collapse it into one generic client message.
type FetchError struct {
	URL   string
	Cause error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to fetch scholar profile %s: %v", e.URL, e.Cause)
	}
	return fmt.Sprintf("failed to fetch scholar profile %s", e.URL)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}
