package types

// Publication is a single entry from the publications table of a scholar
// profile page. Year stays a string because the page sometimes renders it
// empty or with footnote markers.
type Publication struct {
	Title     string `json:"title"`
	Authors   string `json:"authors"`
	Year      string `json:"year"`
	Citations int    `json:"citations"`
}

// ScholarRecord holds the fields scraped from a public Google Scholar
// profile page. Numeric fields default to zero when the page does not
// expose them.
type ScholarRecord struct {
	Name              string        `json:"name"`
	Affiliation       string        `json:"affiliation"`
	TotalCitations    int           `json:"totalCitations"`
	HIndex            int           `json:"hIndex"`
	ResearchInterests []string      `json:"researchInterests"`
	Publications      []Publication `json:"publications"`
}
