package scholar

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/project-advisor/internal/fetch"
	"github.com/jonathan/project-advisor/internal/types"
)

// Selectors for the Scholar profile page. These track the markup Google
// ships today; a selector that stops matching degrades to empty fields
// rather than failing the scrape.
const (
	selProfileName = "#gsc_prf_in"
	selAffiliation = ".gsc_prf_il"
	selInterest    = ".gsc_prf_int"
	selStat        = ".gsc_rsb_std"
	selResultRow   = ".gsc_a_tr"
	selPubTitle    = ".gsc_a_at"
	selPubYear     = ".gsc_a_y"
	selPubCited    = ".gsc_a_c"
)

// maxPublications caps how many result rows are kept.
const maxPublications = 10

// Stat cells appear in a fixed order on the profile page.
const (
	statIndexCitations = 0
	statIndexHIndex    = 2
)

// Options configures profile scraping.
type Options struct {
	Fetch      *fetch.Options
	UseBrowser bool // render with a headless browser when the HTTP fetch looks blocked
	Verbose    bool
}

// Scrape fetches the profile page at profileURL and parses it into a
// ScholarRecord. Callers are expected to have sanitized the URL and checked
// the scholar.google.com domain already. Retrieval failures come back as a
// *FetchError; a page that fetches but matches no selectors yields a record
// of empty defaults.
func Scrape(ctx context.Context, profileURL string, opts *Options) (types.ScholarRecord, error) {
	if opts == nil {
		opts = &Options{}
	}

	result, err := fetch.URL(ctx, profileURL, opts.Fetch)
	if err != nil {
		return types.ScholarRecord{}, &FetchError{URL: profileURL, Cause: err}
	}

	html := result.HTML
	if opts.UseBrowser && fetch.LooksBlocked(html) {
		if opts.Verbose {
			log.Printf("[scholar] HTTP response looks blocked (%d bytes), retrying with browser", len(html))
		}
		rendered, berr := fetch.BrowserSimple(ctx, profileURL, opts.Verbose)
		if berr != nil {
			if opts.Verbose {
				log.Printf("[scholar] browser fallback failed: %v, using HTTP content", berr)
			}
		} else {
			html = rendered
		}
	}

	record, err := Parse(html)
	if err != nil {
		return types.ScholarRecord{}, err
	}
	return record, nil
}

// Parse extracts a ScholarRecord from profile page HTML. Selectors that
// match nothing leave their fields at defaults; only malformed input that
// the HTML parser rejects outright is an error.
func Parse(html string) (types.ScholarRecord, error) {
	record := types.ScholarRecord{
		ResearchInterests: []string{},
		Publications:      []types.Publication{},
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return record, fmt.Errorf("failed to parse profile HTML: %w", err)
	}

	record.Name = strings.TrimSpace(doc.Find(selProfileName).First().Text())
	record.Affiliation = strings.TrimSpace(doc.Find(selAffiliation).First().Text())

	doc.Find(selInterest).Each(func(_ int, s *goquery.Selection) {
		if interest := strings.TrimSpace(s.Text()); interest != "" {
			record.ResearchInterests = append(record.ResearchInterests, interest)
		}
	})

	doc.Find(selStat).Each(func(i int, s *goquery.Selection) {
		switch i {
		case statIndexCitations:
			record.TotalCitations = parseCount(s.Text())
		case statIndexHIndex:
			record.HIndex = parseCount(s.Text())
		}
	})

	doc.Find(selResultRow).EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if len(record.Publications) >= maxPublications {
			return false
		}
		title := row.Find(selPubTitle).First()
		titleText := strings.TrimSpace(title.Text())
		if titleText == "" {
			return true
		}
		record.Publications = append(record.Publications, types.Publication{
			Title: titleText,
			// The authors line is the node immediately following the
			// title link inside the same cell.
			Authors:   strings.TrimSpace(title.Next().Text()),
			Year:      strings.TrimSpace(row.Find(selPubYear).First().Text()),
			Citations: parseCount(row.Find(selPubCited).First().Text()),
		})
		return true
	})

	return record, nil
}

// parseCount parses a non-negative integer out of scraped stat text.
// Thousands separators are stripped and trailing markers (the "*" Scholar
// appends to some counts) are ignored; unparseable text counts as zero.
func parseCount(text string) int {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	n := 0
	seen := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		seen = true
	}
	if !seen {
		return 0
	}
	return n
}
