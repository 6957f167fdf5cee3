package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/project-advisor/internal/scholar"
	"github.com/jonathan/project-advisor/internal/validation"
)

var (
	scholarUseBrowser bool
	scholarVerbose    bool
)

var scholarCmd = &cobra.Command{
	Use:   "scholar <profile-url>",
	Short: "Scrape a Google Scholar profile",
	Long:  `Fetch a public Google Scholar profile page and print the scraped record as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScholar,
}

func init() {
	scholarCmd.Flags().BoolVar(&scholarUseBrowser, "use-browser", false, "Fall back to a headless browser if the fetch looks blocked")
	scholarCmd.Flags().BoolVar(&scholarVerbose, "verbose", false, "Print detailed scrape information")
	rootCmd.AddCommand(scholarCmd)
}

func runScholar(cmd *cobra.Command, args []string) error {
	profileURL := validation.SanitizeURL(args[0])
	if !validation.IsScholarURL(profileURL) {
		return fmt.Errorf("not a Google Scholar profile URL: %s", args[0])
	}

	record, err := scholar.Scrape(cmd.Context(), profileURL, &scholar.Options{
		UseBrowser: scholarUseBrowser,
		Verbose:    scholarVerbose,
	})
	if err != nil {
		return fmt.Errorf("failed to scrape profile: %w", err)
	}

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	cmd.Println(string(out))
	return nil
}
