package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/project-advisor/internal/ingestion"
	"github.com/jonathan/project-advisor/internal/resume"
	"github.com/jonathan/project-advisor/internal/scholar"
	"github.com/jonathan/project-advisor/internal/suggest"
	"github.com/jonathan/project-advisor/internal/types"
	"github.com/jonathan/project-advisor/internal/validation"
)

var (
	suggestResumePath string
	suggestScholarURL string
	suggestUseBrowser bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Generate project suggestions",
	Long:  `Extract a résumé, scrape a Google Scholar profile, and print the combined project suggestion catalog as JSON. The two inputs are independent and are processed concurrently.`,
	RunE:  runSuggest,
}

func init() {
	suggestCmd.Flags().StringVar(&suggestResumePath, "resume", "", "Path to a PDF, DOCX or plain-text résumé")
	suggestCmd.Flags().StringVar(&suggestScholarURL, "scholar-url", "", "Google Scholar profile URL")
	suggestCmd.Flags().BoolVar(&suggestUseBrowser, "use-browser", false, "Fall back to a headless browser if the profile fetch looks blocked")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	if suggestResumePath == "" && suggestScholarURL == "" {
		return fmt.Errorf("at least one of --resume or --scholar-url is required")
	}

	var (
		resumeData  types.ResumeRecord
		scholarData types.ScholarRecord
	)

	g, ctx := errgroup.WithContext(cmd.Context())

	if suggestResumePath != "" {
		g.Go(func() error {
			mimeType := ingestion.DetectType(suggestResumePath)
			if mimeType == "" {
				return fmt.Errorf("unsupported file extension for %s", suggestResumePath)
			}
			text, err := ingestion.ExtractText(suggestResumePath, mimeType)
			if err != nil {
				return fmt.Errorf("failed to extract résumé text: %w", err)
			}
			resumeData = resume.Extract(text)
			return nil
		})
	}

	if suggestScholarURL != "" {
		g.Go(func() error {
			profileURL := validation.SanitizeURL(suggestScholarURL)
			if !validation.IsScholarURL(profileURL) {
				return fmt.Errorf("not a Google Scholar profile URL: %s", suggestScholarURL)
			}
			record, err := scholar.Scrape(ctx, profileURL, &scholar.Options{UseBrowser: suggestUseBrowser})
			if err != nil {
				return fmt.Errorf("failed to scrape profile: %w", err)
			}
			scholarData = record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	catalog := suggest.Generate(resumeData, scholarData)
	out, err := json.MarshalIndent(map[string]any{"suggestions": catalog}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal suggestions: %w", err)
	}

	cmd.Println(string(out))
	return nil
}
