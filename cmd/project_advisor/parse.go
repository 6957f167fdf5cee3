package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/project-advisor/internal/ingestion"
	"github.com/jonathan/project-advisor/internal/resume"
)

var parseCmd = &cobra.Command{
	Use:   "parse <resume-file>",
	Short: "Extract structured fields from a résumé file",
	Long:  `Extract name, contact details, skills and section content from a PDF, DOCX or plain-text résumé and print the record as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	mimeType := ingestion.DetectType(path)
	if mimeType == "" {
		return fmt.Errorf("unsupported file extension for %s (expected .pdf, .docx or .txt)", path)
	}

	text, err := ingestion.ExtractText(path, mimeType)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	record := resume.Extract(text)
	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	cmd.Println(string(out))
	return nil
}
