// Package main provides the entry point for the Project Advisor server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "project_advisor",
	Short: "Project Advisor HTTP API Server",
	Long:  "Project Advisor extracts structured fields from résumés and Google Scholar profiles and suggests matching projects via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
