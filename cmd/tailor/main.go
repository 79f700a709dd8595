// Package main provides the entry point for the resume-tailor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Tailor a resume and cover letter to a job posting",
	Long:  "Tailor extracts structured requirements from a job posting via a locally hosted language model, filters your skills catalog for relevance, regenerates the prose sections, and renders a tailored resume and cover letter as PDFs.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
