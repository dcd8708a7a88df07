// Package main implements the resume_engine CLI for template rendering and
// ATS scoring.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_engine",
	Short: "Resume template rendering and ATS scoring engine",
	Long:  "Resume Engine validates template definitions, binds resume data into them, renders HTML documents, and scores the result against simulated applicant tracking systems.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
