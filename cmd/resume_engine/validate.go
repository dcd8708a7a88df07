package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-engine/internal/observability"
	"github.com/jonathan/resume-engine/internal/templates"
	"github.com/jonathan/resume-engine/internal/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a template definition",
	Long:  "Checks a template definition JSON file against structural, ATS-friendliness, and accessibility rules, producing a scored report.",
	RunE:  runValidate,
}

var (
	validateInput   string
	validateOutput  string
	validateVerbose bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to template definition JSON file (required)")
	validateCmd.Flags().StringVarP(&validateOutput, "out", "o", "", "Path to output report JSON file (default stdout)")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print a validation summary")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(validateInput)
	if err != nil {
		return fmt.Errorf("failed to read template file: %w", err)
	}

	var template types.ResumeTemplate
	if err := json.Unmarshal(content, &template); err != nil {
		return fmt.Errorf("failed to unmarshal template JSON: %w", err)
	}

	result := templates.Validate(&template)

	if err := writeJSONFile(validateOutput, result); err != nil {
		return err
	}

	if validateVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintValidationResult(template.ID, result)
	}

	if !result.IsValid {
		return fmt.Errorf("template %s failed validation with score %d", template.ID, result.Score)
	}
	return nil
}
