package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-engine/internal/ats"
	"github.com/jonathan/resume-engine/internal/cache"
	"github.com/jonathan/resume-engine/internal/observability"
	"github.com/jonathan/resume-engine/internal/registry"
	"github.com/jonathan/resume-engine/internal/types"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Score a resume against simulated ATS parsers",
	Long:  "Runs the full ATS analysis batch for a resume and template, optionally against a job description, and writes the scoring report as JSON.",
	RunE:  runOptimize,
}

var (
	optimizeTemplateID     string
	optimizeResumePath     string
	optimizeJobDescription string
	optimizeIndustry       string
	optimizeCompany        string
	optimizeOutput         string
	optimizeConfigPath     string
	optimizeVerbose        bool
)

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeTemplateID, "template", "t", "", "Template id to score against (required)")
	optimizeCmd.Flags().StringVarP(&optimizeResumePath, "resume", "r", "", "Path to resume JSON file (required)")
	optimizeCmd.Flags().StringVarP(&optimizeJobDescription, "job", "j", "", "Path to job description text file (optional)")
	optimizeCmd.Flags().StringVar(&optimizeIndustry, "industry", "", "Target industry for relevance scoring (optional)")
	optimizeCmd.Flags().StringVar(&optimizeCompany, "company", "", "Target company (optional)")
	optimizeCmd.Flags().StringVarP(&optimizeOutput, "out", "o", "", "Path to output report JSON file (default stdout)")
	optimizeCmd.Flags().StringVar(&optimizeConfigPath, "config", "", "Path to engine config JSON file")
	optimizeCmd.Flags().BoolVarP(&optimizeVerbose, "verbose", "v", false, "Print a score summary")

	if err := optimizeCmd.MarkFlagRequired("template"); err != nil {
		panic(fmt.Sprintf("failed to mark template flag as required: %v", err))
	}
	if err := optimizeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, _ []string) error {
	cfg, err := loadEngineConfig(optimizeConfigPath)
	if err != nil {
		return err
	}

	resume, err := loadResume(optimizeResumePath)
	if err != nil {
		return err
	}

	jobDescription := ""
	if optimizeJobDescription != "" {
		content, err := os.ReadFile(optimizeJobDescription)
		if err != nil {
			return fmt.Errorf("failed to read job description file: %w", err)
		}
		jobDescription = string(content)
	}

	reg, err := registry.New(cfg.TemplateDir, cache.New())
	if err != nil {
		return fmt.Errorf("failed to open template registry: %w", err)
	}
	template, err := reg.Get(optimizeTemplateID)
	if err != nil {
		return fmt.Errorf("failed to load template: %w", err)
	}

	optimizer := ats.New(ats.WithTimeout(cfg.OptimizerDeadline()))
	result, err := optimizer.OptimizeForATS(context.Background(), &types.OptimizeRequest{
		Resume:         resume,
		Template:       template,
		JobDescription: jobDescription,
		TargetIndustry: optimizeIndustry,
		TargetCompany:  optimizeCompany,
	})
	if err != nil {
		return fmt.Errorf("optimization failed: %w", err)
	}

	if err := writeJSONFile(optimizeOutput, result); err != nil {
		return err
	}

	if optimizeVerbose || cfg.Verbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintOptimizationResult(result)
	}

	return nil
}
