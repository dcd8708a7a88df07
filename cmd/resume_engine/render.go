package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-engine/internal/observability"
	"github.com/jonathan/resume-engine/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume through a template",
	Long:  "Binds a resume JSON file into a template definition and writes the rendered HTML document.",
	RunE:  runRender,
}

var (
	renderTemplateID    string
	renderResumePath    string
	renderCustomization string
	renderOutput        string
	renderCSSOutput     string
	renderConfigPath    string
	renderMinify        bool
	renderInlineCSS     bool
	renderVerbose       bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderTemplateID, "template", "t", "", "Template id to render with (required)")
	renderCmd.Flags().StringVarP(&renderResumePath, "resume", "r", "", "Path to resume JSON file (required)")
	renderCmd.Flags().StringVarP(&renderCustomization, "customization", "c", "", "Path to customization JSON file (optional)")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Path to output HTML file (default stdout)")
	renderCmd.Flags().StringVar(&renderCSSOutput, "css-out", "", "Path to output CSS file (optional)")
	renderCmd.Flags().StringVar(&renderConfigPath, "config", "", "Path to engine config JSON file")
	renderCmd.Flags().BoolVar(&renderMinify, "minify", false, "Minify the rendered HTML")
	renderCmd.Flags().BoolVar(&renderInlineCSS, "inline-css", false, "Embed the stylesheet in the document")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print render metadata")

	if err := renderCmd.MarkFlagRequired("template"); err != nil {
		panic(fmt.Sprintf("failed to mark template flag as required: %v", err))
	}
	if err := renderCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	cfg, err := loadEngineConfig(renderConfigPath)
	if err != nil {
		return err
	}

	resume, err := loadResume(renderResumePath)
	if err != nil {
		return err
	}

	customization, err := loadCustomization(renderCustomization)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	rendered, err := renderer.Render(renderTemplateID, resume, types.RenderOptions{
		Minify:        renderMinify,
		InlineCSS:     renderInlineCSS,
		Customization: customization,
	})
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if renderOutput == "" {
		fmt.Println(rendered.HTML)
	} else if err := os.WriteFile(renderOutput, []byte(rendered.HTML), 0644); err != nil {
		return fmt.Errorf("failed to write HTML output: %w", err)
	}

	if renderCSSOutput != "" {
		if err := os.WriteFile(renderCSSOutput, []byte(rendered.CSS), 0644); err != nil {
			return fmt.Errorf("failed to write CSS output: %w", err)
		}
	}

	if renderVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintRenderMetadata(&rendered.Metadata)
	}

	return nil
}
