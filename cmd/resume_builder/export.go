package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/browser"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	exportInput    string
	exportOutput   string
	exportTemplate string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume JSON file to PDF",
	Long:  `Render a resume record from a JSON file into a PDF without starting the server.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportInput, "input", "", "Path to the resume JSON file (required)")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "Output PDF path (defaults to the sanitized resume name)")
	exportCmd.Flags().StringVar(&exportTemplate, "template", rendering.DefaultTemplateID, "Template ID")
	_ = exportCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(exportInput)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	if err := schemas.ValidateResumeJSON(data); err != nil {
		return err
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	if err := resume.Validate(); err != nil {
		return err
	}

	cfg := config.Load()
	launch, err := browser.Locate(browser.SystemEnvironment(cfg.Serverless, cfg.ChromePath))
	if err != nil {
		return err
	}

	svc := export.NewService(rendering.DefaultRegistry(), browser.NewPDFRenderer(*launch, cfg.ExportTimeout))

	artifact, err := svc.Export(context.Background(), &resume, exportTemplate)
	if err != nil {
		return err
	}

	out := exportOutput
	if out == "" {
		out = artifact.Filename
	}
	if err := os.WriteFile(out, artifact.PDF, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", out, len(artifact.PDF))
	return nil
}
