package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ergosmind/mindstyle-server/internal/layout"
	"github.com/ergosmind/mindstyle-server/internal/observability"
	"github.com/ergosmind/mindstyle-server/internal/rendering"
	"github.com/ergosmind/mindstyle-server/internal/schemas"
	"github.com/ergosmind/mindstyle-server/internal/styles"
	"github.com/ergosmind/mindstyle-server/internal/types"
)

var previewOutput string

var previewCmd = &cobra.Command{
	Use:   "preview <result.json>",
	Short: "Render a report to a local PDF without emailing it",
	Long:  `Render the assessment result in the given JSON file to a PDF on disk. Useful for iterating on report layout without an SMTP server.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "report.pdf", "Output PDF path")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read result file: %w", err)
	}

	if err := schemas.ValidateAssessmentResult(data); err != nil {
		return err
	}
	var result types.AssessmentResult
	if err := json.Unmarshal(data, &result); err != nil {
		return fmt.Errorf("failed to parse result JSON: %w", err)
	}

	engine := layout.NewEngine(styles.NewCatalog(), rendering.NewMetrics())
	instrs, err := engine.Render(&result)
	if err != nil {
		return err
	}

	pdf, err := rendering.RenderPDF(instrs, layout.A4)
	if err != nil {
		return err
	}

	if err := os.WriteFile(previewOutput, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintReportSummary(&result, instrs)
	fmt.Printf("Wrote %s (%d bytes)\n", previewOutput, len(pdf))
	return nil
}
