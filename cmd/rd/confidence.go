package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/refdeck/refdeck/internal/confidence"
)

func init() {
	rootCmd.AddCommand(confidenceCmd)
}

var confidenceCmd = &cobra.Command{
	Use:   "confidence <analysis.json>",
	Short: "Display a citation-confidence analysis",
	Long: `Display a citation-confidence analysis produced by an external
analysis service.

The file holds per-citation scores (recency, coverage, quality,
diversity), an overall status, and an aggregate breakdown of citation
age. rd validates the payload and renders it; it does not compute
scores itself.

Examples:
  rd confidence analysis.json
  rd confidence analysis.json --human`,
	Args: cobra.ExactArgs(1),
	RunE: runConfidence,
}

func runConfidence(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		exitWithError(ExitError, "reading %s: %v", args[0], err)
	}

	analysis, err := confidence.Parse(data)
	if err != nil {
		exitWithError(ExitDataError, "parsing analysis: %v", err)
	}

	if humanOutput {
		fmt.Print(confidence.FormatTable(analysis))
	} else {
		outputJSON(analysis)
	}

	return nil
}
