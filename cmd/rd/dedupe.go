package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refdeck/refdeck/internal/config"
	"github.com/refdeck/refdeck/internal/identity"
	"github.com/refdeck/refdeck/internal/storage"
)

var dedupeDryRun bool

func init() {
	dedupeCmd.Flags().BoolVar(&dedupeDryRun, "dry-run", false, "Report duplicates without rewriting the library")
	rootCmd.AddCommand(dedupeCmd)
}

var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Remove duplicate sources from the library",
	Long: `Remove duplicate sources from the library.

Two sources are duplicates when they share an identity key: the same
DOI, or the same normalized title, year, and first author. The first
occurrence wins; later duplicates are dropped and survivor order is
preserved.

Examples:
  rd dedupe --dry-run
  rd dedupe`,
	RunE: runDedupe,
}

// DedupeResponse summarizes a dedupe run.
type DedupeResponse struct {
	Status  string `json:"status"`
	Kept    int    `json:"kept"`
	Removed int    `json:"removed"`
}

func runDedupe(cmd *cobra.Command, args []string) error {
	root := mustFindLibrary()

	recs := mustReadSources(root)
	deduped := identity.Dedupe(recs)
	removed := len(recs) - len(deduped)

	status := "deduped"
	if dedupeDryRun {
		status = "dry-run"
	} else if removed > 0 {
		if err := storage.WriteAll(config.SourcesPath(root), deduped); err != nil {
			exitWithError(ExitDataError, "rewriting sources: %v", err)
		}
		db := mustOpenDatabase(root)
		defer db.Close()
		if _, err := db.RebuildFromJSONL(config.SourcesPath(root)); err != nil {
			exitWithError(ExitError, "rebuilding cache: %v", err)
		}
	}

	if humanOutput {
		fmt.Printf("%s: %d kept, %d removed\n", status, len(deduped), removed)
	} else {
		outputJSON(DedupeResponse{Status: status, Kept: len(deduped), Removed: removed})
	}

	return nil
}
