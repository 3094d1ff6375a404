package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/refdeck/refdeck/internal/config"
)

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the SQLite cache from sources.jsonl",
	Long: `Rebuild the SQLite cache from sources.jsonl.

The JSONL file is the source of truth; the cache is disposable. Run
this after editing sources.jsonl by hand or resolving a merge. The
rebuild applies first-seen-wins deduplication, so a hand-edited file
with duplicate keys caches only the first occurrence of each.`,
	RunE: runRebuild,
}

// RebuildResponse reports a cache rebuild.
type RebuildResponse struct {
	Status  string `json:"status"`
	Sources int    `json:"sources"`
}

func runRebuild(cmd *cobra.Command, args []string) error {
	root := mustFindLibrary()

	// Start from a fresh file so stale rows cannot survive.
	if err := os.Remove(config.DBPath(root)); err != nil && !os.IsNotExist(err) {
		exitWithError(ExitError, "removing stale cache: %v", err)
	}

	db := mustOpenDatabase(root)
	defer db.Close()

	n, err := db.RebuildFromJSONL(config.SourcesPath(root))
	if err != nil {
		exitWithError(ExitError, "rebuilding cache: %v", err)
	}

	if humanOutput {
		fmt.Printf("Rebuilt cache with %d sources\n", n)
	} else {
		outputJSON(RebuildResponse{Status: "rebuilt", Sources: n})
	}

	return nil
}
