package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/refdeck/refdeck/internal/citation"
	"github.com/refdeck/refdeck/internal/config"
	"github.com/refdeck/refdeck/internal/identity"
	"github.com/refdeck/refdeck/internal/importer"
	"github.com/refdeck/refdeck/internal/source"
	"github.com/refdeck/refdeck/internal/storage"
)

var importDryRun bool

func init() {
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Report what would be imported without writing")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <results.json>",
	Short: "Import sources from a search-results JSON export",
	Long: `Import sources from a search-results JSON export.

The file holds an array of result entries (optionally wrapped in a
"results" object). Entries already in the library, and duplicates
within the file itself, are skipped: the first occurrence wins.

Examples:
  rd import results.json
  rd import results.json --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

// ImportResponse summarizes an import run.
type ImportResponse struct {
	Status   string   `json:"status"`
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// parseImportFile accepts either a bare JSON array or a {"results": [...]}
// wrapper. An unparseable document is fatal; per-entry failures are not.
func parseImportFile(data []byte) ([]source.Record, []error) {
	var wrapper struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(data, &wrapper); err == nil && wrapper.Results != nil {
		data = wrapper.Results
	}

	var probe []json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		exitWithError(ExitDataError, "parsing results JSON: %v", err)
	}

	return importer.ParseResults(data)
}

// classifyImports splits parsed entries into new sources (enriched with
// citation bundles) and a skipped count. A parsed entry is skipped when its
// identity key matches a library source or an earlier entry in the same
// batch: the first occurrence wins.
func classifyImports(existing, parsed []source.Record) ([]source.Record, int) {
	seen := make(map[string]bool, len(existing))
	for i := range existing {
		seen[identity.KeyOf(&existing[i])] = true
	}

	var imported []source.Record
	skipped := 0
	for _, rec := range parsed {
		key := identity.KeyOf(&rec)
		if seen[key] {
			skipped++
			continue
		}
		seen[key] = true
		imported = append(imported, citation.Enrich(rec))
	}
	return imported, skipped
}

func runImport(cmd *cobra.Command, args []string) error {
	root := mustFindLibrary()

	data, err := os.ReadFile(args[0])
	if err != nil {
		exitWithError(ExitError, "reading %s: %v", args[0], err)
	}

	parsed, entryErrs := parseImportFile(data)

	existing := mustReadSources(root)
	imported, skipped := classifyImports(existing, parsed)

	if !importDryRun && len(imported) > 0 {
		for _, rec := range imported {
			if err := storage.Append(config.SourcesPath(root), rec); err != nil {
				exitWithError(ExitDataError, "appending source: %v", err)
			}
		}
		db := mustOpenDatabase(root)
		defer db.Close()
		if _, err := db.RebuildFromJSONL(config.SourcesPath(root)); err != nil {
			exitWithError(ExitError, "rebuilding cache: %v", err)
		}
	}

	status := "imported"
	if importDryRun {
		status = "dry-run"
	}

	if humanOutput {
		fmt.Printf("%s: %d imported, %d skipped, %d errors\n",
			status, len(imported), skipped, len(entryErrs))
		for _, rec := range imported {
			fmt.Printf("  + %s\n", truncateString(rec.Title, ImportTitleMaxLen))
		}
		for _, e := range entryErrs {
			fmt.Fprintf(os.Stderr, "  ! %v\n", e)
		}
	} else {
		resp := ImportResponse{Status: status, Imported: len(imported), Skipped: skipped}
		for _, e := range entryErrs {
			resp.Errors = append(resp.Errors, e.Error())
		}
		outputJSON(resp)
	}

	return nil
}
