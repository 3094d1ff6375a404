package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/refdeck/refdeck/internal/citation"
	"github.com/refdeck/refdeck/internal/config"
	"github.com/refdeck/refdeck/internal/identity"
	"github.com/refdeck/refdeck/internal/source"
	"github.com/refdeck/refdeck/internal/storage"
)

var (
	bibStyle      string
	bibCollection bool
)

func init() {
	bibliographyCmd.Flags().StringVar(&bibStyle, "style", "", "Citation style: apa, mla, chicago, ieee (default: library config)")
	bibliographyCmd.Flags().BoolVar(&bibCollection, "collection", false, "Only sources in the active collection")
	rootCmd.AddCommand(bibliographyCmd)
}

var bibliographyCmd = &cobra.Command{
	Use:     "bibliography",
	Aliases: []string{"bib"},
	Short:   "Render the reference list for the library",
	Long: `Render the reference list for the library in one style.

Duplicate sources collapse to their first occurrence, so the list is
safe to paste as-is. IEEE entries are numbered by list position.

Examples:
  rd bibliography
  rd bib --style chicago
  rd bib --collection --style mla`,
	RunE: runBibliography,
}

// BibliographyResponse is the JSON payload for a rendered reference list.
type BibliographyResponse struct {
	Style   string   `json:"style"`
	Entries []string `json:"entries"`
}

func runBibliography(cmd *cobra.Command, args []string) error {
	root := mustFindLibrary()
	cfg := mustLoadConfig(root)
	style := resolveStyle(bibStyle, cfg.DefaultStyle)

	recs := identity.Dedupe(mustReadSources(root))

	if bibCollection {
		coll, err := storage.LoadCollection(config.CollectionPath(root))
		if err != nil {
			exitWithError(ExitDataError, "loading collection: %v", err)
		}
		var kept []source.Record
		for i := range recs {
			if coll.Has(&recs[i]) {
				kept = append(kept, recs[i])
			}
		}
		recs = kept
	}

	entries := make([]string, 0, len(recs))
	for i := range recs {
		entry := citation.CitationFor(&recs[i], style).Reference
		// The renderer emits the fixed "[1]" marker; the document layer
		// owns list position.
		if style == citation.IEEE {
			entry = fmt.Sprintf("[%d]%s", i+1, strings.TrimPrefix(entry, "[1]"))
		}
		entries = append(entries, entry)
	}

	if humanOutput {
		if len(entries) == 0 {
			fmt.Println("No sources to cite")
		}
		for _, e := range entries {
			fmt.Println(e)
		}
	} else {
		outputJSON(BibliographyResponse{Style: style.Key(), Entries: entries})
	}

	return nil
}
