package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refdeck/refdeck/internal/citation"
	"github.com/refdeck/refdeck/internal/config"
	"github.com/refdeck/refdeck/internal/identity"
	"github.com/refdeck/refdeck/internal/pdf"
	"github.com/refdeck/refdeck/internal/source"
	"github.com/refdeck/refdeck/internal/storage"
)

var (
	addTitle   string
	addAuthors []string
	addYear    int
	addJournal string
	addVolume  string
	addIssue   string
	addPages   string
	addDOI     string
	addURL     string
	addKind    string
	addPDF     string
)

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "Source title (required unless --pdf finds one)")
	addCmd.Flags().StringArrayVar(&addAuthors, "author", nil, "Author name (repeatable)")
	addCmd.Flags().IntVar(&addYear, "year", 0, "Publication year (0 = unknown)")
	addCmd.Flags().StringVar(&addJournal, "journal", "", "Journal or venue name")
	addCmd.Flags().StringVar(&addVolume, "volume", "", "Volume")
	addCmd.Flags().StringVar(&addIssue, "issue", "", "Issue")
	addCmd.Flags().StringVar(&addPages, "pages", "", "Page range")
	addCmd.Flags().StringVar(&addDOI, "doi", "", "DOI")
	addCmd.Flags().StringVar(&addURL, "url", "", "URL")
	addCmd.Flags().StringVar(&addKind, "type", "article", "Source type: article, book, website, conference")
	addCmd.Flags().StringVar(&addPDF, "pdf", "", "Seed title and DOI from a PDF file")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a source to the library",
	Long: `Add a source to the library.

The source gets a citation bundle rendered in all styles at add time, so
citations inserted later never change retroactively. Duplicates (same DOI,
or same title/year/first author) are rejected.

Examples:
  rd add --title "Deep learning" --author "Y LeCun" --author "Y Bengio" \
         --year 2015 --journal Nature --volume 521 --issue 7553 \
         --pages 436-444 --doi 10.1038/nature14539
  rd add --pdf paper.pdf --year 2015`,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	root := mustFindLibrary()

	rec := source.Record{
		Title:   addTitle,
		Authors: addAuthors,
		Year:    addYear,
		Journal: addJournal,
		Volume:  addVolume,
		Issue:   addIssue,
		Pages:   addPages,
		DOI:     addDOI,
		URL:     addURL,
		Kind:    source.Kind(addKind),
	}

	// PDF seeding fills title and DOI only where flags left them empty.
	if addPDF != "" {
		seed, err := pdf.Seed(addPDF)
		if err != nil {
			exitWithError(ExitError, "reading PDF: %v", err)
		}
		if rec.Title == "" {
			rec.Title = seed.Title
		}
		if rec.DOI == "" {
			rec.DOI = seed.DOI
		}
	}

	if err := rec.Validate(); err != nil {
		exitWithError(ExitError, "invalid source: %v", err)
	}

	// Reject duplicates before touching the JSONL.
	existing := mustReadSources(root)
	key := identity.KeyOf(&rec)
	if idx, found := storage.FindByKey(existing, key); found {
		exitWithError(ExitError, "duplicate of existing source %q (key %s)", existing[idx].Title, key)
	}

	enriched := citation.Enrich(rec)
	if err := storage.Append(config.SourcesPath(root), enriched); err != nil {
		exitWithError(ExitDataError, "appending source: %v", err)
	}

	db := mustOpenDatabase(root)
	defer db.Close()
	if err := db.Insert(&enriched); err != nil {
		exitWithError(ExitError, "updating cache: %v", err)
	}

	if humanOutput {
		fmt.Printf("Added %s (%s)\n", enriched.Title, key)
	} else {
		outputJSON(SourceResponse{Key: key, Record: enriched})
	}

	return nil
}
