package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/refdeck/refdeck/internal/source"
)

var (
	searchLimit int
	searchField string
)

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", DefaultSearchLimit, "Maximum results to return")
	searchCmd.Flags().StringVar(&searchField, "field", "", "Restrict search to a field: author, title, journal")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over the library",
	Long: `Full-text search over titles, journals, and authors.

Examples:
  rd search "deep learning"
  rd search lecun --field author
  rd search Nature --field journal --limit 10`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	root := mustFindLibrary()
	db := mustOpenDatabase(root)
	defer db.Close()

	query := strings.Join(args, " ")

	var matches []source.Record
	var err error
	if searchField != "" {
		matches, err = db.SearchField(searchField, query, searchLimit)
	} else {
		matches, err = db.Search(query, searchLimit)
	}
	if err != nil {
		exitWithError(ExitError, "searching: %v", err)
	}

	recs := toSourceResponses(matches)

	if humanOutput {
		if len(recs) == 0 {
			fmt.Printf("No sources match %q\n", query)
		} else {
			fmt.Printf("%d sources match %q:\n\n", len(recs), query)
			for _, r := range recs {
				fmt.Printf("  %-40s %s (%s)\n",
					truncateString(r.Key, 40),
					truncateString(r.Title, ListTitleMaxLen),
					r.YearLabel())
			}
		}
	} else {
		outputJSON(recs)
	}

	return nil
}
