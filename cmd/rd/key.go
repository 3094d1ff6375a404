package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refdeck/refdeck/internal/config"
	"github.com/refdeck/refdeck/internal/identity"
	"github.com/refdeck/refdeck/internal/source"
)

var (
	keyTitle  string
	keyAuthor string
	keyYear   int
	keyDOI    string
)

func init() {
	keyCmd.Flags().StringVar(&keyTitle, "title", "", "Source title")
	keyCmd.Flags().StringVar(&keyAuthor, "author", "", "First author")
	keyCmd.Flags().IntVar(&keyYear, "year", 0, "Publication year (0 = unknown)")
	keyCmd.Flags().StringVar(&keyDOI, "doi", "", "DOI (wins over title/year/author when present)")
	rootCmd.AddCommand(keyCmd)
}

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Compute the identity key for source fields",
	Long: `Compute the identity key a source with these fields would get.

A DOI is the key on its own (trimmed and lowercased). Without one the
key is title, year, and first author, normalized. Useful for checking
whether a candidate source would collide with the library before adding
it.

Examples:
  rd key --doi 10.1038/nature14539
  rd key --title "Deep learning" --year 2015 --author "Y LeCun"`,
	RunE: runKey,
}

// KeyResponse is the JSON payload for a computed identity key.
type KeyResponse struct {
	Key       string `json:"key"`
	FromDOI   bool   `json:"from_doi"`
	InLibrary bool   `json:"in_library"`
}

func runKey(cmd *cobra.Command, args []string) error {
	rec := source.Record{
		Title:  keyTitle,
		Author: keyAuthor,
		Year:   keyYear,
		DOI:    keyDOI,
	}
	key := identity.KeyOf(&rec)

	// Membership check is best-effort: key works outside a library too.
	inLibrary := false
	if start, code := getStartingDirectory(); code == 0 {
		if root, err := config.FindLibrary(start); err == nil {
			db := mustOpenDatabase(root)
			defer db.Close()
			if existing, err := db.GetByKey(key); err == nil && existing != nil {
				inLibrary = true
			}
		}
	}

	if humanOutput {
		fmt.Println(key)
		if inLibrary {
			fmt.Println("(already in library)")
		}
	} else {
		outputJSON(KeyResponse{Key: key, FromDOI: keyDOI != "", InLibrary: inLibrary})
	}

	return nil
}
