package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listLimit int

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum results to return (0 = all)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sources",
	Long: `List all sources in the library.

Examples:
  rd list
  rd list --limit 100`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	root := mustFindLibrary()
	db := mustOpenDatabase(root)
	defer db.Close()

	recs, err := db.ListAll(listLimit)
	if err != nil {
		exitWithError(ExitError, "listing sources: %v", err)
	}

	total, _ := db.Count()

	if humanOutput {
		if len(recs) == 0 {
			fmt.Println("No sources in library")
		} else {
			if listLimit > 0 && listLimit < total {
				fmt.Printf("%d sources (showing first %d):\n\n", total, len(recs))
			} else {
				fmt.Printf("%d sources in library:\n\n", len(recs))
			}
			printSourcesHuman(recs)
		}
	} else {
		outputJSON(toSourceResponses(recs))
	}

	return nil
}
