package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refdeck/refdeck/internal/config"
	"github.com/refdeck/refdeck/internal/identity"
	"github.com/refdeck/refdeck/internal/source"
	"github.com/refdeck/refdeck/internal/storage"
)

func init() {
	collectionCmd.AddCommand(collectionAddCmd)
	collectionCmd.AddCommand(collectionRemoveCmd)
	collectionCmd.AddCommand(collectionToggleCmd)
	collectionCmd.AddCommand(collectionListCmd)
	rootCmd.AddCommand(collectionCmd)
}

var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Manage the active collection of sources",
	Long: `Manage the active collection of sources.

Membership is keyed by source identity, so a source stays in the
collection across edits that do not change its DOI or its
title/year/first-author triple.

Examples:
  rd collection add 10.1038/nature14539
  rd collection toggle 10.1038/nature14539
  rd collection list`,
}

// CollectionResponse reports a membership change.
type CollectionResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Member bool   `json:"member"`
}

var collectionAddCmd = &cobra.Command{
	Use:   "add <key>",
	Short: "Add a source to the collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCollectionMutation(args[0], "add")
	},
}

var collectionRemoveCmd = &cobra.Command{
	Use:   "remove <key>",
	Short: "Remove a source from the collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCollectionMutation(args[0], "remove")
	},
}

var collectionToggleCmd = &cobra.Command{
	Use:   "toggle <key>",
	Short: "Toggle a source's collection membership",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCollectionMutation(args[0], "toggle")
	},
}

var collectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sources in the collection",
	RunE:  runCollectionList,
}

func runCollectionMutation(key, op string) error {
	root := mustFindLibrary()
	rec := mustGetSource(root, key)

	coll, err := storage.LoadCollection(config.CollectionPath(root))
	if err != nil {
		exitWithError(ExitDataError, "loading collection: %v", err)
	}

	var changed bool
	switch op {
	case "add":
		changed = coll.Add(rec)
	case "remove":
		changed = coll.Remove(rec)
	case "toggle":
		coll.Toggle(rec)
		changed = true
	}

	if changed {
		if err := storage.SaveCollection(config.CollectionPath(root), coll); err != nil {
			exitWithError(ExitDataError, "saving collection: %v", err)
		}
	}

	member := coll.Has(rec)
	if humanOutput {
		state := "out of"
		if member {
			state = "in"
		}
		fmt.Printf("%s is %s the collection\n", key, state)
	} else {
		outputJSON(CollectionResponse{Status: op, Key: key, Member: member})
	}

	return nil
}

func runCollectionList(cmd *cobra.Command, args []string) error {
	root := mustFindLibrary()

	coll, err := storage.LoadCollection(config.CollectionPath(root))
	if err != nil {
		exitWithError(ExitDataError, "loading collection: %v", err)
	}

	// Resolve member keys back to records via the JSONL source of truth.
	recs := identity.Dedupe(mustReadSources(root))
	var members []source.Record
	for i := range recs {
		if coll.Has(&recs[i]) {
			members = append(members, recs[i])
		}
	}

	if humanOutput {
		if len(members) == 0 {
			fmt.Println("Collection is empty")
		} else {
			fmt.Printf("%d sources in collection:\n\n", len(members))
			printSourcesHuman(members)
		}
	} else {
		outputJSON(toSourceResponses(members))
	}

	return nil
}
