package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/refdeck/refdeck/internal/config"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new source library",
	Long: `Initialize a new source library in the current directory.

Creates:
  .refdeck/
  ├── sources.jsonl    # Empty file
  ├── collection.json  # Empty collection
  ├── config.json      # Default config
  └── cache/           # Empty directory (gitignored)`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root, exitCode := getStartingDirectory()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	if config.IsLibrary(root) {
		exitWithError(ExitError, "directory already contains a refdeck library")
	}

	if err := os.MkdirAll(config.RefdeckPath(root), 0755); err != nil {
		exitWithError(ExitError, "creating .refdeck directory: %v", err)
	}
	if err := os.MkdirAll(config.CachePath(root), 0755); err != nil {
		exitWithError(ExitError, "creating cache directory: %v", err)
	}

	// Empty sources.jsonl
	f, err := os.Create(config.SourcesPath(root))
	if err != nil {
		exitWithError(ExitError, "creating sources.jsonl: %v", err)
	}
	f.Close()

	cfg := &config.Config{DefaultStyle: config.DefaultStyle}
	if err := config.Save(root, cfg); err != nil {
		exitWithError(ExitError, "creating config.json: %v", err)
	}

	if humanOutput {
		fmt.Printf("Initialized refdeck library in %s\n", root)
	} else {
		outputJSON(StatusResponse{Status: "initialized", Path: root})
	}

	return nil
}
