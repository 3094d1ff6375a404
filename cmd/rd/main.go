// Package main provides the rd CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/refdeck/refdeck/internal/config"
	"github.com/refdeck/refdeck/internal/source"
	"github.com/refdeck/refdeck/internal/storage"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rd",
	Short: "Citation formatting and source library CLI",
	Long: `rd manages a library of citable sources.

Core features:
  - APA, MLA, Chicago, and IEEE citation rendering (in-text + reference)
  - Precomputed citation bundles so inserted citations never drift
  - DOI-based source identity and first-seen-wins deduplication
  - Collection membership keyed by source identity

Sources are stored in git-versionable JSONL with an ephemeral SQLite
cache for queries. All commands output JSON by default.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Load .env if present (for RD_ROOT and friends)
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// getStartingDirectory returns the directory to start searching for a
// library. Checks the RD_ROOT environment variable, then the global config
// library_path, then the current working directory.
func getStartingDirectory() (string, int) {
	if root := os.Getenv("RD_ROOT"); root != "" {
		return root, 0
	}
	if root := config.GetLibraryPath(); root != "" {
		return root, 0
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", outputError(ExitError, "getting current directory: %v", err)
	}
	return cwd, 0
}

// mustFindLibrary finds and validates the library, exits on error.
// Returns the library root path.
func mustFindLibrary() string {
	start, exitCode := getStartingDirectory()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	root, err := config.FindLibrary(start)
	if err != nil {
		exitWithError(ExitConfigError, "%v\n\nRun 'rd init' to create a library here.", err)
	}
	return root
}

// mustOpenDatabase opens the SQLite cache, exits on error.
// The caller is responsible for calling Close() on the returned DB.
func mustOpenDatabase(root string) *storage.DB {
	if err := os.MkdirAll(config.CachePath(root), 0755); err != nil {
		exitWithError(ExitError, "creating cache directory: %v", err)
	}
	db, err := storage.OpenDB(config.DBPath(root))
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	return db
}

// mustLoadConfig loads library configuration, exits on error.
func mustLoadConfig(root string) *config.Config {
	cfg, err := config.Load(root)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// mustReadSources reads the JSONL source of truth, exits on error.
func mustReadSources(root string) []source.Record {
	recs, err := storage.ReadAll(config.SourcesPath(root))
	if err != nil {
		exitWithError(ExitDataError, "reading sources: %v", err)
	}
	return recs
}
