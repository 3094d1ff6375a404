package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/refdeck/refdeck/internal/citation"
	"github.com/refdeck/refdeck/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set configuration values.

Usage:
  rd config                        # Show all config
  rd config default-style          # Get specific value
  rd config default-style chicago  # Set value

Keys:
  default-style  Citation style used when --style is omitted
                 (apa, mla, chicago, ieee)`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

// ConfigResponse is the JSON payload for the full config.
type ConfigResponse struct {
	DefaultStyle string `json:"default_style"`
}

// UpdateResponse reports a config change.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	root := mustFindLibrary()
	cfg := mustLoadConfig(root)

	if len(args) == 0 {
		if humanOutput {
			fmt.Printf("default-style: %s\n", cfg.DefaultStyle)
		} else {
			outputJSON(ConfigResponse{DefaultStyle: cfg.DefaultStyle})
		}
		return nil
	}

	key := normalizeKey(args[0])
	if key != "default-style" {
		exitWithError(ExitError, "unknown configuration key: %s", args[0])
	}

	if len(args) == 1 {
		if humanOutput {
			fmt.Println(cfg.DefaultStyle)
		} else {
			outputJSON(map[string]string{"default_style": cfg.DefaultStyle})
		}
		return nil
	}

	style, err := citation.ParseStyle(args[1])
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	cfg.DefaultStyle = style.Key()

	if err := config.Save(root, cfg); err != nil {
		exitWithError(ExitError, "saving config: %v", err)
	}

	if humanOutput {
		fmt.Printf("Updated %s to %s\n", key, cfg.DefaultStyle)
	} else {
		outputJSON(UpdateResponse{Status: "updated", Key: key, Value: cfg.DefaultStyle})
	}

	return nil
}

// normalizeKey converts key formats (default-style, default_style) to a
// consistent form.
func normalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "-")
	return key
}
