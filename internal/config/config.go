// Package config handles library and global configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents library configuration stored in .refdeck/config.json.
type Config struct {
	DefaultStyle string `json:"default_style"` // apa, mla, chicago, ieee
}

const (
	RefdeckDir     = ".refdeck"
	ConfigFile     = "config.json"
	SourcesFile    = "sources.jsonl"
	CollectionFile = "collection.json"
	CacheDir       = "cache"
	DBFile         = "sources.db"
)

// DefaultStyle is the citation style used when none is configured.
const DefaultStyle = "apa"

// RefdeckPath returns the path to the .refdeck directory from a root path.
func RefdeckPath(root string) string {
	return filepath.Join(root, RefdeckDir)
}

// ConfigPath returns the path to config.json from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, RefdeckDir, ConfigFile)
}

// SourcesPath returns the path to sources.jsonl from a root path.
func SourcesPath(root string) string {
	return filepath.Join(root, RefdeckDir, SourcesFile)
}

// CollectionPath returns the path to collection.json from a root path.
func CollectionPath(root string) string {
	return filepath.Join(root, RefdeckDir, CollectionFile)
}

// CachePath returns the path to the cache directory from a root path.
func CachePath(root string) string {
	return filepath.Join(root, RefdeckDir, CacheDir)
}

// DBPath returns the path to sources.db from a root path.
func DBPath(root string) string {
	return filepath.Join(root, RefdeckDir, CacheDir, DBFile)
}

// IsLibrary checks if the given path contains a refdeck library.
func IsLibrary(root string) bool {
	info, err := os.Stat(RefdeckPath(root))
	return err == nil && info.IsDir()
}

// FindLibrary walks up from the given path to find a refdeck library.
// Returns the library root path or an error if not found.
func FindLibrary(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsLibrary(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in a refdeck library (no .refdeck directory found)")
		}
		abs = parent
	}
}

// Load reads the library configuration from a root path.
// Returns defaults (not an error) if the file doesn't exist.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{DefaultStyle: DefaultStyle}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.DefaultStyle == "" {
		cfg.DefaultStyle = DefaultStyle
	}
	return &cfg, nil
}

// Save writes the library configuration to a root path.
func Save(root string, cfg *Config) error {
	if err := os.MkdirAll(RefdeckPath(root), 0755); err != nil {
		return fmt.Errorf("creating %s directory: %w", RefdeckDir, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
