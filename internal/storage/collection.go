package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/refdeck/refdeck/internal/identity"
)

// collectionFile is the on-disk format for collection.json.
type collectionFile struct {
	Keys []string `json:"keys"`
}

// LoadCollection reads the collection membership set from a file.
// A missing file yields an empty collection.
func LoadCollection(path string) (*identity.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return identity.NewCollection(), nil
		}
		return nil, fmt.Errorf("reading collection: %w", err)
	}

	var cf collectionFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing collection: %w", err)
	}

	return identity.CollectionFromKeys(cf.Keys), nil
}

// SaveCollection writes the collection membership set to a file.
func SaveCollection(path string, c *identity.Collection) error {
	data, err := json.MarshalIndent(collectionFile{Keys: c.Keys()}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding collection: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing collection: %w", err)
	}
	return nil
}
