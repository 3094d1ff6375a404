// Package storage handles library persistence: a git-versionable JSONL file
// of sources plus an ephemeral SQLite cache for queries.
package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/refdeck/refdeck/internal/identity"
	"github.com/refdeck/refdeck/internal/source"
)

// MaxJSONLLineCapacity is the maximum buffer size for reading JSONL lines
// (1MB per line).
const MaxJSONLLineCapacity = 1024 * 1024

// ReadAll reads all sources from a JSONL file.
func ReadAll(path string) ([]source.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Empty library returns empty slice
		}
		return nil, fmt.Errorf("opening sources file: %w", err)
	}
	defer f.Close()

	var recs []source.Record
	scanner := bufio.NewScanner(f)

	// Increase buffer size for long lines (abstracts, big author lists)
	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec source.Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		recs = append(recs, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading sources file: %w", err)
	}

	return recs, nil
}

// Append adds a source to the end of a JSONL file.
func Append(path string, rec source.Record) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening sources file for append: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding source: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing source: %w", err)
	}
	if _, err := f.WriteString("\n"); err != nil {
		return fmt.Errorf("writing newline: %w", err)
	}

	return nil
}

// WriteAll writes all sources to a JSONL file, replacing existing content.
func WriteAll(path string, recs []source.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating sources file: %w", err)
	}
	defer f.Close()

	for i, rec := range recs {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encoding source %d: %w", i, err)
		}

		if _, err := f.Write(data); err != nil {
			return fmt.Errorf("writing source %d: %w", i, err)
		}
		if _, err := f.WriteString("\n"); err != nil {
			return fmt.Errorf("writing newline: %w", err)
		}
	}

	return nil
}

// FindByKey searches sources for one whose identity key matches.
func FindByKey(recs []source.Record, key string) (int, bool) {
	if key == "" {
		return -1, false
	}
	for i := range recs {
		if identity.KeyOf(&recs[i]) == key {
			return i, true
		}
	}
	return -1, false
}
