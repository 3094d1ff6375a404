// Package importer normalizes loosely-typed external records into sources.
package importer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/refdeck/refdeck/internal/source"
)

// FlexibleString can unmarshal from either string or number JSON values.
// Search and import payloads are inconsistent about whether years, volumes,
// and issues arrive as strings or numbers.
type FlexibleString string

func (f *FlexibleString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexibleString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexibleString(n.String())
		return nil
	}

	return fmt.Errorf("cannot unmarshal %s into FlexibleString", string(data))
}

func (f FlexibleString) String() string {
	return string(f)
}

// ResultEntry is one entry of a search-result or library export: every field
// except title is optional, authors may arrive as a list or as a single
// legacy string, and numeric fields may arrive as strings.
type ResultEntry struct {
	Title   string         `json:"title"`
	Authors []string       `json:"authors"`
	Author  string         `json:"author"`
	Year    FlexibleString `json:"year"`
	Journal string         `json:"journal"`
	Volume  FlexibleString `json:"volume"`
	Issue   FlexibleString `json:"issue"`
	Pages   string         `json:"pages"`
	DOI     string         `json:"doi"`
	URL     string         `json:"url"`
	Kind    string         `json:"type"`
}

// ParseResults parses a JSON array of externally sourced entries into
// records. Parsing is best-effort: entries that fail validation are reported
// in the error list and skipped, and partial fields degrade to their
// sentinels rather than failing. Only an unparseable document is fatal.
func ParseResults(data []byte) ([]source.Record, []error) {
	var entries []ResultEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, []error{fmt.Errorf("parsing results JSON: %w", err)}
	}

	var recs []source.Record
	var errs []error

	for i, entry := range entries {
		rec, err := entryToRecord(entry)
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %d: %w", i+1, err))
			continue
		}
		recs = append(recs, rec)
	}

	return recs, errs
}

// entryToRecord converts one loose entry into a Record. Ambiguity between
// the authors list and the legacy author string is left to the record's own
// resolution rules so it is resolved exactly once, downstream.
func entryToRecord(entry ResultEntry) (source.Record, error) {
	rec := source.Record{
		Title:   strings.TrimSpace(entry.Title),
		Authors: cleanAuthors(entry.Authors),
		Author:  strings.TrimSpace(entry.Author),
		Journal: strings.TrimSpace(entry.Journal),
		Volume:  entry.Volume.String(),
		Issue:   entry.Issue.String(),
		Pages:   strings.TrimSpace(entry.Pages),
		DOI:     strings.TrimSpace(entry.DOI),
		URL:     strings.TrimSpace(entry.URL),
		Kind:    parseKind(entry.Kind),
	}

	if y := entry.Year.String(); y != "" && y != source.NotDated {
		year, err := strconv.Atoi(y)
		if err == nil && year > 0 {
			rec.Year = year
		}
		// Unparseable years degrade to the not-dated sentinel.
	}

	if err := rec.Validate(); err != nil {
		return source.Record{}, err
	}
	return rec, nil
}

// cleanAuthors trims entries and drops empty ones, preserving order.
func cleanAuthors(authors []string) []string {
	var cleaned []string
	for _, a := range authors {
		if a = strings.TrimSpace(a); a != "" {
			cleaned = append(cleaned, a)
		}
	}
	return cleaned
}

// parseKind maps a loose type value onto a known kind, defaulting to
// article.
func parseKind(kind string) source.Kind {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "book":
		return source.KindBook
	case "website", "web":
		return source.KindWebsite
	case "conference", "inproceedings", "proceedings":
		return source.KindConference
	default:
		return source.KindArticle
	}
}
