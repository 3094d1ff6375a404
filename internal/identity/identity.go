// Package identity derives canonical identity keys for sources and collapses
// duplicate records.
//
// The same underlying paper routinely arrives more than once: from a search
// result, from a manual entry, from an import. The key computed here is what
// makes those one addressable entity, both for deduplication and for
// per-source UI state such as collection membership.
package identity

import (
	"strings"

	"github.com/refdeck/refdeck/internal/source"
)

// KeyOf maps a record to its canonical identity key. The DOI, normalized,
// is the key when present; otherwise a composite of normalized title, year,
// and first author. Pure and total: a record with no DOI, title, or author
// still yields a key (it just deduplicates against equally empty records).
func KeyOf(rec *source.Record) string {
	if doi := normalize(rec.DOI); doi != "" {
		return doi
	}
	year := ""
	if rec.Year != 0 {
		year = rec.YearLabel()
	}
	return normalize(rec.Title) + "-" + year + "-" + normalize(firstAuthor(rec))
}

// firstAuthor returns the first author for keying. Unlike rendering, keying
// uses the empty string (not the "Unknown" sentinel) when no author exists,
// so authorless records key purely on title and year.
func firstAuthor(rec *source.Record) string {
	if len(rec.Authors) > 0 {
		return rec.Authors[0]
	}
	if rec.Author != "" {
		first, _, _ := strings.Cut(rec.Author, ",")
		return first
	}
	return ""
}

// normalize lowercases and trims a key component.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Dedupe collapses a record list to one record per identity key. Iteration
// is in input order and the first record seen for a key wins; relative order
// of kept records is preserved. This is a stable set-reduction, not a sort.
func Dedupe(recs []source.Record) []source.Record {
	seen := make(map[string]bool, len(recs))
	kept := make([]source.Record, 0, len(recs))
	for i := range recs {
		key := KeyOf(&recs[i])
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, recs[i])
	}
	return kept
}
