// Package source defines the core domain types for citable sources.
package source

import (
	"errors"
	"strconv"
	"strings"
)

// Kind classifies the kind of source. It affects which optional fields are
// meaningful, not the formatting grammar.
type Kind string

const (
	KindArticle    Kind = "article"
	KindBook       Kind = "book"
	KindWebsite    Kind = "website"
	KindConference Kind = "conference"
)

// NotDated is the rendered year for sources with no publication year.
const NotDated = "n.d."

// Record represents one citable source.
//
// Records arrive partially populated (manual entry, partial imports), so
// every field except Title is optional. Authors is the canonical author
// representation; Author is the legacy single-string form kept for imports
// from systems that store authors as one comma-separated value.
type Record struct {
	Title string `json:"title"`

	Authors []string `json:"authors,omitempty"`
	Author  string   `json:"author,omitempty"` // Legacy; used only when Authors is empty

	Year    int    `json:"year,omitempty"` // 0 = unknown
	Journal string `json:"journal,omitempty"`
	Volume  string `json:"volume,omitempty"`
	Issue   string `json:"issue,omitempty"`
	Pages   string `json:"pages,omitempty"`

	DOI  string `json:"doi,omitempty"`
	URL  string `json:"url,omitempty"`
	Kind Kind   `json:"kind,omitempty"`

	// Citations is the precomputed citation bundle, populated only by
	// citation.Enrich. Nil until enriched; stale if any bibliographic field
	// above changes.
	Citations Bundle `json:"citations,omitempty"`
}

// Validation errors.
var (
	ErrEmptyTitle = errors.New("title is required")
)

// Validate checks that the record has the minimum required fields.
func (r *Record) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// AuthorList resolves the authors for rendering. Resolution is
// deterministic: Authors wins when non-empty; otherwise the legacy Author
// string is split on commas; a record with neither resolves to ["Unknown"].
// The result is never empty.
func (r *Record) AuthorList() []string {
	if len(r.Authors) > 0 {
		return r.Authors
	}
	if r.Author != "" {
		if !strings.Contains(r.Author, ",") {
			return []string{r.Author}
		}
		parts := strings.Split(r.Author, ",")
		authors := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				authors = append(authors, p)
			}
		}
		if len(authors) > 0 {
			return authors
		}
	}
	return []string{"Unknown"}
}

// FirstAuthor returns the first resolved author.
func (r *Record) FirstAuthor() string {
	return r.AuthorList()[0]
}

// YearLabel returns the year for rendering: the integer as a string, or the
// "n.d." sentinel when the year is unknown. Formatters never see an empty
// year.
func (r *Record) YearLabel() string {
	if r.Year == 0 {
		return NotDated
	}
	return strconv.Itoa(r.Year)
}
