package citation

import (
	"fmt"
	"strings"

	"github.com/refdeck/refdeck/internal/source"
)

// ReferenceEntry renders the full reference-list entry for a record in the
// given style. Optional fields (journal, volume, issue, pages, DOI) are
// omitted silently together with their own separators, so a sparse record
// never produces stray punctuation.
func ReferenceEntry(rec *source.Record, style Style) string {
	authors := referenceAuthors(rec.AuthorList(), style)
	year := rec.YearLabel()

	switch style {
	case APA:
		return apaReference(rec, authors, year)
	case MLA:
		return mlaReference(rec, authors, year)
	case Chicago:
		return chicagoReference(rec, authors, year)
	case IEEE:
		return ieeeReference(rec, authors, year)
	}
	panic(fmt.Sprintf("citation: unknown style %q", string(style)))
}

// apaReference: Authors (Year). Title. Journal, Volume(Issue), Pages. https://doi.org/DOI
func apaReference(rec *source.Record, authors, year string) string {
	var b strings.Builder
	b.WriteString(authors)
	b.WriteString(" (")
	b.WriteString(year)
	b.WriteString("). ")
	b.WriteString(rec.Title)
	b.WriteString(".")

	if src := joinParts(", ", rec.Journal, volumeIssue(rec), rec.Pages); src != "" {
		b.WriteString(" ")
		b.WriteString(src)
		b.WriteString(".")
	}
	if rec.DOI != "" {
		b.WriteString(" https://doi.org/")
		b.WriteString(rec.DOI)
	}
	return b.String()
}

// mlaReference: Authors. "Title." Journal, vol. Volume, no. Issue, Year, pp. Pages.
func mlaReference(rec *source.Record, authors, year string) string {
	var b strings.Builder
	b.WriteString(authors)
	b.WriteString(". \"")
	b.WriteString(rec.Title)
	b.WriteString(".\" ")
	b.WriteString(joinParts(", ",
		rec.Journal,
		labeled("vol. ", rec.Volume),
		labeled("no. ", rec.Issue),
		year,
		labeled("pp. ", rec.Pages),
	))
	b.WriteString(".")
	return b.String()
}

// chicagoReference: Authors. Year. "Title." Journal Volume (Issue): Pages.
func chicagoReference(rec *source.Record, authors, year string) string {
	var b strings.Builder
	b.WriteString(authors)
	b.WriteString(". ")
	b.WriteString(year)
	b.WriteString(". \"")
	b.WriteString(rec.Title)
	b.WriteString(".\"")

	src := joinParts(" ", rec.Journal, rec.Volume)
	if rec.Issue != "" {
		src = joinParts(" ", src, "("+rec.Issue+")")
	}
	if rec.Pages != "" {
		if src != "" {
			src += ": " + rec.Pages
		} else {
			src = rec.Pages
		}
	}
	if src != "" {
		b.WriteString(" ")
		b.WriteString(src)
		b.WriteString(".")
	}
	return b.String()
}

// ieeeReference: [1] Authors, "Title," Journal, vol. Volume, no. Issue, pp. Pages, Year.
func ieeeReference(rec *source.Record, authors, year string) string {
	var b strings.Builder
	b.WriteString("[1] ")
	b.WriteString(authors)
	b.WriteString(", \"")
	b.WriteString(rec.Title)
	b.WriteString(",\" ")
	b.WriteString(joinParts(", ",
		rec.Journal,
		labeled("vol. ", rec.Volume),
		labeled("no. ", rec.Issue),
		labeled("pp. ", rec.Pages),
		year,
	))
	b.WriteString(".")
	return b.String()
}

// volumeIssue renders the APA volume/issue pair: "521(7553)", "521", or
// "(7553)" when only the issue is known.
func volumeIssue(rec *source.Record) string {
	if rec.Issue == "" {
		return rec.Volume
	}
	return rec.Volume + "(" + rec.Issue + ")"
}

// labeled prefixes a value with its label, or yields "" for an empty value
// so the label never appears alone.
func labeled(label, value string) string {
	if value == "" {
		return ""
	}
	return label + value
}

// joinParts joins the non-empty parts with sep.
func joinParts(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
