package citation

import (
	"fmt"

	"github.com/refdeck/refdeck/internal/source"
)

// InText renders the short in-text citation form for a record. It never
// fails on partial data: missing authors resolve to "Unknown" and a missing
// year renders as "n.d.".
//
// IEEE output is the literal "[1]" placeholder. Tracking a running
// bibliography index is the document layer's job; this composer has no view
// of where the record sits in a reference list.
func InText(rec *source.Record, style Style) string {
	authors := rec.AuthorList()
	year := rec.YearLabel()

	switch style {
	case APA:
		return "(" + inTextAuthors(authors, APA) + ", " + year + ")"
	case MLA:
		// MLA in-text deliberately omits the year.
		return "(" + inTextAuthors(authors, MLA) + ")"
	case Chicago:
		return "(" + inTextAuthors(authors, Chicago) + " " + year + ")"
	case IEEE:
		return "[1]"
	}
	panic(fmt.Sprintf("citation: unknown style %q", string(style)))
}
