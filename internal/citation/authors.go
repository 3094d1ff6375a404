package citation

import (
	"fmt"
	"strings"
)

// Author-count thresholds per style guide. APA reference lists name up to 20
// authors before eliding; Chicago references name up to 10, then keep the
// first 7.
const (
	apaMaxListed     = 20
	apaKeptOnElide   = 19
	chicagoMaxListed = 10
	chicagoKept      = 7
)

// FormatAuthorList renders an author-name list as a style- and
// context-correct fragment, not yet embedded in surrounding punctuation.
// List order is authoritative: where a rule names "the first author", that
// is authors[0], never an alphabetical re-sort.
//
// authors must be non-empty (callers resolve missing authors to the
// "Unknown" sentinel first). Unknown style or context values panic: they
// indicate a caller bug, not bad data.
func FormatAuthorList(authors []string, style Style, ctx Context) string {
	if len(authors) == 0 {
		panic("citation: FormatAuthorList called with no authors")
	}
	switch ctx {
	case InTextContext:
		return inTextAuthors(authors, style)
	case ReferenceContext:
		return referenceAuthors(authors, style)
	}
	panic(fmt.Sprintf("citation: unknown context %q", string(ctx)))
}

func inTextAuthors(authors []string, style Style) string {
	switch style {
	case APA:
		switch len(authors) {
		case 1:
			return authors[0]
		case 2:
			return authors[0] + " & " + authors[1]
		default:
			return authors[0] + " et al."
		}
	case MLA:
		switch len(authors) {
		case 1:
			return authors[0]
		case 2:
			return authors[0] + " and " + authors[1]
		default:
			return authors[0] + " et al."
		}
	case Chicago:
		switch len(authors) {
		case 1:
			return authors[0]
		case 2:
			return authors[0] + " and " + authors[1]
		case 3:
			return authors[0] + ", " + authors[1] + ", and " + authors[2]
		default:
			return authors[0] + " et al."
		}
	case IEEE:
		// Numeric style: the marker carries no author names at all.
		return "[1]"
	}
	panic(fmt.Sprintf("citation: unknown style %q", string(style)))
}

func referenceAuthors(authors []string, style Style) string {
	n := len(authors)
	switch style {
	case APA:
		switch {
		case n == 1:
			return authors[0]
		case n == 2:
			return authors[0] + " & " + authors[1]
		case n <= apaMaxListed:
			return strings.Join(authors[:n-1], ", ") + ", & " + authors[n-1]
		default:
			return strings.Join(authors[:apaKeptOnElide], ", ") + ", ... " + authors[n-1]
		}
	case MLA:
		switch {
		case n == 1:
			return authors[0]
		case n == 2:
			return authors[0] + " and " + authors[1]
		default:
			return authors[0] + " et al."
		}
	case Chicago:
		switch {
		case n == 1:
			return authors[0]
		case n == 2:
			return authors[0] + " and " + authors[1]
		case n <= chicagoMaxListed:
			return strings.Join(authors[:n-1], ", ") + ", and " + authors[n-1]
		default:
			return strings.Join(authors[:chicagoKept], ", ") + ", et al."
		}
	case IEEE:
		switch {
		case n == 1:
			return authors[0]
		case n == 2:
			return authors[0] + " and " + authors[1]
		default:
			return strings.Join(authors[:n-1], ", ") + ", and " + authors[n-1]
		}
	}
	panic(fmt.Sprintf("citation: unknown style %q", string(style)))
}
