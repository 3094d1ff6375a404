// Package citation renders in-text markers and reference-list entries for
// the four supported citation styles.
package citation

import "fmt"

// Style identifies a citation style. The set is closed: every composer
// switches exhaustively over these four values and panics on anything else,
// so adding a style is an audit of every switch in this package.
type Style string

const (
	APA     Style = "APA"
	MLA     Style = "MLA"
	Chicago Style = "Chicago"
	IEEE    Style = "IEEE"
)

// Styles lists all supported styles in bundle order.
var Styles = []Style{APA, MLA, Chicago, IEEE}

// ParseStyle resolves a case-insensitive style name.
func ParseStyle(name string) (Style, error) {
	switch name {
	case "apa", "APA", "Apa":
		return APA, nil
	case "mla", "MLA", "Mla":
		return MLA, nil
	case "chicago", "Chicago", "CHICAGO":
		return Chicago, nil
	case "ieee", "IEEE", "Ieee":
		return IEEE, nil
	}
	return "", fmt.Errorf("unknown citation style: %s", name)
}

// Key returns the lowercase bundle key for the style.
func (s Style) Key() string {
	switch s {
	case APA:
		return "apa"
	case MLA:
		return "mla"
	case Chicago:
		return "chicago"
	case IEEE:
		return "ieee"
	}
	panic(fmt.Sprintf("citation: unknown style %q", string(s)))
}

// Context selects which form of a citation is being rendered.
type Context string

const (
	// InTextContext renders the short form inserted inline in prose.
	InTextContext Context = "in-text"
	// ReferenceContext renders the full reference-list entry.
	ReferenceContext Context = "reference-entry"
)
