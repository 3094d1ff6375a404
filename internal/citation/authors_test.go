package citation

import (
	"fmt"
	"strings"
	"testing"
)

// nameList returns n synthetic author names A1..An.
func nameList(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("A%d", i+1)
	}
	return names
}

func TestFormatAuthorList_InText(t *testing.T) {
	tests := []struct {
		style   Style
		authors []string
		want    string
	}{
		// APA: exactly 2 gets the ampersand, exactly 3 gets et al.
		{APA, []string{"Smith"}, "Smith"},
		{APA, []string{"Smith", "Jones"}, "Smith & Jones"},
		{APA, []string{"Smith", "Jones", "Brown"}, "Smith et al."},
		{APA, nameList(7), "A1 et al."},

		{MLA, []string{"Smith"}, "Smith"},
		{MLA, []string{"Smith", "Jones"}, "Smith and Jones"},
		{MLA, []string{"Smith", "Jones", "Brown"}, "Smith et al."},

		// Chicago names all three at exactly 3, elides at 4.
		{Chicago, []string{"Smith"}, "Smith"},
		{Chicago, []string{"Smith", "Jones"}, "Smith and Jones"},
		{Chicago, []string{"Smith", "Jones", "Brown"}, "Smith, Jones, and Brown"},
		{Chicago, []string{"Smith", "Jones", "Brown", "Lee"}, "Smith et al."},

		// IEEE in-text never names authors.
		{IEEE, []string{"Smith"}, "[1]"},
		{IEEE, []string{"Smith", "Jones"}, "[1]"},
		{IEEE, nameList(5), "[1]"},
	}

	for _, tt := range tests {
		got := FormatAuthorList(tt.authors, tt.style, InTextContext)
		if got != tt.want {
			t.Errorf("FormatAuthorList(%d authors, %s, in-text) = %q, want %q",
				len(tt.authors), tt.style, got, tt.want)
		}
	}
}

func TestFormatAuthorList_Reference(t *testing.T) {
	tests := []struct {
		style   Style
		authors []string
		want    string
	}{
		{APA, []string{"Smith"}, "Smith"},
		{APA, []string{"Smith", "Jones"}, "Smith & Jones"},
		{APA, []string{"Smith", "Jones", "Brown"}, "Smith, Jones, & Brown"},

		{MLA, []string{"Smith"}, "Smith"},
		{MLA, []string{"Smith", "Jones"}, "Smith and Jones"},
		{MLA, []string{"Smith", "Jones", "Brown"}, "Smith et al."},

		{Chicago, []string{"Smith"}, "Smith"},
		{Chicago, []string{"Smith", "Jones"}, "Smith and Jones"},
		{Chicago, []string{"Smith", "Jones", "Brown"}, "Smith, Jones, and Brown"},

		{IEEE, []string{"Smith"}, "Smith"},
		{IEEE, []string{"Smith", "Jones"}, "Smith and Jones"},
		{IEEE, []string{"Smith", "Jones", "Brown"}, "Smith, Jones, and Brown"},
	}

	for _, tt := range tests {
		got := FormatAuthorList(tt.authors, tt.style, ReferenceContext)
		if got != tt.want {
			t.Errorf("FormatAuthorList(%d authors, %s, reference) = %q, want %q",
				len(tt.authors), tt.style, got, tt.want)
		}
	}
}

func TestFormatAuthorList_APAElisionBoundary(t *testing.T) {
	// At exactly 20 authors every name is listed.
	got := FormatAuthorList(nameList(20), APA, ReferenceContext)
	if !strings.HasSuffix(got, ", & A20") {
		t.Errorf("20-author APA reference should end with %q, got %q", ", & A20", got)
	}
	if strings.Contains(got, "...") {
		t.Errorf("20-author APA reference should not elide, got %q", got)
	}

	// At 21, keep the first 19, elide, then the last.
	got = FormatAuthorList(nameList(21), APA, ReferenceContext)
	want := strings.Join(nameList(19), ", ") + ", ... A21"
	if got != want {
		t.Errorf("21-author APA reference = %q, want %q", got, want)
	}
	if strings.Contains(got, "A20") {
		t.Errorf("21-author APA reference should drop author 20, got %q", got)
	}
}

func TestFormatAuthorList_ChicagoElisionBoundary(t *testing.T) {
	// At exactly 10 authors every name is listed.
	got := FormatAuthorList(nameList(10), Chicago, ReferenceContext)
	if !strings.HasSuffix(got, ", and A10") {
		t.Errorf("10-author Chicago reference should end with %q, got %q", ", and A10", got)
	}

	// At 11, keep the first 7 and elide.
	got = FormatAuthorList(nameList(11), Chicago, ReferenceContext)
	want := strings.Join(nameList(7), ", ") + ", et al."
	if got != want {
		t.Errorf("11-author Chicago reference = %q, want %q", got, want)
	}
}

func TestFormatAuthorList_FirstAuthorIsPositional(t *testing.T) {
	// List order is authoritative: no alphabetical re-sorting.
	got := FormatAuthorList([]string{"Zhao", "Adams", "Brown"}, APA, InTextContext)
	if got != "Zhao et al." {
		t.Errorf("first author should be positional, got %q", got)
	}
}

func TestFormatAuthorList_PanicsOnEmptyList(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FormatAuthorList should panic on empty author list")
		}
	}()
	FormatAuthorList(nil, APA, InTextContext)
}

func TestFormatAuthorList_PanicsOnUnknownStyle(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FormatAuthorList should panic on unknown style")
		}
	}()
	FormatAuthorList([]string{"Smith"}, Style("Harvard"), InTextContext)
}
