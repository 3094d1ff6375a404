package citation

import (
	"reflect"
	"strings"
	"testing"

	"github.com/refdeck/refdeck/internal/source"
)

// lecun is the fully populated fixture used across rendering tests.
func lecun() source.Record {
	return source.Record{
		Title:   "Deep Learning",
		Authors: []string{"Y LeCun", "Y Bengio", "G Hinton"},
		Year:    2015,
		Journal: "Nature",
		Volume:  "521",
		Issue:   "7553",
		Pages:   "436-444",
		DOI:     "10.1038/nature14539",
	}
}

func TestInText(t *testing.T) {
	rec := lecun()

	tests := []struct {
		style Style
		want  string
	}{
		{APA, "(Y LeCun et al., 2015)"},
		{MLA, "(Y LeCun et al.)"},
		{Chicago, "(Y LeCun, Y Bengio, and G Hinton 2015)"},
		{IEEE, "[1]"},
	}

	for _, tt := range tests {
		if got := InText(&rec, tt.style); got != tt.want {
			t.Errorf("InText(%s) = %q, want %q", tt.style, got, tt.want)
		}
	}
}

func TestInText_TwoAuthors(t *testing.T) {
	rec := source.Record{
		Title:   "Attention Is All You Need",
		Authors: []string{"A Vaswani", "N Shazeer"},
		Year:    2017,
	}

	tests := []struct {
		style Style
		want  string
	}{
		{APA, "(A Vaswani & N Shazeer, 2017)"},
		{MLA, "(A Vaswani and N Shazeer)"},
		{Chicago, "(A Vaswani and N Shazeer 2017)"},
		{IEEE, "[1]"},
	}

	for _, tt := range tests {
		if got := InText(&rec, tt.style); got != tt.want {
			t.Errorf("InText(%s) = %q, want %q", tt.style, got, tt.want)
		}
	}
}

func TestInTextIEEEIgnoresAuthorCount(t *testing.T) {
	records := []source.Record{
		{Title: "T", Authors: []string{"A"}},
		{Title: "T", Authors: []string{"A", "B"}},
		{Title: "T", Authors: []string{"A", "B", "C", "D", "E"}},
		{Title: "T"}, // no authors at all, resolves to Unknown
	}

	for i, rec := range records {
		if got := InText(&rec, IEEE); got != "[1]" {
			t.Errorf("record %d: IEEE in-text = %q, want [1]", i, got)
		}
	}
}

func TestReferenceEntry_FullRecord(t *testing.T) {
	rec := lecun()

	tests := []struct {
		style Style
		want  string
	}{
		{APA, "Y LeCun, Y Bengio, & G Hinton (2015). Deep Learning. Nature, 521(7553), 436-444. https://doi.org/10.1038/nature14539"},
		{MLA, `Y LeCun et al. "Deep Learning." Nature, vol. 521, no. 7553, 2015, pp. 436-444.`},
		{Chicago, `Y LeCun, Y Bengio, and G Hinton. 2015. "Deep Learning." Nature 521 (7553): 436-444.`},
		{IEEE, `[1] Y LeCun, Y Bengio, and G Hinton, "Deep Learning," Nature, vol. 521, no. 7553, pp. 436-444, 2015.`},
	}

	for _, tt := range tests {
		if got := ReferenceEntry(&rec, tt.style); got != tt.want {
			t.Errorf("ReferenceEntry(%s) =\n  %q\nwant\n  %q", tt.style, got, tt.want)
		}
	}
}

func TestReferenceEntry_OmittedFieldsLeaveNoStraySeparators(t *testing.T) {
	// A record with journal but no volume/issue/pages must not produce
	// dangling commas or empty parentheses.
	rec := source.Record{
		Title:   "On Computable Numbers",
		Authors: []string{"A Turing"},
		Year:    1936,
		Journal: "Proc. LMS",
	}

	for _, style := range Styles {
		got := ReferenceEntry(&rec, style)
		for _, bad := range []string{", ,", ",,", "()", "( )", ", .", " ,"} {
			if strings.Contains(got, bad) {
				t.Errorf("ReferenceEntry(%s) contains stray separator %q: %q", style, bad, got)
			}
		}
	}
}

func TestReferenceEntry_IssueWithoutVolume(t *testing.T) {
	rec := source.Record{
		Title:   "Some Note",
		Authors: []string{"B Smith"},
		Year:    2020,
		Journal: "Letters",
		Issue:   "4",
	}

	got := ReferenceEntry(&rec, APA)
	want := "B Smith (2020). Some Note. Letters, (4)."
	if got != want {
		t.Errorf("APA issue-only reference = %q, want %q", got, want)
	}
}

func TestRender_TitleOnlyDegradesGracefully(t *testing.T) {
	rec := source.Record{Title: "Orphan Work"}

	for _, style := range Styles {
		inText := InText(&rec, style)
		ref := ReferenceEntry(&rec, style)

		if style != IEEE && !strings.Contains(inText, "Unknown") {
			t.Errorf("%s in-text should fall back to Unknown author, got %q", style, inText)
		}
		if style != MLA && style != IEEE {
			if !strings.Contains(inText, source.NotDated) {
				t.Errorf("%s in-text should contain %q, got %q", style, source.NotDated, inText)
			}
		}
		if !strings.Contains(ref, "Orphan Work") {
			t.Errorf("%s reference should contain the title, got %q", style, ref)
		}
		if !strings.Contains(ref, source.NotDated) {
			t.Errorf("%s reference should contain %q, got %q", style, source.NotDated, ref)
		}
	}
}

func TestInText_LegacyAuthorString(t *testing.T) {
	rec := source.Record{
		Title:  "Shared Work",
		Author: "J Smith, L Jones",
		Year:   2019,
	}

	if got := InText(&rec, APA); got != "(J Smith & L Jones, 2019)" {
		t.Errorf("legacy author string should split on commas, got %q", got)
	}
}

func TestRenderAll_CoversAllStylesAndForms(t *testing.T) {
	rec := lecun()
	bundle := RenderAll(&rec)

	if len(bundle) != 4 {
		t.Fatalf("RenderAll returned %d styles, want 4", len(bundle))
	}
	for _, style := range Styles {
		c, ok := bundle.Get(style.Key())
		if !ok {
			t.Fatalf("bundle missing style %s", style.Key())
		}
		if c.InText == "" || c.Reference == "" {
			t.Errorf("bundle[%s] has empty form: %+v", style.Key(), c)
		}
	}
}

func TestRenderAll_Idempotent(t *testing.T) {
	rec := lecun()

	first := RenderAll(&rec)
	second := RenderAll(&rec)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("RenderAll is not idempotent:\n%+v\nvs\n%+v", first, second)
	}
}

func TestEnrich(t *testing.T) {
	rec := lecun()

	enriched := Enrich(rec)
	if enriched.Citations == nil {
		t.Fatal("Enrich should attach a bundle")
	}
	if rec.Citations != nil {
		t.Error("Enrich should not mutate its input")
	}

	// A second enrich returns the cached bundle unchanged.
	again := Enrich(enriched)
	if !reflect.DeepEqual(enriched.Citations, again.Citations) {
		t.Error("re-enriching an unchanged record should preserve the bundle")
	}

	// The cached strings match a fresh render (self-consistency).
	fresh := RenderAll(&rec)
	if !reflect.DeepEqual(enriched.Citations, fresh) {
		t.Errorf("cached bundle diverged from fresh render:\n%+v\nvs\n%+v", enriched.Citations, fresh)
	}
}

func TestCitationFor_PrefersCachedBundle(t *testing.T) {
	rec := Enrich(lecun())

	// Tamper with the cached bundle to observe which source wins.
	rec.Citations["apa"] = source.Citation{InText: "cached", Reference: "cached"}

	got := CitationFor(&rec, APA)
	if got.InText != "cached" {
		t.Errorf("CitationFor should prefer the cached bundle, got %q", got.InText)
	}

	// Without a bundle it falls back to rendering.
	plain := lecun()
	got = CitationFor(&plain, APA)
	if got.InText != "(Y LeCun et al., 2015)" {
		t.Errorf("CitationFor fallback render = %q", got.InText)
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"apa", APA, false},
		{"APA", APA, false},
		{"mla", MLA, false},
		{"chicago", Chicago, false},
		{"IEEE", IEEE, false},
		{"harvard", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseStyle(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseStyle(%q) should fail", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStyle(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStyle(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
