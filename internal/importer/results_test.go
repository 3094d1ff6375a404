package importer

import (
	"reflect"
	"testing"

	"github.com/refdeck/refdeck/internal/source"
)

func TestParseResults_Basic(t *testing.T) {
	data := []byte(`[
		{
			"title": "Deep Learning",
			"authors": ["Y LeCun", "Y Bengio", "G Hinton"],
			"year": 2015,
			"journal": "Nature",
			"volume": "521",
			"issue": "7553",
			"pages": "436-444",
			"doi": "10.1038/nature14539",
			"type": "article"
		}
	]`)

	recs, errs := ParseResults(data)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}

	rec := recs[0]
	if rec.Title != "Deep Learning" || rec.Year != 2015 || rec.DOI != "10.1038/nature14539" {
		t.Errorf("record fields wrong: %+v", rec)
	}
	if !reflect.DeepEqual(rec.Authors, []string{"Y LeCun", "Y Bengio", "G Hinton"}) {
		t.Errorf("authors = %v", rec.Authors)
	}
	if rec.Kind != source.KindArticle {
		t.Errorf("kind = %s, want article", rec.Kind)
	}
}

func TestParseResults_YearAsString(t *testing.T) {
	data := []byte(`[{"title": "T", "year": "2019"}]`)

	recs, errs := ParseResults(data)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if recs[0].Year != 2019 {
		t.Errorf("year = %d, want 2019", recs[0].Year)
	}
}

func TestParseResults_UnparseableYearDegrades(t *testing.T) {
	data := []byte(`[{"title": "T", "year": "forthcoming"}]`)

	recs, errs := ParseResults(data)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if recs[0].Year != 0 {
		t.Errorf("unparseable year should stay unknown, got %d", recs[0].Year)
	}
	if recs[0].YearLabel() != source.NotDated {
		t.Errorf("YearLabel = %q, want %q", recs[0].YearLabel(), source.NotDated)
	}
}

func TestParseResults_NumericVolumeAndIssue(t *testing.T) {
	data := []byte(`[{"title": "T", "volume": 521, "issue": 7553}]`)

	recs, errs := ParseResults(data)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if recs[0].Volume != "521" || recs[0].Issue != "7553" {
		t.Errorf("volume/issue = %q/%q", recs[0].Volume, recs[0].Issue)
	}
}

func TestParseResults_LegacyAuthorString(t *testing.T) {
	data := []byte(`[{"title": "T", "author": "A Smith, B Jones"}]`)

	recs, errs := ParseResults(data)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(recs[0].Authors) != 0 {
		t.Errorf("legacy author should not be pre-split at the boundary: %v", recs[0].Authors)
	}
	if got := recs[0].AuthorList(); len(got) != 2 {
		t.Errorf("resolved author list = %v", got)
	}
}

func TestParseResults_MissingTitleSkipsEntry(t *testing.T) {
	data := []byte(`[
		{"authors": ["A"], "year": 2020},
		{"title": "Kept", "year": 2021}
	]`)

	recs, errs := ParseResults(data)
	if len(errs) != 1 {
		t.Fatalf("want 1 entry error, got %v", errs)
	}
	if len(recs) != 1 || recs[0].Title != "Kept" {
		t.Errorf("records = %+v", recs)
	}
}

func TestParseResults_MalformedDocumentIsFatal(t *testing.T) {
	recs, errs := ParseResults([]byte(`{"not": "an array"}`))
	if recs != nil || len(errs) != 1 {
		t.Errorf("malformed document should be the only error, got recs=%v errs=%v", recs, errs)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want source.Kind
	}{
		{"article", source.KindArticle},
		{"Book", source.KindBook},
		{"website", source.KindWebsite},
		{"inproceedings", source.KindConference},
		{"", source.KindArticle},
		{"preprint", source.KindArticle},
	}

	for _, tt := range tests {
		if got := parseKind(tt.in); got != tt.want {
			t.Errorf("parseKind(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFlexibleString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"2015"`, "2015"},
		{`2015`, "2015"},
		{`null`, ""},
	}

	for _, tt := range tests {
		var f FlexibleString
		if err := f.UnmarshalJSON([]byte(tt.in)); err != nil {
			t.Errorf("UnmarshalJSON(%s): %v", tt.in, err)
			continue
		}
		if f.String() != tt.want {
			t.Errorf("FlexibleString(%s) = %q, want %q", tt.in, f.String(), tt.want)
		}
	}
}
