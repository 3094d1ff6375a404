package storage

import (
	"path/filepath"
	"testing"

	"github.com/refdeck/refdeck/internal/citation"
	"github.com/refdeck/refdeck/internal/identity"
	"github.com/refdeck/refdeck/internal/source"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "sources.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRebuildFromJSONL(t *testing.T) {
	dir := t.TempDir()
	jsonlPath := filepath.Join(dir, "sources.jsonl")
	if err := WriteAll(jsonlPath, sampleRecords()); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	db := openTestDB(t)
	n, err := db.RebuildFromJSONL(jsonlPath)
	if err != nil {
		t.Fatalf("RebuildFromJSONL: %v", err)
	}
	if n != 2 {
		t.Errorf("rebuilt %d sources, want 2", n)
	}

	count, err := db.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 2 {
		t.Errorf("Count = %d, want 2", count)
	}
}

func TestRebuildFromJSONL_DeduplicatesByKey(t *testing.T) {
	dir := t.TempDir()
	jsonlPath := filepath.Join(dir, "sources.jsonl")

	dup := []source.Record{
		{Title: "First Seen", DOI: "10.1/x"},
		{Title: "Second Seen", DOI: "10.1/x"},
	}
	if err := WriteAll(jsonlPath, dup); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	db := openTestDB(t)
	n, err := db.RebuildFromJSONL(jsonlPath)
	if err != nil {
		t.Fatalf("RebuildFromJSONL: %v", err)
	}
	if n != 1 {
		t.Errorf("rebuilt %d sources, want 1 after dedup", n)
	}

	rec, err := db.GetByKey("10.1/x")
	if err != nil {
		t.Fatalf("GetByKey: %v", err)
	}
	if rec == nil || rec.Title != "First Seen" {
		t.Errorf("dedup should keep the first-seen record, got %+v", rec)
	}
}

func TestGetByKey_RoundTripsAllFields(t *testing.T) {
	db := openTestDB(t)

	rec := citation.Enrich(sampleRecords()[0])
	if err := db.Insert(&rec); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := db.GetByKey(identity.KeyOf(&rec))
	if err != nil {
		t.Fatalf("GetByKey: %v", err)
	}
	if got == nil {
		t.Fatal("GetByKey returned nil")
	}

	if got.Title != rec.Title || got.Year != rec.Year || got.DOI != rec.DOI {
		t.Errorf("fields lost in round trip: %+v", got)
	}
	if len(got.Authors) != 3 {
		t.Errorf("authors = %v", got.Authors)
	}
	if got.Kind != source.KindArticle {
		t.Errorf("kind = %s", got.Kind)
	}
	if got.Citations == nil {
		t.Fatal("citation bundle should survive persistence")
	}
	c, ok := got.Citations.Get("apa")
	if !ok || c.InText != "(Y LeCun et al., 2015)" {
		t.Errorf("cached citation = %+v", c)
	}
}

func TestGetByKey_Missing(t *testing.T) {
	db := openTestDB(t)

	rec, err := db.GetByKey("10.9999/absent")
	if err != nil {
		t.Fatalf("GetByKey: %v", err)
	}
	if rec != nil {
		t.Errorf("missing key should return nil, got %+v", rec)
	}
}

func TestSearch(t *testing.T) {
	db := openTestDB(t)
	for _, rec := range sampleRecords() {
		if err := db.Insert(&rec); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	recs, err := db.Search("Attention", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(recs) != 1 || recs[0].Title != "Attention Is All You Need" {
		t.Errorf("Search results = %+v", recs)
	}

	// Author names are searchable too.
	recs, err = db.Search("Bengio", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(recs) != 1 || recs[0].Title != "Deep Learning" {
		t.Errorf("author search results = %+v", recs)
	}
}

func TestSearchField(t *testing.T) {
	db := openTestDB(t)
	for _, rec := range sampleRecords() {
		if err := db.Insert(&rec); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	recs, err := db.SearchField("journal", "Nature", 10)
	if err != nil {
		t.Fatalf("SearchField: %v", err)
	}
	if len(recs) != 1 || recs[0].Journal != "Nature" {
		t.Errorf("journal search results = %+v", recs)
	}

	if _, err := db.SearchField("abstract", "x", 10); err == nil {
		t.Error("unknown search field should error")
	}
}

func TestGetByDOI(t *testing.T) {
	db := openTestDB(t)
	recs := sampleRecords()
	for _, rec := range recs {
		if err := db.Insert(&rec); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	got, err := db.GetByDOI("10.1038/nature14539")
	if err != nil {
		t.Fatalf("GetByDOI: %v", err)
	}
	if got == nil || got.Title != "Deep Learning" {
		t.Errorf("GetByDOI = %+v", got)
	}
}

func TestListAll_Limit(t *testing.T) {
	db := openTestDB(t)
	for _, rec := range sampleRecords() {
		if err := db.Insert(&rec); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	recs, err := db.ListAll(1)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(recs) != 1 {
		t.Errorf("ListAll(1) returned %d records", len(recs))
	}

	recs, err = db.ListAll(0)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("ListAll(0) returned %d records, want all", len(recs))
	}
}
