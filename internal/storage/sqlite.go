package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/refdeck/refdeck/internal/identity"
	"github.com/refdeck/refdeck/internal/source"
	_ "modernc.org/sqlite"
)

// DB wraps the ephemeral SQLite query cache. The JSONL file is the source
// of truth; the database is rebuilt from it and never edited directly.
type DB struct {
	db *sql.DB
}

// selectSourceFields contains the standard field list for SELECT queries.
const selectSourceFields = `key, title, authors_json, author, pub_year,
	journal, volume, issue, pages, doi, url, kind, citations_json`

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		-- Main sources table, keyed by canonical identity key
		CREATE TABLE IF NOT EXISTS sources (
			key TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			authors_json TEXT,
			author TEXT,
			pub_year INTEGER,
			journal TEXT,
			volume TEXT,
			issue TEXT,
			pages TEXT,
			doi TEXT,
			url TEXT,
			kind TEXT,
			citations_json TEXT
		);

		-- Index for DOI lookups
		CREATE INDEX IF NOT EXISTS idx_sources_doi ON sources(doi) WHERE doi IS NOT NULL AND doi != '';

		-- Full-text search virtual table (standalone, not external content)
		CREATE VIRTUAL TABLE IF NOT EXISTS sources_fts USING fts5(
			key,
			title,
			journal,
			authors_text
		);
	`

	_, err := db.Exec(schema)
	return err
}

// RebuildFromJSONL clears the database and rebuilds it from a JSONL file.
// Duplicate identity keys in the file keep the first-seen record, matching
// dedup semantics elsewhere.
func (d *DB) RebuildFromJSONL(jsonlPath string) (int, error) {
	recs, err := ReadAll(jsonlPath)
	if err != nil {
		return 0, fmt.Errorf("reading JSONL: %w", err)
	}
	recs = identity.Dedupe(recs)

	if _, err := d.db.Exec("DELETE FROM sources"); err != nil {
		return 0, fmt.Errorf("clearing sources table: %w", err)
	}
	if _, err := d.db.Exec("DELETE FROM sources_fts"); err != nil {
		return 0, fmt.Errorf("clearing sources_fts table: %w", err)
	}

	srcStmt, err := d.db.Prepare(`
		INSERT INTO sources (` + selectSourceFields + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing sources insert: %w", err)
	}
	defer srcStmt.Close()

	ftsStmt, err := d.db.Prepare(`
		INSERT INTO sources_fts (key, title, journal, authors_text)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	for i := range recs {
		if err := insertSource(srcStmt, ftsStmt, &recs[i]); err != nil {
			return 0, err
		}
	}

	return len(recs), nil
}

// Insert adds one source to the cache.
func (d *DB) Insert(rec *source.Record) error {
	srcStmt, err := d.db.Prepare(`
		INSERT INTO sources (` + selectSourceFields + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing sources insert: %w", err)
	}
	defer srcStmt.Close()

	ftsStmt, err := d.db.Prepare(`
		INSERT INTO sources_fts (key, title, journal, authors_text)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	return insertSource(srcStmt, ftsStmt, rec)
}

func insertSource(srcStmt, ftsStmt *sql.Stmt, rec *source.Record) error {
	key := identity.KeyOf(rec)

	var authorsJSON []byte
	if len(rec.Authors) > 0 {
		var err error
		authorsJSON, err = json.Marshal(rec.Authors)
		if err != nil {
			return fmt.Errorf("marshaling authors for %s: %w", key, err)
		}
	}
	var citationsJSON []byte
	if rec.Citations != nil {
		var err error
		citationsJSON, err = json.Marshal(rec.Citations)
		if err != nil {
			return fmt.Errorf("marshaling citations for %s: %w", key, err)
		}
	}

	_, err := srcStmt.Exec(
		key, rec.Title, nullableString(authorsJSON), nullableStringValue(rec.Author),
		rec.Year, nullableStringValue(rec.Journal), nullableStringValue(rec.Volume),
		nullableStringValue(rec.Issue), nullableStringValue(rec.Pages),
		nullableStringValue(rec.DOI), nullableStringValue(rec.URL),
		nullableStringValue(string(rec.Kind)), nullableString(citationsJSON),
	)
	if err != nil {
		return fmt.Errorf("inserting source %s: %w", key, err)
	}

	authorsText := strings.Join(rec.AuthorList(), ", ")
	if _, err := ftsStmt.Exec(key, rec.Title, rec.Journal, authorsText); err != nil {
		return fmt.Errorf("inserting fts for %s: %w", key, err)
	}

	return nil
}

// GetByKey retrieves a source by its identity key.
func (d *DB) GetByKey(key string) (*source.Record, error) {
	row := d.db.QueryRow(`SELECT `+selectSourceFields+` FROM sources WHERE key = ?`, key)
	return scanSource(row)
}

// GetByDOI retrieves a source by exact DOI match.
func (d *DB) GetByDOI(doi string) (*source.Record, error) {
	row := d.db.QueryRow(`SELECT `+selectSourceFields+` FROM sources WHERE doi = ?`, doi)
	return scanSource(row)
}

// Search performs a full-text search over title, journal, and authors.
func (d *DB) Search(query string, limit int) ([]source.Record, error) {
	ftsQuery := prepareFTSQuery(query)

	rows, err := d.db.Query(`
		SELECT `+selectSourceFields+`
		FROM sources
		WHERE key IN (SELECT key FROM sources_fts WHERE sources_fts MATCH ?)
		LIMIT ?`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	return scanSources(rows)
}

// SearchField performs a search on a specific field.
func (d *DB) SearchField(field, value string, limit int) ([]source.Record, error) {
	var ftsQuery string

	switch field {
	case "author":
		ftsQuery = "authors_text:" + prepareFTSQuery(value)
	case "title":
		ftsQuery = "title:" + prepareFTSQuery(value)
	case "journal":
		ftsQuery = "journal:" + prepareFTSQuery(value)
	default:
		return nil, fmt.Errorf("unknown search field: %s", field)
	}

	rows, err := d.db.Query(`
		SELECT `+selectSourceFields+`
		FROM sources
		WHERE key IN (SELECT key FROM sources_fts WHERE sources_fts MATCH ?)
		LIMIT ?
	`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", field, err)
	}
	defer rows.Close()

	return scanSources(rows)
}

// ListAll returns all sources, optionally limited.
func (d *DB) ListAll(limit int) ([]source.Record, error) {
	query := `SELECT ` + selectSourceFields + ` FROM sources ORDER BY key`
	var args []interface{}

	if limit > 0 {
		query += " LIMIT ?"
		args = []interface{}{limit}
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sources: %w", err)
	}
	defer rows.Close()

	return scanSources(rows)
}

// Count returns the total number of sources.
func (d *DB) Count() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM sources").Scan(&count)
	return count, err
}

// scanner interface for sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSource(s scanner) (*source.Record, error) {
	var rec source.Record
	var key string
	var authorsJSON, citationsJSON sql.NullString
	var author, journal, volume, issue, pages, doi, url, kind sql.NullString
	var pubYear sql.NullInt64

	err := s.Scan(
		&key, &rec.Title, &authorsJSON, &author, &pubYear,
		&journal, &volume, &issue, &pages, &doi, &url, &kind,
		&citationsJSON,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	rec.Author = author.String
	rec.Journal = journal.String
	rec.Volume = volume.String
	rec.Issue = issue.String
	rec.Pages = pages.String
	rec.DOI = doi.String
	rec.URL = url.String
	rec.Kind = source.Kind(kind.String)

	if pubYear.Valid {
		rec.Year = int(pubYear.Int64)
	}

	if authorsJSON.Valid && authorsJSON.String != "" {
		if err := json.Unmarshal([]byte(authorsJSON.String), &rec.Authors); err != nil {
			return nil, fmt.Errorf("parsing authors JSON for %s: %w", key, err)
		}
	}
	if citationsJSON.Valid && citationsJSON.String != "" {
		if err := json.Unmarshal([]byte(citationsJSON.String), &rec.Citations); err != nil {
			return nil, fmt.Errorf("parsing citations JSON for %s: %w", key, err)
		}
	}

	return &rec, nil
}

func scanSources(rows *sql.Rows) ([]source.Record, error) {
	var recs []source.Record
	for rows.Next() {
		rec, err := scanSource(rows)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			recs = append(recs, *rec)
		}
	}
	return recs, rows.Err()
}

func nullableString(b []byte) sql.NullString {
	if len(b) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: string(b), Valid: true}
}

// nullableStringValue converts a string to sql.NullString, treating empty as NULL.
func nullableStringValue(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// prepareFTSQuery escapes special characters for FTS5 queries.
func prepareFTSQuery(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	// If query contains special chars, quote it
	if strings.ContainsAny(query, "\"*+-:(){}[]^~") {
		query = strings.ReplaceAll(query, "\"", "\"\"")
		return "\"" + query + "\""
	}

	return query
}
