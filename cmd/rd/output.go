package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/refdeck/refdeck/internal/identity"
	"github.com/refdeck/refdeck/internal/source"
)

// Constants for output formatting.
const (
	DefaultSearchLimit = 50 // Default limit for search/list commands

	ListTitleMaxLen   = 50 // Used in list command output
	ImportTitleMaxLen = 60 // Used in import command output
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError writes an error message to stderr and returns the exit code.
func outputError(code int, format string, args ...interface{}) int {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	return code
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SourceResponse pairs a record with its identity key for JSON output.
type SourceResponse struct {
	Key string `json:"key"`
	source.Record
}

// toSourceResponses attaches identity keys to records for output.
func toSourceResponses(recs []source.Record) []SourceResponse {
	out := make([]SourceResponse, len(recs))
	for i := range recs {
		out[i] = SourceResponse{Key: identity.KeyOf(&recs[i]), Record: recs[i]}
	}
	return out
}

// printSourcesHuman prints a one-line-per-source listing.
func printSourcesHuman(recs []source.Record) {
	for i := range recs {
		rec := &recs[i]
		fmt.Printf("  %-40s %s (%s)\n",
			truncateString(identity.KeyOf(rec), 40),
			truncateString(rec.Title, ListTitleMaxLen),
			rec.YearLabel())
	}
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
