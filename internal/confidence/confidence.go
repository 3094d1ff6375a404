// Package confidence carries the citation-confidence analysis contract.
//
// The scores are computed by an external service; this package only defines
// the stable shape consumers render from. Nothing here computes or adjusts a
// score.
package confidence

import (
	"encoding/json"
	"fmt"
)

// Status classifies an analysis result.
type Status string

const (
	StatusStrong Status = "strong"
	StatusGood   Status = "good"
	StatusWeak   Status = "weak"
	StatusPoor   Status = "poor"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	switch s {
	case StatusStrong, StatusGood, StatusWeak, StatusPoor:
		return true
	}
	return false
}

// Score is the overall confidence result with its four sub-scores, each in
// the 0-100 range.
type Score struct {
	Overall        int      `json:"overall"`
	RecencyScore   int      `json:"recencyScore"`
	CoverageScore  int      `json:"coverageScore"`
	QualityScore   int      `json:"qualityScore"`
	DiversityScore int      `json:"diversityScore"`
	Status         Status   `json:"status"`
	Warnings       []string `json:"warnings"`
	Suggestions    []string `json:"suggestions"`
}

// Breakdown buckets citations by recency.
type Breakdown struct {
	Recent     int `json:"recent"`
	Acceptable int `json:"acceptable"`
	Dated      int `json:"dated"`
	Outdated   int `json:"outdated"`
}

// Analysis is the full confidence analysis for one project.
type Analysis struct {
	TotalCitations    int       `json:"totalCitations"`
	OverallConfidence Score     `json:"overallConfidence"`
	CitationBreakdown Breakdown `json:"citationBreakdown"`
}

// Parse decodes an analysis payload from the external scoring service.
func Parse(data []byte) (*Analysis, error) {
	var a Analysis
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing confidence analysis: %w", err)
	}
	if a.OverallConfidence.Status != "" && !a.OverallConfidence.Status.Valid() {
		return nil, fmt.Errorf("unknown confidence status: %s", a.OverallConfidence.Status)
	}
	return &a, nil
}
