// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the research-aggregator pipeline.
// A SearchRecord is built once by a feed parser or the grounding extractor and
// is read-only from then on.
package types

import (
	"fmt"
	"strings"
)

// Placeholder and limit values shared by the parsers and the renderer.
const (
	// SummaryLimit is the number of characters kept before a summary is cut.
	SummaryLimit = 300

	// Ellipsis is appended to summaries longer than SummaryLimit.
	Ellipsis = "..."

	// WebSummary is the summary attached to every web search record; the
	// grounding metadata carries no snippet.
	WebSummary = "Google Search Result (Gemini Grounding)"

	// NoSummary replaces a missing feed summary.
	NoSummary = "No summary available."

	// NoTitle replaces a missing feed title.
	NoTitle = "Untitled"
)

// Source tags the provenance of a record.
type Source string

const (
	SourceWebSearch Source = "web_search"
	SourceArxiv     Source = "arxiv"
	SourceCinii     Source = "cinii"
)

// ParseSource converts a configuration value to a Source.
func ParseSource(s string) (Source, error) {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case SourceWebSearch:
		return SourceWebSearch, nil
	case SourceArxiv, "":
		return SourceArxiv, nil
	case SourceCinii:
		return SourceCinii, nil
	}
	return "", fmt.Errorf("unknown source %q (want arxiv or cinii)", s)
}

// Heading returns the report section heading for the source.
func (s Source) Heading() string {
	switch s {
	case SourceWebSearch:
		return "Web Search Results"
	case SourceArxiv:
		return "arXiv Papers"
	case SourceCinii:
		return "CiNii Research"
	}
	return string(s)
}

// Scholarly reports whether records from s carry authors instead of a bare URL.
func (s Source) Scholarly() bool {
	return s == SourceArxiv || s == SourceCinii
}

// SearchRecord is one normalized search or bibliographic result.
type SearchRecord struct {
	// Title is the display text of the result.
	Title string `json:"title" yaml:"title"`

	// URL is the absolute link to the result. It identifies web search
	// records within one query.
	URL string `json:"url" yaml:"url"`

	// Summary is free text, cut at SummaryLimit characters.
	Summary string `json:"summary" yaml:"summary"`

	// Authors holds comma-joined names. Empty for web search records.
	Authors string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Source identifies which client produced this record.
	Source Source `json:"source" yaml:"source"`
}

// IsScholarly reports whether the record came from a bibliographic source.
func (r SearchRecord) IsScholarly() bool { return r.Source.Scholarly() }
