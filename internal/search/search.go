// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries the web-search and scholarly sources for a topic and
// returns normalized records. Every client absorbs its own failures: the
// caller receives a Result that either carries records or the reason the
// call failed, never both.
package search

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pdiddy/research-aggregator/pkg/types"
)

const (
	defaultMaxResults = 5
	defaultUserAgent  = "research-aggregator/0.1"
)

// Searcher queries a single source. Each source (web search, arXiv, CiNii)
// implements this interface.
type Searcher interface {
	Name() string
	Search(ctx context.Context, topic string) Result
}

// Result is the outcome of one Searcher call.
type Result struct {
	Source  types.Source
	Records []types.SearchRecord
	Err     error
}

// Failed reports whether the call failed. A successful call may still carry
// zero records.
func (r Result) Failed() bool { return r.Err != nil }

// ok builds a successful Result.
func ok(source types.Source, records []types.SearchRecord) Result {
	return Result{Source: source, Records: records}
}

// failed builds a failed Result with no records.
func failed(source types.Source, err error) Result {
	return Result{Source: source, Err: err}
}

// NewScholar returns the scholarly Searcher for source.
func NewScholar(source types.Source, client *http.Client, cfg types.ScholarConfig) (Searcher, error) {
	switch source {
	case types.SourceArxiv:
		return &ArxivSearcher{Client: client, Config: cfg}, nil
	case types.SourceCinii:
		return &CiniiSearcher{Client: client, Config: cfg}, nil
	}
	return nil, fmt.Errorf("no scholarly client for source %q", source)
}

func maxResults(cfg types.ScholarConfig) int {
	if cfg.MaxResults <= 0 {
		return defaultMaxResults
	}
	return cfg.MaxResults
}

func endpoint(cfg types.ScholarConfig, fallback string) string {
	if cfg.Endpoint != "" {
		return cfg.Endpoint
	}
	return fallback
}

func userAgent(cfg types.ScholarConfig) string {
	if cfg.UserAgent == "" {
		return defaultUserAgent
	}
	return cfg.UserAgent
}
