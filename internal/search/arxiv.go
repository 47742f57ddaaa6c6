// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/research-aggregator/internal/feed"
	"github.com/pdiddy/research-aggregator/internal/httputil"
	"github.com/pdiddy/research-aggregator/pkg/types"
)

// arxivAPIBase is the arXiv export endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// ArxivSearcher queries the arXiv export API for the newest matching papers.
type ArxivSearcher struct {
	Client *http.Client
	Config types.ScholarConfig
}

// Name returns the searcher identifier.
func (s *ArxivSearcher) Name() string { return string(types.SourceArxiv) }

// Search waits the configured delay, queries arXiv and parses the Atom feed.
func (s *ArxivSearcher) Search(ctx context.Context, topic string) Result {
	q := buildArxivQuery(topic)
	if q == "" {
		return failed(types.SourceArxiv, fmt.Errorf("empty arXiv query"))
	}

	u := fmt.Sprintf("%s?search_query=%s&start=0&max_results=%d&sortBy=submittedDate&sortOrder=descending",
		endpoint(s.Config, arxivAPIBase), q, maxResults(s.Config))

	resp, err := httputil.GetAfterDelay(ctx, s.Client, u, userAgent(s.Config), s.Config.RequestDelay)
	if err != nil {
		return failed(types.SourceArxiv, fmt.Errorf("arXiv API request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return failed(types.SourceArxiv, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failed(types.SourceArxiv, fmt.Errorf("reading arXiv response: %w", err))
	}

	records, err := feed.Parse(body, types.SourceArxiv)
	if err != nil {
		return failed(types.SourceArxiv, fmt.Errorf("parsing arXiv response: %w", err))
	}
	return ok(types.SourceArxiv, records)
}

// buildArxivQuery constructs the search_query parameter: every word of the
// topic is escaped and the words are joined with "+" under the all: field.
func buildArxivQuery(topic string) string {
	terms := strings.Fields(topic)
	if len(terms) == 0 {
		return ""
	}
	for i, t := range terms {
		terms[i] = url.QueryEscape(t)
	}
	return "all:" + strings.Join(terms, "+")
}
