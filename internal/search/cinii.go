// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/research-aggregator/internal/feed"
	"github.com/pdiddy/research-aggregator/internal/httputil"
	"github.com/pdiddy/research-aggregator/pkg/types"
)

// ciniiAPIBase is the CiNii Research OpenSearch endpoint. Declared as a var
// so tests can substitute an httptest server.
var ciniiAPIBase = "https://cir.nii.ac.jp/opensearch/all"

// CiniiSearcher queries CiNii Research for bibliographic records in RSS form.
type CiniiSearcher struct {
	Client *http.Client
	Config types.ScholarConfig
}

// Name returns the searcher identifier.
func (s *CiniiSearcher) Name() string { return string(types.SourceCinii) }

// Search waits the configured delay, queries CiNii and parses the RSS 1.0 feed.
func (s *CiniiSearcher) Search(ctx context.Context, topic string) Result {
	if strings.TrimSpace(topic) == "" {
		return failed(types.SourceCinii, fmt.Errorf("empty CiNii query"))
	}

	resp, err := httputil.GetAfterDelay(ctx, s.Client, buildCiniiURL(topic, s.Config), userAgent(s.Config), s.Config.RequestDelay)
	if err != nil {
		return failed(types.SourceCinii, fmt.Errorf("CiNii API request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return failed(types.SourceCinii, fmt.Errorf("CiNii API returned HTTP %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failed(types.SourceCinii, fmt.Errorf("reading CiNii response: %w", err))
	}

	records, err := feed.Parse(body, types.SourceCinii)
	if err != nil {
		return failed(types.SourceCinii, fmt.Errorf("parsing CiNii response: %w", err))
	}
	return ok(types.SourceCinii, records)
}

func buildCiniiURL(topic string, cfg types.ScholarConfig) string {
	params := url.Values{}
	params.Set("q", topic)
	params.Set("count", strconv.Itoa(maxResults(cfg)))
	params.Set("format", "rss")
	if cfg.CiniiAppID != "" {
		params.Set("appid", cfg.CiniiAppID)
	}
	return endpoint(cfg, ciniiAPIBase) + "?" + params.Encode()
}
