// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package feed parses Atom (arXiv) and RSS 1.0 (CiNii) payloads into SearchRecords.
package feed

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mmcdole/gofeed"

	"github.com/pdiddy/research-aggregator/pkg/types"
)

// Parse decodes an Atom or RSS document and returns one record per entry,
// in document order. A malformed document yields an error and no records.
func Parse(data []byte, source types.Source) ([]types.SearchRecord, error) {
	f, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	records := make([]types.SearchRecord, 0, len(f.Items))
	for _, item := range f.Items {
		if item == nil {
			continue
		}
		records = append(records, toRecord(item, source))
	}
	return records, nil
}

func toRecord(item *gofeed.Item, source types.Source) types.SearchRecord {
	title := NormalizeText(item.Title)
	if title == "" {
		title = types.NoTitle
	}

	summary := NormalizeText(item.Description)
	if summary == "" {
		summary = types.NoSummary
	}

	return types.SearchRecord{
		Title:   title,
		URL:     primaryLink(item),
		Summary: Truncate(summary),
		Authors: strings.Join(authorNames(item), ", "),
		Source:  source,
	}
}

// primaryLink prefers an absolute entry identifier (the arXiv abstract page)
// over the item link.
func primaryLink(item *gofeed.Item) string {
	id := strings.TrimSpace(item.GUID)
	if strings.HasPrefix(id, "http://") || strings.HasPrefix(id, "https://") {
		return id
	}
	return strings.TrimSpace(item.Link)
}

// authorNames collects every dc:creator of an RSS 1.0 item, or the Atom
// authors otherwise. gofeed's own RSS translation keeps only the first creator.
func authorNames(item *gofeed.Item) []string {
	var names []string
	if item.DublinCoreExt != nil && len(item.DublinCoreExt.Creator) > 0 {
		for _, c := range item.DublinCoreExt.Creator {
			if name := strings.TrimSpace(c); name != "" {
				names = append(names, name)
			}
		}
		return names
	}
	for _, p := range item.Authors {
		if p == nil {
			continue
		}
		if name := strings.TrimSpace(p.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// NormalizeText replaces newlines with spaces and trims the result.
func NormalizeText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
}

// Truncate cuts s to types.SummaryLimit characters and appends types.Ellipsis
// when it is longer; shorter text is returned unchanged.
func Truncate(s string) string {
	if utf8.RuneCountInString(s) <= types.SummaryLimit {
		return s
	}
	return string([]rune(s)[:types.SummaryLimit]) + types.Ellipsis
}
