// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"google.golang.org/genai"

	"github.com/pdiddy/research-aggregator/pkg/types"
)

// ExtractGrounded converts the grounding chunks of the first candidate into
// web search records. Chunks without a web URI or title are skipped.
// Duplicate URLs collapse into one record: it keeps the position of the first
// occurrence and the value of the last.
func ExtractGrounded(resp *genai.GenerateContentResponse) []types.SearchRecord {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil
	}
	gm := resp.Candidates[0].GroundingMetadata
	if gm == nil {
		return nil
	}

	var records []types.SearchRecord
	for _, chunk := range gm.GroundingChunks {
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" || chunk.Web.Title == "" {
			continue
		}
		records = append(records, types.SearchRecord{
			Title:   chunk.Web.Title,
			URL:     chunk.Web.URI,
			Summary: types.WebSummary,
			Source:  types.SourceWebSearch,
		})
	}
	return dedupeByURL(records)
}

// dedupeByURL inserts records in order into an insertion-ordered map keyed by
// URL; a repeated URL overwrites the stored value in place.
func dedupeByURL(records []types.SearchRecord) []types.SearchRecord {
	byURL := orderedmap.New[string, types.SearchRecord]()
	for _, r := range records {
		byURL.Set(r.URL, r)
	}

	out := make([]types.SearchRecord, 0, byURL.Len())
	for pair := byURL.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}
