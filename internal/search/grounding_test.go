// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/pdiddy/research-aggregator/pkg/types"
)

// --- fake Gemini client ---

type fakeGenerator struct {
	resp *genai.GenerateContentResponse
	err  error

	calls  int
	model  string
	prompt string
	config *genai.GenerateContentConfig
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.model = model
	f.config = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	return f.resp, f.err
}

func webChunk(uri, title string) *genai.GroundingChunk {
	return &genai.GroundingChunk{Web: &genai.GroundingChunkWeb{URI: uri, Title: title}}
}

func groundedResponse(chunks ...*genai.GroundingChunk) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{GroundingMetadata: &genai.GroundingMetadata{GroundingChunks: chunks}},
		},
	}
}

// --- ExtractGrounded ---

func TestExtractGrounded(t *testing.T) {
	resp := groundedResponse(
		webChunk("https://a.example/1", "Page One"),
		webChunk("https://b.example/2", "Page Two"),
	)

	records := ExtractGrounded(resp)
	require.Len(t, records, 2)
	assert.Equal(t, types.SearchRecord{
		Title:   "Page One",
		URL:     "https://a.example/1",
		Summary: types.WebSummary,
		Source:  types.SourceWebSearch,
	}, records[0])
	assert.Equal(t, "https://b.example/2", records[1].URL)
}

func TestExtractGroundedDedupByURL(t *testing.T) {
	resp := groundedResponse(
		webChunk("https://a.example/1", "First A"),
		webChunk("https://b.example/2", "Only B"),
		webChunk("https://a.example/1", "Second A"),
		webChunk("https://c.example/3", "Only C"),
		webChunk("https://b.example/2", "Only B again"),
	)

	records := ExtractGrounded(resp)
	require.Len(t, records, 3, "one record per unique URL")

	// Position of first appearance, value of last appearance.
	assert.Equal(t, "https://a.example/1", records[0].URL)
	assert.Equal(t, "Second A", records[0].Title)
	assert.Equal(t, "https://b.example/2", records[1].URL)
	assert.Equal(t, "Only B again", records[1].Title)
	assert.Equal(t, "https://c.example/3", records[2].URL)
}

func TestExtractGroundedSkipsIncompleteChunks(t *testing.T) {
	resp := groundedResponse(
		nil,
		&genai.GroundingChunk{},
		webChunk("", "No URI"),
		webChunk("https://a.example/no-title", ""),
		webChunk("https://a.example/ok", "Kept"),
	)

	records := ExtractGrounded(resp)
	require.Len(t, records, 1)
	assert.Equal(t, "Kept", records[0].Title)
}

func TestExtractGroundedEmptyResponses(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{"nil response", nil},
		{"no candidates", &genai.GenerateContentResponse{}},
		{"nil candidate", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{nil}}},
		{"no grounding metadata", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}},
		{"no chunks", groundedResponse()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, ExtractGrounded(tt.resp))
		})
	}
}

// --- WebSearcher ---

func TestWebSearcherSearch(t *testing.T) {
	gen := &fakeGenerator{resp: groundedResponse(
		webChunk("https://a.example/1", "Page One"),
		webChunk("https://a.example/1", "Page One (dup)"),
		webChunk("https://b.example/2", "Page Two"),
	)}
	s := &WebSearcher{Models: gen}

	res := s.Search(context.Background(), "quantum computing")
	require.False(t, res.Failed())
	assert.Len(t, res.Records, 2)
	assert.Equal(t, types.SourceWebSearch, res.Source)

	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, DefaultModel, gen.model)
	assert.Equal(t, "Find 5 high-quality, relevant web pages or PDFs regarding: 'quantum computing'. Return the results as a list.", gen.prompt)
	require.NotNil(t, gen.config)
	require.Len(t, gen.config.Tools, 1)
	assert.NotNil(t, gen.config.Tools[0].GoogleSearch)
}

func TestWebSearcherCustomModel(t *testing.T) {
	gen := &fakeGenerator{resp: groundedResponse()}
	s := &WebSearcher{Models: gen, Model: "gemini-2.5-flash"}

	res := s.Search(context.Background(), "topic")
	assert.False(t, res.Failed())
	assert.Empty(t, res.Records)
	assert.Equal(t, "gemini-2.5-flash", gen.model)
}

func TestWebSearcherAPIError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	s := &WebSearcher{Models: gen}

	res := s.Search(context.Background(), "topic")
	require.True(t, res.Failed())
	assert.Empty(t, res.Records)
	assert.Contains(t, res.Err.Error(), "quota exceeded")
}

func TestWebSearcherWithoutClient(t *testing.T) {
	res := (&WebSearcher{}).Search(context.Background(), "topic")
	assert.True(t, res.Failed())
}

func TestNewWebSearcherRequiresKey(t *testing.T) {
	_, err := NewWebSearcher(context.Background(), "", DefaultModel)
	assert.Error(t, err)
}
