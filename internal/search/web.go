// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/pdiddy/research-aggregator/pkg/types"
)

// DefaultModel is the Gemini model used for grounded web search.
const DefaultModel = "gemini-2.0-flash"

const webPromptFormat = "Find 5 high-quality, relevant web pages or PDFs regarding: '%s'. Return the results as a list."

// ContentGenerator is the slice of the Gemini SDK the web searcher needs.
// *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// WebSearcher asks a Gemini model with the Google Search tool for pages about
// the topic and turns the response's grounding metadata into records.
type WebSearcher struct {
	Models ContentGenerator
	Model  string
}

// NewWebSearcher creates a Gemini client for apiKey and wraps it.
func NewWebSearcher(ctx context.Context, apiKey, model string) (*WebSearcher, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	return &WebSearcher{Models: client.Models, Model: model}, nil
}

// Name returns the searcher identifier.
func (s *WebSearcher) Name() string { return string(types.SourceWebSearch) }

// Search sends the fixed prompt with the Google Search tool enabled.
func (s *WebSearcher) Search(ctx context.Context, topic string) Result {
	if strings.TrimSpace(topic) == "" {
		return failed(types.SourceWebSearch, fmt.Errorf("empty web search query"))
	}
	if s.Models == nil {
		return failed(types.SourceWebSearch, fmt.Errorf("no Gemini client configured"))
	}

	model := s.Model
	if model == "" {
		model = DefaultModel
	}

	resp, err := s.Models.GenerateContent(ctx, model, genai.Text(webPrompt(topic)), webSearchConfig())
	if err != nil {
		return failed(types.SourceWebSearch, fmt.Errorf("Gemini grounded search: %w", err))
	}
	return ok(types.SourceWebSearch, ExtractGrounded(resp))
}

func webPrompt(topic string) string {
	return fmt.Sprintf(webPromptFormat, topic)
}

func webSearchConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}
}
