package llm

import (
	"context"
	"strings"
)

const (
	snippetLimit = 240
	answerLimit  = 400
)

type mockProvider struct{}

// NewMock returns the deterministic offline provider.
func NewMock() Provider {
	return &mockProvider{}
}

func (m *mockProvider) Name() string { return "mock" }

// snippet trims the text, collapses newlines, and caps it at limit runes.
func snippet(text string, limit int) string {
	s := strings.ReplaceAll(strings.TrimSpace(text), "\n", " ")
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}

func (m *mockProvider) Summarize(_ context.Context, content string) (string, error) {
	return "Summary (mock): " + snippet(content, snippetLimit), nil
}

func (m *mockProvider) AnalyzeReviews(_ context.Context, reviews []string) (string, error) {
	return "Consensus (mock): " + snippet(strings.Join(reviews, " "), snippetLimit), nil
}

func (m *mockProvider) Answer(_ context.Context, _ string, contextText string) (string, error) {
	return "Based on the provided documents: " + truncateRunes(contextText, answerLimit), nil
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}
