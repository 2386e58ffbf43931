// Package llm abstracts the language model used for summaries, review
// consensus, and question answering.
//
// 提供两种实现: mock (确定性输出, 默认) 与 http (OpenAI 兼容接口).
package llm

import (
	"context"
	"fmt"
	"time"
)

// Provider generates natural-language text for the library features.
type Provider interface {
	// Name returns the provider identifier.
	Name() string

	// Summarize produces a short summary of book content.
	Summarize(ctx context.Context, content string) (string, error)

	// AnalyzeReviews produces a rolling consensus over review texts.
	AnalyzeReviews(ctx context.Context, reviews []string) (string, error)

	// Answer phrases an answer to question from the retrieved context.
	Answer(ctx context.Context, question, contextText string) (string, error)
}

// Config selects and configures the provider.
type Config struct {
	// Provider is "mock" or "http".
	Provider string

	// BaseURL is the OpenAI-compatible endpoint base, e.g.
	// "https://api.openai.com". Required for the http provider.
	BaseURL string

	// APIKey is the optional bearer token.
	APIKey string

	// Model is the model name sent to the http provider.
	Model string

	// Timeout bounds each http request.
	Timeout time.Duration
}

// New builds a provider from the configuration.
func New(cfg *Config) (Provider, error) {
	if cfg == nil || cfg.Provider == "" || cfg.Provider == "mock" {
		return NewMock(), nil
	}

	switch cfg.Provider {
	case "http":
		return newHTTPProvider(cfg)
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
}
