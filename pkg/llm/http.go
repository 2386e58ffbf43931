package llm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/luminalib/luminalib/internal/pkg/jsonutil"
)

const (
	summarySystemPrompt   = "You summarize a book in 5 concise bullet points."
	consensusSystemPrompt = "You produce a rolling consensus of reader sentiment in 3 bullet points."
	answerSystemPrompt    = "You answer questions using provided context only."
)

type httpProvider struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

func newHTTPProvider(cfg *Config) (Provider, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("llm: http provider requires a base URL")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &httpProvider{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

func (p *httpProvider) Name() string { return "http" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// complete calls the chat completions endpoint with one system and one
// user message.
func (p *httpProvider) complete(ctx context.Context, system, user string) (string, error) {
	payload, err := jsonutil.Marshal(chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.2,
		MaxTokens:   300,
	})
	if err != nil {
		return "", fmt.Errorf("llm: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("llm: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("llm: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("llm: provider returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := jsonutil.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("llm: decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("llm: provider returned no choices")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

func (p *httpProvider) Summarize(ctx context.Context, content string) (string, error) {
	return p.complete(ctx, summarySystemPrompt, content)
}

func (p *httpProvider) AnalyzeReviews(ctx context.Context, reviews []string) (string, error) {
	return p.complete(ctx, consensusSystemPrompt, strings.Join(reviews, "\n"))
}

func (p *httpProvider) Answer(ctx context.Context, question, contextText string) (string, error) {
	user := fmt.Sprintf("Context:\n%s\n\nQuestion: %s", contextText, question)
	return p.complete(ctx, answerSystemPrompt, user)
}
