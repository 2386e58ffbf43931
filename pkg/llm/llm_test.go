package llm_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminalib/luminalib/pkg/llm"
)

func TestMockSummarize(t *testing.T) {
	p := llm.NewMock()

	out, err := p.Summarize(context.Background(), "  A tale of two\ncities.  ")
	require.NoError(t, err)
	assert.Equal(t, "Summary (mock): A tale of two cities.", out)
}

func TestMockSummarize_Truncation(t *testing.T) {
	p := llm.NewMock()

	out, err := p.Summarize(context.Background(), strings.Repeat("x", 1000))
	require.NoError(t, err)
	assert.Equal(t, "Summary (mock): "+strings.Repeat("x", 240), out)
}

func TestMockAnalyzeReviews(t *testing.T) {
	p := llm.NewMock()

	out, err := p.AnalyzeReviews(context.Background(), []string{"Loved it", "Too long"})
	require.NoError(t, err)
	assert.Equal(t, "Consensus (mock): Loved it Too long", out)
}

func TestMockAnswer(t *testing.T) {
	p := llm.NewMock()

	ctxText := strings.Repeat("c", 500)
	out, err := p.Answer(context.Background(), "what is this", ctxText)
	require.NoError(t, err)
	assert.Equal(t, "Based on the provided documents: "+strings.Repeat("c", 400), out)
}

func TestMockDeterminism(t *testing.T) {
	p := llm.NewMock()

	a, _ := p.Summarize(context.Background(), "same input")
	b, _ := p.Summarize(context.Background(), "same input")
	assert.Equal(t, a, b)
}

func TestHTTPProvider(t *testing.T) {
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  - point one\n"}}]}`))
	}))
	defer server.Close()

	p, err := llm.New(&llm.Config{Provider: "http", BaseURL: server.URL, APIKey: "sk-test"})
	require.NoError(t, err)
	assert.Equal(t, "http", p.Name())

	out, err := p.Summarize(context.Background(), "content")
	require.NoError(t, err)
	assert.Equal(t, "- point one", out)
	assert.Equal(t, "/v1/chat/completions", gotPath)
	assert.Equal(t, "Bearer sk-test", gotAuth)
}

func TestHTTPProvider_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	p, err := llm.New(&llm.Config{Provider: "http", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = p.Summarize(context.Background(), "content")
	assert.Error(t, err)
}

func TestNew_DefaultsToMock(t *testing.T) {
	p, err := llm.New(nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.Name())

	p, err = llm.New(&llm.Config{Provider: ""})
	require.NoError(t, err)
	assert.Equal(t, "mock", p.Name())
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := llm.New(&llm.Config{Provider: "oracle"})
	assert.Error(t, err)
}
