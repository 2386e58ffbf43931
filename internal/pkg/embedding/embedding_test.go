package embedding_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luminalib/luminalib/internal/pkg/embedding"
)

func vectorNorm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

func TestEmbedDimensionAndNorm(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantNorm float64
	}{
		{"普通文本", "the quick brown fox jumps over the lazy dog", 1.0},
		{"单词", "hello", 1.0},
		{"中文文本", "图书管理系统", 1.0},
		{"重音字符", "café au lait", 1.0},
		{"空文本", "", 0.0},
		{"纯标点", "!!! ... ???", 0.0},
		{"空白", "   \t\n  ", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vec := embedding.Embed(tt.text)
			assert.Len(t, vec, embedding.Dimension)
			assert.InDelta(t, tt.wantNorm, vectorNorm(vec), 1e-9)
		})
	}
}

func TestEmbedDeterminism(t *testing.T) {
	text := "FastAPI is a modern, fast web framework."
	a := embedding.Embed(text)
	b := embedding.Embed(text)
	assert.Equal(t, a, b)
}

func TestEmbedCaseInsensitive(t *testing.T) {
	assert.Equal(t, embedding.Embed("Hello World"), embedding.Embed("hello world"))
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"混合大小写与标点", "Hello, World! 42 times.", []string{"hello", "world", "42", "times"}},
		{"下划线保留", "snake_case token", []string{"snake_case", "token"}},
		{"中文不丢失", "图书管理系统", []string{"图书管理系统"}},
		{"重音保留", "café", []string{"café"}},
		{"中英混排", "FastAPI 框架", []string{"fastapi", "框架"}},
		{"空输入", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, embedding.Tokenize(tt.text))
		})
	}
}

func TestSimilarity(t *testing.T) {
	t.Run("相同文本相似度为1", func(t *testing.T) {
		v := embedding.Embed("retrieval augmented generation")
		assert.InDelta(t, 1.0, embedding.Similarity(v, v), 1e-9)
	})

	t.Run("相关文本高于无关文本", func(t *testing.T) {
		question := embedding.Embed("what is fastapi")
		related := embedding.Embed("FastAPI is a modern, fast web framework.")
		unrelated := embedding.Embed("bananas grow in tropical climates")
		assert.Greater(t, embedding.Similarity(question, related), embedding.Similarity(question, unrelated))
	})

	t.Run("非ASCII文本可检索", func(t *testing.T) {
		question := embedding.Embed("图书管理系统")
		same := embedding.Embed("图书管理系统")
		assert.InDelta(t, 1.0, embedding.Similarity(question, same), 1e-9)
	})

	t.Run("空向量返回0", func(t *testing.T) {
		v := embedding.Embed("hello")
		assert.Equal(t, 0.0, embedding.Similarity(nil, v))
		assert.Equal(t, 0.0, embedding.Similarity(v, []float64{}))
	})

	t.Run("零向量点积为0", func(t *testing.T) {
		zero := embedding.Embed("")
		v := embedding.Embed("hello")
		assert.Equal(t, 0.0, embedding.Similarity(zero, v))
	})
}
