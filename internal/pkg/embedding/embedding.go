// Package embedding implements a deterministic hashed bag-of-words
// embedder. 无外部模型依赖, 同一文本永远产生同一向量.
package embedding

import (
	"encoding/binary"
	"math"
	"regexp"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Dimension is the fixed embedding vector size.
const Dimension = 128

// tokenPattern matches Unicode word tokens. Go 的 `\w` 仅匹配 ASCII,
// 这里显式包含所有字母与数字, 中文等非 ASCII 文本才能正常分词.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Tokenize splits text into lowercased word tokens.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// bucket maps a token to its vector index via a 4-byte blake2b digest.
func bucket(token string) int {
	h, _ := blake2b.New(4, nil)
	_, _ = h.Write([]byte(token))
	sum := h.Sum(nil)
	return int(binary.BigEndian.Uint32(sum) % Dimension)
}

// Embed produces the L2-normalized hashed bag-of-words vector for text.
// Empty or token-free input yields the all-zero vector.
func Embed(text string) []float64 {
	vec := make([]float64, Dimension)
	for _, token := range Tokenize(text) {
		vec[bucket(token)] += 1.0
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm == 0 {
		return vec
	}

	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// Similarity returns the dot product of two vectors.
// 向量已归一化, 点积即余弦相似度. 任一向量为空时返回 0.
func Similarity(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	return dot
}
