// Package textutil provides text chunking helpers for ingestion.
package textutil

import (
	"strings"

	"github.com/luminalib/luminalib/internal/pkg/embedding"
)

// DefaultChunkSize is the default chunk window in runes.
const DefaultChunkSize = 500

// NormalizeNewlines converts CRLF and bare CR line endings to LF.
func NormalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// ChunkText splits text into contiguous non-overlapping rune windows.
// 窗口去除首尾空白后为空的丢弃, 其余保留原文并维持顺序.
func ChunkText(text string, size int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}

	runes := []rune(NormalizeNewlines(text))
	var chunks []string
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		window := string(runes[start:end])
		if strings.TrimSpace(window) == "" {
			continue
		}
		chunks = append(chunks, window)
	}
	return chunks
}

// Chunk is a text window paired with its embedding vector.
type Chunk struct {
	Index   int
	Content string
	Vector  []float64
}

// BuildEmbeddings chunks text and embeds each window.
func BuildEmbeddings(text string, size int) []Chunk {
	pieces := ChunkText(text, size)
	chunks := make([]Chunk, 0, len(pieces))
	for i, content := range pieces {
		chunks = append(chunks, Chunk{
			Index:   i,
			Content: content,
			Vector:  embedding.Embed(content),
		})
	}
	return chunks
}
