package textutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luminalib/luminalib/internal/pkg/textutil"
)

func TestChunkTextEmptyInput(t *testing.T) {
	assert.Empty(t, textutil.ChunkText("", 500))
	assert.Empty(t, textutil.ChunkText("   ", 500))
	assert.Empty(t, textutil.ChunkText("\n\n\t\n", 500))
}

func TestChunkTextSingleWindow(t *testing.T) {
	chunks := textutil.ChunkText("hello world", 500)
	assert.Equal(t, []string{"hello world"}, chunks)
}

func TestChunkTextWindowing(t *testing.T) {
	text := strings.Repeat("a", 1200)
	chunks := textutil.ChunkText(text, 500)

	assert.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 500)
	assert.Len(t, chunks[1], 500)
	assert.Len(t, chunks[2], 200)

	// 拼接即可还原原文
	assert.Equal(t, text, strings.Join(chunks, ""))
}

func TestChunkTextRuneBoundaries(t *testing.T) {
	text := strings.Repeat("书", 10)
	chunks := textutil.ChunkText(text, 4)

	assert.Len(t, chunks, 3)
	assert.Equal(t, strings.Repeat("书", 4), chunks[0])
	assert.Equal(t, strings.Repeat("书", 2), chunks[2])
}

func TestChunkTextNewlineNormalization(t *testing.T) {
	chunks := textutil.ChunkText("line1\r\nline2\rline3", 500)
	assert.Equal(t, []string{"line1\nline2\nline3"}, chunks)
}

func TestChunkTextDropsBlankWindows(t *testing.T) {
	// 第二个窗口全是空白, 应被丢弃但不影响后续窗口
	text := "abcd" + strings.Repeat(" ", 4) + "efgh"
	chunks := textutil.ChunkText(text, 4)
	assert.Equal(t, []string{"abcd", "efgh"}, chunks)
}

func TestBuildEmbeddings(t *testing.T) {
	text := strings.Repeat("alpha beta gamma ", 40)
	chunks := textutil.BuildEmbeddings(text, 100)

	assert.NotEmpty(t, chunks)
	for i, c := range chunks {
		assert.Equal(t, i, c.Index)
		assert.NotEmpty(t, c.Content)
		assert.Len(t, c.Vector, 128)
	}
}
