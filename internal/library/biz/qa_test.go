package biz_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminalib/luminalib/internal/model"
	"github.com/luminalib/luminalib/internal/pkg/embedding"
	"github.com/luminalib/luminalib/pkg/errors"
)

func TestAnswer_EmptyCorpus(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.biz.QA().Answer(context.Background(), "anything")
	assert.ErrorIs(t, err, errors.ErrCorpusEmpty)
	assert.Equal(t, "No ingested documents available", errors.FromError(err).MessageEN)
}

func TestAnswer_RetrievesRelevantChunk(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.signup(t, "qa@example.com")
	doc, err := env.biz.Documents().Create(ctx, user.ID, "Web", "FastAPI is a modern, fast web framework.")
	require.NoError(t, err)
	job, err := env.biz.Ingest().Submit(ctx, user.ID, doc.ID)
	require.NoError(t, err)
	waitForJob(t, env, job.ID)

	other, err := env.biz.Documents().Create(ctx, user.ID, "Fruit", "Bananas grow in tropical climates and ripen quickly.")
	require.NoError(t, err)
	job2, err := env.biz.Ingest().Submit(ctx, user.ID, other.ID)
	require.NoError(t, err)
	waitForJob(t, env, job2.ID)

	result, err := env.biz.QA().Answer(ctx, "What is FastAPI?")
	require.NoError(t, err)

	require.NotEmpty(t, result.Excerpts)
	assert.Contains(t, result.Excerpts[0].Content, "FastAPI")
	assert.True(t, strings.HasPrefix(result.Answer, "Based on the provided documents: "))
	assert.Contains(t, result.Answer, "FastAPI")
}

func TestSelectRelevantChunks(t *testing.T) {
	env := newTestEnv(t)

	mk := func(docID uint64, idx int, content string) *model.DocumentChunk {
		return &model.DocumentChunk{
			DocumentID: docID,
			ChunkIndex: idx,
			Content:    content,
			Embedding:  model.Vector(embedding.Embed(content)),
		}
	}
	chunks := []*model.DocumentChunk{
		mk(1, 0, "cooking pasta with tomato sauce"),
		mk(1, 1, "FastAPI is a modern, fast web framework."),
		mk(2, 0, "gardening tips for spring"),
		mk(2, 1, "web frameworks make building APIs fast"),
		mk(3, 0, "medieval castle architecture"),
	}

	selected := env.biz.QA().SelectRelevantChunks("fast web framework", chunks, 4)

	assert.Len(t, selected, 4)
	for i := 1; i < len(selected); i++ {
		assert.GreaterOrEqual(t, selected[i-1].Score, selected[i].Score)
	}
	assert.Contains(t, selected[0].Content, "framework")
}

func TestSelectRelevantChunks_FewerThanLimit(t *testing.T) {
	env := newTestEnv(t)

	chunks := []*model.DocumentChunk{
		{DocumentID: 1, ChunkIndex: 0, Content: "only one", Embedding: model.Vector(embedding.Embed("only one"))},
	}
	selected := env.biz.QA().SelectRelevantChunks("question", chunks, 4)
	assert.Len(t, selected, 1)
}
