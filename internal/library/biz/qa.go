package biz

import (
	"context"
	"sort"
	"strings"

	"github.com/kart-io/logger"

	"github.com/luminalib/luminalib/internal/library/store"
	"github.com/luminalib/luminalib/internal/model"
	"github.com/luminalib/luminalib/internal/pkg/embedding"
	"github.com/luminalib/luminalib/pkg/errors"
	"github.com/luminalib/luminalib/pkg/llm"
)

// DefaultTopK is the default number of chunks retrieved per question.
const DefaultTopK = 4

// Excerpt is a retrieved chunk with its relevance score.
type Excerpt struct {
	DocumentID uint64  `json:"document_id"`
	ChunkIndex int     `json:"chunk_index"`
	Content    string  `json:"content"`
	Score      float64 `json:"score"`
}

// AnswerResult is the QA response payload.
type AnswerResult struct {
	Answer   string    `json:"answer"`
	Excerpts []Excerpt `json:"excerpts"`
}

// QAService answers questions over the ingested corpus.
type QAService struct {
	store    store.Factory
	provider llm.Provider
	cache    *AnswerCache
	topK     int
}

// NewQAService creates the QA service. cache may be nil.
func NewQAService(s store.Factory, provider llm.Provider, cache *AnswerCache, topK int) *QAService {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &QAService{store: s, provider: provider, cache: cache, topK: topK}
}

// SelectRelevantChunks scores every chunk against the question and
// returns the top limit by descending score. 稳定排序保证同分时的
// 确定性顺序.
func (s *QAService) SelectRelevantChunks(question string, chunks []*model.DocumentChunk, limit int) []Excerpt {
	qv := embedding.Embed(question)

	scored := make([]Excerpt, 0, len(chunks))
	for _, c := range chunks {
		scored = append(scored, Excerpt{
			DocumentID: c.DocumentID,
			ChunkIndex: c.ChunkIndex,
			Content:    c.Content,
			Score:      embedding.Similarity(qv, c.Embedding),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// Answer retrieves the most relevant chunks and phrases an answer
// through the LLM provider.
func (s *QAService) Answer(ctx context.Context, question string) (*AnswerResult, error) {
	if s.cache != nil {
		if cached := s.cache.Get(ctx, question); cached != nil {
			return cached, nil
		}
	}

	chunks, err := s.store.Chunks().ListAll(ctx)
	if err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}
	if len(chunks) == 0 {
		return nil, errors.ErrCorpusEmpty
	}

	excerpts := s.SelectRelevantChunks(question, chunks, s.topK)

	contexts := make([]string, 0, len(excerpts))
	for _, e := range excerpts {
		contexts = append(contexts, e.Content)
	}
	contextText := strings.Join(contexts, "\n\n")

	answer, err := s.provider.Answer(ctx, question, contextText)
	if err != nil {
		return nil, errors.ErrLLMProvider.WithCause(err)
	}

	result := &AnswerResult{Answer: answer, Excerpts: excerpts}

	if s.cache != nil {
		s.cache.Set(ctx, question, result)
	}

	logger.Infow("Question answered", "excerpts", len(excerpts))
	return result, nil
}
