package biz

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/kart-io/logger"
	"gorm.io/gorm"

	"github.com/luminalib/luminalib/internal/library/store"
	"github.com/luminalib/luminalib/internal/model"
	"github.com/luminalib/luminalib/internal/pkg/embedding"
	"github.com/luminalib/luminalib/internal/pkg/jsonutil"
	"github.com/luminalib/luminalib/internal/pkg/tfidf"
	"github.com/luminalib/luminalib/pkg/errors"
	recopts "github.com/luminalib/luminalib/pkg/options/recommender"
)

// Trained model artifact file names. The three files are always
// written together and read together.
const (
	vectorizerFile = "vectorizer.json"
	matrixFile     = "vectors.json"
	mappingFile    = "mapping.json"
)

// preferredGenreBonus is added to a book's popularity score when its
// genre is in the caller's preferred set.
const preferredGenreBonus = 5.0

// Recommendation pairs a book with its score.
type Recommendation struct {
	Book  *model.Book `json:"book"`
	Score float64     `json:"score"`
}

// TrainReport describes a training run.
type TrainReport struct {
	Status    string `json:"status"`
	Documents int    `json:"documents,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

// RecommendService produces book recommendations.
type RecommendService struct {
	store store.Factory
	users *UserService
	opts  *recopts.Options
}

// NewRecommendService creates the recommendation service.
func NewRecommendService(s store.Factory, users *UserService, opts *recopts.Options) *RecommendService {
	return &RecommendService{store: s, users: users, opts: opts}
}

func (s *RecommendService) limitOrDefault(limit int) int {
	if limit <= 0 {
		return s.opts.DefaultLimit
	}
	return limit
}

// bookText is the content used for similarity: the summary when
// present, otherwise the title.
func bookText(b *model.Book) string {
	if strings.TrimSpace(b.Summary) != "" {
		return b.Summary
	}
	return b.Title
}

// RecommendForUser ranks books by genre popularity, boosting the
// caller's preferred genres.
func (s *RecommendService) RecommendForUser(ctx context.Context, userID uint64, limit int) ([]Recommendation, error) {
	limit = s.limitOrDefault(limit)

	books, err := s.store.Books().ListAll(ctx)
	if err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}

	counts := make(map[string]int)
	for _, b := range books {
		counts[strings.ToLower(b.Genre)]++
	}

	preferred := make(map[string]struct{})
	genres, err := s.users.PreferredGenres(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, g := range genres {
		preferred[strings.ToLower(g)] = struct{}{}
	}

	recs := make([]Recommendation, 0, len(books))
	for _, b := range books {
		genre := strings.ToLower(b.Genre)
		score := float64(counts[genre])
		if _, ok := preferred[genre]; ok {
			score += preferredGenreBonus
		}
		recs = append(recs, Recommendation{Book: b, Score: score})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

// RecommendSimilar ranks other books by embedding similarity of their
// summaries (or titles) to the target book.
func (s *RecommendService) RecommendSimilar(ctx context.Context, bookID uint64, limit int) ([]Recommendation, error) {
	limit = s.limitOrDefault(limit)

	target, err := s.store.Books().Get(ctx, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrBookNotFound
		}
		return nil, errors.ErrDatabase.WithCause(err)
	}

	books, err := s.store.Books().ListAll(ctx)
	if err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}

	tv := embedding.Embed(bookText(target))

	recs := make([]Recommendation, 0, len(books))
	for _, b := range books {
		if b.ID == bookID {
			continue
		}
		recs = append(recs, Recommendation{
			Book:  b,
			Score: embedding.Similarity(tv, embedding.Embed(bookText(b))),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

// Recommend uses the trained TF-IDF model when available, falling back
// to the on-the-fly similarity path on any miss. 回退永不报错.
func (s *RecommendService) Recommend(ctx context.Context, bookID uint64, limit int) ([]Recommendation, error) {
	if s.opts.ModelEnabled {
		if recs, ok := s.recommendFromModel(ctx, bookID, s.limitOrDefault(limit)); ok {
			return recs, nil
		}
	}
	return s.RecommendSimilar(ctx, bookID, limit)
}

// Train fits the TF-IDF space over the catalog and persists the model
// artifacts.
func (s *RecommendService) Train(ctx context.Context) (*TrainReport, error) {
	if !s.opts.ModelEnabled {
		return &TrainReport{
			Status: "skipped",
			Detail: "model path disabled by configuration",
		}, nil
	}

	books, err := s.store.Books().ListAll(ctx)
	if err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}
	if len(books) == 0 {
		return &TrainReport{Status: "skipped", Detail: "no books available"}, nil
	}

	texts := make([]string, len(books))
	mapping := make(map[string]int, len(books))
	for i, b := range books {
		texts[i] = bookText(b)
		mapping[strconv.FormatUint(b.ID, 10)] = i
	}

	vectorizer := tfidf.Fit(texts)
	matrix := vectorizer.TransformAll(texts)

	if err := s.saveArtifacts(vectorizer, matrix, mapping); err != nil {
		return nil, errors.ErrInternal.WithCause(err)
	}

	logger.Infow("Recommendation model trained", "documents", len(books))
	return &TrainReport{Status: "trained", Documents: len(books)}, nil
}

func (s *RecommendService) saveArtifacts(vectorizer *tfidf.Vectorizer, matrix [][]float64, mapping map[string]int) error {
	if err := os.MkdirAll(s.opts.ModelDir, 0o755); err != nil {
		return err
	}

	write := func(name string, v interface{}) error {
		data, err := jsonutil.Marshal(v)
		if err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(s.opts.ModelDir, name), data, 0o644)
	}

	if err := write(vectorizerFile, vectorizer); err != nil {
		return err
	}
	if err := write(matrixFile, matrix); err != nil {
		return err
	}
	return write(mappingFile, mapping)
}

// recommendFromModel ranks via the persisted model. The query vector is
// the vectorizer transform of the target's CURRENT text, so summaries
// regenerated after training still rank against fresh content. The
// second return is false on any miss: absent artifacts, unmapped book,
// decode error.
func (s *RecommendService) recommendFromModel(ctx context.Context, bookID uint64, limit int) ([]Recommendation, bool) {
	read := func(name string, v interface{}) error {
		data, err := os.ReadFile(filepath.Join(s.opts.ModelDir, name))
		if err != nil {
			return err
		}
		return jsonutil.Unmarshal(data, v)
	}

	var vectorizer tfidf.Vectorizer
	var matrix [][]float64
	var mapping map[string]int
	if err := read(vectorizerFile, &vectorizer); err != nil {
		return nil, false
	}
	if err := read(matrixFile, &matrix); err != nil {
		return nil, false
	}
	if err := read(mappingFile, &mapping); err != nil {
		return nil, false
	}

	if _, ok := mapping[strconv.FormatUint(bookID, 10)]; !ok {
		return nil, false
	}

	books, err := s.store.Books().ListAll(ctx)
	if err != nil {
		return nil, false
	}
	byID := make(map[uint64]*model.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}

	target, ok := byID[bookID]
	if !ok {
		return nil, false
	}
	query := vectorizer.Transform(bookText(target))

	recs := make([]Recommendation, 0, len(mapping))
	for idStr, row := range mapping {
		if row >= len(matrix) {
			continue
		}
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil || id == bookID {
			continue
		}
		// 训练后被删除的图书直接跳过
		book, ok := byID[id]
		if !ok {
			continue
		}
		recs = append(recs, Recommendation{
			Book:  book,
			Score: tfidf.Cosine(query, matrix[row]),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].Book.ID < recs[j].Book.ID
	})
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, true
}
