package biz

import (
	"context"

	"github.com/kart-io/logger"
	"gorm.io/gorm"

	"github.com/luminalib/luminalib/internal/library/store"
	"github.com/luminalib/luminalib/internal/model"
	"github.com/luminalib/luminalib/internal/pkg/pool"
	"github.com/luminalib/luminalib/pkg/errors"
	"github.com/luminalib/luminalib/pkg/llm"
)

// ReviewService manages book reviews and the rolling consensus.
type ReviewService struct {
	store    store.Factory
	provider llm.Provider
	pool     *pool.Pool
}

// NewReviewService creates the review service.
func NewReviewService(s store.Factory, provider llm.Provider, p *pool.Pool) *ReviewService {
	return &ReviewService{store: s, provider: provider, pool: p}
}

// Add records a review. The caller must have borrowed the book at
// least once. Each new review schedules a consensus refresh.
func (s *ReviewService) Add(ctx context.Context, userID, bookID uint64, rating int, comment string) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, errors.ErrInvalidParam.WithMessage("rating must be between 1 and 5")
	}

	if _, err := s.store.Books().Get(ctx, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrBookNotFound
		}
		return nil, errors.ErrDatabase.WithCause(err)
	}

	borrowed, err := s.store.Borrows().HasEverBorrowed(ctx, bookID, userID)
	if err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}
	if !borrowed {
		return nil, errors.ErrBorrowRequired
	}

	review := &model.Review{
		BookID:  bookID,
		UserID:  userID,
		Rating:  rating,
		Comment: comment,
	}
	if err := s.store.Reviews().Create(ctx, review); err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}

	s.scheduleConsensus(bookID)
	return review, nil
}

// List returns a book's reviews.
func (s *ReviewService) List(ctx context.Context, bookID uint64) ([]*model.Review, error) {
	if _, err := s.store.Books().Get(ctx, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrBookNotFound
		}
		return nil, errors.ErrDatabase.WithCause(err)
	}

	reviews, err := s.store.Reviews().ListByBook(ctx, bookID)
	if err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return reviews, nil
}

// scheduleConsensus refreshes the book's review consensus in the
// background.
func (s *ReviewService) scheduleConsensus(bookID uint64) {
	s.pool.Run(func() {
		ctx := context.Background()

		reviews, err := s.store.Reviews().ListByBook(ctx, bookID)
		if err != nil {
			logger.Errorw("Consensus refresh: list reviews failed", "book_id", bookID, "error", err)
			return
		}
		if len(reviews) == 0 {
			return
		}

		texts := make([]string, 0, len(reviews))
		for _, r := range reviews {
			texts = append(texts, r.Comment)
		}

		consensus, err := s.provider.AnalyzeReviews(ctx, texts)
		if err != nil {
			logger.Errorw("Consensus generation failed", "book_id", bookID, "error", err)
			return
		}

		book, err := s.store.Books().Get(ctx, bookID)
		if err != nil {
			logger.Warnw("Consensus refresh: book vanished", "book_id", bookID, "error", err)
			return
		}
		book.ReviewConsensus = consensus
		if err := s.store.Books().Update(ctx, book); err != nil {
			logger.Errorw("Failed to persist consensus", "book_id", bookID, "error", err)
		}
	})
}
