package biz

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/kart-io/logger"
	"gorm.io/gorm"

	"github.com/luminalib/luminalib/internal/library/store"
	"github.com/luminalib/luminalib/internal/model"
	"github.com/luminalib/luminalib/internal/pkg/pool"
	"github.com/luminalib/luminalib/pkg/errors"
	"github.com/luminalib/luminalib/pkg/llm"
	"github.com/luminalib/luminalib/pkg/storage"
)

// Pagination bounds for book listing.
const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// BookInput carries book metadata and an optional uploaded file.
type BookInput struct {
	Title    string
	Author   string
	Genre    string
	FileName string
	FileData []byte
}

// BookSummary is the aggregated summary payload for a book.
type BookSummary struct {
	BookID          uint64  `json:"book_id"`
	Title           string  `json:"title"`
	Summary         string  `json:"summary"`
	ReviewConsensus string  `json:"review_consensus"`
	AverageRating   float64 `json:"average_rating"`
	ReviewCount     int     `json:"review_count"`
}

// BorrowStatus reports whether the caller holds an active borrow.
type BorrowStatus struct {
	Borrowed   bool  `json:"borrowed"`
	BorrowedAt int64 `json:"borrowed_at,omitempty"`
}

// BookService manages the catalog, uploads, and borrows.
type BookService struct {
	store    store.Factory
	storage  storage.Provider
	provider llm.Provider
	pool     *pool.Pool
}

// NewBookService creates the book service.
func NewBookService(s store.Factory, blobs storage.Provider, provider llm.Provider, p *pool.Pool) *BookService {
	return &BookService{store: s, storage: blobs, provider: provider, pool: p}
}

// extractText decodes an uploaded file into plain text. Only .txt
// files carry extractable text.
func extractText(filename string, data []byte) string {
	if strings.ToLower(filepath.Ext(filename)) == ".txt" {
		return string(data)
	}
	return ""
}

// ClampPage normalizes pagination parameters.
func ClampPage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size
}

// Create stores a book, saving the uploaded file and scheduling a
// background summary when text was extracted.
func (s *BookService) Create(ctx context.Context, in *BookInput) (*model.Book, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, errors.ErrInvalidParam.WithMessage("title is required")
	}

	book := &model.Book{
		Title:  in.Title,
		Author: in.Author,
		Genre:  in.Genre,
	}

	if len(in.FileData) > 0 {
		key, err := s.storage.Save(ctx, in.FileName, in.FileData)
		if err != nil {
			return nil, errors.ErrStorage.WithCause(err)
		}
		book.FileKey = key
		book.FileName = in.FileName
		book.ExtractedText = extractText(in.FileName, in.FileData)
	}

	if err := s.store.Books().Create(ctx, book); err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}

	if book.ExtractedText != "" {
		s.scheduleSummary(book.ID)
	}
	return book, nil
}

// List returns one catalog page.
func (s *BookService) List(ctx context.Context, page, size int) (int64, []*model.Book, int, int, error) {
	page, size = ClampPage(page, size)

	total, books, err := s.store.Books().List(ctx, (page-1)*size, size)
	if err != nil {
		return 0, nil, 0, 0, errors.ErrDatabase.WithCause(err)
	}
	return total, books, page, size, nil
}

// Get returns a book by id.
func (s *BookService) Get(ctx context.Context, id uint64) (*model.Book, error) {
	book, err := s.store.Books().Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrBookNotFound
		}
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return book, nil
}

// Update applies metadata changes and optionally replaces the file.
// 替换文件时旧的存储块被删除, 并重新生成摘要.
func (s *BookService) Update(ctx context.Context, id uint64, in *BookInput) (*model.Book, error) {
	book, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		book.Title = in.Title
	}
	if in.Author != "" {
		book.Author = in.Author
	}
	if in.Genre != "" {
		book.Genre = in.Genre
	}

	replacedText := false
	if len(in.FileData) > 0 {
		if book.FileKey != "" {
			if err := s.storage.Delete(ctx, book.FileKey); err != nil {
				logger.Warnw("Failed to delete replaced blob", "book_id", id, "key", book.FileKey, "error", err)
			}
		}
		key, err := s.storage.Save(ctx, in.FileName, in.FileData)
		if err != nil {
			return nil, errors.ErrStorage.WithCause(err)
		}
		book.FileKey = key
		book.FileName = in.FileName
		book.ExtractedText = extractText(in.FileName, in.FileData)
		replacedText = book.ExtractedText != ""
	}

	if err := s.store.Books().Update(ctx, book); err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}

	if replacedText {
		s.scheduleSummary(book.ID)
	}
	return book, nil
}

// Delete removes the book, its blob, and cascades reviews and borrows.
func (s *BookService) Delete(ctx context.Context, id uint64) error {
	book, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if book.FileKey != "" {
		if err := s.storage.Delete(ctx, book.FileKey); err != nil {
			logger.Warnw("Failed to delete book blob", "book_id", id, "key", book.FileKey, "error", err)
		}
	}

	if err := s.store.Books().Delete(ctx, id); err != nil {
		return errors.ErrDatabase.WithCause(err)
	}
	return nil
}

// DeleteFile detaches and removes the uploaded file.
func (s *BookService) DeleteFile(ctx context.Context, id uint64) (*model.Book, error) {
	book, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if book.FileKey == "" {
		return nil, errors.ErrFileNotFound
	}

	if err := s.storage.Delete(ctx, book.FileKey); err != nil {
		return nil, errors.ErrStorage.WithCause(err)
	}

	book.FileKey = ""
	book.FileName = ""
	book.ExtractedText = ""
	if err := s.store.Books().Update(ctx, book); err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return book, nil
}

// Summary aggregates the book summary, review consensus, and rating.
func (s *BookService) Summary(ctx context.Context, id uint64) (*BookSummary, error) {
	book, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.store.Reviews().ListByBook(ctx, id)
	if err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}

	var avg float64
	if len(reviews) > 0 {
		var sum int
		for _, r := range reviews {
			sum += r.Rating
		}
		avg = float64(sum) / float64(len(reviews))
	}

	return &BookSummary{
		BookID:          book.ID,
		Title:           book.Title,
		Summary:         book.Summary,
		ReviewConsensus: book.ReviewConsensus,
		AverageRating:   avg,
		ReviewCount:     len(reviews),
	}, nil
}

// GenerateSummary runs the provider over arbitrary content.
func (s *BookService) GenerateSummary(ctx context.Context, content string) (string, error) {
	summary, err := s.provider.Summarize(ctx, content)
	if err != nil {
		return "", errors.ErrLLMProvider.WithCause(err)
	}
	return summary, nil
}

// scheduleSummary regenerates the stored summary in the background.
func (s *BookService) scheduleSummary(bookID uint64) {
	s.pool.Run(func() {
		ctx := context.Background()

		book, err := s.store.Books().Get(ctx, bookID)
		if err != nil {
			logger.Warnw("Summary refresh: book vanished", "book_id", bookID, "error", err)
			return
		}
		if book.ExtractedText == "" {
			return
		}

		summary, err := s.provider.Summarize(ctx, book.ExtractedText)
		if err != nil {
			logger.Errorw("Summary generation failed", "book_id", bookID, "error", err)
			return
		}

		book.Summary = summary
		if err := s.store.Books().Update(ctx, book); err != nil {
			logger.Errorw("Failed to persist summary", "book_id", bookID, "error", err)
		}
	})
}

// Borrow records an active borrow for the caller.
func (s *BookService) Borrow(ctx context.Context, userID, bookID uint64) (*model.BookBorrow, error) {
	if _, err := s.Get(ctx, bookID); err != nil {
		return nil, err
	}

	if _, err := s.store.Borrows().GetActive(ctx, bookID, userID); err == nil {
		return nil, errors.ErrBookAlreadyBorrowed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.ErrDatabase.WithCause(err)
	}

	borrow := &model.BookBorrow{BookID: bookID, UserID: userID}
	if err := s.store.Borrows().Create(ctx, borrow); err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return borrow, nil
}

// Return closes the caller's active borrow.
func (s *BookService) Return(ctx context.Context, userID, bookID uint64) (*model.BookBorrow, error) {
	if _, err := s.Get(ctx, bookID); err != nil {
		return nil, err
	}

	borrow, err := s.store.Borrows().GetActive(ctx, bookID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrBorrowNotFound
		}
		return nil, errors.ErrDatabase.WithCause(err)
	}

	borrow.ReturnedAt = time.Now().UnixMilli()
	if err := s.store.Borrows().Update(ctx, borrow); err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return borrow, nil
}

// BorrowStatus reports the caller's active borrow state for a book.
func (s *BookService) BorrowStatus(ctx context.Context, userID, bookID uint64) (*BorrowStatus, error) {
	if _, err := s.Get(ctx, bookID); err != nil {
		return nil, err
	}

	borrow, err := s.store.Borrows().GetActive(ctx, bookID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &BorrowStatus{Borrowed: false}, nil
		}
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return &BorrowStatus{Borrowed: true, BorrowedAt: borrow.BorrowedAt}, nil
}
