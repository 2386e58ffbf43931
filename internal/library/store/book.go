package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/luminalib/luminalib/internal/model"
)

type books struct {
	db *gorm.DB
}

func newBooks(db *gorm.DB) *books {
	return &books{db}
}

// Create creates a new book.
func (b *books) Create(ctx context.Context, book *model.Book) error {
	return b.db.WithContext(ctx).Create(book).Error
}

// Update updates an existing book.
func (b *books) Update(ctx context.Context, book *model.Book) error {
	return b.db.WithContext(ctx).Save(book).Error
}

// Get retrieves a book by id.
func (b *books) Get(ctx context.Context, id uint64) (*model.Book, error) {
	var book model.Book
	if err := b.db.WithContext(ctx).First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// List lists books with pagination.
func (b *books) List(ctx context.Context, offset, limit int) (int64, []*model.Book, error) {
	var count int64
	var list []*model.Book

	if err := b.db.WithContext(ctx).Model(&model.Book{}).Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if err := b.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&list).Error; err != nil {
		return 0, nil, err
	}
	return count, list, nil
}

// ListAll lists every book ordered by id.
func (b *books) ListAll(ctx context.Context) ([]*model.Book, error) {
	var list []*model.Book
	if err := b.db.WithContext(ctx).Order("id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Delete removes the book and cascades reviews and borrows.
func (b *books) Delete(ctx context.Context, id uint64) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&model.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("book_id = ?", id).Delete(&model.BookBorrow{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Book{}, id).Error
	})
}

type reviews struct {
	db *gorm.DB
}

func newReviews(db *gorm.DB) *reviews {
	return &reviews{db}
}

// Create creates a new review.
func (r *reviews) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// ListByBook lists a book's reviews ordered by id.
func (r *reviews) ListByBook(ctx context.Context, bookID uint64) ([]*model.Review, error) {
	var list []*model.Review
	if err := r.db.WithContext(ctx).Where("book_id = ?", bookID).Order("id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

type borrows struct {
	db *gorm.DB
}

func newBorrows(db *gorm.DB) *borrows {
	return &borrows{db}
}

// Create creates a new borrow record.
func (b *borrows) Create(ctx context.Context, borrow *model.BookBorrow) error {
	return b.db.WithContext(ctx).Create(borrow).Error
}

// Update persists a borrow record update.
func (b *borrows) Update(ctx context.Context, borrow *model.BookBorrow) error {
	return b.db.WithContext(ctx).Save(borrow).Error
}

// GetActive returns the user's active borrow of the book, if any.
func (b *borrows) GetActive(ctx context.Context, bookID, userID uint64) (*model.BookBorrow, error) {
	var borrow model.BookBorrow
	if err := b.db.WithContext(ctx).
		Where("book_id = ? AND user_id = ? AND returned_at = 0", bookID, userID).
		First(&borrow).Error; err != nil {
		return nil, err
	}
	return &borrow, nil
}

// HasEverBorrowed reports whether the user borrowed the book at least once.
func (b *borrows) HasEverBorrowed(ctx context.Context, bookID, userID uint64) (bool, error) {
	var count int64
	if err := b.db.WithContext(ctx).Model(&model.BookBorrow{}).
		Where("book_id = ? AND user_id = ?", bookID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByUser lists a user's borrow history ordered by id.
func (b *borrows) ListByUser(ctx context.Context, userID uint64) ([]*model.BookBorrow, error) {
	var list []*model.BookBorrow
	if err := b.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
