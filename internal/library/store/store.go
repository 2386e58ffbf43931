// Package store defines the persistence layer for the library service.
package store

import (
	"context"

	"github.com/luminalib/luminalib/internal/model"
)

// Factory defines the factory interface for creating stores.
type Factory interface {
	Users() UserStore
	Preferences() PreferenceStore
	Documents() DocumentStore
	Chunks() ChunkStore
	Jobs() JobStore
	Books() BookStore
	Reviews() ReviewStore
	Borrows() BorrowStore
	Close() error
}

// UserStore defines the user storage interface.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Get(ctx context.Context, id uint64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
}

// PreferenceStore defines the user preference storage interface.
type PreferenceStore interface {
	Get(ctx context.Context, userID uint64) (*model.UserPreference, error)
	Upsert(ctx context.Context, pref *model.UserPreference) error
}

// DocumentStore defines the document storage interface.
type DocumentStore interface {
	Create(ctx context.Context, doc *model.Document) error
	Get(ctx context.Context, id uint64) (*model.Document, error)
	ListByOwner(ctx context.Context, ownerID uint64) ([]*model.Document, error)
	Delete(ctx context.Context, id uint64) error
}

// ChunkStore defines the document chunk storage interface.
type ChunkStore interface {
	// ReplaceForDocument atomically swaps the document's chunk set.
	ReplaceForDocument(ctx context.Context, documentID uint64, chunks []*model.DocumentChunk) error
	ListByDocument(ctx context.Context, documentID uint64) ([]*model.DocumentChunk, error)
	ListAll(ctx context.Context) ([]*model.DocumentChunk, error)
	DeleteByDocument(ctx context.Context, documentID uint64) error
}

// JobStore defines the ingestion job storage interface.
type JobStore interface {
	Create(ctx context.Context, job *model.IngestionJob) error
	Update(ctx context.Context, job *model.IngestionJob) error
	Get(ctx context.Context, id uint64) (*model.IngestionJob, error)
	List(ctx context.Context) ([]*model.IngestionJob, error)
}

// BookStore defines the book storage interface.
type BookStore interface {
	Create(ctx context.Context, book *model.Book) error
	Update(ctx context.Context, book *model.Book) error
	Get(ctx context.Context, id uint64) (*model.Book, error)
	List(ctx context.Context, offset, limit int) (int64, []*model.Book, error)
	ListAll(ctx context.Context) ([]*model.Book, error)
	// Delete removes the book and cascades its reviews and borrows in
	// one transaction.
	Delete(ctx context.Context, id uint64) error
}

// ReviewStore defines the review storage interface.
type ReviewStore interface {
	Create(ctx context.Context, review *model.Review) error
	ListByBook(ctx context.Context, bookID uint64) ([]*model.Review, error)
}

// BorrowStore defines the borrow storage interface.
type BorrowStore interface {
	Create(ctx context.Context, borrow *model.BookBorrow) error
	Update(ctx context.Context, borrow *model.BookBorrow) error
	// GetActive returns the user's active borrow of a book, if any.
	GetActive(ctx context.Context, bookID, userID uint64) (*model.BookBorrow, error)
	// HasEverBorrowed reports whether the user borrowed the book at
	// least once, returned or not.
	HasEverBorrowed(ctx context.Context, bookID, userID uint64) (bool, error)
	ListByUser(ctx context.Context, userID uint64) ([]*model.BookBorrow, error)
}
