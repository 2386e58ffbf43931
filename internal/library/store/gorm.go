package store

import (
	"gorm.io/gorm"

	"github.com/luminalib/luminalib/internal/model"
)

// datastore is the gorm-backed Factory implementation.
type datastore struct {
	db *gorm.DB
}

var _ Factory = (*datastore)(nil)

// NewStore creates a gorm-backed store factory.
func NewStore(db *gorm.DB) Factory {
	return &datastore{db: db}
}

// AutoMigrate creates or updates the schema for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.UserPreference{},
		&model.Document{},
		&model.DocumentChunk{},
		&model.IngestionJob{},
		&model.Book{},
		&model.Review{},
		&model.BookBorrow{},
	)
}

func (ds *datastore) Users() UserStore             { return newUsers(ds.db) }
func (ds *datastore) Preferences() PreferenceStore { return newPreferences(ds.db) }
func (ds *datastore) Documents() DocumentStore     { return newDocuments(ds.db) }
func (ds *datastore) Chunks() ChunkStore           { return newChunks(ds.db) }
func (ds *datastore) Jobs() JobStore               { return newJobs(ds.db) }
func (ds *datastore) Books() BookStore             { return newBooks(ds.db) }
func (ds *datastore) Reviews() ReviewStore         { return newReviews(ds.db) }
func (ds *datastore) Borrows() BorrowStore         { return newBorrows(ds.db) }

func (ds *datastore) Close() error {
	sqlDB, err := ds.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
