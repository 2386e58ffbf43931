package store_test

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/luminalib/luminalib/internal/library/store"
	"github.com/luminalib/luminalib/internal/model"
)

func newTestStore(t *testing.T) store.Factory {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, store.AutoMigrate(db))
	return store.NewStore(db)
}

func TestUserCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := &model.User{Email: "alice@example.com", HashedPassword: "hash", Role: model.RoleMember}
	require.NoError(t, s.Users().Create(ctx, user))
	assert.NotZero(t, user.ID)

	got, err := s.Users().GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// 邮箱唯一约束
	dup := &model.User{Email: "alice@example.com", HashedPassword: "hash2"}
	assert.Error(t, s.Users().Create(ctx, dup))

	got.Role = model.RoleAdmin
	require.NoError(t, s.Users().Update(ctx, got))
	again, err := s.Users().Get(ctx, got.ID)
	require.NoError(t, err)
	assert.True(t, again.IsAdmin())
}

func TestPreferenceUpsert(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Preferences().Get(ctx, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, s.Preferences().Upsert(ctx, &model.UserPreference{UserID: 1, Data: `{"preferred_genres":["Drama"]}`}))
	require.NoError(t, s.Preferences().Upsert(ctx, &model.UserPreference{UserID: 1, Data: `{"preferred_genres":["Sci-Fi"]}`}))

	pref, err := s.Preferences().Get(ctx, 1)
	require.NoError(t, err)
	assert.Contains(t, pref.Data, "Sci-Fi")
}

func TestChunkReplaceForDocument(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := []*model.DocumentChunk{
		{DocumentID: 7, ChunkIndex: 0, Content: "old a", Embedding: model.Vector{1, 0}},
		{DocumentID: 7, ChunkIndex: 1, Content: "old b", Embedding: model.Vector{0, 1}},
	}
	require.NoError(t, s.Chunks().ReplaceForDocument(ctx, 7, first))

	second := []*model.DocumentChunk{
		{DocumentID: 7, ChunkIndex: 0, Content: "new a", Embedding: model.Vector{0.5, 0.5}},
	}
	require.NoError(t, s.Chunks().ReplaceForDocument(ctx, 7, second))

	list, err := s.Chunks().ListByDocument(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "new a", list[0].Content)
	assert.Equal(t, model.Vector{0.5, 0.5}, list[0].Embedding)
}

func TestDocumentDeleteKeepsJobs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doc := &model.Document{OwnerID: 1, Title: "t", Content: "c"}
	require.NoError(t, s.Documents().Create(ctx, doc))
	require.NoError(t, s.Chunks().ReplaceForDocument(ctx, doc.ID, []*model.DocumentChunk{
		{DocumentID: doc.ID, ChunkIndex: 0, Content: "c"},
	}))
	job := &model.IngestionJob{DocumentID: doc.ID, Status: model.JobStatusCompleted}
	require.NoError(t, s.Jobs().Create(ctx, job))

	require.NoError(t, s.Documents().Delete(ctx, doc.ID))

	_, err := s.Documents().Get(ctx, doc.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	left, err := s.Chunks().ListByDocument(ctx, doc.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	// 任务记录保留
	got, err := s.Jobs().Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusCompleted, got.Status)
}

func TestBookDeleteCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	book := &model.Book{Title: "Dune", Genre: "Sci-Fi"}
	require.NoError(t, s.Books().Create(ctx, book))
	require.NoError(t, s.Reviews().Create(ctx, &model.Review{BookID: book.ID, UserID: 1, Rating: 5}))
	require.NoError(t, s.Borrows().Create(ctx, &model.BookBorrow{BookID: book.ID, UserID: 1}))

	require.NoError(t, s.Books().Delete(ctx, book.ID))

	_, err := s.Books().Get(ctx, book.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	reviews, err := s.Reviews().ListByBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	has, err := s.Borrows().HasEverBorrowed(ctx, book.ID, 1)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestBookPagination(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		require.NoError(t, s.Books().Create(ctx, &model.Book{Title: "Book", Genre: "Drama"}))
	}

	total, page, err := s.Books().List(ctx, 10, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, page, 2)
}

func TestBorrowLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	borrow := &model.BookBorrow{BookID: 3, UserID: 9}
	require.NoError(t, s.Borrows().Create(ctx, borrow))

	active, err := s.Borrows().GetActive(ctx, 3, 9)
	require.NoError(t, err)
	assert.True(t, active.Active())

	active.ReturnedAt = 1
	require.NoError(t, s.Borrows().Update(ctx, active))

	_, err = s.Borrows().GetActive(ctx, 3, 9)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	has, err := s.Borrows().HasEverBorrowed(ctx, 3, 9)
	require.NoError(t, err)
	assert.True(t, has)
}
