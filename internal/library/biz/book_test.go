package biz_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminalib/luminalib/internal/library/biz"
	"github.com/luminalib/luminalib/pkg/errors"
)

func TestBookCreateWithFileGeneratesSummary(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	book, err := env.biz.Books().Create(ctx, &biz.BookInput{
		Title:    "Moby Dick",
		Author:   "Herman Melville",
		Genre:    "Adventure",
		FileName: "moby.txt",
		FileData: []byte("Call me Ishmael. Some years ago I went to sea."),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, book.FileKey)

	// 后台摘要生成
	require.Eventually(t, func() bool {
		got, err := env.biz.Books().Get(ctx, book.ID)
		return err == nil && got.Summary != ""
	}, 3*time.Second, 10*time.Millisecond)

	got, err := env.biz.Books().Get(ctx, book.ID)
	require.NoError(t, err)
	assert.Contains(t, got.Summary, "Summary (mock): ")
	assert.Contains(t, got.Summary, "Ishmael")
}

func TestBookCreateNonTxtSkipsExtraction(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	book, err := env.biz.Books().Create(ctx, &biz.BookInput{
		Title:    "Scanned",
		FileName: "scan.pdf",
		FileData: []byte{0x25, 0x50, 0x44, 0x46},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, book.FileKey)
	assert.Empty(t, book.Summary)
}

func TestBookPaginationClamping(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := env.biz.Books().Create(ctx, &biz.BookInput{Title: "Book"})
		require.NoError(t, err)
	}

	total, books, page, size, err := env.biz.Books().List(ctx, 0, 500)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, books, 3)
	assert.Equal(t, 1, page)
	assert.Equal(t, biz.MaxPageSize, size)

	_, _, page, size, err = env.biz.Books().List(ctx, -2, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, biz.DefaultPageSize, size)
}

func TestBorrowReturnFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.signup(t, "borrower@example.com")
	book, err := env.biz.Books().Create(ctx, &biz.BookInput{Title: "Dune"})
	require.NoError(t, err)

	status, err := env.biz.Books().BorrowStatus(ctx, user.ID, book.ID)
	require.NoError(t, err)
	assert.False(t, status.Borrowed)

	_, err = env.biz.Books().Borrow(ctx, user.ID, book.ID)
	require.NoError(t, err)

	// 重复借阅
	_, err = env.biz.Books().Borrow(ctx, user.ID, book.ID)
	assert.ErrorIs(t, err, errors.ErrBookAlreadyBorrowed)

	status, err = env.biz.Books().BorrowStatus(ctx, user.ID, book.ID)
	require.NoError(t, err)
	assert.True(t, status.Borrowed)

	returned, err := env.biz.Books().Return(ctx, user.ID, book.ID)
	require.NoError(t, err)
	assert.NotZero(t, returned.ReturnedAt)

	// 无有效借阅时归还
	_, err = env.biz.Books().Return(ctx, user.ID, book.ID)
	assert.ErrorIs(t, err, errors.ErrBorrowNotFound)

	// 归还后可再次借阅
	_, err = env.biz.Books().Borrow(ctx, user.ID, book.ID)
	require.NoError(t, err)
}

func TestBookDeleteAndNotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	book, err := env.biz.Books().Create(ctx, &biz.BookInput{Title: "Ephemeral"})
	require.NoError(t, err)

	require.NoError(t, env.biz.Books().Delete(ctx, book.ID))

	_, err = env.biz.Books().Get(ctx, book.ID)
	assert.ErrorIs(t, err, errors.ErrBookNotFound)

	err = env.biz.Books().Delete(ctx, book.ID)
	assert.ErrorIs(t, err, errors.ErrBookNotFound)
}

func TestBookDeleteFile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	book, err := env.biz.Books().Create(ctx, &biz.BookInput{
		Title:    "With File",
		FileName: "text.txt",
		FileData: []byte("body"),
	})
	require.NoError(t, err)

	updated, err := env.biz.Books().DeleteFile(ctx, book.ID)
	require.NoError(t, err)
	assert.Empty(t, updated.FileKey)

	_, err = env.biz.Books().DeleteFile(ctx, book.ID)
	assert.ErrorIs(t, err, errors.ErrFileNotFound)
}

func TestBookSummaryAggregation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.signup(t, "critic@example.com")
	book, err := env.biz.Books().Create(ctx, &biz.BookInput{Title: "Rated"})
	require.NoError(t, err)

	_, err = env.biz.Books().Borrow(ctx, user.ID, book.ID)
	require.NoError(t, err)

	_, err = env.biz.Reviews().Add(ctx, user.ID, book.ID, 4, "good")
	require.NoError(t, err)

	summary, err := env.biz.Books().Summary(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.ReviewCount)
	assert.InDelta(t, 4.0, summary.AverageRating, 1e-9)
}

func TestGenerateSummary(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.biz.Books().GenerateSummary(context.Background(), "Some long content here.")
	require.NoError(t, err)
	assert.Equal(t, "Summary (mock): Some long content here.", out)
}
