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

func TestReviewRequiresBorrow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.signup(t, "eager@example.com")
	book, err := env.biz.Books().Create(ctx, &biz.BookInput{Title: "Locked"})
	require.NoError(t, err)

	// 未借阅不可评论
	_, err = env.biz.Reviews().Add(ctx, user.ID, book.ID, 5, "great")
	assert.ErrorIs(t, err, errors.ErrBorrowRequired)

	_, err = env.biz.Books().Borrow(ctx, user.ID, book.ID)
	require.NoError(t, err)

	review, err := env.biz.Reviews().Add(ctx, user.ID, book.ID, 5, "great")
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)

	// 归还后仍可评论
	_, err = env.biz.Books().Return(ctx, user.ID, book.ID)
	require.NoError(t, err)
	_, err = env.biz.Reviews().Add(ctx, user.ID, book.ID, 3, "on reflection")
	require.NoError(t, err)
}

func TestReviewRatingBounds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.signup(t, "bounds@example.com")
	book, err := env.biz.Books().Create(ctx, &biz.BookInput{Title: "Strict"})
	require.NoError(t, err)
	_, err = env.biz.Books().Borrow(ctx, user.ID, book.ID)
	require.NoError(t, err)

	_, err = env.biz.Reviews().Add(ctx, user.ID, book.ID, 0, "too low")
	assert.Error(t, err)
	_, err = env.biz.Reviews().Add(ctx, user.ID, book.ID, 6, "too high")
	assert.Error(t, err)
}

func TestReviewUpdatesConsensus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.signup(t, "consensus@example.com")
	book, err := env.biz.Books().Create(ctx, &biz.BookInput{Title: "Discussed"})
	require.NoError(t, err)
	_, err = env.biz.Books().Borrow(ctx, user.ID, book.ID)
	require.NoError(t, err)

	_, err = env.biz.Reviews().Add(ctx, user.ID, book.ID, 4, "thoughtful and well paced")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		got, err := env.biz.Books().Get(ctx, book.ID)
		return err == nil && got.ReviewConsensus != ""
	}, 3*time.Second, 10*time.Millisecond)

	got, err := env.biz.Books().Get(ctx, book.ID)
	require.NoError(t, err)
	assert.Contains(t, got.ReviewConsensus, "Consensus (mock): ")
	assert.Contains(t, got.ReviewConsensus, "thoughtful")
}

func TestReviewListUnknownBook(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.biz.Reviews().List(context.Background(), 777)
	assert.ErrorIs(t, err, errors.ErrBookNotFound)
}
