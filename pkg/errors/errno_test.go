package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"

	"github.com/luminalib/luminalib/pkg/errors"
)

func TestMakeCode(t *testing.T) {
	tests := []struct {
		name     string
		service  int
		category int
		sequence int
		want     int
	}{
		{"common success", errors.ServiceCommon, errors.CategorySuccess, 0, 0},
		{"common request", errors.ServiceCommon, errors.CategoryRequest, 1, 1001},
		{"library resource", errors.ServiceLibrary, errors.CategoryResource, 2, 3004002},
		{"library conflict", errors.ServiceLibrary, errors.CategoryConflict, 1, 3005001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.MakeCode(tt.service, tt.category, tt.sequence))
		})
	}
}

func TestParseCode(t *testing.T) {
	service, category, sequence := errors.ParseCode(3004002)
	assert.Equal(t, errors.ServiceLibrary, service)
	assert.Equal(t, errors.CategoryResource, category)
	assert.Equal(t, 2, sequence)
}

func TestErrnoWithCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := errors.ErrDatabase.WithCause(cause)

	assert.Equal(t, errors.ErrDatabase.Code, err.Code)
	assert.ErrorIs(t, err, errors.ErrDatabase)
	assert.Equal(t, cause, stderrors.Unwrap(err))

	// 原始错误不应被修改
	assert.Nil(t, stderrors.Unwrap(errors.ErrDatabase))
}

func TestErrnoWithMessage(t *testing.T) {
	err := errors.ErrInvalidParam.WithMessage("email is required")
	assert.Equal(t, "email is required", err.MessageEN)
	assert.Equal(t, errors.ErrInvalidParam.Code, err.Code)
	assert.Equal(t, "invalid request parameters", errors.ErrInvalidParam.MessageEN)
}

func TestErrnoHTTPAndGRPCStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, errors.ErrBookNotFound.HTTPStatus())
	assert.Equal(t, codes.NotFound, errors.ErrBookNotFound.GRPCStatus())
	assert.Equal(t, http.StatusConflict, errors.ErrBookAlreadyBorrowed.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, errors.ErrCorpusEmpty.HTTPStatus())
}

func TestFromError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, errors.FromError(nil))
	})

	t.Run("errno passthrough", func(t *testing.T) {
		e := errors.FromError(errors.ErrJobNotFound)
		assert.Equal(t, errors.ErrJobNotFound.Code, e.Code)
	})

	t.Run("wrapped errno", func(t *testing.T) {
		wrapped := fmt.Errorf("store: %w", errors.ErrUserNotFound)
		e := errors.FromError(wrapped)
		assert.Equal(t, errors.ErrUserNotFound.Code, e.Code)
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		e := errors.FromError(fmt.Errorf("boom"))
		assert.Equal(t, errors.ErrInternal.Code, e.Code)
	})
}

func TestIsCodeAndGetCode(t *testing.T) {
	assert.True(t, errors.IsCode(errors.ErrCorpusEmpty, errors.ErrCorpusEmpty.Code))
	assert.False(t, errors.IsCode(errors.ErrCorpusEmpty, errors.ErrInternal.Code))
	assert.Equal(t, 0, errors.GetCode(nil))
	assert.Equal(t, errors.ErrInternal.Code, errors.GetCode(fmt.Errorf("boom")))
}

func TestCorpusEmptyMessage(t *testing.T) {
	assert.Equal(t, "No ingested documents available", errors.ErrCorpusEmpty.MessageEN)
}
