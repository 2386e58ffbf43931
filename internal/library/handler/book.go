package handler

import (
	"io"
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/luminalib/luminalib/internal/library/biz"
	"github.com/luminalib/luminalib/internal/pkg/httputils"
	"github.com/luminalib/luminalib/pkg/errors"
)

// readUpload loads the optional multipart file field.
func readUpload(file *multipart.FileHeader) (string, []byte, error) {
	f, err := file.Open()
	if err != nil {
		return "", nil, err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", nil, err
	}
	return file.Filename, data, nil
}

// bookInputFromForm builds the input from a multipart form. The file
// field is optional.
func bookInputFromForm(c *gin.Context) (*biz.BookInput, error) {
	in := &biz.BookInput{
		Title:  c.PostForm("title"),
		Author: c.PostForm("author"),
		Genre:  c.PostForm("genre"),
	}

	file, err := c.FormFile("file")
	if err == nil {
		name, data, err := readUpload(file)
		if err != nil {
			return nil, err
		}
		in.FileName = name
		in.FileData = data
	}
	return in, nil
}

// CreateBook adds a catalog entry from a multipart form.
// POST /api/v1/books
func (h *Handler) CreateBook(c *gin.Context) {
	in, err := bookInputFromForm(c)
	if err != nil {
		httputils.WriteResponse(c, errors.ErrInternal.WithCause(err), nil)
		return
	}

	book, err := h.biz.Books().Create(c.Request.Context(), in)
	httputils.WriteResponse(c, err, book)
}

// ListBooks returns one catalog page.
// GET /api/v1/books?page=&size=
func (h *Handler) ListBooks(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	total, books, page, size, err := h.biz.Books().List(c.Request.Context(), page, size)
	if err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}
	httputils.WritePage(c, books, total, page, size)
}

// GetBook returns a catalog entry.
// GET /api/v1/books/:id
func (h *Handler) GetBook(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		httputils.WriteResponse(c, errors.ErrBookNotFound, nil)
		return
	}

	book, err := h.biz.Books().Get(c.Request.Context(), id)
	httputils.WriteResponse(c, err, book)
}

type updateBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

// UpdateBook applies metadata changes from JSON, or metadata plus a
// replacement file from a multipart form.
// PUT /api/v1/books/:id
func (h *Handler) UpdateBook(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		httputils.WriteResponse(c, errors.ErrBookNotFound, nil)
		return
	}

	var in *biz.BookInput
	if c.ContentType() == "application/json" {
		var req updateBookRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httputils.WriteResponse(c, errors.ErrBind.WithCause(err), nil)
			return
		}
		in = &biz.BookInput{Title: req.Title, Author: req.Author, Genre: req.Genre}
	} else {
		var err error
		in, err = bookInputFromForm(c)
		if err != nil {
			httputils.WriteResponse(c, errors.ErrInternal.WithCause(err), nil)
			return
		}
	}

	book, err := h.biz.Books().Update(c.Request.Context(), id, in)
	httputils.WriteResponse(c, err, book)
}

// DeleteBook removes a catalog entry with its blob, reviews, and
// borrows.
// DELETE /api/v1/books/:id
func (h *Handler) DeleteBook(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		httputils.WriteResponse(c, errors.ErrBookNotFound, nil)
		return
	}

	err := h.biz.Books().Delete(c.Request.Context(), id)
	httputils.WriteResponse(c, err, gin.H{"deleted": err == nil})
}

// DeleteBookFile detaches and removes the uploaded file.
// DELETE /api/v1/books/:id/file
func (h *Handler) DeleteBookFile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		httputils.WriteResponse(c, errors.ErrBookNotFound, nil)
		return
	}

	book, err := h.biz.Books().DeleteFile(c.Request.Context(), id)
	httputils.WriteResponse(c, err, book)
}

// BookSummary returns the aggregated summary payload.
// GET /api/v1/books/:id/summary
func (h *Handler) BookSummary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		httputils.WriteResponse(c, errors.ErrBookNotFound, nil)
		return
	}

	summary, err := h.biz.Books().Summary(c.Request.Context(), id)
	httputils.WriteResponse(c, err, summary)
}

// BorrowBook records an active borrow for the caller.
// POST /api/v1/books/:id/borrow
func (h *Handler) BorrowBook(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		httputils.WriteResponse(c, errors.ErrBookNotFound, nil)
		return
	}

	borrow, err := h.biz.Books().Borrow(c.Request.Context(), currentUser(c).ID, id)
	httputils.WriteResponse(c, err, borrow)
}

// ReturnBook closes the caller's active borrow.
// POST /api/v1/books/:id/return
func (h *Handler) ReturnBook(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		httputils.WriteResponse(c, errors.ErrBookNotFound, nil)
		return
	}

	borrow, err := h.biz.Books().Return(c.Request.Context(), currentUser(c).ID, id)
	httputils.WriteResponse(c, err, borrow)
}

// BookBorrowStatus reports the caller's borrow state for a book.
// GET /api/v1/books/:id/borrow-status
func (h *Handler) BookBorrowStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		httputils.WriteResponse(c, errors.ErrBookNotFound, nil)
		return
	}

	status, err := h.biz.Books().BorrowStatus(c.Request.Context(), currentUser(c).ID, id)
	httputils.WriteResponse(c, err, status)
}
