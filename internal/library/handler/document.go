package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/luminalib/luminalib/internal/pkg/httputils"
	"github.com/luminalib/luminalib/pkg/errors"
)

type createDocumentRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

// CreateDocument stores a document from a JSON body.
// POST /api/v1/documents
func (h *Handler) CreateDocument(c *gin.Context) {
	var req createDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputils.WriteResponse(c, errors.ErrBind.WithCause(err), nil)
		return
	}

	doc, err := h.biz.Documents().Create(c.Request.Context(), currentUser(c).ID, req.Title, req.Content)
	httputils.WriteResponse(c, err, doc)
}

// UploadDocument stores a document from a multipart file, decoded as
// UTF-8 text.
// POST /api/v1/documents/upload
func (h *Handler) UploadDocument(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		httputils.WriteResponse(c, errors.ErrInvalidParam.WithMessage("file is required"), nil)
		return
	}

	f, err := file.Open()
	if err != nil {
		httputils.WriteResponse(c, errors.ErrInternal.WithCause(err), nil)
		return
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		httputils.WriteResponse(c, errors.ErrInternal.WithCause(err), nil)
		return
	}

	title := c.PostForm("title")
	if title == "" {
		title = file.Filename
	}

	doc, err := h.biz.Documents().Create(c.Request.Context(), currentUser(c).ID, title, string(data))
	httputils.WriteResponse(c, err, doc)
}

// ListDocuments returns the caller's documents.
// GET /api/v1/documents
func (h *Handler) ListDocuments(c *gin.Context) {
	docs, err := h.biz.Documents().List(c.Request.Context(), currentUser(c).ID)
	httputils.WriteResponse(c, err, docs)
}

// GetDocument returns one of the caller's documents.
// GET /api/v1/documents/:id
func (h *Handler) GetDocument(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		httputils.WriteResponse(c, errors.ErrDocumentNotFound, nil)
		return
	}

	doc, err := h.biz.Documents().Get(c.Request.Context(), currentUser(c).ID, id)
	httputils.WriteResponse(c, err, doc)
}

// DeleteDocument removes one of the caller's documents.
// DELETE /api/v1/documents/:id
func (h *Handler) DeleteDocument(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		httputils.WriteResponse(c, errors.ErrDocumentNotFound, nil)
		return
	}

	err := h.biz.Documents().Delete(c.Request.Context(), currentUser(c).ID, id)
	httputils.WriteResponse(c, err, gin.H{"deleted": err == nil})
}
