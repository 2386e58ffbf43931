package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/luminalib/luminalib/internal/pkg/httputils"
	"github.com/luminalib/luminalib/pkg/errors"
)

type reviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// AddReview records a review from a member who borrowed the book.
// POST /api/v1/books/:id/reviews
func (h *Handler) AddReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		httputils.WriteResponse(c, errors.ErrBookNotFound, nil)
		return
	}

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputils.WriteResponse(c, errors.ErrBind.WithCause(err), nil)
		return
	}

	review, err := h.biz.Reviews().Add(c.Request.Context(), currentUser(c).ID, id, req.Rating, req.Comment)
	httputils.WriteResponse(c, err, review)
}

// ListReviews returns a book's reviews.
// GET /api/v1/books/:id/reviews
func (h *Handler) ListReviews(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		httputils.WriteResponse(c, errors.ErrBookNotFound, nil)
		return
	}

	reviews, err := h.biz.Reviews().List(c.Request.Context(), id)
	httputils.WriteResponse(c, err, reviews)
}
