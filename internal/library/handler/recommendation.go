package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/luminalib/luminalib/internal/pkg/httputils"
	"github.com/luminalib/luminalib/pkg/errors"
)

// Recommendations returns genre-popularity recommendations for the
// caller, boosted by preferred genres.
// GET /api/v1/recommendations?limit=
func (h *Handler) Recommendations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	recs, err := h.biz.Recommend().RecommendForUser(c.Request.Context(), currentUser(c).ID, limit)
	httputils.WriteResponse(c, err, recs)
}

// SimilarBooks returns books similar to the target, preferring the
// trained model and falling back to on-the-fly similarity.
// GET /api/v1/books/:id/recommendations?limit=
func (h *Handler) SimilarBooks(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		httputils.WriteResponse(c, errors.ErrBookNotFound, nil)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	recs, err := h.biz.Recommend().Recommend(c.Request.Context(), id, limit)
	httputils.WriteResponse(c, err, recs)
}

// TrainRecommender fits and persists the TF-IDF model. Admin only.
// POST /api/v1/recommendations/train
func (h *Handler) TrainRecommender(c *gin.Context) {
	report, err := h.biz.Recommend().Train(c.Request.Context())
	httputils.WriteResponse(c, err, report)
}

type generateSummaryRequest struct {
	Content string `json:"content" binding:"required"`
}

// GenerateSummary summarizes posted content through the LLM provider.
// POST /api/v1/ai/generate-summary
func (h *Handler) GenerateSummary(c *gin.Context) {
	var req generateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputils.WriteResponse(c, errors.ErrBind.WithCause(err), nil)
		return
	}

	summary, err := h.biz.Books().GenerateSummary(c.Request.Context(), req.Content)
	httputils.WriteResponse(c, err, gin.H{"summary": summary})
}
