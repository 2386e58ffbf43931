package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/luminalib/luminalib/internal/pkg/httputils"
	"github.com/luminalib/luminalib/pkg/errors"
)

// SubmitIngestion queues a document for ingestion and returns the
// pending job with 202.
// POST /api/v1/ingestion/documents/:id
func (h *Handler) SubmitIngestion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		httputils.WriteResponse(c, errors.ErrDocumentNotFound, nil)
		return
	}

	job, err := h.biz.Ingest().Submit(c.Request.Context(), currentUser(c).ID, id)
	if err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}
	httputils.WriteAccepted(c, job)
}

// GetIngestionJob returns a job's current state.
// GET /api/v1/ingestion/jobs/:id
func (h *Handler) GetIngestionJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		httputils.WriteResponse(c, errors.ErrJobNotFound, nil)
		return
	}

	job, err := h.biz.Ingest().GetJob(c.Request.Context(), id)
	httputils.WriteResponse(c, err, job)
}

// ListIngestionJobs returns all jobs.
// GET /api/v1/ingestion/jobs
func (h *Handler) ListIngestionJobs(c *gin.Context) {
	jobs, err := h.biz.Ingest().ListJobs(c.Request.Context())
	httputils.WriteResponse(c, err, jobs)
}

type questionRequest struct {
	Question string `json:"question" binding:"required"`
}

// Ask answers a question over the ingested corpus.
// POST /api/v1/qa
func (h *Handler) Ask(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputils.WriteResponse(c, errors.ErrBind.WithCause(err), nil)
		return
	}

	result, err := h.biz.QA().Answer(c.Request.Context(), req.Question)
	httputils.WriteResponse(c, err, result)
}
