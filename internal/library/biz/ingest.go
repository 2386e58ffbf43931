package biz

import (
	"context"
	"fmt"

	"github.com/kart-io/logger"
	"gorm.io/gorm"

	"github.com/luminalib/luminalib/internal/library/store"
	"github.com/luminalib/luminalib/internal/model"
	"github.com/luminalib/luminalib/internal/pkg/pool"
	"github.com/luminalib/luminalib/internal/pkg/textutil"
	"github.com/luminalib/luminalib/pkg/errors"
)

// IngestService runs the async document ingestion pipeline.
//
// 任务状态机: pending → running → completed|failed. 终态不可重试.
type IngestService struct {
	store     store.Factory
	pool      *pool.Pool
	chunkSize int
}

// NewIngestService creates the ingestion service.
func NewIngestService(s store.Factory, p *pool.Pool, chunkSize int) *IngestService {
	if chunkSize <= 0 {
		chunkSize = textutil.DefaultChunkSize
	}
	return &IngestService{store: s, pool: p, chunkSize: chunkSize}
}

// Submit verifies ownership, persists a pending job, and schedules the
// run in the background. The returned snapshot reflects the pending
// state; completion is observable only through the job record.
func (s *IngestService) Submit(ctx context.Context, userID, documentID uint64) (*model.IngestionJob, error) {
	doc, err := s.store.Documents().Get(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrDocumentNotFound
		}
		return nil, errors.ErrDatabase.WithCause(err)
	}
	if doc.OwnerID != userID {
		return nil, errors.ErrDocumentNotFound
	}

	job := &model.IngestionJob{
		DocumentID: documentID,
		Status:     model.JobStatusPending,
	}
	if err := s.store.Jobs().Create(ctx, job); err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}

	jobID := job.ID
	s.pool.Run(func() {
		s.run(jobID, documentID)
	})

	return job, nil
}

// run executes one ingestion. It is detached from the request context
// and never lets an error escape; failures land on the job record.
func (s *IngestService) run(jobID, documentID uint64) {
	ctx := context.Background()

	job, err := s.store.Jobs().Get(ctx, jobID)
	if err != nil {
		// 任务记录缺失时静默返回
		logger.Warnw("Ingestion job vanished before start", "job_id", jobID, "error", err)
		return
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Errorw("Ingestion panicked", "job_id", jobID, "panic", r)
			s.fail(ctx, job, fmt.Sprintf("%v", r))
		}
	}()

	job.Status = model.JobStatusRunning
	if err := s.store.Jobs().Update(ctx, job); err != nil {
		logger.Errorw("Failed to mark job running", "job_id", jobID, "error", err)
		return
	}

	doc, err := s.store.Documents().Get(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.fail(ctx, job, "Document not found")
			return
		}
		s.fail(ctx, job, err.Error())
		return
	}

	built := textutil.BuildEmbeddings(doc.Content, s.chunkSize)
	rows := make([]*model.DocumentChunk, 0, len(built))
	for _, c := range built {
		rows = append(rows, &model.DocumentChunk{
			DocumentID: documentID,
			ChunkIndex: c.Index,
			Content:    c.Content,
			Embedding:  model.Vector(c.Vector),
		})
	}

	if err := s.store.Chunks().ReplaceForDocument(ctx, documentID, rows); err != nil {
		logger.Errorw("Failed to persist chunks", "job_id", jobID, "document_id", documentID, "error", err)
		s.fail(ctx, job, err.Error())
		return
	}

	job.Status = model.JobStatusCompleted
	job.Error = ""
	if err := s.store.Jobs().Update(ctx, job); err != nil {
		logger.Errorw("Failed to mark job completed", "job_id", jobID, "error", err)
		return
	}

	logger.Infow("Ingestion completed", "job_id", jobID, "document_id", documentID, "chunks", len(rows))
}

func (s *IngestService) fail(ctx context.Context, job *model.IngestionJob, reason string) {
	job.Status = model.JobStatusFailed
	job.Error = reason
	if err := s.store.Jobs().Update(ctx, job); err != nil {
		logger.Errorw("Failed to mark job failed", "job_id", job.ID, "error", err)
	}
}

// GetJob returns a job by id.
func (s *IngestService) GetJob(ctx context.Context, id uint64) (*model.IngestionJob, error) {
	job, err := s.store.Jobs().Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrJobNotFound
		}
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return job, nil
}

// ListJobs returns all jobs.
func (s *IngestService) ListJobs(ctx context.Context) ([]*model.IngestionJob, error) {
	jobs, err := s.store.Jobs().List(ctx)
	if err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return jobs, nil
}
