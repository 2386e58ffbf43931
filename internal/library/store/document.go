package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/luminalib/luminalib/internal/model"
)

type documents struct {
	db *gorm.DB
}

func newDocuments(db *gorm.DB) *documents {
	return &documents{db}
}

// Create creates a new document.
func (d *documents) Create(ctx context.Context, doc *model.Document) error {
	return d.db.WithContext(ctx).Create(doc).Error
}

// Get retrieves a document by id.
func (d *documents) Get(ctx context.Context, id uint64) (*model.Document, error) {
	var doc model.Document
	if err := d.db.WithContext(ctx).First(&doc, id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListByOwner lists a user's documents ordered by id.
func (d *documents) ListByOwner(ctx context.Context, ownerID uint64) ([]*model.Document, error) {
	var list []*model.Document
	if err := d.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Delete removes a document. Job rows stay behind as an audit trail.
func (d *documents) Delete(ctx context.Context, id uint64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", id).Delete(&model.DocumentChunk{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Document{}, id).Error
	})
}

type chunks struct {
	db *gorm.DB
}

func newChunks(db *gorm.DB) *chunks {
	return &chunks{db}
}

// ReplaceForDocument swaps the document's chunk set in one transaction.
// 重复摄取不会累积旧块.
func (c *chunks) ReplaceForDocument(ctx context.Context, documentID uint64, list []*model.DocumentChunk) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", documentID).Delete(&model.DocumentChunk{}).Error; err != nil {
			return err
		}
		if len(list) == 0 {
			return nil
		}
		return tx.Create(list).Error
	})
}

// ListByDocument lists a document's chunks in index order.
func (c *chunks) ListByDocument(ctx context.Context, documentID uint64) ([]*model.DocumentChunk, error) {
	var list []*model.DocumentChunk
	if err := c.db.WithContext(ctx).Where("document_id = ?", documentID).
		Order("chunk_index").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListAll lists every chunk in the corpus in deterministic order.
func (c *chunks) ListAll(ctx context.Context) ([]*model.DocumentChunk, error) {
	var list []*model.DocumentChunk
	if err := c.db.WithContext(ctx).Order("document_id, chunk_index").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteByDocument removes a document's chunks.
func (c *chunks) DeleteByDocument(ctx context.Context, documentID uint64) error {
	return c.db.WithContext(ctx).Where("document_id = ?", documentID).Delete(&model.DocumentChunk{}).Error
}

type jobs struct {
	db *gorm.DB
}

func newJobs(db *gorm.DB) *jobs {
	return &jobs{db}
}

// Create creates a new ingestion job.
func (j *jobs) Create(ctx context.Context, job *model.IngestionJob) error {
	return j.db.WithContext(ctx).Create(job).Error
}

// Update persists a job's state transition.
func (j *jobs) Update(ctx context.Context, job *model.IngestionJob) error {
	return j.db.WithContext(ctx).Save(job).Error
}

// Get retrieves a job by id.
func (j *jobs) Get(ctx context.Context, id uint64) (*model.IngestionJob, error) {
	var job model.IngestionJob
	if err := j.db.WithContext(ctx).First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// List lists all jobs ordered by id.
func (j *jobs) List(ctx context.Context) ([]*model.IngestionJob, error) {
	var list []*model.IngestionJob
	if err := j.db.WithContext(ctx).Order("id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
