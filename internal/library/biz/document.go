package biz

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/luminalib/luminalib/internal/library/store"
	"github.com/luminalib/luminalib/internal/model"
	"github.com/luminalib/luminalib/pkg/errors"
)

// DocumentService manages user-owned ingestion documents.
type DocumentService struct {
	store store.Factory
}

// NewDocumentService creates the document service.
func NewDocumentService(s store.Factory) *DocumentService {
	return &DocumentService{store: s}
}

// Create stores a new document for the owner.
func (s *DocumentService) Create(ctx context.Context, ownerID uint64, title, content string) (*model.Document, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.ErrInvalidParam.WithMessage("title is required")
	}

	doc := &model.Document{
		OwnerID: ownerID,
		Title:   title,
		Content: content,
	}
	if err := s.store.Documents().Create(ctx, doc); err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return doc, nil
}

// List returns the owner's documents.
func (s *DocumentService) List(ctx context.Context, ownerID uint64) ([]*model.Document, error) {
	docs, err := s.store.Documents().ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return docs, nil
}

// Get returns a document owned by the caller.
func (s *DocumentService) Get(ctx context.Context, ownerID, id uint64) (*model.Document, error) {
	doc, err := s.store.Documents().Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrDocumentNotFound
		}
		return nil, errors.ErrDatabase.WithCause(err)
	}
	if doc.OwnerID != ownerID {
		return nil, errors.ErrDocumentNotFound
	}
	return doc, nil
}

// Delete removes a document owned by the caller. Chunks cascade; job
// records stay behind.
func (s *DocumentService) Delete(ctx context.Context, ownerID, id uint64) error {
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.store.Documents().Delete(ctx, id); err != nil {
		return errors.ErrDatabase.WithCause(err)
	}
	return nil
}
