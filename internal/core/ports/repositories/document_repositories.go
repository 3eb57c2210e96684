package repositories

import (
	"context"

	"github.com/ediba/backoffice_app/internal/core/domain"
)

// DocumentFilter narrows document listing. Nil fields match everything.
type DocumentFilter struct {
	Type *domain.DocumentType
	Year *int // matches the year of the document date
}

// DocumentReader defines read operations for customer documents.
type DocumentReader interface {
	// FindDocumentByID retrieves a document by its formatted number.
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)

	// ListDocuments retrieves all documents matching the filter, newest first.
	ListDocuments(ctx context.Context, filter DocumentFilter) ([]domain.Document, error)
}

// DocumentWriter defines write operations for customer documents.
type DocumentWriter interface {
	// SaveDocument persists a new document.
	SaveDocument(ctx context.Context, doc domain.Document) error

	// UpdateDocument replaces the stored state of an existing document.
	UpdateDocument(ctx context.Context, doc domain.Document) error

	// DeleteDocument removes a document by its formatted number.
	DeleteDocument(ctx context.Context, documentID string) error
}

// DocumentRepositoryFacade combines all document repository interfaces.
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}
