package repositories

import (
	"context"

	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
)

// DocumentReader defines read operations shared by every business document store.
type DocumentReader[T any] interface {
	// FindByID returns apperrors.ErrNotFound when no document has the id.
	FindByID(ctx context.Context, id string) (*T, error)

	// FindAll returns one page of matching documents and the total match count.
	// Unknown filter or sort fields fail with apperrors.ErrValidation.
	FindAll(ctx context.Context, query domain.ListQuery) ([]T, int64, error)

	// Count returns the number of documents matching the equality filter.
	Count(ctx context.Context, filter domain.Filter) (int64, error)
}

// DocumentWriter defines write operations shared by every business document store.
type DocumentWriter[T any] interface {
	// Create assigns the id and timestamps and persists doc. A taken natural key fails with
	// apperrors.ErrDuplicate.
	Create(ctx context.Context, doc *T) error

	// Update overwrites the stored document and refreshes UpdatedAt.
	Update(ctx context.Context, doc *T) error

	// Mutate locks the document, applies fn and stores the result in one transaction.
	// An error from fn aborts the write and is returned as is.
	Mutate(ctx context.Context, id string, fn func(doc *T) error) (*T, error)

	// Delete removes the document. A missing id fails with apperrors.ErrNotFound.
	Delete(ctx context.Context, id string) error
}

// DocumentRepository combines reads and writes for one document type.
type DocumentRepository[T any] interface {
	DocumentReader[T]
	DocumentWriter[T]
}
