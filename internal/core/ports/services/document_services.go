package services

import (
	"context"

	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
)

// DocumentReaderSvc is the read side shared by every business document service.
type DocumentReaderSvc[T any] interface {
	// GetByID validates the id format before looking the document up.
	GetByID(ctx context.Context, id string) (*T, error)

	List(ctx context.Context, query domain.ListQuery) (*domain.Page[T], error)
}

// DocumentDeleterSvc removes a business document by id.
type DocumentDeleterSvc interface {
	Delete(ctx context.Context, id string) error
}
