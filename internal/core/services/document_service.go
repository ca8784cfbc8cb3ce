package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_accounting_app/internal/core/ports/repositories"
	"github.com/SscSPs/procurement_accounting_app/internal/utils"
)

// documentCRUD implements the read, delete and locked-update operations every business
// document service shares. Services embed it and add their own create and update rules.
type documentCRUD[T any] struct {
	BaseService
	repo portsrepo.DocumentRepository[T]
	kind string
}

func newDocumentCRUD[T any](repo portsrepo.DocumentRepository[T], kind string) documentCRUD[T] {
	return documentCRUD[T]{repo: repo, kind: kind}
}

func (s *documentCRUD[T]) GetByID(ctx context.Context, id string) (*T, error) {
	if err := utils.ValidateObjectID(s.kind+" id", id); err != nil {
		return nil, err
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to get "+s.kind, slog.String("id", id))
		return nil, err
	}
	return doc, nil
}

func (s *documentCRUD[T]) List(ctx context.Context, query domain.ListQuery) (*domain.Page[T], error) {
	items, total, err := s.repo.FindAll(ctx, query)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to list "+s.kind)
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return &domain.Page[T]{Items: items, Total: total, Page: query.Page, Limit: query.Limit}, nil
}

func (s *documentCRUD[T]) Delete(ctx context.Context, id string) error {
	if err := utils.ValidateObjectID(s.kind+" id", id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logUnexpected(ctx, err, "Failed to delete "+s.kind, slog.String("id", id))
		return err
	}
	s.LogInfo(ctx, s.kind+" deleted", slog.String("id", id))
	return nil
}

// create persists doc and logs the outcome.
func (s *documentCRUD[T]) create(ctx context.Context, doc *T) error {
	if err := s.repo.Create(ctx, doc); err != nil {
		s.logUnexpected(ctx, err, "Failed to create "+s.kind)
		return err
	}
	return nil
}

// mutate validates id and applies fn under a row lock.
func (s *documentCRUD[T]) mutate(ctx context.Context, id string, fn func(doc *T) error) (*T, error) {
	if err := utils.ValidateObjectID(s.kind+" id", id); err != nil {
		return nil, err
	}
	doc, err := s.repo.Mutate(ctx, id, fn)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to update "+s.kind, slog.String("id", id))
		return nil, err
	}
	return doc, nil
}

// scan returns every document matching query regardless of paging.
func (s *documentCRUD[T]) scan(ctx context.Context, query domain.ListQuery) ([]T, error) {
	query.Page, query.Limit = 0, 0
	items, _, err := s.repo.FindAll(ctx, query)
	return items, err
}
