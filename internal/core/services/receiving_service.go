package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/SscSPs/procurement_accounting_app/internal/utils"
)

var receivingStatuses = []domain.ReceivingStatus{
	domain.ReceivingDraft,
	domain.ReceivingPending,
	domain.ReceivingReceived,
	domain.ReceivingPartial,
	domain.ReceivingCancelled,
}

var receivingFlow = transitions[domain.ReceivingStatus]{
	domain.ReceivingDraft:     {domain.ReceivingPending, domain.ReceivingPartial, domain.ReceivingReceived, domain.ReceivingCancelled},
	domain.ReceivingPending:   {domain.ReceivingDraft, domain.ReceivingPartial, domain.ReceivingReceived, domain.ReceivingCancelled},
	domain.ReceivingPartial:   {domain.ReceivingReceived, domain.ReceivingCancelled},
	domain.ReceivingReceived:  nil,
	domain.ReceivingCancelled: nil,
}

type receivingService struct {
	documentCRUD[domain.Receiving]
	orders portsrepo.DocumentReader[domain.PurchaseOrder]
	now    func() time.Time
}

// NewReceivingService creates the receiving service. orders, when non-nil, is used to reject
// receipts against unknown purchase orders.
func NewReceivingService(repo portsrepo.DocumentRepository[domain.Receiving], orders portsrepo.DocumentReader[domain.PurchaseOrder]) portssvc.ReceivingSvcFacade {
	return &receivingService{
		documentCRUD: newDocumentCRUD(repo, "receiving"),
		orders:       orders,
		now:          time.Now,
	}
}

var _ portssvc.ReceivingSvcFacade = (*receivingService)(nil)

func (s *receivingService) Create(ctx context.Context, req dto.CreateReceivingRequest, userID string) (*domain.Receiving, error) {
	rec := req.ToDomain()
	if err := requireReference(ctx, &s.BaseService, s.orders, "purchase order", rec.PurchaseOrderID); err != nil {
		return nil, err
	}
	now := s.now()
	if rec.ReceivedByUserID == "" {
		rec.ReceivedByUserID = userID
	}
	if rec.ReceivingDate.IsZero() {
		rec.ReceivingDate = now.UTC()
	}
	if rec.Status == "" {
		rec.Status = domain.ReceivingDraft
	}
	rec.ReceivingNumber = utils.GenerateDocumentNumber("REC", now)

	if err := s.create(ctx, &rec); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Receiving recorded",
		slog.String("receiving_number", rec.ReceivingNumber),
		slog.String("purchase_order_id", rec.PurchaseOrderID))
	return &rec, nil
}

func (s *receivingService) Update(ctx context.Context, id string, req dto.UpdateReceivingRequest) (*domain.Receiving, error) {
	return s.mutate(ctx, id, func(rec *domain.Receiving) error {
		req.ApplyTo(rec)
		return nil
	})
}

func (s *receivingService) UpdateStatus(ctx context.Context, id string, req dto.StatusUpdateRequest) (*domain.Receiving, error) {
	status, err := parseStatus(req.Status, receivingStatuses...)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(rec *domain.Receiving) error {
		if err := receivingFlow.check(rec.Status, status); err != nil {
			return err
		}
		rec.Status = status
		return nil
	})
}
