package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/SscSPs/procurement_accounting_app/internal/utils"
	"github.com/shopspring/decimal"
)

var purchaseOrderStatuses = []domain.PurchaseOrderStatus{
	domain.PurchaseOrderDraft,
	domain.PurchaseOrderPending,
	domain.PurchaseOrderSent,
	domain.PurchaseOrderInvoiced,
	domain.PurchaseOrderReceived,
	domain.PurchaseOrderCancelled,
}

var purchaseOrderFlow = transitions[domain.PurchaseOrderStatus]{
	domain.PurchaseOrderDraft:     {domain.PurchaseOrderPending, domain.PurchaseOrderSent, domain.PurchaseOrderCancelled},
	domain.PurchaseOrderPending:   {domain.PurchaseOrderDraft, domain.PurchaseOrderSent, domain.PurchaseOrderCancelled},
	domain.PurchaseOrderSent:      {domain.PurchaseOrderReceived, domain.PurchaseOrderInvoiced, domain.PurchaseOrderCancelled},
	domain.PurchaseOrderReceived:  {domain.PurchaseOrderInvoiced},
	domain.PurchaseOrderInvoiced:  {domain.PurchaseOrderReceived},
	domain.PurchaseOrderCancelled: nil,
}

type purchaseOrderService struct {
	documentCRUD[domain.PurchaseOrder]
	requests portsrepo.DocumentReader[domain.PurchaseRequest]
	now      func() time.Time
}

// PurchaseOrderServiceOption is a functional option for configuring the purchase order service
type PurchaseOrderServiceOption func(*purchaseOrderService)

// WithPurchaseRequestLookup makes Create reject orders that reference an unknown purchase request.
func WithPurchaseRequestLookup(repo portsrepo.DocumentReader[domain.PurchaseRequest]) PurchaseOrderServiceOption {
	return func(s *purchaseOrderService) {
		s.requests = repo
	}
}

func NewPurchaseOrderService(repo portsrepo.DocumentRepository[domain.PurchaseOrder], options ...PurchaseOrderServiceOption) portssvc.PurchaseOrderSvcFacade {
	svc := &purchaseOrderService{
		documentCRUD: newDocumentCRUD(repo, "purchase order"),
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PurchaseOrderSvcFacade = (*purchaseOrderService)(nil)

func (s *purchaseOrderService) Create(ctx context.Context, req dto.CreatePurchaseOrderRequest, userID string) (*domain.PurchaseOrder, error) {
	po, given := req.ToDomain()
	if po.Date.IsZero() {
		return nil, apperrors.Validationf("date is required")
	}
	if err := requireReference(ctx, &s.BaseService, s.requests, "purchase request", po.PurchaseRequestID); err != nil {
		return nil, err
	}
	if po.RequestedByUserID == "" {
		po.RequestedByUserID = userID
	}
	if po.Currency == "" {
		po.Currency = utils.DefaultCurrency
	}
	if po.Status == "" {
		po.Status = domain.PurchaseOrderDraft
	}
	applyOrderTotals(&po, given)
	po.PONumber = utils.GenerateDocumentNumber("PO", s.now())

	if err := s.create(ctx, &po); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Purchase order created",
		slog.String("po_number", po.PONumber),
		slog.String("grand_total", utils.FormatAmount(po.GrandTotal, po.Currency)))
	return &po, nil
}

func (s *purchaseOrderService) Update(ctx context.Context, id string, req dto.UpdatePurchaseOrderRequest) (*domain.PurchaseOrder, error) {
	return s.mutate(ctx, id, func(po *domain.PurchaseOrder) error {
		applyOrderTotals(po, req.ApplyTo(po))
		return nil
	})
}

func (s *purchaseOrderService) UpdateStatus(ctx context.Context, id string, req dto.StatusUpdateRequest) (*domain.PurchaseOrder, error) {
	status, err := parseStatus(req.Status, purchaseOrderStatuses...)
	if err != nil {
		return nil, err
	}
	po, err := s.mutate(ctx, id, func(po *domain.PurchaseOrder) error {
		if err := purchaseOrderFlow.check(po.Status, status); err != nil {
			return err
		}
		po.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Purchase order status changed", slog.String("po_number", po.PONumber), slog.String("status", string(status)))
	return po, nil
}

// applyOrderTotals derives the totals the caller did not supply from the items.
func applyOrderTotals(po *domain.PurchaseOrder, given dto.POTotals) {
	if !given.HasQuantity {
		po.TotalQuantity = sumDecimals(po.Items, func(it domain.PurchaseOrderItem) decimal.Decimal { return it.Quantity })
	}
	if !given.HasGrandTotal {
		po.GrandTotal = sumDecimals(po.Items, func(it domain.PurchaseOrderItem) decimal.Decimal { return it.Amount }).
			Add(po.TotalTaxesAndCharges)
	}
}
