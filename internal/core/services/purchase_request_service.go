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
)

var purchaseRequestStatuses = []domain.PurchaseRequestStatus{
	domain.PurchaseRequestDraft,
	domain.PurchaseRequestPending,
	domain.PurchaseRequestApproved,
	domain.PurchaseRequestRejected,
	domain.PurchaseRequestCancelled,
}

var purchaseRequestFlow = transitions[domain.PurchaseRequestStatus]{
	domain.PurchaseRequestDraft:     {domain.PurchaseRequestPending, domain.PurchaseRequestApproved, domain.PurchaseRequestRejected, domain.PurchaseRequestCancelled},
	domain.PurchaseRequestPending:   {domain.PurchaseRequestDraft, domain.PurchaseRequestApproved, domain.PurchaseRequestRejected, domain.PurchaseRequestCancelled},
	domain.PurchaseRequestApproved:  {domain.PurchaseRequestCancelled},
	domain.PurchaseRequestRejected:  {domain.PurchaseRequestDraft, domain.PurchaseRequestPending},
	domain.PurchaseRequestCancelled: nil,
}

type purchaseRequestService struct {
	documentCRUD[domain.PurchaseRequest]
	now func() time.Time
}

func NewPurchaseRequestService(repo portsrepo.DocumentRepository[domain.PurchaseRequest]) portssvc.PurchaseRequestSvcFacade {
	return &purchaseRequestService{
		documentCRUD: newDocumentCRUD(repo, "purchase request"),
		now:          time.Now,
	}
}

var _ portssvc.PurchaseRequestSvcFacade = (*purchaseRequestService)(nil)

func (s *purchaseRequestService) Create(ctx context.Context, req dto.CreatePurchaseRequestRequest, userID string) (*domain.PurchaseRequest, error) {
	pr, hasTotal := req.ToDomain()
	if pr.TransactionDate.IsZero() {
		return nil, apperrors.Validationf("transaction date is required")
	}
	if pr.RequestedByUserID == "" {
		pr.RequestedByUserID = userID
	}
	if pr.Priority == "" {
		pr.Priority = domain.PriorityMedium
	}
	if pr.Status == "" {
		pr.Status = domain.PurchaseRequestDraft
	}
	if !hasTotal {
		pr.TotalAmount = purchaseRequestTotal(pr.Items)
	}
	pr.PRNumber = utils.GenerateDocumentNumber("PR", s.now())

	if err := s.create(ctx, &pr); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Purchase request created",
		slog.String("pr_number", pr.PRNumber),
		slog.String("department", pr.Department))
	return &pr, nil
}

func (s *purchaseRequestService) Update(ctx context.Context, id string, req dto.UpdatePurchaseRequestRequest) (*domain.PurchaseRequest, error) {
	return s.mutate(ctx, id, func(pr *domain.PurchaseRequest) error {
		if req.ApplyTo(pr) {
			pr.TotalAmount = purchaseRequestTotal(pr.Items)
		}
		return nil
	})
}

func (s *purchaseRequestService) UpdateStatus(ctx context.Context, id string, req dto.StatusUpdateRequest, userID string) (*domain.PurchaseRequest, error) {
	status, err := parseStatus(req.Status, purchaseRequestStatuses...)
	if err != nil {
		return nil, err
	}
	pr, err := s.mutate(ctx, id, func(pr *domain.PurchaseRequest) error {
		if err := purchaseRequestFlow.check(pr.Status, status); err != nil {
			return err
		}
		pr.Status = status
		if req.ApprovalNotes != "" {
			pr.ApprovalNotes = req.ApprovalNotes
		}
		if status == domain.PurchaseRequestApproved || status == domain.PurchaseRequestRejected {
			now := s.now().UTC()
			pr.ApprovedByUserID = userID
			pr.ApprovedAt = &now
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Purchase request status changed",
		slog.String("pr_number", pr.PRNumber),
		slog.String("status", string(status)))
	return pr, nil
}
