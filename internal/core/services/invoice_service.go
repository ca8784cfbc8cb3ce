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

// defaultPaymentTermDays is used for the due date when an invoice arrives without one.
const defaultPaymentTermDays = 30

var invoiceStatuses = []domain.InvoiceStatus{
	domain.InvoiceDraft,
	domain.InvoicePending,
	domain.InvoiceApproved,
	domain.InvoicePaid,
	domain.InvoiceOverdue,
	domain.InvoiceCancelled,
}

var invoiceFlow = transitions[domain.InvoiceStatus]{
	domain.InvoiceDraft:     {domain.InvoicePending, domain.InvoiceApproved, domain.InvoiceCancelled},
	domain.InvoicePending:   {domain.InvoiceDraft, domain.InvoiceApproved, domain.InvoiceCancelled},
	domain.InvoiceApproved:  {domain.InvoicePaid, domain.InvoiceOverdue, domain.InvoiceCancelled},
	domain.InvoiceOverdue:   {domain.InvoicePaid, domain.InvoiceCancelled},
	domain.InvoicePaid:      nil,
	domain.InvoiceCancelled: nil,
}

var hundred = decimal.NewFromInt(100)

type invoiceService struct {
	documentCRUD[domain.Invoice]
	orders portsrepo.DocumentReader[domain.PurchaseOrder]
	now    func() time.Time
}

// NewInvoiceService creates the invoice service. orders, when non-nil, is used to reject
// invoices against unknown purchase orders.
func NewInvoiceService(repo portsrepo.DocumentRepository[domain.Invoice], orders portsrepo.DocumentReader[domain.PurchaseOrder]) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		documentCRUD: newDocumentCRUD(repo, "invoice"),
		orders:       orders,
		now:          time.Now,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) Create(ctx context.Context, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error) {
	inv := req.ToDomain()
	if err := requireReference(ctx, &s.BaseService, s.orders, "purchase order", inv.PurchaseOrderID); err != nil {
		return nil, err
	}
	now := s.now()
	if inv.InvoiceDate.IsZero() {
		inv.InvoiceDate = now.UTC()
	}
	if inv.DueDate.IsZero() {
		inv.DueDate = inv.InvoiceDate.AddDate(0, 0, defaultPaymentTermDays)
	}
	if inv.DueDate.Before(inv.InvoiceDate) {
		return nil, apperrors.Validationf("due date cannot be before the invoice date")
	}
	if inv.Status == "" {
		inv.Status = domain.InvoiceDraft
	}
	inv.CreatedByUserID = userID
	inv.PaidAmount = decimal.Zero
	computeInvoiceTotals(&inv)
	inv.InvoiceNumber = utils.GenerateDocumentNumber("INV", now)

	if err := s.create(ctx, &inv); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_number", inv.InvoiceNumber),
		slog.String("total", utils.FormatAmount(inv.TotalAmount, utils.DefaultCurrency)))
	return &inv, nil
}

func (s *invoiceService) Update(ctx context.Context, id string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	return s.mutate(ctx, id, func(inv *domain.Invoice) error {
		if req.ApplyTo(inv) {
			computeInvoiceTotals(inv)
		}
		if inv.DueDate.Before(inv.InvoiceDate) {
			return apperrors.Validationf("due date cannot be before the invoice date")
		}
		return nil
	})
}

func (s *invoiceService) UpdateStatus(ctx context.Context, id string, req dto.StatusUpdateRequest, userID string) (*domain.Invoice, error) {
	status, err := parseStatus(req.Status, invoiceStatuses...)
	if err != nil {
		return nil, err
	}
	inv, err := s.mutate(ctx, id, func(inv *domain.Invoice) error {
		if err := invoiceFlow.check(inv.Status, status); err != nil {
			return err
		}
		inv.Status = status
		if status == domain.InvoiceApproved {
			now := s.now().UTC()
			inv.ApprovedByUserID = userID
			inv.ApprovedAt = &now
		}
		if status == domain.InvoiceOverdue && inv.PaymentStatus != domain.PaymentPaid {
			inv.PaymentStatus = domain.PaymentOverdue
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Invoice status changed", slog.String("invoice_number", inv.InvoiceNumber), slog.String("status", string(status)))
	return inv, nil
}

func (s *invoiceService) RecordPayment(ctx context.Context, id string, payment domain.InvoicePayment) (*domain.Invoice, error) {
	if !payment.Amount.IsPositive() {
		return nil, apperrors.Validationf("payment amount must be greater than zero")
	}
	paidAt := s.now().UTC()
	if payment.Date != nil {
		paidAt = *payment.Date
	}

	inv, err := s.mutate(ctx, id, func(inv *domain.Invoice) error {
		applyPayment(inv, payment.Amount)
		if payment.Method != "" {
			inv.PaymentMethod = payment.Method
		}
		if payment.Reference != "" {
			inv.PaymentReference = payment.Reference
		}
		inv.PaymentDate = &paidAt
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Invoice payment recorded",
		slog.String("invoice_number", inv.InvoiceNumber),
		slog.String("amount", utils.FormatAmount(payment.Amount, utils.DefaultCurrency)),
		slog.String("payment_status", string(inv.PaymentStatus)))
	return inv, nil
}

// computeInvoiceTotals fills missing line tax amounts from the line rate (a percentage) and
// recomputes the invoice totals, outstanding amount and payment status.
func computeInvoiceTotals(inv *domain.Invoice) {
	subtotal, tax := decimal.Zero, decimal.Zero
	for i := range inv.Items {
		it := &inv.Items[i]
		if it.TaxAmount == nil && it.TaxRate != nil {
			t := it.Amount.Mul(*it.TaxRate).Div(hundred).Round(2)
			it.TaxAmount = &t
		}
		subtotal = subtotal.Add(it.Amount)
		if it.TaxAmount != nil {
			tax = tax.Add(*it.TaxAmount)
		}
	}
	inv.Subtotal = subtotal
	inv.TotalTax = tax
	inv.TotalAmount = subtotal.Add(tax)
	applyPayment(inv, decimal.Zero)
}

// applyPayment adds amount to the paid total and derives the outstanding amount and payment status.
func applyPayment(inv *domain.Invoice, amount decimal.Decimal) {
	inv.PaidAmount = inv.PaidAmount.Add(amount)
	inv.OutstandingAmount = inv.TotalAmount.Sub(inv.PaidAmount)
	switch {
	case inv.PaidAmount.GreaterThanOrEqual(inv.TotalAmount) && inv.TotalAmount.IsPositive():
		inv.PaymentStatus = domain.PaymentPaid
	case inv.PaidAmount.IsPositive():
		inv.PaymentStatus = domain.PaymentPartial
	case inv.PaymentStatus != domain.PaymentOverdue:
		inv.PaymentStatus = domain.PaymentUnpaid
	}
}
