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

var paymentVoucherStatuses = []domain.PaymentVoucherStatus{
	domain.PaymentVoucherDraft,
	domain.PaymentVoucherSubmitted,
	domain.PaymentVoucherApproved,
	domain.PaymentVoucherPaid,
	domain.PaymentVoucherCancelled,
}

var paymentVoucherFlow = transitions[domain.PaymentVoucherStatus]{
	domain.PaymentVoucherDraft:     {domain.PaymentVoucherSubmitted, domain.PaymentVoucherApproved, domain.PaymentVoucherCancelled},
	domain.PaymentVoucherSubmitted: {domain.PaymentVoucherDraft, domain.PaymentVoucherApproved, domain.PaymentVoucherCancelled},
	domain.PaymentVoucherApproved:  {domain.PaymentVoucherPaid, domain.PaymentVoucherCancelled},
	domain.PaymentVoucherPaid:      nil,
	domain.PaymentVoucherCancelled: nil,
}

type paymentVoucherService struct {
	documentCRUD[domain.PaymentVoucher]
	now func() time.Time
}

func NewPaymentVoucherService(repo portsrepo.DocumentRepository[domain.PaymentVoucher]) portssvc.PaymentVoucherSvcFacade {
	return &paymentVoucherService{
		documentCRUD: newDocumentCRUD(repo, "payment voucher"),
		now:          time.Now,
	}
}

var _ portssvc.PaymentVoucherSvcFacade = (*paymentVoucherService)(nil)

func (s *paymentVoucherService) Create(ctx context.Context, req dto.CreatePaymentVoucherRequest, userID string) (*domain.PaymentVoucher, error) {
	pv := req.ToDomain()
	if err := validatePaymentVoucher(&pv); err != nil {
		return nil, err
	}
	applyVoucherTotals(&pv)
	if pv.Status == "" {
		pv.Status = domain.PaymentVoucherDraft
	}
	if pv.AccountCurrency == "" {
		pv.AccountCurrency = utils.DefaultCurrency
	}
	pv.PVNumber = utils.GenerateSequencedNumber("PV", s.now())
	pv.CreatedBy = userID
	pv.UpdatedBy = userID

	if err := s.create(ctx, &pv); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Payment voucher created",
		slog.String("pv_number", pv.PVNumber),
		slog.String("grand_total", utils.FormatAmount(pv.GrandTotal, pv.AccountCurrency)))
	return &pv, nil
}

func (s *paymentVoucherService) Update(ctx context.Context, id string, req dto.UpdatePaymentVoucherRequest, userID string) (*domain.PaymentVoucher, error) {
	return s.mutate(ctx, id, func(pv *domain.PaymentVoucher) error {
		req.ApplyTo(pv)
		if err := validatePaymentVoucher(pv); err != nil {
			return err
		}
		applyVoucherTotals(pv)
		pv.UpdatedBy = userID
		return nil
	})
}

func (s *paymentVoucherService) UpdateStatus(ctx context.Context, id string, req dto.StatusUpdateRequest, userID string) (*domain.PaymentVoucher, error) {
	status, err := parseStatus(req.Status, paymentVoucherStatuses...)
	if err != nil {
		return nil, err
	}
	pv, err := s.mutate(ctx, id, func(pv *domain.PaymentVoucher) error {
		if err := paymentVoucherFlow.check(pv.Status, status); err != nil {
			return err
		}
		pv.Status = status
		if status == domain.PaymentVoucherApproved {
			pv.ApprovedBy = userID
		}
		if req.ApprovalNotes != "" {
			pv.Remarks = req.ApprovalNotes
		}
		pv.UpdatedBy = userID
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Payment voucher status changed", slog.String("pv_number", pv.PVNumber), slog.String("status", string(status)))
	return pv, nil
}

func validatePaymentVoucher(pv *domain.PaymentVoucher) error {
	required := []struct {
		name  string
		value string
	}{
		{"vendor", pv.Vendor},
		{"mode of payment", pv.ModeOfPayment},
		{"payment type", pv.PaymentType},
		{"party type", pv.PartyType},
		{"party", pv.Party},
		{"account paid from", pv.AccountPaidFrom},
	}
	for _, f := range required {
		if f.value == "" {
			return apperrors.Validationf("%s is required", f.name)
		}
	}
	if pv.PaymentDate.IsZero() {
		return apperrors.Validationf("payment date is required")
	}
	if len(pv.AdvanceTaxesAndCharges) == 0 {
		return apperrors.Validationf("at least one tax or charge line is required")
	}
	return nil
}

// applyVoucherTotals sets both totals to the sum of the charge lines.
func applyVoucherTotals(pv *domain.PaymentVoucher) {
	pv.TotalTaxesAndCharges = sumDecimals(pv.AdvanceTaxesAndCharges, func(c domain.TaxCharge) decimal.Decimal { return c.TotalAmount })
	pv.GrandTotal = pv.TotalTaxesAndCharges
}
