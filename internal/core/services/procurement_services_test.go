package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/SscSPs/procurement_accounting_app/internal/core/services"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

var feb3 = dto.Date{Time: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)}

// --- Purchase requests ---

func TestPurchaseRequestService_CreateDefaults(t *testing.T) {
	repo := new(MockDocumentRepository[domain.PurchaseRequest])
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	pr, err := services.NewPurchaseRequestService(repo).Create(context.Background(), dto.CreatePurchaseRequestRequest{
		Purpose:         "Laptops",
		Department:      "IT",
		TransactionDate: feb3,
		Items: []dto.PurchaseRequestItemRequest{
			{ItemCode: "LAP", Quantity: dec("2"), EstimatedCost: decPtr("1500")},
			{ItemCode: "BAG", Quantity: dec("2")},
		},
	}, testUserID)

	require.NoError(t, err)
	assert.Equal(t, testUserID, pr.RequestedByUserID)
	assert.Equal(t, domain.PriorityMedium, pr.Priority)
	assert.Equal(t, domain.PurchaseRequestDraft, pr.Status)
	assert.True(t, pr.TotalAmount.Equal(dec("3000")))
	assert.True(t, strings.HasPrefix(pr.PRNumber, "PR-"))
}

func TestPurchaseRequestService_CreateRequiresDate(t *testing.T) {
	repo := new(MockDocumentRepository[domain.PurchaseRequest])

	_, err := services.NewPurchaseRequestService(repo).Create(context.Background(), dto.CreatePurchaseRequestRequest{
		Purpose:    "Laptops",
		Department: "IT",
		Items:      []dto.PurchaseRequestItemRequest{{ItemCode: "LAP"}},
	}, testUserID)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPurchaseRequestService_UpdateStatusStampsApprover(t *testing.T) {
	for _, tc := range []struct {
		status  string
		stamped bool
	}{
		{"approved", true},
		{"Rejected", true},
		{"Pending", false},
	} {
		t.Run(tc.status, func(t *testing.T) {
			repo := new(MockDocumentRepository[domain.PurchaseRequest])
			stored := &domain.PurchaseRequest{Document: domain.Document{ID: testDocID}, Status: domain.PurchaseRequestDraft}
			repo.On("Mutate", mock.Anything, testDocID).Return(stored, nil).Once()

			pr, err := services.NewPurchaseRequestService(repo).UpdateStatus(context.Background(), testDocID,
				dto.StatusUpdateRequest{Status: tc.status, ApprovalNotes: "ok"}, testUserID)

			require.NoError(t, err)
			assert.True(t, strings.EqualFold(tc.status, string(pr.Status)))
			assert.Equal(t, "ok", pr.ApprovalNotes)
			if tc.stamped {
				assert.Equal(t, testUserID, pr.ApprovedByUserID)
				assert.NotNil(t, pr.ApprovedAt)
			} else {
				assert.Empty(t, pr.ApprovedByUserID)
				assert.Nil(t, pr.ApprovedAt)
			}
		})
	}
}

func TestPurchaseRequestService_UpdateStatusRejectsUnknown(t *testing.T) {
	repo := new(MockDocumentRepository[domain.PurchaseRequest])

	_, err := services.NewPurchaseRequestService(repo).UpdateStatus(context.Background(), testDocID,
		dto.StatusUpdateRequest{Status: "Shipped"}, testUserID)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "Mutate", mock.Anything, mock.Anything)
}

func TestPurchaseRequestService_UpdateStatusRejectsTransitionOutOfCancelled(t *testing.T) {
	repo := new(MockDocumentRepository[domain.PurchaseRequest])
	stored := &domain.PurchaseRequest{Document: domain.Document{ID: testDocID}, Status: domain.PurchaseRequestCancelled}
	repo.On("Mutate", mock.Anything, testDocID).Return(stored, nil).Once()

	pr, err := services.NewPurchaseRequestService(repo).UpdateStatus(context.Background(), testDocID,
		dto.StatusUpdateRequest{Status: "Approved", ApprovalNotes: "reopen"}, testUserID)

	assert.Nil(t, pr)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, domain.PurchaseRequestCancelled, stored.Status)
	assert.Empty(t, stored.ApprovedByUserID)
	assert.Empty(t, stored.ApprovalNotes)
}

func TestPurchaseOrderService_UpdateStatusTransitions(t *testing.T) {
	for _, tc := range []struct {
		from domain.PurchaseOrderStatus
		to   string
		ok   bool
	}{
		{domain.PurchaseOrderDraft, "Sent", true},
		{domain.PurchaseOrderSent, "Received", true},
		{domain.PurchaseOrderSent, "Sent", true},
		{domain.PurchaseOrderReceived, "Draft", false},
		{domain.PurchaseOrderCancelled, "Pending", false},
	} {
		t.Run(string(tc.from)+"->"+tc.to, func(t *testing.T) {
			repo := new(MockDocumentRepository[domain.PurchaseOrder])
			stored := &domain.PurchaseOrder{Document: domain.Document{ID: testDocID}, Status: tc.from}
			repo.On("Mutate", mock.Anything, testDocID).Return(stored, nil).Once()

			po, err := services.NewPurchaseOrderService(repo).UpdateStatus(context.Background(), testDocID,
				dto.StatusUpdateRequest{Status: tc.to})

			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, tc.to, string(po.Status))
				return
			}
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Equal(t, tc.from, stored.Status)
		})
	}
}

// --- Purchase orders and receiving ---

func TestPurchaseOrderService_DerivesTotals(t *testing.T) {
	repo := new(MockDocumentRepository[domain.PurchaseOrder])
	requests := new(MockDocumentRepository[domain.PurchaseRequest])
	requests.On("FindByID", mock.Anything, testDocID).Return(&domain.PurchaseRequest{}, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	po, err := services.NewPurchaseOrderService(repo, services.WithPurchaseRequestLookup(requests)).Create(context.Background(), dto.CreatePurchaseOrderRequest{
		Date:                 feb3,
		VendorID:             "V-1",
		CompanyID:            "ACME",
		PurchaseRequestID:    testDocID,
		TotalTaxesAndCharges: decPtr("12"),
		Items: []dto.PurchaseOrderItemRequest{
			{ItemCode: "A", Quantity: dec("2"), Rate: dec("50")},
			{ItemCode: "B", Quantity: dec("1"), Rate: dec("30"), Amount: decPtr("25")},
		},
	}, testUserID)

	require.NoError(t, err)
	assert.True(t, po.TotalQuantity.Equal(dec("3")))
	assert.True(t, po.GrandTotal.Equal(dec("137")))
	assert.Equal(t, "RM", po.Currency)
	assert.Equal(t, domain.PurchaseOrderDraft, po.Status)
	requests.AssertExpectations(t)
}

func TestPurchaseOrderService_UnknownPurchaseRequest(t *testing.T) {
	repo := new(MockDocumentRepository[domain.PurchaseOrder])
	requests := new(MockDocumentRepository[domain.PurchaseRequest])
	requests.On("FindByID", mock.Anything, testDocID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := services.NewPurchaseOrderService(repo, services.WithPurchaseRequestLookup(requests)).Create(context.Background(), dto.CreatePurchaseOrderRequest{
		Date:              feb3,
		VendorID:          "V-1",
		CompanyID:         "ACME",
		PurchaseRequestID: testDocID,
		Items:             []dto.PurchaseOrderItemRequest{{ItemCode: "A"}},
	}, testUserID)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReceivingService_RequiresExistingOrder(t *testing.T) {
	repo := new(MockDocumentRepository[domain.Receiving])
	orders := new(MockDocumentRepository[domain.PurchaseOrder])
	orders.On("FindByID", mock.Anything, testPOID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := services.NewReceivingService(repo, orders).Create(context.Background(), dto.CreateReceivingRequest{
		PurchaseOrderID: testPOID,
		VendorID:        "V-1",
		WarehouseID:     "WH-1",
		Items:           []dto.ReceivingItemRequest{{ItemCode: "A", QuantityReceived: dec("1")}},
	}, testUserID)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// --- Invoices ---

type InvoiceServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	repo   *MockDocumentRepository[domain.Invoice]
	orders *MockDocumentRepository[domain.PurchaseOrder]
}

func (s *InvoiceServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = new(MockDocumentRepository[domain.Invoice])
	s.orders = new(MockDocumentRepository[domain.PurchaseOrder])
}

func (s *InvoiceServiceTestSuite) TestCreate_ComputesTotals() {
	s.orders.On("FindByID", mock.Anything, testPOID).Return(&domain.PurchaseOrder{}, nil).Once()
	s.repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	inv, err := services.NewInvoiceService(s.repo, s.orders).Create(s.ctx, dto.CreateInvoiceRequest{
		PurchaseOrderID: testPOID,
		VendorID:        "V-1",
		InvoiceDate:     feb3,
		Items: []dto.InvoiceItemRequest{
			{ItemCode: "A", Quantity: dec("2"), Rate: dec("100"), TaxRate: decPtr("6")},
			{ItemCode: "B", Quantity: dec("1"), Rate: dec("50"), TaxAmount: decPtr("5")},
		},
	}, testUserID)

	s.Require().NoError(err)
	s.True(inv.Subtotal.Equal(dec("250")))
	s.True(inv.TotalTax.Equal(dec("17")))
	s.True(inv.TotalAmount.Equal(dec("267")))
	s.True(inv.OutstandingAmount.Equal(dec("267")))
	s.True(inv.PaidAmount.IsZero())
	s.Equal(domain.PaymentUnpaid, inv.PaymentStatus)
	s.Equal(domain.InvoiceDraft, inv.Status)
	s.Equal(feb3.Time.AddDate(0, 0, 30), inv.DueDate)
	s.True(strings.HasPrefix(inv.InvoiceNumber, "INV-"))
}

func (s *InvoiceServiceTestSuite) TestRecordPayment_PartialThenPaid() {
	stored := &domain.Invoice{
		Document:          domain.Document{ID: testDocID},
		TotalAmount:       dec("300"),
		PaidAmount:        decimal.Zero,
		OutstandingAmount: dec("300"),
		PaymentStatus:     domain.PaymentUnpaid,
	}
	s.repo.On("Mutate", mock.Anything, testDocID).Return(stored, nil).Twice()
	svc := services.NewInvoiceService(s.repo, nil)

	inv, err := svc.RecordPayment(s.ctx, testDocID, domain.InvoicePayment{Amount: dec("100"), Method: "Bank Transfer"})
	s.Require().NoError(err)
	s.Equal(domain.PaymentPartial, inv.PaymentStatus)
	s.True(inv.OutstandingAmount.Equal(dec("200")))
	s.Equal("Bank Transfer", inv.PaymentMethod)
	s.NotNil(inv.PaymentDate)

	inv, err = svc.RecordPayment(s.ctx, testDocID, domain.InvoicePayment{Amount: dec("200"), Reference: "TX-9"})
	s.Require().NoError(err)
	s.Equal(domain.PaymentPaid, inv.PaymentStatus)
	s.True(inv.OutstandingAmount.IsZero())
	s.True(inv.PaidAmount.Equal(dec("300")))
	s.Equal("Bank Transfer", inv.PaymentMethod)
	s.Equal("TX-9", inv.PaymentReference)
}

func (s *InvoiceServiceTestSuite) TestRecordPayment_RejectsNonPositive() {
	_, err := services.NewInvoiceService(s.repo, nil).RecordPayment(s.ctx, testDocID, domain.InvoicePayment{Amount: dec("0")})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.repo.AssertNotCalled(s.T(), "Mutate", mock.Anything, mock.Anything)
}

func (s *InvoiceServiceTestSuite) TestUpdateStatus_ApprovedStampsApprover() {
	stored := &domain.Invoice{Document: domain.Document{ID: testDocID}, Status: domain.InvoicePending}
	s.repo.On("Mutate", mock.Anything, testDocID).Return(stored, nil).Once()

	inv, err := services.NewInvoiceService(s.repo, nil).UpdateStatus(s.ctx, testDocID, dto.StatusUpdateRequest{Status: "Approved"}, testUserID)

	s.Require().NoError(err)
	s.Equal(domain.InvoiceApproved, inv.Status)
	s.Equal(testUserID, inv.ApprovedByUserID)
	s.NotNil(inv.ApprovedAt)
}

func (s *InvoiceServiceTestSuite) TestUpdateStatus_PaidInvoiceCannotReopen() {
	stored := &domain.Invoice{Document: domain.Document{ID: testDocID}, Status: domain.InvoicePaid, PaymentStatus: domain.PaymentPaid}
	s.repo.On("Mutate", mock.Anything, testDocID).Return(stored, nil).Once()

	_, err := services.NewInvoiceService(s.repo, nil).UpdateStatus(s.ctx, testDocID, dto.StatusUpdateRequest{Status: "Draft"}, testUserID)

	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal(domain.InvoicePaid, stored.Status)
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}

// --- Payment vouchers ---

func paymentVoucherRequest() dto.CreatePaymentVoucherRequest {
	return dto.CreatePaymentVoucherRequest{
		Vendor:          "V-1",
		ModeOfPayment:   "Cheque",
		PaymentDate:     feb3,
		PaymentType:     "Pay",
		PartyType:       "Supplier",
		Party:           "Acme Supplies",
		AccountPaidFrom: "Bank",
		AdvanceTaxesAndCharges: []dto.TaxChargeRequest{
			{AccountHead: "SST", TotalAmount: dec("60")},
			{AccountHead: "Service Charge", TotalAmount: dec("40.50")},
		},
	}
}

func TestPaymentVoucherService_CreateTotals(t *testing.T) {
	repo := new(MockDocumentRepository[domain.PaymentVoucher])
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	pv, err := services.NewPaymentVoucherService(repo).Create(context.Background(), paymentVoucherRequest(), testUserID)

	require.NoError(t, err)
	assert.True(t, pv.TotalTaxesAndCharges.Equal(dec("100.50")))
	assert.True(t, pv.GrandTotal.Equal(pv.TotalTaxesAndCharges))
	assert.Equal(t, domain.PaymentVoucherDraft, pv.Status)
	assert.True(t, strings.HasPrefix(pv.PVNumber, "PV"))
	assert.Equal(t, testUserID, pv.CreatedBy)
}

func TestPaymentVoucherService_CreateValidation(t *testing.T) {
	noCharges := paymentVoucherRequest()
	noCharges.AdvanceTaxesAndCharges = nil
	noParty := paymentVoucherRequest()
	noParty.Party = ""
	noDate := paymentVoucherRequest()
	noDate.PaymentDate = dto.Date{}

	for name, req := range map[string]dto.CreatePaymentVoucherRequest{
		"no charges": noCharges,
		"no party":   noParty,
		"no date":    noDate,
	} {
		t.Run(name, func(t *testing.T) {
			repo := new(MockDocumentRepository[domain.PaymentVoucher])
			_, err := services.NewPaymentVoucherService(repo).Create(context.Background(), req, testUserID)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}
