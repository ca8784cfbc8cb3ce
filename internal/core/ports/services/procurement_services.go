package services

import (
	"context"

	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
)

// PurchaseRequestSvcFacade manages purchase requests and their approval.
type PurchaseRequestSvcFacade interface {
	DocumentReaderSvc[domain.PurchaseRequest]
	DocumentDeleterSvc

	Create(ctx context.Context, req dto.CreatePurchaseRequestRequest, userID string) (*domain.PurchaseRequest, error)
	Update(ctx context.Context, id string, req dto.UpdatePurchaseRequestRequest) (*domain.PurchaseRequest, error)

	// UpdateStatus stamps the approver when the request is Approved or Rejected.
	UpdateStatus(ctx context.Context, id string, req dto.StatusUpdateRequest, userID string) (*domain.PurchaseRequest, error)
}

// PurchaseOrderSvcFacade manages purchase orders.
type PurchaseOrderSvcFacade interface {
	DocumentReaderSvc[domain.PurchaseOrder]
	DocumentDeleterSvc

	Create(ctx context.Context, req dto.CreatePurchaseOrderRequest, userID string) (*domain.PurchaseOrder, error)
	Update(ctx context.Context, id string, req dto.UpdatePurchaseOrderRequest) (*domain.PurchaseOrder, error)
	UpdateStatus(ctx context.Context, id string, req dto.StatusUpdateRequest) (*domain.PurchaseOrder, error)
}

// ReceivingSvcFacade manages goods receipts.
type ReceivingSvcFacade interface {
	DocumentReaderSvc[domain.Receiving]
	DocumentDeleterSvc

	Create(ctx context.Context, req dto.CreateReceivingRequest, userID string) (*domain.Receiving, error)
	Update(ctx context.Context, id string, req dto.UpdateReceivingRequest) (*domain.Receiving, error)
	UpdateStatus(ctx context.Context, id string, req dto.StatusUpdateRequest) (*domain.Receiving, error)
}

// InvoiceSvcFacade manages vendor invoices and their settlement.
type InvoiceSvcFacade interface {
	DocumentReaderSvc[domain.Invoice]
	DocumentDeleterSvc

	Create(ctx context.Context, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error)
	Update(ctx context.Context, id string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error)
	UpdateStatus(ctx context.Context, id string, req dto.StatusUpdateRequest, userID string) (*domain.Invoice, error)

	// RecordPayment adds a payment and recomputes the outstanding amount and payment status.
	RecordPayment(ctx context.Context, id string, payment domain.InvoicePayment) (*domain.Invoice, error)
}

// PaymentVoucherSvcFacade manages payment vouchers.
type PaymentVoucherSvcFacade interface {
	DocumentReaderSvc[domain.PaymentVoucher]
	DocumentDeleterSvc

	Create(ctx context.Context, req dto.CreatePaymentVoucherRequest, userID string) (*domain.PaymentVoucher, error)
	Update(ctx context.Context, id string, req dto.UpdatePaymentVoucherRequest, userID string) (*domain.PaymentVoucher, error)
	UpdateStatus(ctx context.Context, id string, req dto.StatusUpdateRequest, userID string) (*domain.PaymentVoucher, error)
}
