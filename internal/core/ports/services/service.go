package services

import (
	"context"

	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Token           TokenSvcFacade
	Session         SessionSvcFacade
	Auth            AuthSvcFacade
	GoogleOAuth     GoogleOAuthSvcFacade
	User            UserSvcFacade
	JournalEntry    JournalEntrySvcFacade
	GeneralLedger   GeneralLedgerSvcFacade
	ChartOfAccounts ChartOfAccountsSvcFacade
	PurchaseRequest PurchaseRequestSvcFacade
	PurchaseOrder   PurchaseOrderSvcFacade
	Receiving       ReceivingSvcFacade
	Invoice         InvoiceSvcFacade
	PaymentVoucher  PaymentVoucherSvcFacade
	Dashboard       DashboardSvcFacade
	File            FileSvcFacade
}

// DashboardSvcFacade aggregates counts across every module.
type DashboardSvcFacade interface {
	// GetStats never fails; sub-aggregates that error fall back to zero values.
	GetStats(ctx context.Context) *domain.DashboardStats
}

// FileSvcFacade stores uploaded files and returns their public descriptors.
type FileSvcFacade interface {
	Save(ctx context.Context, upload domain.FileUpload) (*domain.UploadedFile, error)
	SaveMany(ctx context.Context, uploads []domain.FileUpload) ([]domain.UploadedFile, error)
}
