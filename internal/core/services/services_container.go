package services

import (
	portsrepo "github.com/SscSPs/procurement_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Session handling sits on top of token minting; auth orchestrates both.
	container.Token = NewTokenService(cfg)
	container.Session = NewSessionService(repos.UserRepo, container.Token, cfg.MaxSessionsPerUser)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)
	container.Auth = NewAuthService(
		repos.UserRepo,
		container.Token,
		container.Session,
		WithGoogleOAuth(container.GoogleOAuth),
	)
	container.User = NewUserService(repos.UserRepo)

	container.JournalEntry = NewJournalEntryService(repos.JournalEntryRepo)
	container.GeneralLedger = NewGeneralLedgerService(repos.GeneralLedgerRepo)
	container.ChartOfAccounts = NewChartOfAccountsService(repos.ChartOfAccountsRepo)

	container.PurchaseRequest = NewPurchaseRequestService(repos.PurchaseRequestRepo)
	container.PurchaseOrder = NewPurchaseOrderService(
		repos.PurchaseOrderRepo,
		WithPurchaseRequestLookup(repos.PurchaseRequestRepo),
	)
	container.Receiving = NewReceivingService(repos.ReceivingRepo, repos.PurchaseOrderRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.PurchaseOrderRepo)
	container.PaymentVoucher = NewPaymentVoucherService(repos.PaymentVoucherRepo)

	container.Dashboard = NewDashboardService(repos)
	container.File = NewFileService(cfg.UploadsDir, cfg.BaseURL, WithMaxFileSize(cfg.MaxUploadSizeMB<<20))

	return container
}
