package repositories

import "github.com/SscSPs/procurement_accounting_app/internal/core/domain"

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo            UserRepositoryFacade
	JournalEntryRepo    DocumentRepository[domain.JournalEntry]
	GeneralLedgerRepo   DocumentRepository[domain.GeneralLedgerEntry]
	ChartOfAccountsRepo DocumentRepository[domain.ChartOfAccount]
	PurchaseRequestRepo DocumentRepository[domain.PurchaseRequest]
	PurchaseOrderRepo   DocumentRepository[domain.PurchaseOrder]
	ReceivingRepo       DocumentRepository[domain.Receiving]
	InvoiceRepo         DocumentRepository[domain.Invoice]
	PaymentVoucherRepo  DocumentRepository[domain.PaymentVoucher]
}
