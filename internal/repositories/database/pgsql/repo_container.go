package pgsql

import (
	portsrepo "github.com/SscSPs/procurement_accounting_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:            newPgxUserRepository(dbPool),
		JournalEntryRepo:    newPgxJournalEntryRepository(dbPool),
		GeneralLedgerRepo:   newPgxGeneralLedgerRepository(dbPool),
		ChartOfAccountsRepo: newPgxChartOfAccountsRepository(dbPool),
		PurchaseRequestRepo: newPgxPurchaseRequestRepository(dbPool),
		PurchaseOrderRepo:   newPgxPurchaseOrderRepository(dbPool),
		ReceivingRepo:       newPgxReceivingRepository(dbPool),
		InvoiceRepo:         newPgxInvoiceRepository(dbPool),
		PaymentVoucherRepo:  newPgxPaymentVoucherRepository(dbPool),
	}
}
