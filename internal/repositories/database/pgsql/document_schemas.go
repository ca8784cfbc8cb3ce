package pgsql

import (
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_accounting_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

var journalEntrySchema = documentSchema{
	table: "journal_entries",
	fields: map[string]string{
		"entryId":     textField("entryId"),
		"entryType":   textField("entryType"),
		"status":      textField("status"),
		"company":     textField("company"),
		"postingDate": timeField("postingDate"),
	},
	search:      []string{textField("entryId"), textField("title"), textField("referenceNo")},
	defaultSort: "created_at DESC, id DESC",
}

var generalLedgerSchema = documentSchema{
	table: "general_ledger_entries",
	fields: map[string]string{
		"account":       textField("account"),
		"accountNumber": textField("accountNumber"),
		"accountType":   textField("accountType"),
		"company":       textField("company"),
		"voucherNo":     textField("voucherNo"),
		"date":          timeField("date"),
	},
	search:      []string{textField("account"), textField("accountNumber"), textField("description")},
	defaultSort: "(doc->>'date')::timestamptz DESC, id DESC",
}

var chartOfAccountsSchema = documentSchema{
	table: "chart_of_accounts",
	fields: map[string]string{
		"accountNumber": textField("accountNumber"),
		"accountType":   textField("accountType"),
		"rootType":      textField("rootType"),
		"company":       textField("company"),
		"parentAccount": textField("parentAccount"),
		"isEnabled":     textField("isEnabled"),
	},
	search:      []string{textField("accountNumber"), textField("accountName")},
	defaultSort: "natural_key ASC",
}

var purchaseRequestSchema = documentSchema{
	table: "purchase_requests",
	fields: map[string]string{
		"status":            textField("status"),
		"department":        textField("department"),
		"priority":          textField("priority"),
		"requestedByUserId": textField("requestedByUserId"),
		"transactionDate":   timeField("transactionDate"),
	},
	search:      []string{textField("prNumber"), textField("purpose"), textField("department")},
	defaultSort: "created_at DESC, id DESC",
}

var purchaseOrderSchema = documentSchema{
	table: "purchase_orders",
	fields: map[string]string{
		"status":            textField("status"),
		"vendorId":          textField("vendorId"),
		"requestedByUserId": textField("requestedByUserId"),
		"purchaseRequestId": textField("purchaseRequestId"),
		"date":              timeField("date"),
	},
	search:      []string{textField("poNumber"), textField("vendorId")},
	defaultSort: "created_at DESC, id DESC",
}

var receivingSchema = documentSchema{
	table: "receivings",
	fields: map[string]string{
		"status":           textField("status"),
		"vendorId":         textField("vendorId"),
		"warehouseId":      textField("warehouseId"),
		"receivedByUserId": textField("receivedByUserId"),
		"purchaseOrderId":  textField("purchaseOrderId"),
		"receivingDate":    timeField("receivingDate"),
	},
	search:      []string{textField("receivingNumber"), textField("notes")},
	defaultSort: "created_at DESC, id DESC",
}

var invoiceSchema = documentSchema{
	table: "invoices",
	fields: map[string]string{
		"status":          textField("status"),
		"paymentStatus":   textField("paymentStatus"),
		"vendorId":        textField("vendorId"),
		"purchaseOrderId": textField("purchaseOrderId"),
		"invoiceDate":     timeField("invoiceDate"),
		"dueDate":         timeField("dueDate"),
	},
	search:      []string{textField("invoiceNumber"), textField("referenceNumber"), textField("vendorId")},
	defaultSort: "created_at DESC, id DESC",
}

var paymentVoucherSchema = documentSchema{
	table: "payment_vouchers",
	fields: map[string]string{
		"status":      textField("status"),
		"vendor":      textField("vendor"),
		"paymentType": textField("paymentType"),
		"party":       textField("party"),
		"paymentDate": timeField("paymentDate"),
	},
	search:      []string{textField("pvNumber"), textField("vendor"), textField("partyName"), textField("invoiceNumber")},
	defaultSort: "created_at DESC, id DESC",
}

func newPgxJournalEntryRepository(pool *pgxpool.Pool) portsrepo.DocumentRepository[domain.JournalEntry] {
	return newPgxDocumentRepository[domain.JournalEntry](pool, journalEntrySchema)
}

func newPgxGeneralLedgerRepository(pool *pgxpool.Pool) portsrepo.DocumentRepository[domain.GeneralLedgerEntry] {
	return newPgxDocumentRepository[domain.GeneralLedgerEntry](pool, generalLedgerSchema)
}

func newPgxChartOfAccountsRepository(pool *pgxpool.Pool) portsrepo.DocumentRepository[domain.ChartOfAccount] {
	return newPgxDocumentRepository[domain.ChartOfAccount](pool, chartOfAccountsSchema)
}

func newPgxPurchaseRequestRepository(pool *pgxpool.Pool) portsrepo.DocumentRepository[domain.PurchaseRequest] {
	return newPgxDocumentRepository[domain.PurchaseRequest](pool, purchaseRequestSchema)
}

func newPgxPurchaseOrderRepository(pool *pgxpool.Pool) portsrepo.DocumentRepository[domain.PurchaseOrder] {
	return newPgxDocumentRepository[domain.PurchaseOrder](pool, purchaseOrderSchema)
}

func newPgxReceivingRepository(pool *pgxpool.Pool) portsrepo.DocumentRepository[domain.Receiving] {
	return newPgxDocumentRepository[domain.Receiving](pool, receivingSchema)
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.DocumentRepository[domain.Invoice] {
	return newPgxDocumentRepository[domain.Invoice](pool, invoiceSchema)
}

func newPgxPaymentVoucherRepository(pool *pgxpool.Pool) portsrepo.DocumentRepository[domain.PaymentVoucher] {
	return newPgxDocumentRepository[domain.PaymentVoucher](pool, paymentVoucherSchema)
}

var (
	_ portsrepo.DocumentRepository[domain.JournalEntry]       = (*PgxDocumentRepository[domain.JournalEntry, *domain.JournalEntry])(nil)
	_ portsrepo.DocumentRepository[domain.GeneralLedgerEntry] = (*PgxDocumentRepository[domain.GeneralLedgerEntry, *domain.GeneralLedgerEntry])(nil)
	_ portsrepo.DocumentRepository[domain.PaymentVoucher]     = (*PgxDocumentRepository[domain.PaymentVoucher, *domain.PaymentVoucher])(nil)
)
