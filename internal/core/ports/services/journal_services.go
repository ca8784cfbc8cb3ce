package services

import (
	"context"

	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
)

// JournalEntrySvcFacade manages balanced journal entries.
type JournalEntrySvcFacade interface {
	DocumentReaderSvc[domain.JournalEntry]
	DocumentDeleterSvc

	// Create rejects entries whose debits and credits differ by 0.01 or more.
	Create(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// Update re-runs the balance check when the accounting lines change.
	Update(ctx context.Context, id string, req dto.UpdateJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// Post moves the entry to the Posted status.
	Post(ctx context.Context, id string, userID string) (*domain.JournalEntry, error)
}

// GeneralLedgerSvcFacade manages ledger postings and the statements derived from them.
type GeneralLedgerSvcFacade interface {
	DocumentReaderSvc[domain.GeneralLedgerEntry]
	DocumentDeleterSvc

	Create(ctx context.Context, req dto.CreateGeneralLedgerEntryRequest, userID string) (*domain.GeneralLedgerEntry, error)
	Update(ctx context.Context, id string, req dto.UpdateGeneralLedgerEntryRequest, userID string) (*domain.GeneralLedgerEntry, error)

	BalanceSheet(ctx context.Context) (*domain.BalanceSheet, error)
	IncomeStatement(ctx context.Context) (*domain.IncomeStatement, error)
	TrialBalance(ctx context.Context) (*domain.TrialBalance, error)
}

// ChartOfAccountsSvcFacade manages the chart of accounts.
type ChartOfAccountsSvcFacade interface {
	DocumentReaderSvc[domain.ChartOfAccount]
	DocumentDeleterSvc

	// Create fails with apperrors.ErrDuplicate when the account number is taken.
	Create(ctx context.Context, req dto.CreateChartOfAccountRequest, userID string) (*domain.ChartOfAccount, error)
	Update(ctx context.Context, id string, req dto.UpdateChartOfAccountRequest, userID string) (*domain.ChartOfAccount, error)

	// Hierarchy returns the enabled accounts as a forest rooted at accounts without a known parent.
	Hierarchy(ctx context.Context) ([]*domain.AccountNode, error)

	// GenerateAccountNumber proposes a number for a new account of accountType.
	GenerateAccountNumber(ctx context.Context, accountType string) (string, error)
}
