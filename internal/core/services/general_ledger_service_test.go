package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/SscSPs/procurement_accounting_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ledgerEntry(number, accountType string, debit, credit int64) domain.GeneralLedgerEntry {
	return domain.GeneralLedgerEntry{
		AccountNumber: number,
		AccountName:   number,
		AccountType:   accountType,
		Debit:         decimal.NewFromInt(debit),
		Credit:        decimal.NewFromInt(credit),
	}
}

func TestGeneralLedgerService_TrialBalance(t *testing.T) {
	repo := new(MockDocumentRepository[domain.GeneralLedgerEntry])
	entries := []domain.GeneralLedgerEntry{
		ledgerEntry("1000", "Asset", 500, 0),
		ledgerEntry("2000", "Liability", 0, 300),
		ledgerEntry("3000", "Equity", 0, 200),
	}
	repo.On("FindAll", mock.Anything, domain.ListQuery{}).Return(entries, int64(len(entries)), nil)

	tb, err := services.NewGeneralLedgerService(repo).TrialBalance(context.Background())

	require.NoError(t, err)
	assert.Len(t, tb.Items, 3)
	assert.True(t, tb.TotalDebitBalance.Equal(decimal.NewFromInt(500)))
	assert.True(t, tb.TotalCreditBalance.Equal(decimal.NewFromInt(500)))
	assert.True(t, tb.IsBalanced)
	for _, item := range tb.Items {
		assert.True(t, item.Balance.Equal(item.DebitBalance.Sub(item.CreditBalance)), item.AccountNumber)
	}
}

func TestGeneralLedgerService_IncomeStatement(t *testing.T) {
	repo := new(MockDocumentRepository[domain.GeneralLedgerEntry])
	entries := []domain.GeneralLedgerEntry{
		ledgerEntry("4000", "Revenue", 0, 1000),
		ledgerEntry("5000", "Expense", 400, 0),
		ledgerEntry("9999", "", 5, 0),
	}
	repo.On("FindAll", mock.Anything, domain.ListQuery{}).Return(entries, int64(len(entries)), nil)

	is, err := services.NewGeneralLedgerService(repo).IncomeStatement(context.Background())

	require.NoError(t, err)
	assert.True(t, is.TotalRevenue.Equal(decimal.NewFromInt(1000)))
	assert.True(t, is.TotalExpenses.Equal(decimal.NewFromInt(400)))
	assert.True(t, is.NetIncome.Equal(decimal.NewFromInt(600)))
}

func TestGeneralLedgerService_BalanceSheetPropagatesErrors(t *testing.T) {
	repo := new(MockDocumentRepository[domain.GeneralLedgerEntry])
	repo.On("FindAll", mock.Anything, mock.Anything).Return(nil, int64(0), errors.New("db down"))

	_, err := services.NewGeneralLedgerService(repo).BalanceSheet(context.Background())

	assert.Error(t, err)
}
