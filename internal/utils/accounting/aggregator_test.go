package accounting

import (
	"testing"
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gl(number, name, accountType, debit, credit string) domain.GeneralLedgerEntry {
	return domain.GeneralLedgerEntry{
		Date:          time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Account:       name,
		AccountNumber: number,
		AccountType:   accountType,
		Debit:         d(debit),
		Credit:        d(credit),
	}
}

func TestCalculateAccountBalances(t *testing.T) {
	entries := []domain.GeneralLedgerEntry{
		gl("1000", "Cash", "Asset", "500", "0"),
		gl("2000", "Payables", "Liability", "0", "200"),
		gl("1000", "Cash renamed", "Liability", "0", "120.5"),
		gl("3000", "Suspense", "", "10", "0"),
	}

	balances := CalculateAccountBalances(entries)
	require.Len(t, balances, 3)

	assert.Equal(t, "1000", balances[0].AccountNumber)
	assert.Equal(t, "Cash", balances[0].AccountName)
	assert.Equal(t, "Asset", balances[0].AccountType)
	assert.True(t, balances[0].DebitBalance.Equal(d("500")))
	assert.True(t, balances[0].CreditBalance.Equal(d("120.5")))

	assert.Equal(t, "2000", balances[1].AccountNumber)
	assert.Equal(t, domain.UnknownAccountType, balances[2].AccountType)

	for _, b := range balances {
		assert.True(t, b.Balance.Equal(b.DebitBalance.Sub(b.CreditBalance)), b.AccountNumber)
	}
}

func TestGenerateBalanceSheet(t *testing.T) {
	sheet := GenerateBalanceSheet([]domain.GeneralLedgerEntry{
		gl("A1", "Bank", "Asset", "500", "0"),
		gl("L1", "Loan", "Liability", "0", "200"),
	})

	require.Len(t, sheet.Assets, 1)
	require.Len(t, sheet.Liabilities, 1)
	assert.Empty(t, sheet.Equity)
	assert.True(t, sheet.TotalAssets.Equal(d("500")))
	assert.True(t, sheet.TotalLiabilities.Equal(d("200")))
	assert.True(t, sheet.TotalEquity.IsZero())
	assert.Empty(t, sheet.Unclassified)
}

func TestGenerateBalanceSheetCaseInsensitiveAndUnclassified(t *testing.T) {
	sheet := GenerateBalanceSheet([]domain.GeneralLedgerEntry{
		gl("A1", "Bank", "asset", "100", "0"),
		gl("E1", "Capital", "EQUITY", "0", "100"),
		gl("X1", "Mystery", "Contra", "5", "0"),
		gl("R1", "Sales", "Revenue", "0", "40"),
	})

	assert.Len(t, sheet.Assets, 1)
	assert.Len(t, sheet.Equity, 1)
	assert.True(t, sheet.TotalEquity.Equal(d("100")))
	require.Len(t, sheet.Unclassified, 1)
	assert.Equal(t, "X1", sheet.Unclassified[0].AccountNumber)
}

func TestGenerateBalanceSheetSplitsAccountPostedUnderSeveralTypes(t *testing.T) {
	sheet := GenerateBalanceSheet([]domain.GeneralLedgerEntry{
		gl("X1", "Clearing", "Asset", "100", "0"),
		gl("X1", "Clearing", "Liability", "0", "40"),
		gl("X1", "Clearing", "Contra", "7", "0"),
	})

	require.Len(t, sheet.Assets, 1)
	require.Len(t, sheet.Liabilities, 1)
	assert.True(t, sheet.TotalAssets.Equal(d("100")))
	assert.True(t, sheet.TotalLiabilities.Equal(d("40")))
	assert.True(t, sheet.Liabilities[0].CreditBalance.Equal(d("40")))
	assert.Equal(t, "Liability", sheet.Liabilities[0].AccountType)
	require.Len(t, sheet.Unclassified, 1)
	assert.True(t, sheet.Unclassified[0].Balance.Equal(d("7")))
}

func TestGenerateIncomeStatementSplitsAccountPostedUnderSeveralTypes(t *testing.T) {
	statement := GenerateIncomeStatement([]domain.GeneralLedgerEntry{
		gl("M1", "Misc", "Expense", "30", "0"),
		gl("M1", "Misc", "Revenue", "0", "80"),
	})

	require.Len(t, statement.Revenue, 1)
	require.Len(t, statement.Expenses, 1)
	assert.True(t, statement.TotalRevenue.Equal(d("80")))
	assert.True(t, statement.TotalExpenses.Equal(d("30")))
	assert.True(t, statement.NetIncome.Equal(d("50")))
}

func TestGenerateIncomeStatement(t *testing.T) {
	statement := GenerateIncomeStatement([]domain.GeneralLedgerEntry{
		gl("4000", "Sales", "Revenue", "0", "1000"),
		gl("5000", "Rent", "Expense", "300", "0"),
		gl("5100", "Wages", "expense", "200", "0"),
		gl("1000", "Cash", "Asset", "500", "0"),
	})

	assert.Len(t, statement.Revenue, 1)
	assert.Len(t, statement.Expenses, 2)
	assert.True(t, statement.TotalRevenue.Equal(d("1000")))
	assert.True(t, statement.TotalExpenses.Equal(d("500")))
	assert.True(t, statement.NetIncome.Equal(d("500")))
	assert.Empty(t, statement.Unclassified)
}

func TestGenerateTrialBalance(t *testing.T) {
	balanced := GenerateTrialBalance([]domain.GeneralLedgerEntry{
		gl("1000", "Cash", "Asset", "100", "0"),
		gl("4000", "Sales", "Revenue", "0", "100.004"),
	})
	assert.True(t, balanced.IsBalanced)
	assert.Len(t, balanced.Items, 2)

	unbalanced := GenerateTrialBalance([]domain.GeneralLedgerEntry{
		gl("1000", "Cash", "Asset", "100", "0"),
		gl("4000", "Sales", "Revenue", "0", "99"),
	})
	assert.False(t, unbalanced.IsBalanced)
	assert.True(t, unbalanced.TotalDebitBalance.Equal(d("100")))
	assert.True(t, unbalanced.TotalCreditBalance.Equal(d("99")))

	empty := GenerateTrialBalance(nil)
	assert.True(t, empty.IsBalanced)
	assert.Empty(t, empty.Items)
}

func TestCalculateBalance(t *testing.T) {
	assert.True(t, CalculateBalance(decimal.Zero, d("50"), d("20")).Equal(d("30")))
	assert.True(t, CalculateBalance(d("30"), d("0"), d("45")).Equal(d("-15")))
}

func TestValidateGeneralLedger(t *testing.T) {
	ok := gl("1000", "Cash", "Asset", "10", "0")
	assert.NoError(t, ValidateGeneralLedger(&ok))

	noAmounts := gl("1000", "Cash", "Asset", "0", "0")
	assert.ErrorIs(t, ValidateGeneralLedger(&noAmounts), apperrors.ErrValidation)

	noNumber := gl("", "Cash", "Asset", "10", "0")
	assert.ErrorIs(t, ValidateGeneralLedger(&noNumber), apperrors.ErrValidation)
}
