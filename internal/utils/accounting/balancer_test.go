package accounting

import (
	"testing"
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func entryWith(lines ...domain.AccountingLine) *domain.JournalEntry {
	return &domain.JournalEntry{
		EntryType:         "Journal Entry",
		Title:             "Office rent",
		PostingDate:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		AccountingEntries: lines,
	}
}

func TestCalculateTotals(t *testing.T) {
	totals := CalculateTotals([]domain.AccountingLine{
		{Account: "Cash", Debit: d("100")},
		{Account: "Revenue", Credit: d("100")},
	})
	assert.True(t, totals.TotalDebit.Equal(d("100")))
	assert.True(t, totals.TotalCredit.Equal(d("100")))
	assert.True(t, totals.IsBalanced)

	totals = CalculateTotals([]domain.AccountingLine{{Account: "Cash", Debit: d("100")}, {Account: "Revenue", Credit: d("90")}})
	assert.False(t, totals.IsBalanced)

	totals = CalculateTotals(nil)
	assert.True(t, totals.TotalDebit.IsZero())
	assert.True(t, totals.IsBalanced)
}

func TestValidateDebitCreditBalanceTolerance(t *testing.T) {
	tests := []struct {
		name     string
		debit    string
		credit   string
		balanced bool
	}{
		{"equal", "250.00", "250.00", true},
		{"within tolerance", "100.005", "100.00", true},
		{"at tolerance", "100.01", "100.00", false},
		{"credit heavy", "90", "100", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.balanced, ValidateDebitCreditBalance(d(tt.debit), d(tt.credit)))
		})
	}
}

func TestBalanceJournalEntry(t *testing.T) {
	balanced := entryWith(
		domain.AccountingLine{Account: "Cash", Debit: d("100")},
		domain.AccountingLine{Account: "Sales", Credit: d("100")},
	)
	assert.NoError(t, BalanceJournalEntry(balanced))
	assert.True(t, balanced.TotalDebit.Equal(d("100")))
	assert.True(t, balanced.TotalCredit.Equal(d("100")))

	unbalanced := entryWith(
		domain.AccountingLine{Account: "Cash", Debit: d("100")},
		domain.AccountingLine{Account: "Sales", Credit: d("90")},
	)
	err := BalanceJournalEntry(unbalanced)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.True(t, unbalanced.TotalDebit.IsZero())
}

func TestValidateJournalEntry(t *testing.T) {
	missingTitle := entryWith(domain.AccountingLine{Account: "Cash", Debit: d("1")})
	missingTitle.Title = " "
	assert.ErrorIs(t, ValidateJournalEntry(missingTitle), apperrors.ErrValidation)

	noLines := entryWith()
	assert.ErrorIs(t, ValidateJournalEntry(noLines), apperrors.ErrValidation)

	noDate := entryWith(domain.AccountingLine{Account: "Cash", Debit: d("1")})
	noDate.PostingDate = time.Time{}
	assert.ErrorIs(t, ValidateJournalEntry(noDate), apperrors.ErrValidation)

	negative := entryWith(domain.AccountingLine{Account: "Cash", Debit: d("-1")})
	assert.ErrorIs(t, ValidateJournalEntry(negative), apperrors.ErrValidation)
}
