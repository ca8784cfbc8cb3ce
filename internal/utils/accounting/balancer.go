package accounting

import (
	"strings"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the largest debit/credit difference still treated as balanced.
var BalanceTolerance = decimal.RequireFromString("0.01")

// Totals are the independent debit and credit sums of a set of journal lines.
type Totals struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	IsBalanced  bool
}

// ValidateJournalEntry checks the header fields and line count of a journal entry.
func ValidateJournalEntry(entry *domain.JournalEntry) error {
	switch {
	case strings.TrimSpace(entry.EntryType) == "":
		return apperrors.Validationf("entry type is required")
	case strings.TrimSpace(entry.Title) == "":
		return apperrors.Validationf("title is required")
	case entry.PostingDate.IsZero():
		return apperrors.Validationf("posting date is required")
	case len(entry.AccountingEntries) == 0:
		return apperrors.Validationf("at least one accounting entry is required")
	}
	for i, line := range entry.AccountingEntries {
		if strings.TrimSpace(line.Account) == "" {
			return apperrors.Validationf("accounting entry %d: account is required", i+1)
		}
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return apperrors.Validationf("accounting entry %d: amounts cannot be negative", i+1)
		}
	}
	return nil
}

// CalculateTotals sums debits and credits of lines. A line without an amount contributes zero.
func CalculateTotals(lines []domain.AccountingLine) Totals {
	debit, credit := decimal.Zero, decimal.Zero
	for _, line := range lines {
		debit = debit.Add(line.Debit)
		credit = credit.Add(line.Credit)
	}
	return Totals{
		TotalDebit:  debit,
		TotalCredit: credit,
		IsBalanced:  ValidateDebitCreditBalance(debit, credit),
	}
}

// ValidateDebitCreditBalance reports whether |debit - credit| < BalanceTolerance.
func ValidateDebitCreditBalance(debit, credit decimal.Decimal) bool {
	return debit.Sub(credit).Abs().LessThan(BalanceTolerance)
}

// BalanceJournalEntry validates entry, stores its totals and rejects it unless it balances.
func BalanceJournalEntry(entry *domain.JournalEntry) error {
	if err := ValidateJournalEntry(entry); err != nil {
		return err
	}
	totals := CalculateTotals(entry.AccountingEntries)
	if !totals.IsBalanced {
		return apperrors.Validationf("total debit (%s) must equal total credit (%s)",
			totals.TotalDebit.StringFixed(2), totals.TotalCredit.StringFixed(2))
	}
	entry.TotalDebit = totals.TotalDebit
	entry.TotalCredit = totals.TotalCredit
	return nil
}
