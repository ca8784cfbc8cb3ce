package accounting

import (
	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateBalance returns previous + debit - credit.
func CalculateBalance(previous, debit, credit decimal.Decimal) decimal.Decimal {
	return previous.Add(debit).Sub(credit)
}

// ValidateGeneralLedger checks the mandatory fields of a ledger posting. A posting must carry a
// non-zero debit or credit.
func ValidateGeneralLedger(entry *domain.GeneralLedgerEntry) error {
	switch {
	case entry.Date.IsZero():
		return apperrors.Validationf("date is required")
	case entry.Account == "":
		return apperrors.Validationf("account is required")
	case entry.AccountNumber == "":
		return apperrors.Validationf("account number is required")
	case entry.Debit.IsZero() && entry.Credit.IsZero():
		return apperrors.Validationf("either debit or credit amount is required")
	case entry.Debit.IsNegative() || entry.Credit.IsNegative():
		return apperrors.Validationf("amounts cannot be negative")
	}
	return nil
}

// CalculateAccountBalances groups entries by account number in first-seen order. The first entry
// of a group names the account and supplies its type.
func CalculateAccountBalances(entries []domain.GeneralLedgerEntry) []domain.AccountBalance {
	index := make(map[string]int)
	balances := make([]domain.AccountBalance, 0)

	for _, e := range entries {
		i, ok := index[e.AccountNumber]
		if !ok {
			accountType := e.AccountType
			if accountType == "" {
				accountType = domain.UnknownAccountType
			}
			balances = append(balances, domain.AccountBalance{
				AccountNumber: e.AccountNumber,
				AccountName:   e.Account,
				AccountType:   accountType,
				DebitBalance:  decimal.Zero,
				CreditBalance: decimal.Zero,
				Balance:       decimal.Zero,
			})
			i = len(balances) - 1
			index[e.AccountNumber] = i
		}
		b := &balances[i]
		b.DebitBalance = b.DebitBalance.Add(e.Debit)
		b.CreditBalance = b.CreditBalance.Add(e.Credit)
		b.Balance = b.DebitBalance.Sub(b.CreditBalance)
	}
	return balances
}

type section struct {
	items []domain.AccountBalance
	sum   decimal.Decimal
}

// splitByType buckets entries by account type before any totalling, so an account number posted
// under several types contributes to each of their sections. Entries of an unrecognised type are
// balanced separately and returned as unclassified; recognised types outside wanted are dropped.
func splitByType(entries []domain.GeneralLedgerEntry, wanted ...domain.AccountType) (map[domain.AccountType]section, []domain.AccountBalance) {
	buckets := make(map[domain.AccountType][]domain.GeneralLedgerEntry, len(wanted))
	for _, t := range wanted {
		buckets[t] = nil
	}
	var unknown []domain.GeneralLedgerEntry
	for _, e := range entries {
		t, ok := domain.ParseAccountType(e.AccountType)
		if !ok {
			unknown = append(unknown, e)
			continue
		}
		if _, wantedType := buckets[t]; wantedType {
			buckets[t] = append(buckets[t], e)
		}
	}

	sections := make(map[domain.AccountType]section, len(wanted))
	for t, bucket := range buckets {
		items := CalculateAccountBalances(bucket)
		sum := decimal.Zero
		for _, b := range items {
			sum = sum.Add(b.Balance)
		}
		sections[t] = section{items: items, sum: sum}
	}

	var unclassified []domain.AccountBalance
	if len(unknown) > 0 {
		unclassified = CalculateAccountBalances(unknown)
	}
	return sections, unclassified
}

// GenerateBalanceSheet partitions entries into assets, liabilities and equity. Totals are in the
// normal balance of each section: debit for assets, credit for liabilities and equity.
func GenerateBalanceSheet(entries []domain.GeneralLedgerEntry) domain.BalanceSheet {
	parts, unclassified := splitByType(entries, domain.Asset, domain.Liability, domain.Equity)
	return domain.BalanceSheet{
		Assets:           parts[domain.Asset].items,
		Liabilities:      parts[domain.Liability].items,
		Equity:           parts[domain.Equity].items,
		TotalAssets:      parts[domain.Asset].sum,
		TotalLiabilities: parts[domain.Liability].sum.Neg(),
		TotalEquity:      parts[domain.Equity].sum.Neg(),
		Unclassified:     unclassified,
	}
}

// GenerateIncomeStatement partitions entries into revenue and expenses.
// NetIncome is TotalRevenue - TotalExpenses.
func GenerateIncomeStatement(entries []domain.GeneralLedgerEntry) domain.IncomeStatement {
	parts, unclassified := splitByType(entries, domain.Revenue, domain.Expense)
	totalRevenue := parts[domain.Revenue].sum.Neg()
	totalExpenses := parts[domain.Expense].sum
	return domain.IncomeStatement{
		Revenue:       parts[domain.Revenue].items,
		Expenses:      parts[domain.Expense].items,
		TotalRevenue:  totalRevenue,
		TotalExpenses: totalExpenses,
		NetIncome:     totalRevenue.Sub(totalExpenses),
		Unclassified:  unclassified,
	}
}

// GenerateTrialBalance lists every account with grand debit and credit totals.
func GenerateTrialBalance(entries []domain.GeneralLedgerEntry) domain.TrialBalance {
	items := CalculateAccountBalances(entries)
	debit, credit := decimal.Zero, decimal.Zero
	for _, b := range items {
		debit = debit.Add(b.DebitBalance)
		credit = credit.Add(b.CreditBalance)
	}
	return domain.TrialBalance{
		Items:              items,
		TotalDebitBalance:  debit,
		TotalCreditBalance: credit,
		IsBalanced:         ValidateDebitCreditBalance(debit, credit),
	}
}
