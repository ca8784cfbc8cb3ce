package dto

import (
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGeneralLedgerEntryRequest is the body of POST /general-ledger.
// Balance is optional and defaults to debit - credit.
type CreateGeneralLedgerEntryRequest struct {
	Date          Date             `json:"date"`
	Account       string           `json:"account" binding:"required"`
	AccountNumber string           `json:"accountNumber" binding:"required"`
	AccountName   string           `json:"accountName"`
	AccountType   string           `json:"accountType"`
	Debit         decimal.Decimal  `json:"debit"`
	Credit        decimal.Decimal  `json:"credit"`
	Balance       *decimal.Decimal `json:"balance"`
	VoucherType   string           `json:"voucherType"`
	VoucherNo     string           `json:"voucherNo"`
	PartyType     string           `json:"partyType"`
	Party         string           `json:"party"`
	ReferenceNo   string           `json:"referenceNo"`
	Description   string           `json:"description"`
	Remarks       string           `json:"remarks"`
	Company       string           `json:"company"`
	FinanceBook   string           `json:"financeBook"`
	CostCenter    string           `json:"costCenter"`
	Project       string           `json:"project"`
	Currency      string           `json:"currency"`
	ExchangeRate  *decimal.Decimal `json:"exchangeRate"`
}

// ToDomain returns the entry and whether the caller supplied a balance.
func (r CreateGeneralLedgerEntryRequest) ToDomain() (domain.GeneralLedgerEntry, bool) {
	e := domain.GeneralLedgerEntry{
		Date:          r.Date.Time,
		Account:       r.Account,
		AccountNumber: r.AccountNumber,
		AccountName:   r.AccountName,
		AccountType:   r.AccountType,
		Debit:         r.Debit,
		Credit:        r.Credit,
		VoucherType:   r.VoucherType,
		VoucherNo:     r.VoucherNo,
		PartyType:     r.PartyType,
		Party:         r.Party,
		ReferenceNo:   r.ReferenceNo,
		Description:   r.Description,
		Remarks:       r.Remarks,
		Company:       r.Company,
		FinanceBook:   r.FinanceBook,
		CostCenter:    r.CostCenter,
		Project:       r.Project,
		Currency:      r.Currency,
	}
	if r.ExchangeRate != nil {
		e.ExchangeRate = *r.ExchangeRate
	}
	if r.Balance != nil {
		e.Balance = *r.Balance
		return e, true
	}
	return e, false
}

// UpdateGeneralLedgerEntryRequest carries the fields that may change on a ledger entry.
type UpdateGeneralLedgerEntryRequest struct {
	Date          *Date            `json:"date"`
	Account       *string          `json:"account" binding:"omitempty,min=1"`
	AccountNumber *string          `json:"accountNumber" binding:"omitempty,min=1"`
	AccountName   *string          `json:"accountName"`
	AccountType   *string          `json:"accountType"`
	Debit         *decimal.Decimal `json:"debit"`
	Credit        *decimal.Decimal `json:"credit"`
	Balance       *decimal.Decimal `json:"balance"`
	VoucherType   *string          `json:"voucherType"`
	VoucherNo     *string          `json:"voucherNo"`
	PartyType     *string          `json:"partyType"`
	Party         *string          `json:"party"`
	ReferenceNo   *string          `json:"referenceNo"`
	Description   *string          `json:"description"`
	Remarks       *string          `json:"remarks"`
	Company       *string          `json:"company"`
	FinanceBook   *string          `json:"financeBook"`
	CostCenter    *string          `json:"costCenter"`
	Project       *string          `json:"project"`
	Currency      *string          `json:"currency"`
	ExchangeRate  *decimal.Decimal `json:"exchangeRate"`
}

func (r UpdateGeneralLedgerEntryRequest) ApplyTo(e *domain.GeneralLedgerEntry) {
	if r.Date != nil {
		e.Date = r.Date.Time
	}
	setString(&e.Account, r.Account)
	setString(&e.AccountNumber, r.AccountNumber)
	setString(&e.AccountName, r.AccountName)
	setString(&e.AccountType, r.AccountType)
	setDecimal(&e.Debit, r.Debit)
	setDecimal(&e.Credit, r.Credit)
	setDecimal(&e.Balance, r.Balance)
	setString(&e.VoucherType, r.VoucherType)
	setString(&e.VoucherNo, r.VoucherNo)
	setString(&e.PartyType, r.PartyType)
	setString(&e.Party, r.Party)
	setString(&e.ReferenceNo, r.ReferenceNo)
	setString(&e.Description, r.Description)
	setString(&e.Remarks, r.Remarks)
	setString(&e.Company, r.Company)
	setString(&e.FinanceBook, r.FinanceBook)
	setString(&e.CostCenter, r.CostCenter)
	setString(&e.Project, r.Project)
	setString(&e.Currency, r.Currency)
	setDecimal(&e.ExchangeRate, r.ExchangeRate)
}

// ListGeneralLedgerParams defines query parameters for listing ledger entries.
// Date restricts the listing to one calendar day.
type ListGeneralLedgerParams struct {
	ListParams
	Account string `form:"account"`
	Date    string `form:"date"`
	Company string `form:"company"`
}

func (p ListGeneralLedgerParams) ToListQuery() (domain.ListQuery, error) {
	q := p.query(filterOf("account", p.Account, "company", p.Company))
	if p.Date != "" {
		day, err := ParseDate(p.Date)
		if err != nil {
			return q, invalid(err)
		}
		day = day.Truncate(24 * time.Hour)
		q.Range = &domain.DateRange{Field: "date", From: day, To: day.Add(24*time.Hour - time.Nanosecond)}
	}
	return q, nil
}

// DateRangeQuery builds a listing over [start, end] on the ledger date.
func DateRangeQuery(params ListParams, start, end string) (domain.ListQuery, error) {
	q := params.query(nil)
	from, err := ParseDate(start)
	if err != nil {
		return q, invalid(err)
	}
	to, err := ParseDate(end)
	if err != nil {
		return q, invalid(err)
	}
	if len(end) == len(dateLayout) {
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	if to.Before(from) {
		return q, invalid(errEndBeforeStart)
	}
	q.Range = &domain.DateRange{Field: "date", From: from, To: to}
	return q, nil
}
