package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GeneralLedgerEntry is a historical posting against one account.
// Balance is caller supplied and is not recomputed on insert.
type GeneralLedgerEntry struct {
	Document
	Date          time.Time       `json:"date"`
	Account       string          `json:"account"`
	AccountNumber string          `json:"accountNumber"`
	AccountName   string          `json:"accountName,omitempty"`
	AccountType   string          `json:"accountType,omitempty"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Balance       decimal.Decimal `json:"balance"`
	VoucherType   string          `json:"voucherType,omitempty"`
	VoucherNo     string          `json:"voucherNo,omitempty"`
	PartyType     string          `json:"partyType,omitempty"`
	Party         string          `json:"party,omitempty"`
	ReferenceNo   string          `json:"referenceNo,omitempty"`
	Description   string          `json:"description,omitempty"`
	Remarks       string          `json:"remarks,omitempty"`
	Company       string          `json:"company,omitempty"`
	FinanceBook   string          `json:"financeBook,omitempty"`
	CostCenter    string          `json:"costCenter,omitempty"`
	Project       string          `json:"project,omitempty"`
	Currency      string          `json:"currency"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"`
	AuditFields
}

func (e GeneralLedgerEntry) NaturalKey() string { return "" }
