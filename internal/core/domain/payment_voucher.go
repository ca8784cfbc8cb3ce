package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentVoucherStatus values mirror the journal workflow.
type PaymentVoucherStatus string

const (
	PaymentVoucherDraft     PaymentVoucherStatus = "Draft"
	PaymentVoucherSubmitted PaymentVoucherStatus = "Submitted"
	PaymentVoucherApproved  PaymentVoucherStatus = "Approved"
	PaymentVoucherPaid      PaymentVoucherStatus = "Paid"
	PaymentVoucherCancelled PaymentVoucherStatus = "Cancelled"
)

// TaxCharge is an advance tax or charge line of a payment voucher.
type TaxCharge struct {
	AccountHead string          `json:"accountHead"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	Amount      decimal.Decimal `json:"amount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// PaymentVoucher authorises a payment to a vendor.
// GrandTotal equals the sum of the charge lines' TotalAmount.
type PaymentVoucher struct {
	Document
	PVNumber               string               `json:"pvNumber"`
	Vendor                 string               `json:"vendor"`
	ModeOfPayment          string               `json:"modeOfPayment"`
	InvoiceNumber          string               `json:"invoiceNumber,omitempty"`
	PaymentDate            time.Time            `json:"paymentDate"`
	PaymentType            string               `json:"paymentType"`
	PartyType              string               `json:"partyType"`
	Party                  string               `json:"party"`
	PartyName              string               `json:"partyName,omitempty"`
	AccountPaidFrom        string               `json:"accountPaidFrom"`
	AccountCurrency        string               `json:"accountCurrency,omitempty"`
	AccountBalance         decimal.Decimal      `json:"accountBalance"`
	AdvanceTaxesAndCharges []TaxCharge          `json:"advanceTaxesAndCharges"`
	TotalTaxesAndCharges   decimal.Decimal      `json:"totalTaxesAndCharges"`
	GrandTotal             decimal.Decimal      `json:"grandTotal"`
	Status                 PaymentVoucherStatus `json:"status"`
	PreparedBy             string               `json:"preparedBy,omitempty"`
	CheckedBy              string               `json:"checkedBy,omitempty"`
	ApprovedBy             string               `json:"approvedBy,omitempty"`
	Remarks                string               `json:"remarks,omitempty"`
	Attachments            []string             `json:"attachments,omitempty"`
	AuditFields
}

func (p PaymentVoucher) NaturalKey() string { return p.PVNumber }
