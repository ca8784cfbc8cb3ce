package dto

import (
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

type TaxChargeRequest struct {
	AccountHead string          `json:"accountHead" binding:"required"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	Amount      decimal.Decimal `json:"amount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

func toTaxCharges(in []TaxChargeRequest) []domain.TaxCharge {
	charges := make([]domain.TaxCharge, len(in))
	for i, c := range in {
		charges[i] = domain.TaxCharge{AccountHead: c.AccountHead, TaxRate: c.TaxRate, Amount: c.Amount, TotalAmount: c.TotalAmount}
	}
	return charges
}

// CreatePaymentVoucherRequest is the body of POST /payment-voucher.
// Required fields are checked by the service so that a missing one yields a single message.
type CreatePaymentVoucherRequest struct {
	Vendor                 string             `json:"vendor"`
	ModeOfPayment          string             `json:"modeOfPayment"`
	InvoiceNumber          string             `json:"invoiceNumber"`
	PaymentDate            Date               `json:"paymentDate"`
	PaymentType            string             `json:"paymentType"`
	PartyType              string             `json:"partyType"`
	Party                  string             `json:"party"`
	PartyName              string             `json:"partyName"`
	AccountPaidFrom        string             `json:"accountPaidFrom"`
	AccountCurrency        string             `json:"accountCurrency"`
	AccountBalance         decimal.Decimal    `json:"accountBalance"`
	AdvanceTaxesAndCharges []TaxChargeRequest `json:"advanceTaxesAndCharges" binding:"dive"`
	Status                 string             `json:"status" binding:"omitempty,oneof=Draft Submitted Approved Paid Cancelled"`
	PreparedBy             string             `json:"preparedBy"`
	CheckedBy              string             `json:"checkedBy"`
	Remarks                string             `json:"remarks"`
	Attachments            []string           `json:"attachments"`
}

func (r CreatePaymentVoucherRequest) ToDomain() domain.PaymentVoucher {
	return domain.PaymentVoucher{
		Vendor:                 r.Vendor,
		ModeOfPayment:          r.ModeOfPayment,
		InvoiceNumber:          r.InvoiceNumber,
		PaymentDate:            r.PaymentDate.Time,
		PaymentType:            r.PaymentType,
		PartyType:              r.PartyType,
		Party:                  r.Party,
		PartyName:              r.PartyName,
		AccountPaidFrom:        r.AccountPaidFrom,
		AccountCurrency:        r.AccountCurrency,
		AccountBalance:         r.AccountBalance,
		AdvanceTaxesAndCharges: toTaxCharges(r.AdvanceTaxesAndCharges),
		Status:                 domain.PaymentVoucherStatus(r.Status),
		PreparedBy:             r.PreparedBy,
		CheckedBy:              r.CheckedBy,
		Remarks:                r.Remarks,
		Attachments:            r.Attachments,
	}
}

type UpdatePaymentVoucherRequest struct {
	Vendor                 *string            `json:"vendor" binding:"omitempty,min=1"`
	ModeOfPayment          *string            `json:"modeOfPayment" binding:"omitempty,min=1"`
	InvoiceNumber          *string            `json:"invoiceNumber"`
	PaymentDate            *Date              `json:"paymentDate"`
	PaymentType            *string            `json:"paymentType" binding:"omitempty,min=1"`
	PartyType              *string            `json:"partyType" binding:"omitempty,min=1"`
	Party                  *string            `json:"party" binding:"omitempty,min=1"`
	PartyName              *string            `json:"partyName"`
	AccountPaidFrom        *string            `json:"accountPaidFrom" binding:"omitempty,min=1"`
	AccountCurrency        *string            `json:"accountCurrency"`
	AccountBalance         *decimal.Decimal   `json:"accountBalance"`
	AdvanceTaxesAndCharges []TaxChargeRequest `json:"advanceTaxesAndCharges" binding:"omitempty,min=1,dive"`
	PreparedBy             *string            `json:"preparedBy"`
	CheckedBy              *string            `json:"checkedBy"`
	Remarks                *string            `json:"remarks"`
	Attachments            []string           `json:"attachments"`
}

func (r UpdatePaymentVoucherRequest) ApplyTo(pv *domain.PaymentVoucher) {
	setString(&pv.Vendor, r.Vendor)
	setString(&pv.ModeOfPayment, r.ModeOfPayment)
	setString(&pv.InvoiceNumber, r.InvoiceNumber)
	if r.PaymentDate != nil {
		pv.PaymentDate = r.PaymentDate.Time
	}
	setString(&pv.PaymentType, r.PaymentType)
	setString(&pv.PartyType, r.PartyType)
	setString(&pv.Party, r.Party)
	setString(&pv.PartyName, r.PartyName)
	setString(&pv.AccountPaidFrom, r.AccountPaidFrom)
	setString(&pv.AccountCurrency, r.AccountCurrency)
	setDecimal(&pv.AccountBalance, r.AccountBalance)
	if r.AdvanceTaxesAndCharges != nil {
		pv.AdvanceTaxesAndCharges = toTaxCharges(r.AdvanceTaxesAndCharges)
	}
	setString(&pv.PreparedBy, r.PreparedBy)
	setString(&pv.CheckedBy, r.CheckedBy)
	setString(&pv.Remarks, r.Remarks)
	if r.Attachments != nil {
		pv.Attachments = r.Attachments
	}
}

// ListPaymentVouchersParams defines query parameters for listing payment vouchers.
type ListPaymentVouchersParams struct {
	ListParams
	Status      string `form:"status"`
	Vendor      string `form:"vendor"`
	PaymentType string `form:"paymentType"`
}

func (p ListPaymentVouchersParams) ToListQuery() domain.ListQuery {
	return p.query(filterOf("status", p.Status, "vendor", p.Vendor, "paymentType", p.PaymentType))
}
