package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the approval state of a vendor invoice.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "Draft"
	InvoicePending   InvoiceStatus = "Pending"
	InvoiceApproved  InvoiceStatus = "Approved"
	InvoicePaid      InvoiceStatus = "Paid"
	InvoiceOverdue   InvoiceStatus = "Overdue"
	InvoiceCancelled InvoiceStatus = "Cancelled"
)

// PaymentStatus is the settlement state of an invoice.
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "Unpaid"
	PaymentPartial PaymentStatus = "Partial"
	PaymentPaid    PaymentStatus = "Paid"
	PaymentOverdue PaymentStatus = "Overdue"
)

type InvoiceItem struct {
	ItemCode    string           `json:"itemCode"`
	Description string           `json:"description"`
	Quantity    decimal.Decimal  `json:"quantity"`
	UOM         string           `json:"uom"`
	Rate        decimal.Decimal  `json:"rate"`
	Amount      decimal.Decimal  `json:"amount"`
	TaxRate     *decimal.Decimal `json:"taxRate,omitempty"`
	TaxAmount   *decimal.Decimal `json:"taxAmount,omitempty"`
}

// Invoice is billed by a vendor against a purchase order and its receiving.
type Invoice struct {
	Document
	InvoiceNumber     string          `json:"invoiceNumber"`
	PurchaseOrderID   string          `json:"purchaseOrderId"`
	ReceivingID       string          `json:"receivingId"`
	VendorID          string          `json:"vendorId"`
	CreatedByUserID   string          `json:"createdByUserId"`
	InvoiceDate       time.Time       `json:"invoiceDate"`
	DueDate           time.Time       `json:"dueDate"`
	ReferenceNumber   string          `json:"referenceNumber,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	Items             []InvoiceItem   `json:"items"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	TotalTax          decimal.Decimal `json:"totalTax"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	PaidAmount        decimal.Decimal `json:"paidAmount"`
	OutstandingAmount decimal.Decimal `json:"outstandingAmount"`
	Status            InvoiceStatus   `json:"status"`
	PaymentStatus     PaymentStatus   `json:"paymentStatus"`
	PaymentTerms      string          `json:"paymentTerms,omitempty"`
	PaymentMethod     string          `json:"paymentMethod,omitempty"`
	PaymentReference  string          `json:"paymentReference,omitempty"`
	PaymentDate       *time.Time      `json:"paymentDate,omitempty"`
	ApprovedByUserID  string          `json:"approvedByUserId,omitempty"`
	ApprovedAt        *time.Time      `json:"approvedAt,omitempty"`
}

func (i Invoice) NaturalKey() string { return i.InvoiceNumber }

// InvoicePayment is a single payment applied to an invoice.
type InvoicePayment struct {
	Amount    decimal.Decimal
	Method    string
	Reference string
	Date      *time.Time
}
