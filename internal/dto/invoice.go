package dto

import (
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

type InvoiceItemRequest struct {
	ItemCode    string           `json:"itemCode" binding:"required"`
	Description string           `json:"description"`
	Quantity    decimal.Decimal  `json:"quantity"`
	UOM         string           `json:"uom"`
	Rate        decimal.Decimal  `json:"rate"`
	Amount      *decimal.Decimal `json:"amount"`
	TaxRate     *decimal.Decimal `json:"taxRate"`
	TaxAmount   *decimal.Decimal `json:"taxAmount"`
}

func toInvoiceItems(in []InvoiceItemRequest) []domain.InvoiceItem {
	items := make([]domain.InvoiceItem, len(in))
	for i, it := range in {
		amount := it.Quantity.Mul(it.Rate)
		if it.Amount != nil {
			amount = *it.Amount
		}
		items[i] = domain.InvoiceItem{
			ItemCode:    it.ItemCode,
			Description: it.Description,
			Quantity:    it.Quantity,
			UOM:         it.UOM,
			Rate:        it.Rate,
			Amount:      amount,
			TaxRate:     it.TaxRate,
			TaxAmount:   it.TaxAmount,
		}
	}
	return items
}

// CreateInvoiceRequest is the body of POST /invoice. Subtotal, tax and total are derived
// from the items.
type CreateInvoiceRequest struct {
	PurchaseOrderID  string               `json:"purchaseOrderId" binding:"required,objectid"`
	ReceivingID      string               `json:"receivingId" binding:"omitempty,objectid"`
	VendorID         string               `json:"vendorId" binding:"required"`
	InvoiceDate      Date                 `json:"invoiceDate"`
	DueDate          Date                 `json:"dueDate"`
	ReferenceNumber  string               `json:"referenceNumber"`
	Notes            string               `json:"notes"`
	Items            []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentTerms     string               `json:"paymentTerms"`
	PaymentMethod    string               `json:"paymentMethod"`
	PaymentReference string               `json:"paymentReference"`
	Status           string               `json:"status" binding:"omitempty,oneof=Draft Pending Approved Paid Overdue Cancelled"`
}

func (r CreateInvoiceRequest) ToDomain() domain.Invoice {
	return domain.Invoice{
		PurchaseOrderID:  r.PurchaseOrderID,
		ReceivingID:      r.ReceivingID,
		VendorID:         r.VendorID,
		InvoiceDate:      r.InvoiceDate.Time,
		DueDate:          r.DueDate.Time,
		ReferenceNumber:  r.ReferenceNumber,
		Notes:            r.Notes,
		Items:            toInvoiceItems(r.Items),
		PaymentTerms:     r.PaymentTerms,
		PaymentMethod:    r.PaymentMethod,
		PaymentReference: r.PaymentReference,
		Status:           domain.InvoiceStatus(r.Status),
	}
}

type UpdateInvoiceRequest struct {
	VendorID        *string              `json:"vendorId" binding:"omitempty,min=1"`
	InvoiceDate     *Date                `json:"invoiceDate"`
	DueDate         *Date                `json:"dueDate"`
	ReferenceNumber *string              `json:"referenceNumber"`
	Notes           *string              `json:"notes"`
	Items           []InvoiceItemRequest `json:"items" binding:"omitempty,min=1,dive"`
	PaymentTerms    *string              `json:"paymentTerms"`
}

// ApplyTo copies the supplied fields onto inv and reports whether the items changed.
func (r UpdateInvoiceRequest) ApplyTo(inv *domain.Invoice) bool {
	setString(&inv.VendorID, r.VendorID)
	if r.InvoiceDate != nil {
		inv.InvoiceDate = r.InvoiceDate.Time
	}
	if r.DueDate != nil {
		inv.DueDate = r.DueDate.Time
	}
	setString(&inv.ReferenceNumber, r.ReferenceNumber)
	setString(&inv.Notes, r.Notes)
	setString(&inv.PaymentTerms, r.PaymentTerms)
	if r.Items != nil {
		inv.Items = toInvoiceItems(r.Items)
		return true
	}
	return false
}

// RecordPaymentRequest is the body of POST /invoice/:id/payment.
type RecordPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"paymentMethod"`
	Reference string          `json:"paymentReference"`
	Date      *Date           `json:"paymentDate"`
}

func (r RecordPaymentRequest) ToDomain() domain.InvoicePayment {
	return domain.InvoicePayment{
		Amount:    r.Amount,
		Method:    r.Method,
		Reference: r.Reference,
		Date:      timePtr(r.Date),
	}
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	ListParams
	Status        string `form:"status"`
	PaymentStatus string `form:"paymentStatus"`
	VendorID      string `form:"vendorId"`
}

func (p ListInvoicesParams) ToListQuery() domain.ListQuery {
	return p.query(filterOf("status", p.Status, "paymentStatus", p.PaymentStatus, "vendorId", p.VendorID))
}
