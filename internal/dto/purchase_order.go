package dto

import (
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

type PurchaseOrderItemRequest struct {
	ItemCode    string           `json:"itemCode" binding:"required"`
	Description string           `json:"description"`
	Quantity    decimal.Decimal  `json:"quantity"`
	UOM         string           `json:"uom"`
	Rate        decimal.Decimal  `json:"rate"`
	Amount      *decimal.Decimal `json:"amount"`
}

// toPurchaseOrderItems fills a missing line amount with quantity x rate.
func toPurchaseOrderItems(in []PurchaseOrderItemRequest) []domain.PurchaseOrderItem {
	items := make([]domain.PurchaseOrderItem, len(in))
	for i, it := range in {
		amount := it.Quantity.Mul(it.Rate)
		if it.Amount != nil {
			amount = *it.Amount
		}
		items[i] = domain.PurchaseOrderItem{
			ItemCode:    it.ItemCode,
			Description: it.Description,
			Quantity:    it.Quantity,
			UOM:         it.UOM,
			Rate:        it.Rate,
			Amount:      amount,
		}
	}
	return items
}

// CreatePurchaseOrderRequest is the body of POST /purchase-order.
// Totals left out are derived from the items.
type CreatePurchaseOrderRequest struct {
	Date                 Date                       `json:"date"`
	VendorID             string                     `json:"vendorId" binding:"required"`
	RequestedByUserID    string                     `json:"requestedByUserId" binding:"omitempty,objectid"`
	CompanyID            string                     `json:"companyId" binding:"required"`
	PurchaseRequestID    string                     `json:"purchaseRequestId" binding:"omitempty,objectid"`
	ApplyTaxWithholding  bool                       `json:"applyTaxWithholding"`
	IsSubcontracted      bool                       `json:"isSubcontracted"`
	Currency             string                     `json:"currency"`
	TargetWarehouseID    string                     `json:"targetWarehouseId"`
	Items                []PurchaseOrderItemRequest `json:"items" binding:"required,min=1,dive"`
	TotalQuantity        *decimal.Decimal           `json:"totalQuantity"`
	TotalTaxesAndCharges *decimal.Decimal           `json:"totalTaxesAndCharges"`
	GrandTotal           *decimal.Decimal           `json:"grandTotal"`
	Status               string                     `json:"status" binding:"omitempty,oneof=Draft Pending Sent Invoiced Received Cancelled"`
}

// POTotals marks which derived totals the caller supplied.
type POTotals struct {
	HasQuantity   bool
	HasGrandTotal bool
}

func (r CreatePurchaseOrderRequest) ToDomain() (domain.PurchaseOrder, POTotals) {
	po := domain.PurchaseOrder{
		Date:                r.Date.Time,
		VendorID:            r.VendorID,
		RequestedByUserID:   r.RequestedByUserID,
		CompanyID:           r.CompanyID,
		PurchaseRequestID:   r.PurchaseRequestID,
		ApplyTaxWithholding: r.ApplyTaxWithholding,
		IsSubcontracted:     r.IsSubcontracted,
		Currency:            r.Currency,
		TargetWarehouseID:   r.TargetWarehouseID,
		Items:               toPurchaseOrderItems(r.Items),
		Status:              domain.PurchaseOrderStatus(r.Status),
	}
	setDecimal(&po.TotalQuantity, r.TotalQuantity)
	setDecimal(&po.TotalTaxesAndCharges, r.TotalTaxesAndCharges)
	setDecimal(&po.GrandTotal, r.GrandTotal)
	return po, POTotals{HasQuantity: r.TotalQuantity != nil, HasGrandTotal: r.GrandTotal != nil}
}

type UpdatePurchaseOrderRequest struct {
	Date                 *Date                      `json:"date"`
	VendorID             *string                    `json:"vendorId" binding:"omitempty,min=1"`
	CompanyID            *string                    `json:"companyId" binding:"omitempty,min=1"`
	ApplyTaxWithholding  *bool                      `json:"applyTaxWithholding"`
	IsSubcontracted      *bool                      `json:"isSubcontracted"`
	Currency             *string                    `json:"currency"`
	TargetWarehouseID    *string                    `json:"targetWarehouseId"`
	Items                []PurchaseOrderItemRequest `json:"items" binding:"omitempty,min=1,dive"`
	TotalQuantity        *decimal.Decimal           `json:"totalQuantity"`
	TotalTaxesAndCharges *decimal.Decimal           `json:"totalTaxesAndCharges"`
	GrandTotal           *decimal.Decimal           `json:"grandTotal"`
}

// ApplyTo copies the supplied fields onto po. Derived totals not supplied are flagged
// for recomputation when the items or charges change.
func (r UpdatePurchaseOrderRequest) ApplyTo(po *domain.PurchaseOrder) POTotals {
	if r.Date != nil {
		po.Date = r.Date.Time
	}
	setString(&po.VendorID, r.VendorID)
	setString(&po.CompanyID, r.CompanyID)
	if r.ApplyTaxWithholding != nil {
		po.ApplyTaxWithholding = *r.ApplyTaxWithholding
	}
	if r.IsSubcontracted != nil {
		po.IsSubcontracted = *r.IsSubcontracted
	}
	setString(&po.Currency, r.Currency)
	setString(&po.TargetWarehouseID, r.TargetWarehouseID)
	if r.Items != nil {
		po.Items = toPurchaseOrderItems(r.Items)
	}
	setDecimal(&po.TotalQuantity, r.TotalQuantity)
	setDecimal(&po.TotalTaxesAndCharges, r.TotalTaxesAndCharges)
	setDecimal(&po.GrandTotal, r.GrandTotal)
	recompute := r.Items != nil || r.TotalTaxesAndCharges != nil
	return POTotals{
		HasQuantity:   r.TotalQuantity != nil || !recompute,
		HasGrandTotal: r.GrandTotal != nil || !recompute,
	}
}

// ListPurchaseOrdersParams defines query parameters for listing purchase orders.
type ListPurchaseOrdersParams struct {
	ListParams
	Status      string `form:"status"`
	VendorID    string `form:"vendorId"`
	RequestedBy string `form:"requestedBy" binding:"omitempty,objectid"`
}

func (p ListPurchaseOrdersParams) ToListQuery() domain.ListQuery {
	return p.query(filterOf("status", p.Status, "vendorId", p.VendorID, "requestedByUserId", p.RequestedBy))
}
