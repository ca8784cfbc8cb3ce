package dto

import (
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

type ReceivingItemRequest struct {
	ItemCode         string           `json:"itemCode" binding:"required"`
	Description      string           `json:"description"`
	QuantityOrdered  decimal.Decimal  `json:"quantityOrdered"`
	QuantityReceived decimal.Decimal  `json:"quantityReceived"`
	UOM              string           `json:"uom"`
	Rate             decimal.Decimal  `json:"rate"`
	Amount           *decimal.Decimal `json:"amount"`
	BatchNo          string           `json:"batchNo"`
	ExpiryDate       *Date            `json:"expiryDate"`
	SerialNo         string           `json:"serialNo"`
	Location         string           `json:"location"`
}

// toReceivingItems fills a missing line amount with quantity received x rate.
func toReceivingItems(in []ReceivingItemRequest) []domain.ReceivingItem {
	items := make([]domain.ReceivingItem, len(in))
	for i, it := range in {
		amount := it.QuantityReceived.Mul(it.Rate)
		if it.Amount != nil {
			amount = *it.Amount
		}
		items[i] = domain.ReceivingItem{
			ItemCode:         it.ItemCode,
			Description:      it.Description,
			QuantityOrdered:  it.QuantityOrdered,
			QuantityReceived: it.QuantityReceived,
			UOM:              it.UOM,
			Rate:             it.Rate,
			Amount:           amount,
			BatchNo:          it.BatchNo,
			ExpiryDate:       timePtr(it.ExpiryDate),
			SerialNo:         it.SerialNo,
			Location:         it.Location,
		}
	}
	return items
}

// CreateReceivingRequest is the body of POST /receiving.
type CreateReceivingRequest struct {
	PurchaseOrderID   string                 `json:"purchaseOrderId" binding:"required,objectid"`
	ReceivedByUserID  string                 `json:"receivedByUserId" binding:"omitempty,objectid"`
	VendorID          string                 `json:"vendorId" binding:"required"`
	WarehouseID       string                 `json:"warehouseId" binding:"required"`
	InspectedByUserID string                 `json:"inspectedByUserId" binding:"omitempty,objectid"`
	ReceivingDate     Date                   `json:"receivingDate"`
	Items             []ReceivingItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes             string                 `json:"notes"`
	Status            string                 `json:"status" binding:"omitempty,oneof=Draft Pending Received Partial Cancelled"`
}

func (r CreateReceivingRequest) ToDomain() domain.Receiving {
	return domain.Receiving{
		PurchaseOrderID:   r.PurchaseOrderID,
		ReceivedByUserID:  r.ReceivedByUserID,
		VendorID:          r.VendorID,
		WarehouseID:       r.WarehouseID,
		InspectedByUserID: r.InspectedByUserID,
		ReceivingDate:     r.ReceivingDate.Time,
		Items:             toReceivingItems(r.Items),
		Notes:             r.Notes,
		Status:            domain.ReceivingStatus(r.Status),
	}
}

type UpdateReceivingRequest struct {
	VendorID          *string                `json:"vendorId" binding:"omitempty,min=1"`
	WarehouseID       *string                `json:"warehouseId" binding:"omitempty,min=1"`
	InspectedByUserID *string                `json:"inspectedByUserId" binding:"omitempty,objectid"`
	ReceivingDate     *Date                  `json:"receivingDate"`
	Items             []ReceivingItemRequest `json:"items" binding:"omitempty,min=1,dive"`
	Notes             *string                `json:"notes"`
}

func (r UpdateReceivingRequest) ApplyTo(rec *domain.Receiving) {
	setString(&rec.VendorID, r.VendorID)
	setString(&rec.WarehouseID, r.WarehouseID)
	setString(&rec.InspectedByUserID, r.InspectedByUserID)
	if r.ReceivingDate != nil {
		rec.ReceivingDate = r.ReceivingDate.Time
	}
	if r.Items != nil {
		rec.Items = toReceivingItems(r.Items)
	}
	setString(&rec.Notes, r.Notes)
}

// ListReceivingsParams defines query parameters for listing receivings.
type ListReceivingsParams struct {
	ListParams
	Status      string `form:"status"`
	VendorID    string `form:"vendorId"`
	WarehouseID string `form:"warehouseId"`
	ReceivedBy  string `form:"receivedBy" binding:"omitempty,objectid"`
}

func (p ListReceivingsParams) ToListQuery() domain.ListQuery {
	return p.query(filterOf(
		"status", p.Status,
		"vendorId", p.VendorID,
		"warehouseId", p.WarehouseID,
		"receivedByUserId", p.ReceivedBy,
	))
}
