package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseRequestStatus tracks the approval of a purchase request.
type PurchaseRequestStatus string

const (
	PurchaseRequestDraft     PurchaseRequestStatus = "Draft"
	PurchaseRequestPending   PurchaseRequestStatus = "Pending"
	PurchaseRequestApproved  PurchaseRequestStatus = "Approved"
	PurchaseRequestRejected  PurchaseRequestStatus = "Rejected"
	PurchaseRequestCancelled PurchaseRequestStatus = "Cancelled"
)

// Priority of a purchase request.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

type PurchaseRequestItem struct {
	ItemCode          string           `json:"itemCode"`
	ItemDescription   string           `json:"itemDescription"`
	Quantity          decimal.Decimal  `json:"quantity"`
	UnitOfMeasure     string           `json:"unitOfMeasure"`
	RequestedByUserID string           `json:"requestedByUserId,omitempty"`
	EstimatedCost     *decimal.Decimal `json:"estimatedCost,omitempty"`
}

// PurchaseRequest is the first document of the procurement chain.
type PurchaseRequest struct {
	Document
	PRNumber          string                `json:"prNumber"`
	Purpose           string                `json:"purpose"`
	RequestedByUserID string                `json:"requestedByUserId"`
	Department        string                `json:"department"`
	TransactionDate   time.Time             `json:"transactionDate"`
	Priority          Priority              `json:"priority"`
	Status            PurchaseRequestStatus `json:"status"`
	Items             []PurchaseRequestItem `json:"items"`
	TotalAmount       decimal.Decimal       `json:"totalAmount"`
	Notes             string                `json:"notes,omitempty"`
	ApprovedByUserID  string                `json:"approvedByUserId,omitempty"`
	ApprovalNotes     string                `json:"approvalNotes,omitempty"`
	ApprovedAt        *time.Time            `json:"approvedAt,omitempty"`
}

func (p PurchaseRequest) NaturalKey() string { return p.PRNumber }

// PurchaseOrderStatus tracks an order sent to a vendor.
type PurchaseOrderStatus string

const (
	PurchaseOrderDraft     PurchaseOrderStatus = "Draft"
	PurchaseOrderPending   PurchaseOrderStatus = "Pending"
	PurchaseOrderSent      PurchaseOrderStatus = "Sent"
	PurchaseOrderInvoiced  PurchaseOrderStatus = "Invoiced"
	PurchaseOrderReceived  PurchaseOrderStatus = "Received"
	PurchaseOrderCancelled PurchaseOrderStatus = "Cancelled"
)

type PurchaseOrderItem struct {
	ItemCode    string          `json:"itemCode"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UOM         string          `json:"uom"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// PurchaseOrder references the purchase request it fulfils, if any.
type PurchaseOrder struct {
	Document
	PONumber             string              `json:"poNumber"`
	Date                 time.Time           `json:"date"`
	VendorID             string              `json:"vendorId"`
	RequestedByUserID    string              `json:"requestedByUserId"`
	CompanyID            string              `json:"companyId"`
	PurchaseRequestID    string              `json:"purchaseRequestId,omitempty"`
	ApplyTaxWithholding  bool                `json:"applyTaxWithholding"`
	IsSubcontracted      bool                `json:"isSubcontracted"`
	Currency             string              `json:"currency"`
	TargetWarehouseID    string              `json:"targetWarehouseId,omitempty"`
	Items                []PurchaseOrderItem `json:"items"`
	TotalQuantity        decimal.Decimal     `json:"totalQuantity"`
	TotalTaxesAndCharges decimal.Decimal     `json:"totalTaxesAndCharges"`
	GrandTotal           decimal.Decimal     `json:"grandTotal"`
	Status               PurchaseOrderStatus `json:"status"`
}

func (p PurchaseOrder) NaturalKey() string { return p.PONumber }

// ReceivingStatus tracks goods arriving against a purchase order.
type ReceivingStatus string

const (
	ReceivingDraft     ReceivingStatus = "Draft"
	ReceivingPending   ReceivingStatus = "Pending"
	ReceivingReceived  ReceivingStatus = "Received"
	ReceivingPartial   ReceivingStatus = "Partial"
	ReceivingCancelled ReceivingStatus = "Cancelled"
)

type ReceivingItem struct {
	ItemCode         string          `json:"itemCode"`
	Description      string          `json:"description"`
	QuantityOrdered  decimal.Decimal `json:"quantityOrdered"`
	QuantityReceived decimal.Decimal `json:"quantityReceived"`
	UOM              string          `json:"uom"`
	Rate             decimal.Decimal `json:"rate"`
	Amount           decimal.Decimal `json:"amount"`
	BatchNo          string          `json:"batchNo,omitempty"`
	ExpiryDate       *time.Time      `json:"expiryDate,omitempty"`
	SerialNo         string          `json:"serialNo,omitempty"`
	Location         string          `json:"location,omitempty"`
}

// Receiving records goods received against a purchase order.
type Receiving struct {
	Document
	ReceivingNumber   string          `json:"receivingNumber"`
	PurchaseOrderID   string          `json:"purchaseOrderId"`
	ReceivedByUserID  string          `json:"receivedByUserId"`
	VendorID          string          `json:"vendorId"`
	WarehouseID       string          `json:"warehouseId"`
	InspectedByUserID string          `json:"inspectedByUserId,omitempty"`
	ReceivingDate     time.Time       `json:"receivingDate"`
	Items             []ReceivingItem `json:"items"`
	Notes             string          `json:"notes,omitempty"`
	Status            ReceivingStatus `json:"status"`
}

func (r Receiving) NaturalKey() string { return r.ReceivingNumber }
