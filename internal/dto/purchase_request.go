package dto

import (
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

type PurchaseRequestItemRequest struct {
	ItemCode          string           `json:"itemCode" binding:"required"`
	ItemDescription   string           `json:"itemDescription"`
	Quantity          decimal.Decimal  `json:"quantity"`
	UnitOfMeasure     string           `json:"unitOfMeasure"`
	RequestedByUserID string           `json:"requestedByUserId" binding:"omitempty,objectid"`
	EstimatedCost     *decimal.Decimal `json:"estimatedCost"`
}

func toPurchaseRequestItems(in []PurchaseRequestItemRequest) []domain.PurchaseRequestItem {
	items := make([]domain.PurchaseRequestItem, len(in))
	for i, it := range in {
		items[i] = domain.PurchaseRequestItem{
			ItemCode:          it.ItemCode,
			ItemDescription:   it.ItemDescription,
			Quantity:          it.Quantity,
			UnitOfMeasure:     it.UnitOfMeasure,
			RequestedByUserID: it.RequestedByUserID,
			EstimatedCost:     it.EstimatedCost,
		}
	}
	return items
}

// CreatePurchaseRequestRequest is the body of POST /purchase-request.
// RequestedByUserID defaults to the caller.
type CreatePurchaseRequestRequest struct {
	Purpose           string                       `json:"purpose" binding:"required"`
	RequestedByUserID string                       `json:"requestedByUserId" binding:"omitempty,objectid"`
	Department        string                       `json:"department" binding:"required"`
	TransactionDate   Date                         `json:"transactionDate"`
	Priority          string                       `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	Status            string                       `json:"status" binding:"omitempty,oneof=Draft Pending Approved Rejected Cancelled"`
	Items             []PurchaseRequestItemRequest `json:"items" binding:"required,min=1,dive"`
	TotalAmount       *decimal.Decimal             `json:"totalAmount"`
	Notes             string                       `json:"notes"`
}

func (r CreatePurchaseRequestRequest) ToDomain() (domain.PurchaseRequest, bool) {
	pr := domain.PurchaseRequest{
		Purpose:           r.Purpose,
		RequestedByUserID: r.RequestedByUserID,
		Department:        r.Department,
		TransactionDate:   r.TransactionDate.Time,
		Priority:          domain.Priority(r.Priority),
		Status:            domain.PurchaseRequestStatus(r.Status),
		Items:             toPurchaseRequestItems(r.Items),
		Notes:             r.Notes,
	}
	if r.TotalAmount != nil {
		pr.TotalAmount = *r.TotalAmount
		return pr, true
	}
	return pr, false
}

type UpdatePurchaseRequestRequest struct {
	Purpose         *string                      `json:"purpose" binding:"omitempty,min=1"`
	Department      *string                      `json:"department" binding:"omitempty,min=1"`
	TransactionDate *Date                        `json:"transactionDate"`
	Priority        *string                      `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	Items           []PurchaseRequestItemRequest `json:"items" binding:"omitempty,min=1,dive"`
	TotalAmount     *decimal.Decimal             `json:"totalAmount"`
	Notes           *string                      `json:"notes"`
}

// ApplyTo copies the supplied fields onto pr and reports whether the items changed.
func (r UpdatePurchaseRequestRequest) ApplyTo(pr *domain.PurchaseRequest) bool {
	setString(&pr.Purpose, r.Purpose)
	setString(&pr.Department, r.Department)
	if r.TransactionDate != nil {
		pr.TransactionDate = r.TransactionDate.Time
	}
	if r.Priority != nil {
		pr.Priority = domain.Priority(*r.Priority)
	}
	setString(&pr.Notes, r.Notes)
	setDecimal(&pr.TotalAmount, r.TotalAmount)
	if r.Items != nil {
		pr.Items = toPurchaseRequestItems(r.Items)
		return r.TotalAmount == nil
	}
	return false
}

// ListPurchaseRequestsParams defines query parameters for listing purchase requests.
type ListPurchaseRequestsParams struct {
	ListParams
	Status      string `form:"status"`
	Department  string `form:"department"`
	Priority    string `form:"priority"`
	RequestedBy string `form:"requestedBy" binding:"omitempty,objectid"`
}

func (p ListPurchaseRequestsParams) ToListQuery() domain.ListQuery {
	return p.query(filterOf(
		"status", p.Status,
		"department", p.Department,
		"priority", p.Priority,
		"requestedByUserId", p.RequestedBy,
	))
}
