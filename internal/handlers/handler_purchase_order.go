package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/SscSPs/procurement_accounting_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const purchaseOrderNoun = "purchase order"

type purchaseOrderHandler struct {
	orderService portssvc.PurchaseOrderSvcFacade
}

func newPurchaseOrderHandler(ps portssvc.PurchaseOrderSvcFacade) *purchaseOrderHandler {
	return &purchaseOrderHandler{orderService: ps}
}

func registerPurchaseOrderRoutes(rg *gin.RouterGroup, orderService portssvc.PurchaseOrderSvcFacade) {
	h := newPurchaseOrderHandler(orderService)
	read := middleware.RequireRoles(readRoles...)
	write := middleware.RequireRoles(writeRoles...)

	orders := rg.Group("/purchase-order")
	{
		orders.POST("", read, h.createPurchaseOrder)
		orders.GET("", read, h.listPurchaseOrders)
		orders.GET("/:id", read, h.getPurchaseOrder)
		orders.PATCH("/:id", read, h.updatePurchaseOrder)
		orders.PATCH("/:id/status", write, h.updatePurchaseOrderStatus)
		orders.DELETE("/:id", write, h.deletePurchaseOrder)
	}
}

// createPurchaseOrder godoc
// @Summary Create a purchase order
// @Description Totals are computed from the items when not supplied. A referenced purchase request must exist.
// @Tags purchase-order
// @Accept json
// @Produce json
// @Param order body dto.CreatePurchaseOrderRequest true "Purchase order"
// @Success 201 {object} domain.PurchaseOrder
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchase-order [post]
func (h *purchaseOrderHandler) createPurchaseOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "create purchase order request")
		return
	}

	po, err := h.orderService.Create(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "create purchase order")
		return
	}
	respondWithData(c, http.StatusCreated, po)
}

// listPurchaseOrders godoc
// @Summary List purchase orders
// @Tags purchase-order
// @Produce json
// @Param status query string false "Status"
// @Param vendorId query string false "Vendor"
// @Param requestedBy query string false "Requester user ID"
// @Param search query string false "Search PO number"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.ListResponse[domain.PurchaseOrder]
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchase-order [get]
func (h *purchaseOrderHandler) listPurchaseOrders(c *gin.Context) {
	var params dto.ListPurchaseOrdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "list purchase orders query")
		return
	}
	listDocuments(c, h.orderService, params.ToListQuery(), purchaseOrderNoun)
}

// getPurchaseOrder godoc
// @Summary Get a purchase order
// @Tags purchase-order
// @Produce json
// @Param id path string true "Purchase order ID"
// @Success 200 {object} domain.PurchaseOrder
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchase-order/{id} [get]
func (h *purchaseOrderHandler) getPurchaseOrder(c *gin.Context) {
	getDocument(c, h.orderService, purchaseOrderNoun)
}

// updatePurchaseOrder godoc
// @Summary Update a purchase order
// @Tags purchase-order
// @Accept json
// @Produce json
// @Param id path string true "Purchase order ID"
// @Param order body dto.UpdatePurchaseOrderRequest true "Fields to update"
// @Success 200 {object} domain.PurchaseOrder
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchase-order/{id} [patch]
func (h *purchaseOrderHandler) updatePurchaseOrder(c *gin.Context) {
	var req dto.UpdatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "update purchase order request")
		return
	}

	po, err := h.orderService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "update purchase order")
		return
	}
	respondWithData(c, http.StatusOK, po)
}

// updatePurchaseOrderStatus godoc
// @Summary Change the status of a purchase order
// @Tags purchase-order
// @Accept json
// @Produce json
// @Param id path string true "Purchase order ID"
// @Param status body dto.StatusUpdateRequest true "New status"
// @Success 200 {object} domain.PurchaseOrder
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchase-order/{id}/status [patch]
func (h *purchaseOrderHandler) updatePurchaseOrderStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "status update request")
		return
	}

	po, err := h.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "update purchase order status")
		return
	}
	respondWithData(c, http.StatusOK, po)
}

// deletePurchaseOrder godoc
// @Summary Delete a purchase order
// @Tags purchase-order
// @Produce json
// @Param id path string true "Purchase order ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchase-order/{id} [delete]
func (h *purchaseOrderHandler) deletePurchaseOrder(c *gin.Context) {
	deleteDocument(c, h.orderService, purchaseOrderNoun)
}
