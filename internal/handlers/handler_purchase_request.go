package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/SscSPs/procurement_accounting_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const purchaseRequestNoun = "purchase request"

// purchaseRequestHandler handles purchase requests and their approval.
type purchaseRequestHandler struct {
	requestService portssvc.PurchaseRequestSvcFacade
}

func newPurchaseRequestHandler(rs portssvc.PurchaseRequestSvcFacade) *purchaseRequestHandler {
	return &purchaseRequestHandler{requestService: rs}
}

// registerPurchaseRequestRoutes registers the /purchase-request routes. Any reader may raise and
// edit a request; approval and deletion need a write role.
func registerPurchaseRequestRoutes(rg *gin.RouterGroup, requestService portssvc.PurchaseRequestSvcFacade) {
	h := newPurchaseRequestHandler(requestService)
	read := middleware.RequireRoles(readRoles...)
	write := middleware.RequireRoles(writeRoles...)

	requests := rg.Group("/purchase-request")
	{
		requests.POST("", read, h.createPurchaseRequest)
		requests.GET("", read, h.listPurchaseRequests)
		requests.GET("/:id", read, h.getPurchaseRequest)
		requests.PATCH("/:id", read, h.updatePurchaseRequest)
		requests.PATCH("/:id/status", write, h.updatePurchaseRequestStatus)
		requests.DELETE("/:id", write, h.deletePurchaseRequest)
	}
}

// createPurchaseRequest godoc
// @Summary Create a purchase request
// @Description The requester defaults to the caller and the status to Draft.
// @Tags purchase-request
// @Accept json
// @Produce json
// @Param request body dto.CreatePurchaseRequestRequest true "Purchase request"
// @Success 201 {object} domain.PurchaseRequest
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchase-request [post]
func (h *purchaseRequestHandler) createPurchaseRequest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePurchaseRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "create purchase request request")
		return
	}

	pr, err := h.requestService.Create(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "create purchase request")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Purchase request created",
		slog.String("purchase_request_id", pr.ID), slog.String("pr_number", pr.PRNumber))
	respondWithData(c, http.StatusCreated, pr)
}

// listPurchaseRequests godoc
// @Summary List purchase requests
// @Tags purchase-request
// @Produce json
// @Param status query string false "Status"
// @Param department query string false "Department"
// @Param priority query string false "Priority"
// @Param requestedBy query string false "Requester user ID"
// @Param search query string false "Search number or purpose"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.ListResponse[domain.PurchaseRequest]
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchase-request [get]
func (h *purchaseRequestHandler) listPurchaseRequests(c *gin.Context) {
	var params dto.ListPurchaseRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "list purchase requests query")
		return
	}
	listDocuments(c, h.requestService, params.ToListQuery(), purchaseRequestNoun)
}

// getPurchaseRequest godoc
// @Summary Get a purchase request
// @Tags purchase-request
// @Produce json
// @Param id path string true "Purchase request ID"
// @Success 200 {object} domain.PurchaseRequest
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchase-request/{id} [get]
func (h *purchaseRequestHandler) getPurchaseRequest(c *gin.Context) {
	getDocument(c, h.requestService, purchaseRequestNoun)
}

// updatePurchaseRequest godoc
// @Summary Update a purchase request
// @Tags purchase-request
// @Accept json
// @Produce json
// @Param id path string true "Purchase request ID"
// @Param request body dto.UpdatePurchaseRequestRequest true "Fields to update"
// @Success 200 {object} domain.PurchaseRequest
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchase-request/{id} [patch]
func (h *purchaseRequestHandler) updatePurchaseRequest(c *gin.Context) {
	var req dto.UpdatePurchaseRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "update purchase request request")
		return
	}

	pr, err := h.requestService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "update purchase request")
		return
	}
	respondWithData(c, http.StatusOK, pr)
}

// updatePurchaseRequestStatus godoc
// @Summary Change the status of a purchase request
// @Description Approving or rejecting records the caller as approver.
// @Tags purchase-request
// @Accept json
// @Produce json
// @Param id path string true "Purchase request ID"
// @Param status body dto.StatusUpdateRequest true "New status"
// @Success 200 {object} domain.PurchaseRequest
// @Failure 400 {object} dto.ErrorResponse "Unknown status"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchase-request/{id}/status [patch]
func (h *purchaseRequestHandler) updatePurchaseRequestStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "status update request")
		return
	}

	pr, err := h.requestService.UpdateStatus(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, err, "update purchase request status")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Purchase request status changed",
		slog.String("purchase_request_id", pr.ID), slog.String("status", string(pr.Status)))
	respondWithData(c, http.StatusOK, pr)
}

// deletePurchaseRequest godoc
// @Summary Delete a purchase request
// @Tags purchase-request
// @Produce json
// @Param id path string true "Purchase request ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchase-request/{id} [delete]
func (h *purchaseRequestHandler) deletePurchaseRequest(c *gin.Context) {
	deleteDocument(c, h.requestService, purchaseRequestNoun)
}
