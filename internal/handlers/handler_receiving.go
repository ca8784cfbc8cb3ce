package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/SscSPs/procurement_accounting_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const receivingNoun = "receiving"

type receivingHandler struct {
	receivingService portssvc.ReceivingSvcFacade
}

func newReceivingHandler(rs portssvc.ReceivingSvcFacade) *receivingHandler {
	return &receivingHandler{receivingService: rs}
}

func registerReceivingRoutes(rg *gin.RouterGroup, receivingService portssvc.ReceivingSvcFacade) {
	h := newReceivingHandler(receivingService)
	read := middleware.RequireRoles(readRoles...)
	write := middleware.RequireRoles(writeRoles...)

	receivings := rg.Group("/receiving")
	{
		receivings.POST("", read, h.createReceiving)
		receivings.GET("", read, h.listReceivings)
		receivings.GET("/:id", read, h.getReceiving)
		receivings.PATCH("/:id", read, h.updateReceiving)
		receivings.PATCH("/:id/status", write, h.updateReceivingStatus)
		receivings.DELETE("/:id", write, h.deleteReceiving)
	}
}

// createReceiving godoc
// @Summary Record goods received
// @Description The purchase order the goods arrived against must exist.
// @Tags receiving
// @Accept json
// @Produce json
// @Param receiving body dto.CreateReceivingRequest true "Receiving"
// @Success 201 {object} domain.Receiving
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /receiving [post]
func (h *receivingHandler) createReceiving(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReceivingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "create receiving request")
		return
	}

	rec, err := h.receivingService.Create(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "create receiving")
		return
	}
	respondWithData(c, http.StatusCreated, rec)
}

// listReceivings godoc
// @Summary List receivings
// @Tags receiving
// @Produce json
// @Param status query string false "Status"
// @Param vendorId query string false "Vendor"
// @Param warehouseId query string false "Warehouse"
// @Param receivedBy query string false "Receiver user ID"
// @Param search query string false "Search receiving number"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.ListResponse[domain.Receiving]
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /receiving [get]
func (h *receivingHandler) listReceivings(c *gin.Context) {
	var params dto.ListReceivingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "list receivings query")
		return
	}
	listDocuments(c, h.receivingService, params.ToListQuery(), receivingNoun)
}

// getReceiving godoc
// @Summary Get a receiving
// @Tags receiving
// @Produce json
// @Param id path string true "Receiving ID"
// @Success 200 {object} domain.Receiving
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /receiving/{id} [get]
func (h *receivingHandler) getReceiving(c *gin.Context) {
	getDocument(c, h.receivingService, receivingNoun)
}

// updateReceiving godoc
// @Summary Update a receiving
// @Tags receiving
// @Accept json
// @Produce json
// @Param id path string true "Receiving ID"
// @Param receiving body dto.UpdateReceivingRequest true "Fields to update"
// @Success 200 {object} domain.Receiving
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /receiving/{id} [patch]
func (h *receivingHandler) updateReceiving(c *gin.Context) {
	var req dto.UpdateReceivingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "update receiving request")
		return
	}

	rec, err := h.receivingService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "update receiving")
		return
	}
	respondWithData(c, http.StatusOK, rec)
}

// updateReceivingStatus godoc
// @Summary Change the status of a receiving
// @Tags receiving
// @Accept json
// @Produce json
// @Param id path string true "Receiving ID"
// @Param status body dto.StatusUpdateRequest true "New status"
// @Success 200 {object} domain.Receiving
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /receiving/{id}/status [patch]
func (h *receivingHandler) updateReceivingStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "status update request")
		return
	}

	rec, err := h.receivingService.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "update receiving status")
		return
	}
	respondWithData(c, http.StatusOK, rec)
}

// deleteReceiving godoc
// @Summary Delete a receiving
// @Tags receiving
// @Produce json
// @Param id path string true "Receiving ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /receiving/{id} [delete]
func (h *receivingHandler) deleteReceiving(c *gin.Context) {
	deleteDocument(c, h.receivingService, receivingNoun)
}
