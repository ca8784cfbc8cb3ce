package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/SscSPs/procurement_accounting_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const paymentVoucherNoun = "payment voucher"

type paymentVoucherHandler struct {
	voucherService portssvc.PaymentVoucherSvcFacade
}

func newPaymentVoucherHandler(vs portssvc.PaymentVoucherSvcFacade) *paymentVoucherHandler {
	return &paymentVoucherHandler{voucherService: vs}
}

func registerPaymentVoucherRoutes(rg *gin.RouterGroup, voucherService portssvc.PaymentVoucherSvcFacade) {
	h := newPaymentVoucherHandler(voucherService)
	read := middleware.RequireRoles(readRoles...)
	write := middleware.RequireRoles(writeRoles...)

	vouchers := rg.Group("/payment-voucher")
	{
		vouchers.POST("", read, h.createPaymentVoucher)
		vouchers.GET("", read, h.listPaymentVouchers)
		vouchers.GET("/:id", read, h.getPaymentVoucher)
		vouchers.PATCH("/:id", read, h.updatePaymentVoucher)
		vouchers.PATCH("/:id/status", write, h.updatePaymentVoucherStatus)
		vouchers.DELETE("/:id", write, h.deletePaymentVoucher)
	}
}

// createPaymentVoucher godoc
// @Summary Create a payment voucher
// @Description The grand total is the sum of the charge lines.
// @Tags payment-voucher
// @Accept json
// @Produce json
// @Param voucher body dto.CreatePaymentVoucherRequest true "Payment voucher"
// @Success 201 {object} domain.PaymentVoucher
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /payment-voucher [post]
func (h *paymentVoucherHandler) createPaymentVoucher(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePaymentVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "create payment voucher request")
		return
	}

	pv, err := h.voucherService.Create(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "create payment voucher")
		return
	}
	respondWithData(c, http.StatusCreated, pv)
}

// listPaymentVouchers godoc
// @Summary List payment vouchers
// @Tags payment-voucher
// @Produce json
// @Param status query string false "Status"
// @Param vendor query string false "Vendor"
// @Param paymentType query string false "Payment type"
// @Param search query string false "Search voucher number"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.ListResponse[domain.PaymentVoucher]
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /payment-voucher [get]
func (h *paymentVoucherHandler) listPaymentVouchers(c *gin.Context) {
	var params dto.ListPaymentVouchersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "list payment vouchers query")
		return
	}
	listDocuments(c, h.voucherService, params.ToListQuery(), paymentVoucherNoun)
}

// getPaymentVoucher godoc
// @Summary Get a payment voucher
// @Tags payment-voucher
// @Produce json
// @Param id path string true "Payment voucher ID"
// @Success 200 {object} domain.PaymentVoucher
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /payment-voucher/{id} [get]
func (h *paymentVoucherHandler) getPaymentVoucher(c *gin.Context) {
	getDocument(c, h.voucherService, paymentVoucherNoun)
}

// updatePaymentVoucher godoc
// @Summary Update a payment voucher
// @Tags payment-voucher
// @Accept json
// @Produce json
// @Param id path string true "Payment voucher ID"
// @Param voucher body dto.UpdatePaymentVoucherRequest true "Fields to update"
// @Success 200 {object} domain.PaymentVoucher
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /payment-voucher/{id} [patch]
func (h *paymentVoucherHandler) updatePaymentVoucher(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePaymentVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "update payment voucher request")
		return
	}

	pv, err := h.voucherService.Update(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, err, "update payment voucher")
		return
	}
	respondWithData(c, http.StatusOK, pv)
}

// updatePaymentVoucherStatus godoc
// @Summary Change the status of a payment voucher
// @Description Approving records the caller as approver.
// @Tags payment-voucher
// @Accept json
// @Produce json
// @Param id path string true "Payment voucher ID"
// @Param status body dto.StatusUpdateRequest true "New status"
// @Success 200 {object} domain.PaymentVoucher
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /payment-voucher/{id}/status [patch]
func (h *paymentVoucherHandler) updatePaymentVoucherStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "status update request")
		return
	}

	pv, err := h.voucherService.UpdateStatus(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, err, "update payment voucher status")
		return
	}
	respondWithData(c, http.StatusOK, pv)
}

// deletePaymentVoucher godoc
// @Summary Delete a payment voucher
// @Tags payment-voucher
// @Produce json
// @Param id path string true "Payment voucher ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /payment-voucher/{id} [delete]
func (h *paymentVoucherHandler) deletePaymentVoucher(c *gin.Context) {
	deleteDocument(c, h.voucherService, paymentVoucherNoun)
}
