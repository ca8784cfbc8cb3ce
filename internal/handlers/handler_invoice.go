package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/SscSPs/procurement_accounting_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const invoiceNoun = "invoice"

// invoiceHandler handles vendor invoices and their settlement.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: is}
}

func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)
	read := middleware.RequireRoles(readRoles...)
	write := middleware.RequireRoles(writeRoles...)

	invoices := rg.Group("/invoice")
	{
		invoices.POST("", read, h.createInvoice)
		invoices.GET("", read, h.listInvoices)
		invoices.GET("/:id", read, h.getInvoice)
		invoices.PATCH("/:id", read, h.updateInvoice)
		invoices.PATCH("/:id/status", write, h.updateInvoiceStatus)
		invoices.POST("/:id/payment", write, h.recordPayment)
		invoices.DELETE("/:id", write, h.deleteInvoice)
	}
}

// createInvoice godoc
// @Summary Create an invoice
// @Description Tax defaults to amount x taxRate / 100 per item. The due date defaults to 30 days after the invoice date.
// @Tags invoice
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Invoice"
// @Success 201 {object} domain.Invoice
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invoice [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "create invoice request")
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "create invoice")
		return
	}
	respondWithData(c, http.StatusCreated, invoice)
}

// listInvoices godoc
// @Summary List invoices
// @Tags invoice
// @Produce json
// @Param status query string false "Status"
// @Param paymentStatus query string false "Payment status" Enums(Unpaid, Partial, Paid, Overdue)
// @Param vendorId query string false "Vendor"
// @Param search query string false "Search invoice number"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.ListResponse[domain.Invoice]
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invoice [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "list invoices query")
		return
	}
	listDocuments(c, h.invoiceService, params.ToListQuery(), invoiceNoun)
}

// getInvoice godoc
// @Summary Get an invoice
// @Tags invoice
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} domain.Invoice
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invoice/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	getDocument(c, h.invoiceService, invoiceNoun)
}

// updateInvoice godoc
// @Summary Update an invoice
// @Description Replacing the items recomputes the totals and the outstanding amount.
// @Tags invoice
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param invoice body dto.UpdateInvoiceRequest true "Fields to update"
// @Success 200 {object} domain.Invoice
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invoice/{id} [patch]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "update invoice request")
		return
	}

	invoice, err := h.invoiceService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "update invoice")
		return
	}
	respondWithData(c, http.StatusOK, invoice)
}

// updateInvoiceStatus godoc
// @Summary Change the status of an invoice
// @Description Approving records the caller as approver.
// @Tags invoice
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param status body dto.StatusUpdateRequest true "New status"
// @Success 200 {object} domain.Invoice
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invoice/{id}/status [patch]
func (h *invoiceHandler) updateInvoiceStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "status update request")
		return
	}

	invoice, err := h.invoiceService.UpdateStatus(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, err, "update invoice status")
		return
	}
	respondWithData(c, http.StatusOK, invoice)
}

// recordPayment godoc
// @Summary Record a payment
// @Description Adds the amount to the paid total and recomputes the outstanding amount and payment status.
// @Tags invoice
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param payment body dto.RecordPaymentRequest true "Payment"
// @Success 200 {object} domain.Invoice
// @Failure 400 {object} dto.ErrorResponse "Amount must be positive"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invoice/{id}/payment [post]
func (h *invoiceHandler) recordPayment(c *gin.Context) {
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "record payment request")
		return
	}

	invoice, err := h.invoiceService.RecordPayment(c.Request.Context(), c.Param("id"), req.ToDomain())
	if err != nil {
		respondWithError(c, err, "record payment")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Invoice payment recorded",
		slog.String("invoice_id", invoice.ID),
		slog.String("amount", req.Amount.String()),
		slog.String("payment_status", string(invoice.PaymentStatus)))
	respondWithData(c, http.StatusOK, invoice)
}

// deleteInvoice godoc
// @Summary Delete an invoice
// @Tags invoice
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invoice/{id} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	deleteDocument(c, h.invoiceService, invoiceNoun)
}
