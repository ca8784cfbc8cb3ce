package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/SscSPs/procurement_accounting_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const ledgerEntryNoun = "ledger entry"

// generalLedgerHandler serves ledger postings and the financial statements built from them.
type generalLedgerHandler struct {
	ledgerService portssvc.GeneralLedgerSvcFacade
}

func newGeneralLedgerHandler(ls portssvc.GeneralLedgerSvcFacade) *generalLedgerHandler {
	return &generalLedgerHandler{ledgerService: ls}
}

func registerGeneralLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.GeneralLedgerSvcFacade) {
	h := newGeneralLedgerHandler(ledgerService)
	read := middleware.RequireRoles(readRoles...)
	write := middleware.RequireRoles(writeRoles...)

	ledger := rg.Group("/general-ledger")
	{
		ledger.POST("", write, h.createLedgerEntry)
		ledger.GET("", read, h.listLedgerEntries)
		ledger.GET("/balance-sheet", read, h.balanceSheet)
		ledger.GET("/income-statement", read, h.incomeStatement)
		ledger.GET("/trial-balance", read, h.trialBalance)
		ledger.GET("/account/:account", read, h.listByAccount)
		ledger.GET("/date-range/:startDate/:endDate", read, h.listByDateRange)
		ledger.GET("/:id", read, h.getLedgerEntry)
		ledger.PATCH("/:id", write, h.updateLedgerEntry)
		ledger.DELETE("/:id", write, h.deleteLedgerEntry)
	}
}

// createLedgerEntry godoc
// @Summary Create a ledger entry
// @Description Balance defaults to debit minus credit when omitted.
// @Tags general-ledger
// @Accept json
// @Produce json
// @Param entry body dto.CreateGeneralLedgerEntryRequest true "Ledger entry"
// @Success 201 {object} domain.GeneralLedgerEntry
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /general-ledger [post]
func (h *generalLedgerHandler) createLedgerEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateGeneralLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "create ledger entry request")
		return
	}

	entry, err := h.ledgerService.Create(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "create ledger entry")
		return
	}
	respondWithData(c, http.StatusCreated, entry)
}

// listLedgerEntries godoc
// @Summary List ledger entries
// @Tags general-ledger
// @Produce json
// @Param account query string false "Account"
// @Param date query string false "Calendar day (YYYY-MM-DD)"
// @Param company query string false "Company"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.ListResponse[domain.GeneralLedgerEntry]
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /general-ledger [get]
func (h *generalLedgerHandler) listLedgerEntries(c *gin.Context) {
	var params dto.ListGeneralLedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "list ledger entries query")
		return
	}
	h.list(c, params)
}

// listByAccount godoc
// @Summary List ledger entries of one account
// @Tags general-ledger
// @Produce json
// @Param account path string true "Account"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.ListResponse[domain.GeneralLedgerEntry]
// @Security BearerAuth
// @Router /general-ledger/account/{account} [get]
func (h *generalLedgerHandler) listByAccount(c *gin.Context) {
	var params dto.ListGeneralLedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "list ledger entries query")
		return
	}
	params.Account = c.Param("account")
	h.list(c, params)
}

func (h *generalLedgerHandler) list(c *gin.Context, params dto.ListGeneralLedgerParams) {
	query, err := params.ToListQuery()
	if err != nil {
		respondWithError(c, err, "parse ledger filter")
		return
	}
	listDocuments(c, h.ledgerService, query, ledgerEntryNoun)
}

// listByDateRange godoc
// @Summary List ledger entries within a date range
// @Description Both bounds are inclusive. A plain date as the end bound covers that whole day.
// @Tags general-ledger
// @Produce json
// @Param startDate path string true "Start date (YYYY-MM-DD or RFC 3339)"
// @Param endDate path string true "End date (YYYY-MM-DD or RFC 3339)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.ListResponse[domain.GeneralLedgerEntry]
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /general-ledger/date-range/{startDate}/{endDate} [get]
func (h *generalLedgerHandler) listByDateRange(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "list ledger entries query")
		return
	}

	query, err := dto.DateRangeQuery(params, c.Param("startDate"), c.Param("endDate"))
	if err != nil {
		respondWithError(c, err, "parse ledger date range")
		return
	}
	listDocuments(c, h.ledgerService, query, ledgerEntryNoun)
}

// balanceSheet godoc
// @Summary Balance sheet
// @Description Groups ledger entries into assets, liabilities and equity.
// @Tags general-ledger
// @Produce json
// @Success 200 {object} domain.BalanceSheet
// @Security BearerAuth
// @Router /general-ledger/balance-sheet [get]
func (h *generalLedgerHandler) balanceSheet(c *gin.Context) {
	sheet, err := h.ledgerService.BalanceSheet(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "build balance sheet")
		return
	}
	respondWithData(c, http.StatusOK, sheet)
}

// incomeStatement godoc
// @Summary Income statement
// @Description Groups ledger entries into revenue and expenses and reports net income.
// @Tags general-ledger
// @Produce json
// @Success 200 {object} domain.IncomeStatement
// @Security BearerAuth
// @Router /general-ledger/income-statement [get]
func (h *generalLedgerHandler) incomeStatement(c *gin.Context) {
	statement, err := h.ledgerService.IncomeStatement(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "build income statement")
		return
	}
	respondWithData(c, http.StatusOK, statement)
}

// trialBalance godoc
// @Summary Trial balance
// @Tags general-ledger
// @Produce json
// @Success 200 {object} domain.TrialBalance
// @Security BearerAuth
// @Router /general-ledger/trial-balance [get]
func (h *generalLedgerHandler) trialBalance(c *gin.Context) {
	balance, err := h.ledgerService.TrialBalance(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "build trial balance")
		return
	}
	respondWithData(c, http.StatusOK, balance)
}

// getLedgerEntry godoc
// @Summary Get a ledger entry
// @Tags general-ledger
// @Produce json
// @Param id path string true "Ledger entry ID"
// @Success 200 {object} domain.GeneralLedgerEntry
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /general-ledger/{id} [get]
func (h *generalLedgerHandler) getLedgerEntry(c *gin.Context) {
	getDocument(c, h.ledgerService, ledgerEntryNoun)
}

// updateLedgerEntry godoc
// @Summary Update a ledger entry
// @Tags general-ledger
// @Accept json
// @Produce json
// @Param id path string true "Ledger entry ID"
// @Param entry body dto.UpdateGeneralLedgerEntryRequest true "Fields to update"
// @Success 200 {object} domain.GeneralLedgerEntry
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /general-ledger/{id} [patch]
func (h *generalLedgerHandler) updateLedgerEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateGeneralLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "update ledger entry request")
		return
	}

	entry, err := h.ledgerService.Update(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, err, "update ledger entry")
		return
	}
	respondWithData(c, http.StatusOK, entry)
}

// deleteLedgerEntry godoc
// @Summary Delete a ledger entry
// @Tags general-ledger
// @Produce json
// @Param id path string true "Ledger entry ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /general-ledger/{id} [delete]
func (h *generalLedgerHandler) deleteLedgerEntry(c *gin.Context) {
	deleteDocument(c, h.ledgerService, ledgerEntryNoun)
}
