package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/SscSPs/procurement_accounting_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const accountNoun = "account"

type chartOfAccountsHandler struct {
	accountService portssvc.ChartOfAccountsSvcFacade
}

func newChartOfAccountsHandler(as portssvc.ChartOfAccountsSvcFacade) *chartOfAccountsHandler {
	return &chartOfAccountsHandler{accountService: as}
}

func registerChartOfAccountsRoutes(rg *gin.RouterGroup, accountService portssvc.ChartOfAccountsSvcFacade) {
	h := newChartOfAccountsHandler(accountService)
	read := middleware.RequireRoles(readRoles...)
	write := middleware.RequireRoles(writeRoles...)

	accounts := rg.Group("/chart-of-accounts")
	{
		accounts.POST("", write, h.createAccount)
		accounts.GET("", read, h.listAccounts)
		accounts.GET("/hierarchy", read, h.hierarchy)
		accounts.GET("/generate-number/:accountType", write, h.generateAccountNumber)
		accounts.GET("/:id", read, h.getAccount)
		accounts.PATCH("/:id", write, h.updateAccount)
		accounts.DELETE("/:id", write, h.deleteAccount)
	}
}

// createAccount godoc
// @Summary Create an account
// @Tags chart-of-accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateChartOfAccountRequest true "Account"
// @Success 201 {object} domain.ChartOfAccount
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Account number already exists"
// @Security BearerAuth
// @Router /chart-of-accounts [post]
func (h *chartOfAccountsHandler) createAccount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateChartOfAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "create account request")
		return
	}

	account, err := h.accountService.Create(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "create account")
		return
	}
	respondWithData(c, http.StatusCreated, account)
}

// listAccounts godoc
// @Summary List accounts
// @Description Accounts are sorted by account number.
// @Tags chart-of-accounts
// @Produce json
// @Param accountType query string false "Account type"
// @Param rootType query string false "Root type"
// @Param company query string false "Company"
// @Param isEnabled query bool false "Enabled flag"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.ListResponse[domain.ChartOfAccount]
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /chart-of-accounts [get]
func (h *chartOfAccountsHandler) listAccounts(c *gin.Context) {
	var params dto.ListChartOfAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "list accounts query")
		return
	}
	listDocuments(c, h.accountService, params.ToListQuery(), accountNoun)
}

// hierarchy godoc
// @Summary Account tree
// @Description Enabled accounts nested under their parents. Accounts whose parent is unknown are roots.
// @Tags chart-of-accounts
// @Produce json
// @Success 200 {array} domain.AccountNode
// @Security BearerAuth
// @Router /chart-of-accounts/hierarchy [get]
func (h *chartOfAccountsHandler) hierarchy(c *gin.Context) {
	roots, err := h.accountService.Hierarchy(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "build account hierarchy")
		return
	}
	respondWithData(c, http.StatusOK, roots)
}

// generateAccountNumber godoc
// @Summary Propose an account number
// @Tags chart-of-accounts
// @Produce json
// @Param accountType path string true "Account type"
// @Success 200 {object} dto.AccountNumberResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /chart-of-accounts/generate-number/{accountType} [get]
func (h *chartOfAccountsHandler) generateAccountNumber(c *gin.Context) {
	number, err := h.accountService.GenerateAccountNumber(c.Request.Context(), c.Param("accountType"))
	if err != nil {
		respondWithError(c, err, "generate account number")
		return
	}
	respondWithData(c, http.StatusOK, dto.AccountNumberResponse{AccountNumber: number})
}

// getAccount godoc
// @Summary Get an account
// @Tags chart-of-accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} domain.ChartOfAccount
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /chart-of-accounts/{id} [get]
func (h *chartOfAccountsHandler) getAccount(c *gin.Context) {
	getDocument(c, h.accountService, accountNoun)
}

// updateAccount godoc
// @Summary Update an account
// @Tags chart-of-accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param account body dto.UpdateChartOfAccountRequest true "Fields to update"
// @Success 200 {object} domain.ChartOfAccount
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /chart-of-accounts/{id} [patch]
func (h *chartOfAccountsHandler) updateAccount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateChartOfAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "update account request")
		return
	}

	account, err := h.accountService.Update(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, err, "update account")
		return
	}
	respondWithData(c, http.StatusOK, account)
}

// deleteAccount godoc
// @Summary Delete an account
// @Tags chart-of-accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /chart-of-accounts/{id} [delete]
func (h *chartOfAccountsHandler) deleteAccount(c *gin.Context) {
	deleteDocument(c, h.accountService, accountNoun)
}
