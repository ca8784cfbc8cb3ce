package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/SscSPs/procurement_accounting_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const journalEntryNoun = "journal entry"

// journalEntryHandler handles HTTP requests for journal entries.
type journalEntryHandler struct {
	journalService portssvc.JournalEntrySvcFacade
}

func newJournalEntryHandler(js portssvc.JournalEntrySvcFacade) *journalEntryHandler {
	return &journalEntryHandler{journalService: js}
}

// registerJournalEntryRoutes registers the /journal-entry routes.
func registerJournalEntryRoutes(rg *gin.RouterGroup, journalService portssvc.JournalEntrySvcFacade) {
	h := newJournalEntryHandler(journalService)
	read := middleware.RequireRoles(readRoles...)
	write := middleware.RequireRoles(writeRoles...)

	entries := rg.Group("/journal-entry")
	{
		entries.POST("", write, h.createJournalEntry)
		entries.GET("", read, h.listJournalEntries)
		entries.GET("/entry-type/:entryType", read, h.listByEntryType)
		entries.GET("/status/:status", read, h.listByStatus)
		entries.GET("/company/:company", read, h.listByCompany)
		entries.GET("/:id", read, h.getJournalEntry)
		entries.PATCH("/:id", write, h.updateJournalEntry)
		entries.PATCH("/:id/post", write, h.postJournalEntry)
		entries.DELETE("/:id", write, h.deleteJournalEntry)
	}
}

// createJournalEntry godoc
// @Summary Create a journal entry
// @Description Creates a journal entry. Total debits must equal total credits within 0.01.
// @Tags journal-entry
// @Accept json
// @Produce json
// @Param entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} domain.JournalEntry
// @Failure 400 {object} dto.ErrorResponse "Invalid input or unbalanced entry"
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /journal-entry [post]
func (h *journalEntryHandler) createJournalEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "create journal entry request")
		return
	}

	entry, err := h.journalService.Create(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "create journal entry")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Journal entry created",
		slog.String("journal_entry_id", entry.ID), slog.String("entry_id", entry.EntryID))
	respondWithData(c, http.StatusCreated, entry)
}

// listJournalEntries godoc
// @Summary List journal entries
// @Tags journal-entry
// @Produce json
// @Param entryType query string false "Entry type"
// @Param status query string false "Status"
// @Param company query string false "Company"
// @Param search query string false "Search title, entry id or reference"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.ListResponse[domain.JournalEntry]
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /journal-entry [get]
func (h *journalEntryHandler) listJournalEntries(c *gin.Context) {
	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "list journal entries query")
		return
	}
	listDocuments(c, h.journalService, params.ToListQuery(), journalEntryNoun)
}

// listByEntryType godoc
// @Summary List journal entries of one entry type
// @Tags journal-entry
// @Produce json
// @Param entryType path string true "Entry type"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.ListResponse[domain.JournalEntry]
// @Security BearerAuth
// @Router /journal-entry/entry-type/{entryType} [get]
func (h *journalEntryHandler) listByEntryType(c *gin.Context) {
	h.listByPathFilter(c, func(p *dto.ListJournalEntriesParams) { p.EntryType = c.Param("entryType") })
}

// listByStatus godoc
// @Summary List journal entries with one status
// @Tags journal-entry
// @Produce json
// @Param status path string true "Status"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.ListResponse[domain.JournalEntry]
// @Security BearerAuth
// @Router /journal-entry/status/{status} [get]
func (h *journalEntryHandler) listByStatus(c *gin.Context) {
	h.listByPathFilter(c, func(p *dto.ListJournalEntriesParams) { p.Status = c.Param("status") })
}

// listByCompany godoc
// @Summary List journal entries of one company
// @Tags journal-entry
// @Produce json
// @Param company path string true "Company"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.ListResponse[domain.JournalEntry]
// @Security BearerAuth
// @Router /journal-entry/company/{company} [get]
func (h *journalEntryHandler) listByCompany(c *gin.Context) {
	h.listByPathFilter(c, func(p *dto.ListJournalEntriesParams) { p.Company = c.Param("company") })
}

func (h *journalEntryHandler) listByPathFilter(c *gin.Context, set func(*dto.ListJournalEntriesParams)) {
	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "list journal entries query")
		return
	}
	set(&params)
	listDocuments(c, h.journalService, params.ToListQuery(), journalEntryNoun)
}

// getJournalEntry godoc
// @Summary Get a journal entry
// @Tags journal-entry
// @Produce json
// @Param id path string true "Journal entry ID"
// @Success 200 {object} domain.JournalEntry
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /journal-entry/{id} [get]
func (h *journalEntryHandler) getJournalEntry(c *gin.Context) {
	getDocument(c, h.journalService, journalEntryNoun)
}

// updateJournalEntry godoc
// @Summary Update a journal entry
// @Description Replacing the accounting lines re-runs the balance check.
// @Tags journal-entry
// @Accept json
// @Produce json
// @Param id path string true "Journal entry ID"
// @Param entry body dto.UpdateJournalEntryRequest true "Fields to update"
// @Success 200 {object} domain.JournalEntry
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /journal-entry/{id} [patch]
func (h *journalEntryHandler) updateJournalEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "update journal entry request")
		return
	}

	entry, err := h.journalService.Update(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, err, "update journal entry")
		return
	}
	respondWithData(c, http.StatusOK, entry)
}

// postJournalEntry godoc
// @Summary Post a journal entry
// @Tags journal-entry
// @Produce json
// @Param id path string true "Journal entry ID"
// @Success 200 {object} domain.JournalEntry
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /journal-entry/{id}/post [patch]
func (h *journalEntryHandler) postJournalEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entry, err := h.journalService.Post(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondWithError(c, err, "post journal entry")
		return
	}
	respondWithData(c, http.StatusOK, entry)
}

// deleteJournalEntry godoc
// @Summary Delete a journal entry
// @Tags journal-entry
// @Produce json
// @Param id path string true "Journal entry ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /journal-entry/{id} [delete]
func (h *journalEntryHandler) deleteJournalEntry(c *gin.Context) {
	deleteDocument(c, h.journalService, journalEntryNoun)
}
