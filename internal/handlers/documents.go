package handlers

import (
	"net/http"

	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// The helpers below back the read and delete routes every business document exposes.
// noun names the document in logs and messages, e.g. "purchase order".

func getDocument[T any](c *gin.Context, svc portssvc.DocumentReaderSvc[T], noun string) {
	doc, err := svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "get "+noun)
		return
	}
	respondWithData(c, http.StatusOK, doc)
}

func listDocuments[T any](c *gin.Context, svc portssvc.DocumentReaderSvc[T], query domain.ListQuery, noun string) {
	page, err := svc.List(c.Request.Context(), query)
	if err != nil {
		respondWithError(c, err, "list "+noun+"s")
		return
	}
	respondWithData(c, http.StatusOK, dto.ToListResponse(page))
}

func deleteDocument(c *gin.Context, svc portssvc.DocumentDeleterSvc, noun string) {
	if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err, "delete "+noun)
		return
	}
	respondWithData(c, http.StatusOK, dto.MessageResponse{Message: capitalize(noun) + " deleted successfully"})
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
