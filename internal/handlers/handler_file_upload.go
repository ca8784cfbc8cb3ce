package handlers

import (
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type fileUploadHandler struct {
	fileService portssvc.FileSvcFacade
}

func registerFileUploadRoutes(rg *gin.RouterGroup, fileService portssvc.FileSvcFacade) {
	h := &fileUploadHandler{fileService: fileService}

	uploads := rg.Group("/file-upload", middleware.RequireRoles(readRoles...))
	{
		uploads.POST("/single", h.uploadSingle)
		uploads.POST("/multiple", h.uploadMultiple)
	}
}

// uploadSingle godoc
// @Summary Upload a file
// @Tags file-upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 201 {object} domain.UploadedFile
// @Failure 400 {object} dto.ErrorResponse "Missing or oversized file"
// @Security BearerAuth
// @Router /file-upload/single [post]
func (h *fileUploadHandler) uploadSingle(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		respondBindError(c, err, "uploaded file")
		return
	}

	file, err := header.Open()
	if err != nil {
		respondWithError(c, err, "open uploaded file")
		return
	}
	defer file.Close()

	stored, err := h.fileService.Save(c.Request.Context(), toFileUpload(header, file))
	if err != nil {
		respondWithError(c, err, "store uploaded file")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("File uploaded",
		slog.String("filename", stored.Filename), slog.Int64("size", stored.Size))
	respondWithData(c, http.StatusCreated, stored)
}

// uploadMultiple godoc
// @Summary Upload several files
// @Tags file-upload
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Files to upload"
// @Success 201 {array} domain.UploadedFile
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /file-upload/multiple [post]
func (h *fileUploadHandler) uploadMultiple(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondBindError(c, err, "multipart form")
		return
	}

	headers := form.File["files"]
	uploads := make([]domain.FileUpload, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			respondWithError(c, err, "open uploaded file")
			return
		}
		defer file.Close()
		uploads = append(uploads, toFileUpload(header, file))
	}

	stored, err := h.fileService.SaveMany(c.Request.Context(), uploads)
	if err != nil {
		respondWithError(c, err, "store uploaded files")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Files uploaded", slog.Int("count", len(stored)))
	respondWithData(c, http.StatusCreated, stored)
}

func toFileUpload(header *multipart.FileHeader, file multipart.File) domain.FileUpload {
	return domain.FileUpload{
		OriginalName: header.Filename,
		MimeType:     header.Header.Get("Content-Type"),
		Size:         header.Size,
		Content:      file,
	}
}
