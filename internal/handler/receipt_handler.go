package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"facturalo/internal/service"
)

// ReceiptHandler handles expense receipt endpoints.
type ReceiptHandler struct {
	receiptService service.ReceiptService
}

// NewReceiptHandler creates a new ReceiptHandler.
func NewReceiptHandler(receiptService service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Upload handles POST /api/v1/receipts
// @Summary Upload a receipt
// @Description Upload a receipt file (justificante) for an expense, optionally linked to a transaction. Allowed types: pdf, jpg, png.
// @Tags receipts
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Receipt file"
// @Param transaction_id formData string false "Transaction to attach the receipt to"
// @Success 201 {object} Response{data=domain.Receipt} "Uploaded receipt"
// @Failure 400 {object} ErrorResponseBody "Unsupported file type"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Transaction not found"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Security BearerAuth
// @Router /receipts [post]
func (h *ReceiptHandler) Upload(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "file is required")
		return
	}

	var txID *uuid.UUID
	if raw := c.PostForm("transaction_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "transaction_id must be a valid UUID")
			return
		}
		txID = &parsed
	}

	file, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "could not read uploaded file")
		return
	}
	defer file.Close()

	receipt, err := h.receiptService.Upload(c.Request.Context(), service.ReceiptUploadInput{
		UserID:        userID,
		TransactionID: txID,
		File:          file,
		Header:        fileHeader,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, receipt)
}

// GetByID handles GET /api/v1/receipts/:id
// @Summary Get receipt by ID
// @Tags receipts
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} Response{data=domain.Receipt} "Receipt"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Receipt not found"
// @Security BearerAuth
// @Router /receipts/{id} [get]
func (h *ReceiptHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	receiptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid receipt ID")
		return
	}

	receipt, err := h.receiptService.GetByID(c.Request.Context(), userID, receiptID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, receipt)
}

// List handles GET /api/v1/receipts?offset=0&limit=20
// @Summary List receipts
// @Tags receipts
// @Produce json
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} Response{data=[]domain.Receipt} "Receipts"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /receipts [get]
func (h *ReceiptHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	offset := parseIntQuery(c, "offset", 0)
	limit := parseIntQuery(c, "limit", 20)
	if limit > 100 {
		limit = 100
	}

	receipts, total, err := h.receiptService.List(c.Request.Context(), userID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, receipts, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetDownloadURL handles GET /api/v1/receipts/:id/download
// @Summary Get receipt download URL
// @Description Return a presigned URL for downloading the receipt file.
// @Tags receipts
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} Response{data=DownloadURLResponse} "Presigned download URL"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Receipt not found"
// @Security BearerAuth
// @Router /receipts/{id}/download [get]
func (h *ReceiptHandler) GetDownloadURL(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	receiptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid receipt ID")
		return
	}

	url, err := h.receiptService.GetDownloadURL(c.Request.Context(), userID, receiptID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, DownloadURLResponse{DownloadURL: url})
}

// Delete handles DELETE /api/v1/receipts/:id
// @Summary Delete a receipt
// @Tags receipts
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} Response{data=MessageResponse} "Receipt deleted"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Receipt not found"
// @Security BearerAuth
// @Router /receipts/{id} [delete]
func (h *ReceiptHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	receiptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid receipt ID")
		return
	}

	if err := h.receiptService.Delete(c.Request.Context(), userID, receiptID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, MessageResponse{Message: "receipt deleted"})
}
