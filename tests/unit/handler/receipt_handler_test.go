package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"facturalo/internal/domain"
	"facturalo/internal/handler"
	"facturalo/mocks"
)

func newReceiptHandler() (*handler.ReceiptHandler, *mocks.MockReceiptService) {
	mockSvc := new(mocks.MockReceiptService)
	h := handler.NewReceiptHandler(mockSvc)
	return h, mockSvc
}

func multipartUploadRequest(t *testing.T, filename string, content []byte, fields map[string]string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, _ = part.Write(content)
	for k, v := range fields {
		_ = writer.WriteField(k, v)
	}
	writer.Close()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/receipts", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestReceiptHandler_Upload_Success(t *testing.T) {
	h, mockSvc := newReceiptHandler()
	userID := uuid.New()

	expected := &domain.Receipt{
		ID:           uuid.New(),
		UserID:       userID,
		OriginalName: "taxi.pdf",
		FileType:     domain.FileTypePDF,
		Status:       domain.ReceiptStatusUploaded,
	}
	mockSvc.On("Upload", mock.Anything, mock.AnythingOfType("service.ReceiptUploadInput")).Return(expected, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartUploadRequest(t, "taxi.pdf", []byte("%PDF-1.4 content"), nil)
	setAuthContext(c, userID)

	h.Upload(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestReceiptHandler_Upload_MissingFile(t *testing.T) {
	h, mockSvc := newReceiptHandler()
	userID := uuid.New()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/receipts", http.NoBody)
	setAuthContext(c, userID)

	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Upload")
}

func TestReceiptHandler_Upload_InvalidTransactionID(t *testing.T) {
	h, mockSvc := newReceiptHandler()
	userID := uuid.New()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartUploadRequest(t, "taxi.pdf", []byte("%PDF-1.4 content"), map[string]string{
		"transaction_id": "not-a-uuid",
	})
	setAuthContext(c, userID)

	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Upload")
}

func TestReceiptHandler_Upload_UnsupportedType(t *testing.T) {
	h, mockSvc := newReceiptHandler()
	userID := uuid.New()

	mockSvc.On("Upload", mock.Anything, mock.AnythingOfType("service.ReceiptUploadInput")).
		Return(nil, domain.ErrUnsupportedFileType)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartUploadRequest(t, "script.sh", []byte("#!/bin/sh"), nil)
	setAuthContext(c, userID)

	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReceiptHandler_List_Paginated(t *testing.T) {
	h, mockSvc := newReceiptHandler()
	userID := uuid.New()

	receipts := []domain.Receipt{{ID: uuid.New()}, {ID: uuid.New()}}
	mockSvc.On("List", mock.Anything, userID, 5, 10).Return(receipts, 42, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/receipts?offset=5&limit=10", http.NoBody)
	setAuthContext(c, userID)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Meta)
	assert.Equal(t, 42, resp.Meta.Total)
	assert.Equal(t, 5, resp.Meta.Offset)
	assert.Equal(t, 10, resp.Meta.Limit)
}

func TestReceiptHandler_GetByID_NotFound(t *testing.T) {
	h, mockSvc := newReceiptHandler()
	userID := uuid.New()
	receiptID := uuid.New()

	mockSvc.On("GetByID", mock.Anything, userID, receiptID).Return(nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/receipts/"+receiptID.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: receiptID.String()}}
	setAuthContext(c, userID)

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReceiptHandler_GetDownloadURL(t *testing.T) {
	h, mockSvc := newReceiptHandler()
	userID := uuid.New()
	receiptID := uuid.New()

	mockSvc.On("GetDownloadURL", mock.Anything, userID, receiptID).
		Return("https://presigned.example/url", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/receipts/"+receiptID.String()+"/download", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: receiptID.String()}}
	setAuthContext(c, userID)

	h.GetDownloadURL(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "presigned.example")
}

func TestReceiptHandler_Delete_InvalidID(t *testing.T) {
	h, mockSvc := newReceiptHandler()
	userID := uuid.New()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/receipts/abc", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	setAuthContext(c, userID)

	h.Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Delete")
}
