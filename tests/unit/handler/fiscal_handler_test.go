package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"facturalo/internal/domain"
	"facturalo/internal/fiscal"
	"facturalo/internal/handler"
	"facturalo/mocks"
)

func newFiscalHandler() (*handler.FiscalHandler, *mocks.MockFiscalSummaryService) {
	mockSvc := new(mocks.MockFiscalSummaryService)
	h := handler.NewFiscalHandler(mockSvc)
	return h, mockSvc
}

func TestFiscalHandler_GetSummary_Success(t *testing.T) {
	h, mockSvc := newFiscalHandler()
	userID := uuid.New()

	expected := &domain.FiscalSummary{
		Income:        1210,
		BaseImponible: 1000,
		Taxes:         domain.TaxTotals{VAT: 210, IncomeTax: 150, IVAALiquidar: 105},
	}
	mockSvc.On("GetSummary", mock.Anything, userID, "2024", "Q1").Return(expected, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/fiscal/summary?year=2024&period=Q1", http.NoBody)
	setAuthContext(c, userID)

	h.GetSummary(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)

	data, _ := json.Marshal(resp.Data)
	var summary domain.FiscalSummary
	assert.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, int64(1210), summary.Income)
	mockSvc.AssertExpectations(t)
}

func TestFiscalHandler_GetSummary_NoAuthContext(t *testing.T) {
	h, _ := newFiscalHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/fiscal/summary", http.NoBody)

	h.GetSummary(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFiscalHandler_GetSummary_InvalidYear(t *testing.T) {
	h, mockSvc := newFiscalHandler()
	userID := uuid.New()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/fiscal/summary?year=20x4", http.NoBody)
	setAuthContext(c, userID)

	h.GetSummary(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "GetSummary")
}

func TestFiscalHandler_GetSummary_EmptyParamsAllowed(t *testing.T) {
	h, mockSvc := newFiscalHandler()
	userID := uuid.New()

	mockSvc.On("GetSummary", mock.Anything, userID, "", "").Return(&domain.FiscalSummary{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/fiscal/summary", http.NoBody)
	setAuthContext(c, userID)

	h.GetSummary(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestFiscalHandler_GetSummary_ServiceError(t *testing.T) {
	h, mockSvc := newFiscalHandler()
	userID := uuid.New()

	mockSvc.On("GetSummary", mock.Anything, userID, "2024", "Q1").
		Return(nil, errors.New("db unavailable"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/fiscal/summary?year=2024&period=Q1", http.NoBody)
	setAuthContext(c, userID)

	h.GetSummary(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestFiscalHandler_GetSummaryWithWarnings(t *testing.T) {
	h, mockSvc := newFiscalHandler()
	userID := uuid.New()

	warnings := []fiscal.Warning{
		{Code: fiscal.WarnMalformedTaxRate, RecordID: uuid.New(), Message: "tax line \"IRPF\" has an unparseable rate, coerced to 0"},
	}
	mockSvc.On("GetSummaryWithWarnings", mock.Anything, userID, "2024", "Q2").
		Return(&domain.FiscalSummary{}, warnings, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/fiscal/summary/warnings?year=2024&period=Q2", http.NoBody)
	setAuthContext(c, userID)

	h.GetSummaryWithWarnings(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	data, _ := json.Marshal(resp.Data)
	var payload handler.SummaryWithWarnings
	assert.NoError(t, json.Unmarshal(data, &payload))
	assert.Len(t, payload.Warnings, 1)
	assert.Equal(t, fiscal.WarnMalformedTaxRate, payload.Warnings[0].Code)
}

func TestFiscalHandler_GetLastComputed(t *testing.T) {
	h, mockSvc := newFiscalHandler()
	userID := uuid.New()

	expected := &domain.FiscalActivity{
		UserID:         userID,
		Year:           "2024",
		Period:         "Q2",
		LastComputedAt: time.Now().UTC(),
	}
	mockSvc.On("GetLastComputed", mock.Anything, userID).Return(expected, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/fiscal/last-computed", http.NoBody)
	setAuthContext(c, userID)

	h.GetLastComputed(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFiscalHandler_GetLastComputed_NotFound(t *testing.T) {
	h, mockSvc := newFiscalHandler()
	userID := uuid.New()

	mockSvc.On("GetLastComputed", mock.Anything, userID).Return(nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/fiscal/last-computed", http.NoBody)
	setAuthContext(c, userID)

	h.GetLastComputed(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
