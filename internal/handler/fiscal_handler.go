package handler

import (
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"

	"facturalo/internal/service"
)

var yearParamPattern = regexp.MustCompile(`^\d{4}$`)

// FiscalHandler handles fiscal summary endpoints.
type FiscalHandler struct {
	fiscalService service.FiscalSummaryService
}

// NewFiscalHandler creates a new FiscalHandler.
func NewFiscalHandler(fiscalService service.FiscalSummaryService) *FiscalHandler {
	return &FiscalHandler{fiscalService: fiscalService}
}

// GetSummary handles GET /api/v1/fiscal/summary?year=2024&period=Q1
// @Summary Get fiscal summary
// @Description Compute the IVA/IRPF fiscal summary for the authenticated user, scoped to the given year and quarter. Omitting year returns all-time totals; period "all" or empty covers the whole year.
// @Tags fiscal
// @Produce json
// @Param year query string false "Fiscal year, e.g. 2024"
// @Param period query string false "Quarter (Q1-Q4) or 'all'"
// @Success 200 {object} Response{data=domain.FiscalSummary} "Fiscal summary"
// @Failure 400 {object} ErrorResponseBody "Invalid year parameter"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /fiscal/summary [get]
func (h *FiscalHandler) GetSummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	year := c.Query("year")
	if year != "" && !yearParamPattern.MatchString(year) {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "year must be a four digit year")
		return
	}
	period := c.Query("period")

	summary, err := h.fiscalService.GetSummary(c.Request.Context(), userID, year, period)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, summary)
}

// GetSummaryWithWarnings handles GET /api/v1/fiscal/summary/warnings?year=2024&period=Q1
// @Summary Get fiscal summary with computation warnings
// @Description Same as the fiscal summary, additionally returning the per-record warnings raised during computation (malformed tax rates, estimated withholdings, skipped transactions).
// @Tags fiscal
// @Produce json
// @Param year query string false "Fiscal year, e.g. 2024"
// @Param period query string false "Quarter (Q1-Q4) or 'all'"
// @Success 200 {object} Response{data=SummaryWithWarnings} "Fiscal summary and warnings"
// @Failure 400 {object} ErrorResponseBody "Invalid year parameter"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /fiscal/summary/warnings [get]
func (h *FiscalHandler) GetSummaryWithWarnings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	year := c.Query("year")
	if year != "" && !yearParamPattern.MatchString(year) {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "year must be a four digit year")
		return
	}
	period := c.Query("period")

	summary, warnings, err := h.fiscalService.GetSummaryWithWarnings(c.Request.Context(), userID, year, period)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, SummaryWithWarnings{Summary: summary, Warnings: toWarningEntries(warnings)})
}

// GetLastComputed handles GET /api/v1/fiscal/last-computed
// @Summary Get last computed marker
// @Description Return the year and period of the most recent fiscal summary computation for the authenticated user.
// @Tags fiscal
// @Produce json
// @Success 200 {object} Response{data=domain.FiscalActivity} "Last computed marker"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "No summary computed yet"
// @Security BearerAuth
// @Router /fiscal/last-computed [get]
func (h *FiscalHandler) GetLastComputed(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	activity, err := h.fiscalService.GetLastComputed(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, activity)
}

func parseIntQuery(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}
