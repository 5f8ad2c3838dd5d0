package handlers

import (
	"net/http"

	portssvc "github.com/soyjefu/theprepared-PFM/internal/core/ports/services"
	"github.com/soyjefu/theprepared-PFM/internal/dto"
	"github.com/soyjefu/theprepared-PFM/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.getDashboard)
		reports.GET("/monthly", h.getMonthlyReport)
	}
}

// getDashboard godoc
// @Summary Balance overview
// @Description Current and lifetime balance of every account, net worth and the twelve-month net worth trend.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	dashboard, err := h.reportingService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to generate dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard))
}

// getMonthlyReport godoc
// @Summary Monthly report
// @Description Income and expense by account, fixed versus other lines, cash-flow figures and budget usage for one month.
// @Tags reports
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} domain.MonthlyReport
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthlyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.PeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	report, err := h.reportingService.MonthlyReport(c.Request.Context(), userID, params.ToYearMonth())
	if err != nil {
		respondError(c, logger, err, "Failed to generate monthly report")
		return
	}
	c.JSON(http.StatusOK, report)
}
