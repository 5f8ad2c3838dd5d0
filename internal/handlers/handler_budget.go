package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	portssvc "github.com/soyjefu/theprepared-PFM/internal/core/ports/services"
	"github.com/soyjefu/theprepared-PFM/internal/dto"
	"github.com/soyjefu/theprepared-PFM/internal/middleware"
	"github.com/gin-gonic/gin"
)

type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := &budgetHandler{budgetService: budgetService}

	budgets := rg.Group("/budgets")
	{
		budgets.GET("", h.listBudgets)
		budgets.PUT("", h.upsertBudget)
		budgets.POST("/carry-forward", h.carryForward)
		budgets.DELETE("/:id", h.deleteBudget)
	}
}

// listBudgets godoc
// @Summary List the budgets of a month
// @Tags budgets
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} dto.ListBudgetsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
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

	budgets, err := h.budgetService.ListBudgets(c.Request.Context(), userID, params.ToYearMonth())
	if err != nil {
		respondError(c, logger, err, "Failed to list budgets")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBudgetsResponse(budgets))
}

// upsertBudget godoc
// @Summary Set the budget of an expense account for a month
// @Description Creates the allocation or replaces the amount of the existing one.
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body dto.UpsertBudgetRequest true "Allocation"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} ErrorResponse "Invalid amount or not an expense account"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown account"
// @Security BearerAuth
// @Router /budgets [put]
func (h *budgetHandler) upsertBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.UpsertBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	budget, err := h.budgetService.UpsertBudget(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to save budget")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// carryForward godoc
// @Summary Copy last month's budgets
// @Description Replaces every allocation of the given month with a copy of the preceding month's allocations. When the preceding month has none, nothing changes.
// @Tags budgets
// @Accept json
// @Produce json
// @Param period body dto.PeriodParams true "Target month"
// @Success 200 {object} dto.CarryForwardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budgets/carry-forward [post]
func (h *budgetHandler) carryForward(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.PeriodParams
	if err := c.ShouldBindJSON(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	result, err := h.budgetService.CarryForward(c.Request.Context(), userID, params.ToYearMonth())
	if err != nil {
		respondError(c, logger, err, "Failed to carry budgets forward")
		return
	}

	c.JSON(http.StatusOK, dto.CarryForwardResponse{
		Source:  result.Source,
		Target:  result.Target,
		Copied:  result.Copied,
		Message: carryForwardMessage(result),
	})
}

func carryForwardMessage(r *domain.CarryForwardResult) string {
	if r.NothingToCopy {
		return fmt.Sprintf("Nothing to copy: %d-%02d has no budgets", r.Source.Year, r.Source.Month)
	}
	return fmt.Sprintf("Copied %d budgets from %d-%02d to %d-%02d", r.Copied, r.Source.Year, r.Source.Month, r.Target.Year, r.Target.Month)
}

// deleteBudget godoc
// @Summary Delete a budget
// @Tags budgets
// @Param id path string true "Budget ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /budgets/{id} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	budgetID := c.Param("id")
	if err := h.budgetService.DeleteBudget(c.Request.Context(), userID, budgetID); err != nil {
		respondError(c, logger, err, "Failed to delete budget")
		return
	}
	logger.Info("Budget deleted", slog.String("budget_id", budgetID))
	c.Status(http.StatusNoContent)
}
