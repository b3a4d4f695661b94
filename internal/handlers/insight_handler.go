package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"budgetly/internal/aggregate"
	apperrors "budgetly/internal/errors"
	"budgetly/internal/services"
)

// InsightHandler serves the dashboard views.
type InsightHandler struct {
	insightService services.InsightServicer
	location       *time.Location
}

// NewInsightHandler creates a new InsightHandler. Plain dates in query
// parameters are read in loc.
func NewInsightHandler(insightService services.InsightServicer, loc *time.Location) *InsightHandler {
	if loc == nil {
		loc = time.Local
	}
	return &InsightHandler{insightService: insightService, location: loc}
}

// DailyQuery holds the trend length.
type DailyQuery struct {
	Days int `form:"days" binding:"omitempty,min=1,max=366"`
}

// GetSummary handles the dashboard header.
// @Summary     Dashboard summary
// @Description Month spend, budget totals, category breakdown, 7-day trend and budget comparisons
// @Tags        insights
// @Produce     json
// @Success     200 {object} aggregate.Summary "Summary"
// @Router      /insights/summary [get]
func (h *InsightHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.insightService.Summary())
}

// GetCategoryBreakdown handles the category split.
// @Summary     Category breakdown
// @Description Spend per category inside a window, with percentages of the window total
// @Tags        insights
// @Produce     json
// @Param       from query string false "Window start, RFC 3339 or YYYY-MM-DD (default start of month)"
// @Param       to   query string false "Window end, RFC 3339 or YYYY-MM-DD (default end of month)"
// @Success     200 {object} services.CategoryBreakdown "Breakdown"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /insights/categories [get]
func (h *InsightHandler) GetCategoryBreakdown(c *gin.Context) {
	from, err := parseTimeQuery(c, "from", h.location, false)
	if err != nil {
		respondWithError(c, err)
		return
	}
	to, err := parseTimeQuery(c, "to", h.location, true)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if from != nil && to != nil && to.Before(*from) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "to must not be before from"))
		return
	}

	c.JSON(http.StatusOK, h.insightService.CategoryBreakdown(from, to))
}

// GetDailySpending handles the spending trend.
// @Summary     Daily spending
// @Description Spend per calendar day, oldest first, ending today
// @Tags        insights
// @Produce     json
// @Param       days query int false "Number of days (default 7, max 366)"
// @Success     200 {object} map[string][]aggregate.DayAmount "Series under days"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /insights/daily [get]
func (h *InsightHandler) GetDailySpending(c *gin.Context) {
	var q DailyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if q.Days == 0 {
		q.Days = aggregate.TrendDays
	}

	c.JSON(http.StatusOK, gin.H{"days": h.insightService.DailySpending(q.Days)})
}

// GetBudgetVsActual handles the budget comparison chart.
// @Summary     Budget vs actual
// @Description Budgeted amount against this month's spend for every budget
// @Tags        insights
// @Produce     json
// @Success     200 {object} map[string][]aggregate.Comparison "Comparisons under budgets"
// @Router      /insights/budget-vs-actual [get]
func (h *InsightHandler) GetBudgetVsActual(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"budgets": h.insightService.BudgetVsActual()})
}
