package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/models"
	"budgetly/internal/pagination"
	"budgetly/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// CreateBudgetRequest represents the request payload for creating a budget.
type CreateBudgetRequest struct {
	Category models.Category     `json:"category" binding:"required,category"`
	Amount   *decimal.Decimal    `json:"amount" binding:"required,nonneg_decimal" swaggertype:"number"`
	Period   models.BudgetPeriod `json:"period" binding:"omitempty,budget_period"`
}

// UpdateBudgetRequest represents the request payload for updating a budget.
type UpdateBudgetRequest struct {
	Category *models.Category     `json:"category" binding:"omitempty,category"`
	Amount   *decimal.Decimal     `json:"amount" binding:"omitempty,nonneg_decimal" swaggertype:"number"`
	Period   *models.BudgetPeriod `json:"period" binding:"omitempty,budget_period"`
}

// CreateBudget handles the creation of a new budget.
// @Summary     Create a budget
// @Description Create a new budget for a category
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       request body CreateBudgetRequest true "Budget details"
// @Success     201 {object} models.Budget "Budget created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     503 {object} ErrorResponse "Storage unavailable"
// @Router      /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), models.NewBudget{
		Category: req.Category,
		Amount:   *req.Amount,
		Period:   req.Period,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// GetBudgets handles listing budgets.
// @Summary     Get budgets
// @Description Get a paginated list of budgets, newest first
// @Tags        budgets
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Budget] "Paginated budgets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	c.JSON(http.StatusOK, pagination.Paginate(h.budgetService.GetBudgets(), page))
}

// UpdateBudget handles updating an existing budget. An unknown ID leaves
// everything unchanged and answers 204.
// @Summary     Update budget
// @Description Replace the given fields of a budget
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       id      path string              true "Budget ID"
// @Param       request body UpdateBudgetRequest true "Fields to change"
// @Success     200 {object} models.Budget "Updated budget"
// @Success     204 "No budget with that ID"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     503 {object} ErrorResponse "Storage unavailable"
// @Router      /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.budgetService.UpdateBudget(c.Request.Context(), c.Param("id"), models.BudgetPatch{
		Category: req.Category,
		Amount:   req.Amount,
		Period:   req.Period,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	if budget == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// DeleteBudget handles removing a budget. Unknown IDs still succeed.
// @Summary     Delete budget
// @Tags        budgets
// @Param       id path string true "Budget ID"
// @Success     204 "Budget deleted"
// @Failure     503 {object} ErrorResponse "Storage unavailable"
// @Router      /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	if err := h.budgetService.DeleteBudget(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetBudgetStatuses handles the budget cards.
// @Summary     Budget overview
// @Description Current-month status of every budget with totals
// @Tags        budgets
// @Produce     json
// @Success     200 {object} aggregate.Overview "Budget overview"
// @Router      /budgets/status [get]
func (h *BudgetHandler) GetBudgetStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, h.budgetService.GetOverview())
}

// GetBudgetStatus handles the status of a single budget.
// @Summary     Budget status
// @Description Current-month spend, remaining amount and status of a budget
// @Tags        budgets
// @Produce     json
// @Param       id path string true "Budget ID"
// @Success     200 {object} aggregate.Status "Budget status"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /budgets/{id}/status [get]
func (h *BudgetHandler) GetBudgetStatus(c *gin.Context) {
	status, err := h.budgetService.GetBudgetStatus(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}
