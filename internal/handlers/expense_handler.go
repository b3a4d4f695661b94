package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/listing"
	"budgetly/internal/models"
	"budgetly/internal/pagination"
	"budgetly/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpenseRequest represents the request payload for logging an expense.
type CreateExpenseRequest struct {
	Description   string               `json:"description" binding:"required,min=1,max=255"`
	Amount        *decimal.Decimal     `json:"amount" binding:"required,nonneg_decimal" swaggertype:"number"`
	Category      models.Category      `json:"category" binding:"required,category"`
	PaymentMethod models.PaymentMethod `json:"payment_method" binding:"omitempty,payment_method"`
}

// ListExpensesQuery holds the transaction list controls.
type ListExpensesQuery struct {
	Search   string `form:"search"`
	Category string `form:"category" binding:"omitempty,category"`
	SortBy   string `form:"sort_by"`
	pagination.PageRequest
}

// CreateExpense handles logging a new expense.
// @Summary     Create an expense
// @Description Log a new expense dated now
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {object} models.Expense "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     503 {object} ErrorResponse "Storage unavailable"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), models.NewExpense{
		Description:   req.Description,
		Amount:        *req.Amount,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// GetExpenses handles the transaction list.
// @Summary     List expenses
// @Description Filter, sort and paginate expenses. count and total cover every match.
// @Tags        expenses
// @Produce     json
// @Param       search    query string false "Case-insensitive description search"
// @Param       category  query string false "Exact category"
// @Param       sort_by   query string false "date (default), amount or category"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} services.ExpenseList "Paginated expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /expenses [get]
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	var q ListExpensesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	sortBy, ok := listing.ParseSortKey(q.SortBy)
	if !ok {
		respondWithError(c, apperrors.ErrInvalidSortKey)
		return
	}

	result, err := h.expenseService.ListExpenses(listing.Query{
		Search:   q.Search,
		Category: models.Category(q.Category),
		SortBy:   sortBy,
	}, q.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetExpense handles retrieving a single expense.
// @Summary     Get expense by ID
// @Tags        expenses
// @Produce     json
// @Param       id path string true "Expense ID"
// @Success     200 {object} models.Expense "Expense details"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	expense, err := h.expenseService.GetExpense(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense handles removing an expense. Unknown IDs still succeed.
// @Summary     Delete expense
// @Tags        expenses
// @Param       id path string true "Expense ID"
// @Success     204 "Expense deleted"
// @Failure     503 {object} ErrorResponse "Storage unavailable"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	if err := h.expenseService.DeleteExpense(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetPresets lists the quick-add templates.
// @Summary     List quick-add presets
// @Tags        expenses
// @Produce     json
// @Success     200 {object} map[string][]services.Preset "Presets under presets"
// @Router      /expenses/presets [get]
func (h *ExpenseHandler) GetPresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"presets": h.expenseService.Presets()})
}

// QuickAdd logs an expense from a preset.
// @Summary     Quick-add an expense
// @Tags        expenses
// @Produce     json
// @Param       name path string true "Preset name"
// @Success     201 {object} models.Expense "Expense created"
// @Failure     404 {object} ErrorResponse "Preset not found"
// @Router      /expenses/presets/{name} [post]
func (h *ExpenseHandler) QuickAdd(c *gin.Context) {
	expense, err := h.expenseService.QuickAdd(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}
