package services

import (
	"context"
	"time"

	"budgetly/internal/aggregate"
	"budgetly/internal/listing"
	"budgetly/internal/models"
	"budgetly/internal/pagination"

	"github.com/shopspring/decimal"
)

// ExpenseList is one page of a filtered, sorted transaction listing. Count and
// Total describe every matching expense, not just the page.
type ExpenseList struct {
	pagination.PageResponse[models.Expense]
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(ctx context.Context, in models.NewExpense) (*models.Expense, error)
	GetExpense(id string) (*models.Expense, error)
	ListExpenses(query listing.Query, page pagination.PageRequest) (*ExpenseList, error)
	DeleteExpense(ctx context.Context, id string) error
	Presets() []Preset
	QuickAdd(ctx context.Context, name string) (*models.Expense, error)
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(ctx context.Context, in models.NewBudget) (*models.Budget, error)
	GetBudgets() []models.Budget
	// UpdateBudget returns nil without error when no budget has the id.
	UpdateBudget(ctx context.Context, id string, patch models.BudgetPatch) (*models.Budget, error)
	DeleteBudget(ctx context.Context, id string) error
	GetBudgetStatus(id string) (*aggregate.Status, error)
	GetOverview() aggregate.Overview
}

// InsightServicer defines the contract for the read-only dashboard views.
type InsightServicer interface {
	Summary() aggregate.Summary
	CategoryBreakdown(from, to *time.Time) CategoryBreakdown
	DailySpending(days int) []aggregate.DayAmount
	BudgetVsActual() []aggregate.Comparison
}

// CategoryBreakdown is the category split of the spend inside a window.
type CategoryBreakdown struct {
	Window     aggregate.Window          `json:"window"`
	Total      decimal.Decimal           `json:"total"`
	Categories []aggregate.CategoryShare `json:"categories"`
}
