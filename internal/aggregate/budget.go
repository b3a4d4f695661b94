package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"budgetly/internal/models"
)

// NearLimitPercentage is the budget-vs-actual percentage above which a budget
// is flagged as close to its limit.
const NearLimitPercentage = 90.0

// Status is the consumption of one budget in the current calendar month.
type Status struct {
	BudgetID  string              `json:"budget_id"`
	Category  models.Category     `json:"category"`
	Period    models.BudgetPeriod `json:"period"`
	Budgeted  decimal.Decimal     `json:"budgeted"`
	Spent     decimal.Decimal     `json:"spent"`
	Remaining decimal.Decimal     `json:"remaining"`
	// Percentage is clamped to 100 for display.
	Percentage float64 `json:"percentage"`
	// RawPercentage is the unclamped spent/budgeted ratio in percent, rounded
	// to one decimal for display.
	RawPercentage float64             `json:"raw_percentage"`
	Status        models.BudgetStatus `json:"status"`
}

// BudgetStatus reports how much of budget has been spent this month. The
// budget's declared period is ignored: spending is always measured over the
// calendar month containing now.
//
// Classification uses the exact ratio: over when spent > amount, warning when
// spent > 80% of amount, good otherwise. A zero-amount budget is therefore
// good with no spend and over with any spend; its raw percentage is 0 or 100
// respectively.
func BudgetStatus(budget models.Budget, expenses []models.Expense, now time.Time) Status {
	spent := monthSpend(budget.Category, expenses, now)

	remaining := budget.Amount.Sub(spent)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	raw := rawPercentage(spent, budget.Amount)
	return Status{
		BudgetID:      budget.ID,
		Category:      budget.Category,
		Period:        budget.Period,
		Budgeted:      budget.Amount,
		Spent:         spent,
		Remaining:     remaining,
		Percentage:    min(raw, 100),
		RawPercentage: raw,
		Status:        classify(spent, budget.Amount),
	}
}

// Comparison puts a budget next to its actual spend for the current month.
type Comparison struct {
	BudgetID   string          `json:"budget_id"`
	Category   models.Category `json:"category"`
	Budgeted   decimal.Decimal `json:"budgeted"`
	Actual     decimal.Decimal `json:"actual"`
	Percentage float64         `json:"percentage"`
	NearLimit  bool            `json:"near_limit"`
}

// BudgetVsActual compares every budget, in input order, with its category's
// spend this month. Budgets sharing a category are reported independently.
func BudgetVsActual(budgets []models.Budget, expenses []models.Expense, now time.Time) []Comparison {
	out := make([]Comparison, 0, len(budgets))
	for _, b := range budgets {
		actual := monthSpend(b.Category, expenses, now)
		pct := rawPercentage(actual, b.Amount)
		out = append(out, Comparison{
			BudgetID:   b.ID,
			Category:   b.Category,
			Budgeted:   b.Amount,
			Actual:     actual,
			Percentage: pct,
			NearLimit:  nearLimit(actual, b.Amount),
		})
	}
	return out
}

func monthSpend(category models.Category, expenses []models.Expense, now time.Time) decimal.Decimal {
	w := MonthWindow(now)
	spent := decimal.Zero
	for _, e := range expenses {
		if e.Category == category && w.Contains(e.Date) {
			spent = spent.Add(e.Amount)
		}
	}
	return spent
}

var (
	eight = decimal.NewFromInt(8)
	ten   = decimal.NewFromInt(10)

	nearLimitRatio = decimal.NewFromFloat(NearLimitPercentage).Div(hundred)
)

// nearLimit compares the exact ratio, so 90.04% is flagged even though it is
// reported as 90. A zero budget is near its limit once anything is spent.
func nearLimit(spent, limit decimal.Decimal) bool {
	if limit.IsZero() {
		return spent.IsPositive()
	}
	return spent.GreaterThan(limit.Mul(nearLimitRatio))
}

func classify(spent, limit decimal.Decimal) models.BudgetStatus {
	switch {
	case spent.GreaterThan(limit):
		return models.BudgetStatusOver
	case spent.Mul(ten).GreaterThan(limit.Mul(eight)):
		return models.BudgetStatusWarning
	default:
		return models.BudgetStatusGood
	}
}

func rawPercentage(spent, limit decimal.Decimal) float64 {
	if limit.IsZero() {
		if spent.IsPositive() {
			return 100
		}
		return 0
	}
	return percentOf(spent, limit)
}
