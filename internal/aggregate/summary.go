package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"budgetly/internal/models"
)

// TrendDays is the length of the dashboard spending trend.
const TrendDays = 7

// Summary is everything the dashboard shows for the current month.
type Summary struct {
	Month            Window          `json:"month"`
	MonthSpent       decimal.Decimal `json:"month_spent"`
	TotalBudget      decimal.Decimal `json:"total_budget"`
	BudgetRemaining  decimal.Decimal `json:"budget_remaining"`
	TransactionCount int             `json:"transaction_count"`
	Categories       []CategoryShare `json:"categories"`
	Daily            []DayAmount     `json:"daily"`
	Budgets          []Comparison    `json:"budgets"`
}

// Summarize builds the dashboard summary. BudgetRemaining is total budget minus
// this month's spend and goes negative once spending exceeds the budgets.
func Summarize(snap models.Snapshot, now time.Time) Summary {
	month := MonthWindow(now)
	totals := CategoryTotals(snap.Expenses, month.Start, month.End)
	spent := totals.Sum()

	count := 0
	for _, e := range snap.Expenses {
		if month.Contains(e.Date) {
			count++
		}
	}

	totalBudget := decimal.Zero
	for _, b := range snap.Budgets {
		totalBudget = totalBudget.Add(b.Amount)
	}

	return Summary{
		Month:            month,
		MonthSpent:       spent,
		TotalBudget:      totalBudget,
		BudgetRemaining:  totalBudget.Sub(spent),
		TransactionCount: count,
		Categories:       PercentageBreakdown(totals, spent),
		Daily:            DailySeries(snap.Expenses, TrendDays, now),
		Budgets:          BudgetVsActual(snap.Budgets, snap.Expenses, now),
	}
}

// Overview backs the budget cards: one status per budget plus totals.
type Overview struct {
	TotalBudgeted decimal.Decimal `json:"total_budgeted"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	OverBudget    int             `json:"over_budget"`
	Budgets       []Status        `json:"budgets"`
}

// BudgetOverview computes the status of every budget independently. TotalSpent
// adds each budget's spend, so budgets sharing a category count it twice.
func BudgetOverview(budgets []models.Budget, expenses []models.Expense, now time.Time) Overview {
	out := Overview{
		TotalBudgeted: decimal.Zero,
		TotalSpent:    decimal.Zero,
		Budgets:       make([]Status, 0, len(budgets)),
	}
	for _, b := range budgets {
		st := BudgetStatus(b, expenses, now)
		out.TotalBudgeted = out.TotalBudgeted.Add(st.Budgeted)
		out.TotalSpent = out.TotalSpent.Add(st.Spent)
		if st.Status == models.BudgetStatusOver {
			out.OverBudget++
		}
		out.Budgets = append(out.Budgets, st)
	}
	return out
}
