// Package listing produces filtered and sorted views of the expense collection
// for transaction browsing. Source slices are never modified.
package listing

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"budgetly/internal/models"
)

// SortKey selects the ordering of a listing.
type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByAmount   SortKey = "amount"
	SortByCategory SortKey = "category"
)

// ParseSortKey maps a query value to a SortKey. An empty value means date.
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortByDate:
		return SortByDate, true
	case SortByAmount:
		return SortByAmount, true
	case SortByCategory:
		return SortByCategory, true
	}
	return "", false
}

// Filter keeps the expenses whose description contains searchTerm, ignoring
// case, and whose category equals category. Empty arguments match everything.
func Filter(expenses []models.Expense, searchTerm string, category models.Category) []models.Expense {
	needle := strings.ToLower(searchTerm)
	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if needle != "" && !strings.Contains(strings.ToLower(e.Description), needle) {
			continue
		}
		if category != "" && e.Category != category {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Sort returns a stably sorted copy of expenses: newest first for date,
// largest first for amount, A-Z for category. Unknown keys keep input order.
func Sort(expenses []models.Expense, key SortKey) []models.Expense {
	out := slices.Clone(expenses)
	if out == nil {
		out = []models.Expense{}
	}
	switch key {
	case SortByDate:
		slices.SortStableFunc(out, func(a, b models.Expense) int {
			return b.Date.Compare(a.Date)
		})
	case SortByAmount:
		slices.SortStableFunc(out, func(a, b models.Expense) int {
			return b.Amount.Cmp(a.Amount)
		})
	case SortByCategory:
		slices.SortStableFunc(out, func(a, b models.Expense) int {
			return strings.Compare(string(a.Category), string(b.Category))
		})
	}
	return out
}

// Total sums the amounts of expenses.
func Total(expenses []models.Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range expenses {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// Query bundles the transaction list controls.
type Query struct {
	Search   string
	Category models.Category
	SortBy   SortKey
}

// Result is a filtered, sorted listing with its count and total.
type Result struct {
	Expenses []models.Expense `json:"expenses"`
	Count    int              `json:"count"`
	Total    decimal.Decimal  `json:"total"`
}

// Apply filters then sorts expenses according to q.
func Apply(expenses []models.Expense, q Query) Result {
	filtered := Sort(Filter(expenses, q.Search, q.Category), q.SortBy)
	return Result{
		Expenses: filtered,
		Count:    len(filtered),
		Total:    Total(filtered),
	}
}
