package models

import "github.com/shopspring/decimal"

// BudgetPeriod is the declared cadence of a budget. It is a display label only:
// status is always computed against the current calendar month.
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// Valid reports whether p is a known period.
func (p BudgetPeriod) Valid() bool {
	switch p {
	case BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodYearly:
		return true
	}
	return false
}

// BudgetStatus classifies how much of a budget has been consumed.
type BudgetStatus string

const (
	BudgetStatusGood    BudgetStatus = "good"
	BudgetStatusWarning BudgetStatus = "warning"
	BudgetStatusOver    BudgetStatus = "over"
)

// Budget is a spending limit for a category.
type Budget struct {
	ID       string          `json:"id"`
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Period   BudgetPeriod    `json:"period"`
}

// NewBudget holds the caller-supplied fields of a budget before the store
// assigns its ID.
type NewBudget struct {
	Category Category
	Amount   decimal.Decimal
	Period   BudgetPeriod
}

// BudgetPatch replaces the non-nil fields of an existing budget.
type BudgetPatch struct {
	Category *Category
	Amount   *decimal.Decimal
	Period   *BudgetPeriod
}

// Apply returns b with the patch merged in. The ID never changes.
func (p BudgetPatch) Apply(b Budget) Budget {
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.Amount != nil {
		b.Amount = *p.Amount
	}
	if p.Period != nil {
		b.Period = *p.Period
	}
	return b
}

// IsEmpty reports whether the patch changes nothing.
func (p BudgetPatch) IsEmpty() bool {
	return p.Category == nil && p.Amount == nil && p.Period == nil
}
