package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"budgetly/internal/models"
	"budgetly/internal/store"
	"budgetly/internal/uuid"

	"github.com/shopspring/decimal"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Now is the fixed clock used by fixtures: Saturday 15 March 2025, 14:30 UTC.
var Now = time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)

// Amount parses a decimal literal and panics on malformed input.
func Amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Clock returns a function that always reports t.
func Clock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// NewTestExpense builds an expense with a unique ID dated daysAgo days before Now.
func NewTestExpense(category models.Category, amount string, daysAgo int) models.Expense {
	n := nextID()
	return models.Expense{
		ID:            fmt.Sprintf("test-expense-%d", n),
		Description:   fmt.Sprintf("Test Expense %d", n),
		Amount:        Amount(amount),
		Category:      category,
		PaymentMethod: models.PaymentMethodCard,
		Date:          Now.AddDate(0, 0, -daysAgo),
	}
}

// NewTestBudget builds a monthly budget with a unique ID.
func NewTestBudget(category models.Category, amount string) models.Budget {
	return models.Budget{
		ID:       fmt.Sprintf("test-budget-%d", nextID()),
		Category: category,
		Amount:   Amount(amount),
		Period:   models.BudgetPeriodMonthly,
	}
}

// NewTestStore creates a store fixed at Now, with sequential IDs, holding snap.
func NewTestStore(t *testing.T, snap models.Snapshot) *store.Store {
	t.Helper()

	s := store.New(
		store.WithClock(Clock(Now)),
		store.WithIDGenerator(uuid.Sequence(fmt.Sprintf("id%d", nextID()))),
	)
	s.Replace(snap)
	return s
}
