package metrics

import (
	"testing"
	"time"

	"budgetly/internal/aggregate"
	"budgetly/internal/models"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewIsRepeatable(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}

func TestIncrMutation(t *testing.T) {
	m := New()
	m.IncrMutation(EntityExpense, OpCreate)
	m.IncrMutation(EntityExpense, OpCreate)
	m.IncrMutation(EntityBudget, OpNoop)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.mutations.WithLabelValues(EntityExpense, OpCreate)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mutations.WithLabelValues(EntityBudget, OpNoop)))
}

func TestObserveSnapshot(t *testing.T) {
	m := New()
	m.ObserveSnapshot(models.Snapshot{
		Expenses: make([]models.Expense, 3),
		Budgets:  make([]models.Budget, 1),
	})

	assert.Equal(t, 3.0, testutil.ToFloat64(m.records.WithLabelValues(EntityExpense)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.records.WithLabelValues(EntityBudget)))
}

func TestObserveStatuses(t *testing.T) {
	m := New()
	m.ObserveStatuses([]aggregate.Status{
		{Status: models.BudgetStatusOver},
		{Status: models.BudgetStatusOver},
		{Status: models.BudgetStatusGood},
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.budgetStatus.WithLabelValues("over")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.budgetStatus.WithLabelValues("warning")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.budgetStatus.WithLabelValues("good")))

	m.IncrPersistError()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.persistErrors))
}

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest("GET", "/api/v1/budgets/:id/status", 200, 15*time.Millisecond)
	m.ObserveRequest("GET", "/api/v1/budgets/:id/status", 200, 5*time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(m.requests))
}
