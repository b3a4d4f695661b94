package storage_test

import (
	"context"
	"testing"

	"budgetly/internal/models"
	"budgetly/internal/seed"
	"budgetly/internal/storage"
	"budgetly/internal/testutil"
)

var _ seed.Source = (*storage.Repository)(nil)
var _ storage.Persister = (*storage.Repository)(nil)

func TestRepository_SaveAndLoad(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	repo := storage.NewRepository(db)
	ctx := context.Background()

	newest := testutil.NewTestExpense(models.CategoryFoodDining, "12.34", 0)
	oldest := testutil.NewTestExpense(models.CategoryTravel, "900", 20)
	budget := testutil.NewTestBudget(models.CategoryFoodDining, "500")
	snap := models.Snapshot{
		Expenses: []models.Expense{newest, oldest},
		Budgets:  []models.Budget{budget},
	}

	testutil.AssertNoError(t, repo.Save(ctx, snap))

	got, err := repo.Load(ctx)
	testutil.AssertNoError(t, err)

	if len(got.Expenses) != 2 || len(got.Budgets) != 1 {
		t.Fatalf("expected 2 expenses and 1 budget, got %d and %d", len(got.Expenses), len(got.Budgets))
	}
	if got.Expenses[0].ID != newest.ID || got.Expenses[1].ID != oldest.ID {
		t.Errorf("expected order to be preserved, got %s, %s", got.Expenses[0].ID, got.Expenses[1].ID)
	}
	testutil.AssertDecimal(t, got.Expenses[0].Amount, "12.34")
	if got.Expenses[0].Category != models.CategoryFoodDining {
		t.Errorf("expected category to round-trip, got %s", got.Expenses[0].Category)
	}
	if !got.Expenses[1].Date.Equal(oldest.Date) {
		t.Errorf("expected date %v, got %v", oldest.Date, got.Expenses[1].Date)
	}
	if got.Budgets[0].Period != models.BudgetPeriodMonthly {
		t.Errorf("expected monthly period, got %s", got.Budgets[0].Period)
	}
}

func TestRepository_SaveReplacesPreviousSnapshot(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	repo := storage.NewRepository(db)
	ctx := context.Background()

	first := models.Snapshot{Expenses: []models.Expense{
		testutil.NewTestExpense(models.CategoryOther, "1", 0),
		testutil.NewTestExpense(models.CategoryOther, "2", 0),
	}}
	testutil.AssertNoError(t, repo.Save(ctx, first))
	testutil.AssertNoError(t, repo.Save(ctx, models.Snapshot{}))

	got, err := repo.Seed(ctx, testutil.Now)
	testutil.AssertNoError(t, err)
	if len(got.Expenses) != 0 || len(got.Budgets) != 0 {
		t.Errorf("expected empty snapshot, got %+v", got)
	}
}
