package aggregate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetly/internal/models"
)

var now = time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func expense(id string, cat models.Category, amount string, date time.Time) models.Expense {
	return models.Expense{
		ID:            id,
		Description:   id,
		Amount:        dec(amount),
		Category:      cat,
		PaymentMethod: models.PaymentMethodCard,
		Date:          date,
	}
}

func foodBudget(amount string) models.Budget {
	return models.Budget{ID: "b1", Category: models.CategoryFoodDining, Amount: dec(amount), Period: models.BudgetPeriodMonthly}
}

func TestMonthWindow(t *testing.T) {
	w := MonthWindow(now)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2025, 3, 31, 23, 59, 59, 999999999, time.UTC), w.End)
	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(w.End))
	assert.False(t, w.Contains(w.End.Add(time.Nanosecond)))
}

func TestCategoryTotals(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	expenses := []models.Expense{
		expense("e1", models.CategoryShopping, "10.50", start),
		expense("e2", models.CategoryFoodDining, "4.25", start.Add(time.Hour)),
		expense("e3", models.CategoryShopping, "2", end),
		expense("e4", models.CategoryTravel, "99", end.Add(time.Second)),
		expense("e5", models.CategoryTravel, "1", start.Add(-time.Second)),
	}

	totals := CategoryTotals(expenses, start, end)

	require.Len(t, totals, 2, "categories without matches must be absent")
	assert.Equal(t, models.CategoryShopping, totals[0].Category)
	assert.True(t, dec("12.50").Equal(totals[0].Amount))
	assert.Equal(t, models.CategoryFoodDining, totals[1].Category)
	assert.True(t, dec("4.25").Equal(totals[1].Amount))
	_, ok := totals.Get(models.CategoryTravel)
	assert.False(t, ok)
}

func TestCategoryTotalsSumMatchesWindowSum(t *testing.T) {
	base := time.Date(2025, 2, 20, 8, 0, 0, 0, time.UTC)
	var expenses []models.Expense
	cats := models.AllCategories()
	for i := 0; i < 60; i++ {
		amount := decimal.NewFromInt(int64(i*7%23 + 1)).Div(decimal.NewFromInt(4))
		expenses = append(expenses, models.Expense{
			ID:       "e",
			Amount:   amount,
			Category: cats[i%len(cats)],
			Date:     base.Add(time.Duration(i) * 11 * time.Hour),
		})
	}
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 7, 23, 59, 59, 0, time.UTC)

	want := decimal.Zero
	for _, e := range expenses {
		if !e.Date.Before(start) && !e.Date.After(end) {
			want = want.Add(e.Amount)
		}
	}

	assert.True(t, want.Equal(CategoryTotals(expenses, start, end).Sum()))
}

func TestPercentageBreakdown(t *testing.T) {
	totals := Totals{
		{Category: models.CategoryFoodDining, Amount: dec("1")},
		{Category: models.CategoryShopping, Amount: dec("1")},
		{Category: models.CategoryTravel, Amount: dec("1")},
	}

	shares := PercentageBreakdown(totals, totals.Sum())

	require.Len(t, shares, 3)
	sum := 0.0
	for _, s := range shares {
		assert.Equal(t, 33.3, s.Percentage)
		sum += s.Percentage
	}
	assert.InDelta(t, 100, sum, 0.2)
}

func TestPercentageBreakdownZeroTotal(t *testing.T) {
	totals := Totals{{Category: models.CategoryOther, Amount: decimal.Zero}}

	shares := PercentageBreakdown(totals, decimal.Zero)

	require.Len(t, shares, 1)
	assert.Equal(t, 0.0, shares[0].Percentage)
}

func TestDailySeries(t *testing.T) {
	t.Run("single expense today", func(t *testing.T) {
		expenses := []models.Expense{expense("e1", models.CategoryOther, "20", now)}

		series := DailySeries(expenses, 7, now)

		require.Len(t, series, 7)
		for i, d := range series[:6] {
			assert.True(t, d.Amount.IsZero(), "day %d should be zero", i)
		}
		assert.True(t, dec("20").Equal(series[6].Amount))
		assert.Equal(t, "Sat", series[6].Day)
		assert.Equal(t, "Sun", series[0].Day)
	})

	t.Run("calendar days not rolling hours", func(t *testing.T) {
		lateYesterday := time.Date(2025, 3, 14, 23, 30, 0, 0, time.UTC)
		expenses := []models.Expense{
			expense("e1", models.CategoryOther, "5", lateYesterday),
			expense("e2", models.CategoryOther, "7", time.Date(2025, 3, 8, 23, 59, 0, 0, time.UTC)),
		}

		series := DailySeries(expenses, 7, now)

		assert.True(t, dec("5").Equal(series[5].Amount))
		assert.True(t, series[6].Amount.IsZero())
		for _, d := range series {
			assert.False(t, d.Amount.Equal(dec("7")), "expense outside the series leaked in")
		}
	})

	t.Run("non-positive days", func(t *testing.T) {
		assert.Empty(t, DailySeries(nil, 0, now))
	})
}

func TestBudgetStatusScenarios(t *testing.T) {
	t.Run("warning at 85 of 100", func(t *testing.T) {
		expenses := []models.Expense{
			expense("e1", models.CategoryFoodDining, "50", now),
			expense("e2", models.CategoryFoodDining, "35", now.AddDate(0, 0, -10)),
			expense("e3", models.CategoryShopping, "500", now),
			expense("e4", models.CategoryFoodDining, "500", now.AddDate(0, -1, 0)),
		}

		st := BudgetStatus(foodBudget("100"), expenses, now)

		assert.Equal(t, models.BudgetStatusWarning, st.Status)
		assert.Equal(t, 85.0, st.Percentage)
		assert.True(t, dec("85").Equal(st.Spent))
		assert.True(t, dec("15").Equal(st.Remaining))
	})

	t.Run("over at 120 of 100", func(t *testing.T) {
		expenses := []models.Expense{expense("e1", models.CategoryFoodDining, "120", now)}

		st := BudgetStatus(foodBudget("100"), expenses, now)

		assert.Equal(t, models.BudgetStatusOver, st.Status)
		assert.Equal(t, 100.0, st.Percentage)
		assert.Equal(t, 120.0, st.RawPercentage)
		assert.True(t, st.Remaining.IsZero())
	})

	t.Run("thresholds are exclusive", func(t *testing.T) {
		at80 := BudgetStatus(foodBudget("100"), []models.Expense{expense("e", models.CategoryFoodDining, "80", now)}, now)
		at100 := BudgetStatus(foodBudget("100"), []models.Expense{expense("e", models.CategoryFoodDining, "100", now)}, now)

		assert.Equal(t, models.BudgetStatusGood, at80.Status)
		assert.Equal(t, models.BudgetStatusWarning, at100.Status)
	})

	t.Run("period is ignored", func(t *testing.T) {
		b := foodBudget("100")
		b.Period = models.BudgetPeriodYearly
		expenses := []models.Expense{expense("e1", models.CategoryFoodDining, "90", now.AddDate(0, -2, 0))}

		st := BudgetStatus(b, expenses, now)

		assert.True(t, st.Spent.IsZero())
		assert.Equal(t, models.BudgetStatusGood, st.Status)
	})
}

func TestBudgetStatusZeroAmount(t *testing.T) {
	none := BudgetStatus(foodBudget("0"), nil, now)
	assert.Equal(t, models.BudgetStatusGood, none.Status)
	assert.Equal(t, 0.0, none.Percentage)
	assert.Equal(t, 0.0, none.RawPercentage)

	some := BudgetStatus(foodBudget("0"), []models.Expense{expense("e", models.CategoryFoodDining, "0.01", now)}, now)
	assert.Equal(t, models.BudgetStatusOver, some.Status)
	assert.Equal(t, 100.0, some.Percentage)
	assert.True(t, some.Remaining.IsZero())
}

func TestBudgetStatusMonotonic(t *testing.T) {
	rank := map[models.BudgetStatus]int{
		models.BudgetStatusGood:    0,
		models.BudgetStatusWarning: 1,
		models.BudgetStatusOver:    2,
	}
	for _, limit := range []string{"0", "1", "100", "333.33"} {
		prev := BudgetStatus(foodBudget(limit), nil, now)
		for cents := int64(1); cents <= 50000; cents += 97 {
			spend := []models.Expense{expense("e", models.CategoryFoodDining, decimal.New(cents, -2).String(), now)}
			cur := BudgetStatus(foodBudget(limit), spend, now)
			require.GreaterOrEqual(t, cur.Percentage, prev.Percentage, "limit %s spend %d", limit, cents)
			require.GreaterOrEqual(t, rank[cur.Status], rank[prev.Status], "limit %s spend %d", limit, cents)
			prev = cur
		}
	}
}

func TestBudgetVsActual(t *testing.T) {
	budgets := []models.Budget{
		{ID: "b1", Category: models.CategoryTravel, Amount: dec("100")},
		{ID: "b2", Category: models.CategoryFoodDining, Amount: dec("50")},
		{ID: "b3", Category: models.CategoryTravel, Amount: dec("200")},
		{ID: "b4", Category: models.CategoryOther, Amount: decimal.Zero},
	}
	expenses := []models.Expense{
		expense("e1", models.CategoryTravel, "95", now),
		expense("e2", models.CategoryFoodDining, "10", now),
	}

	got := BudgetVsActual(budgets, expenses, now)

	require.Len(t, got, 4)
	assert.Equal(t, []string{"b1", "b2", "b3", "b4"}, []string{got[0].BudgetID, got[1].BudgetID, got[2].BudgetID, got[3].BudgetID})
	assert.Equal(t, 95.0, got[0].Percentage)
	assert.True(t, got[0].NearLimit)
	assert.Equal(t, 20.0, got[1].Percentage)
	assert.False(t, got[1].NearLimit)
	assert.True(t, dec("95").Equal(got[2].Actual), "duplicate category budgets are computed independently")
	assert.Equal(t, 47.5, got[2].Percentage)
	assert.Equal(t, 0.0, got[3].Percentage)
	assert.False(t, got[3].NearLimit)

	t.Run("just_over_threshold", func(t *testing.T) {
		got := BudgetVsActual(
			[]models.Budget{{ID: "b1", Category: models.CategoryFoodDining, Amount: dec("100")}},
			[]models.Expense{expense("e1", models.CategoryFoodDining, "90.04", now)},
			now,
		)
		require.Len(t, got, 1)
		assert.Equal(t, 90.0, got[0].Percentage)
		assert.True(t, got[0].NearLimit, "flag uses the exact ratio, not the rounded percentage")
	})

	t.Run("exactly_at_threshold", func(t *testing.T) {
		got := BudgetVsActual(
			[]models.Budget{{ID: "b1", Category: models.CategoryFoodDining, Amount: dec("100")}},
			[]models.Expense{expense("e1", models.CategoryFoodDining, "90", now)},
			now,
		)
		require.Len(t, got, 1)
		assert.False(t, got[0].NearLimit)
	})

	t.Run("zero_budget_with_spend", func(t *testing.T) {
		got := BudgetVsActual(
			[]models.Budget{{ID: "b1", Category: models.CategoryOther, Amount: decimal.Zero}},
			[]models.Expense{expense("e1", models.CategoryOther, "1", now)},
			now,
		)
		require.Len(t, got, 1)
		assert.Equal(t, 100.0, got[0].Percentage)
		assert.True(t, got[0].NearLimit)
	})
}

func TestSummarize(t *testing.T) {
	snap := models.Snapshot{
		Expenses: []models.Expense{
			expense("e1", models.CategoryFoodDining, "30", now),
			expense("e2", models.CategoryShopping, "10", now.AddDate(0, 0, -3)),
			expense("e3", models.CategoryShopping, "1000", now.AddDate(0, -1, 0)),
		},
		Budgets: []models.Budget{
			{ID: "b1", Category: models.CategoryFoodDining, Amount: dec("25")},
			{ID: "b2", Category: models.CategoryShopping, Amount: dec("10")},
		},
	}

	s := Summarize(snap, now)

	assert.True(t, dec("40").Equal(s.MonthSpent))
	assert.True(t, dec("35").Equal(s.TotalBudget))
	assert.True(t, dec("-5").Equal(s.BudgetRemaining))
	assert.Equal(t, 2, s.TransactionCount)
	require.Len(t, s.Categories, 2)
	assert.Equal(t, 75.0, s.Categories[0].Percentage)
	assert.Equal(t, 25.0, s.Categories[1].Percentage)
	assert.Len(t, s.Daily, TrendDays)
	assert.Len(t, s.Budgets, 2)
}

func TestBudgetOverview(t *testing.T) {
	budgets := []models.Budget{
		{ID: "b1", Category: models.CategoryFoodDining, Amount: dec("100")},
		{ID: "b2", Category: models.CategoryShopping, Amount: dec("10")},
	}
	expenses := []models.Expense{
		expense("e1", models.CategoryFoodDining, "40", now),
		expense("e2", models.CategoryShopping, "11", now),
	}

	o := BudgetOverview(budgets, expenses, now)

	assert.True(t, dec("110").Equal(o.TotalBudgeted))
	assert.True(t, dec("51").Equal(o.TotalSpent))
	assert.Equal(t, 1, o.OverBudget)
	require.Len(t, o.Budgets, 2)
	assert.Equal(t, models.BudgetStatusGood, o.Budgets[0].Status)
	assert.Equal(t, models.BudgetStatusOver, o.Budgets[1].Status)
}

func TestEngineDoesNotMutateInput(t *testing.T) {
	expenses := []models.Expense{
		expense("e1", models.CategoryFoodDining, "30", now),
		expense("e2", models.CategoryShopping, "10", now),
	}
	budgets := []models.Budget{foodBudget("10")}
	before := models.Snapshot{Expenses: expenses, Budgets: budgets}.Clone()

	Summarize(models.Snapshot{Expenses: expenses, Budgets: budgets}, now)
	BudgetOverview(budgets, expenses, now)

	assert.Equal(t, before.Expenses, expenses)
	assert.Equal(t, before.Budgets, budgets)
}
