package services

import (
	"time"

	"budgetly/internal/aggregate"
	"budgetly/internal/store"
)

// MaxTrendDays caps the length of a daily spending series.
const MaxTrendDays = 366

// insightService derives dashboard views from the current snapshot.
type insightService struct {
	store *store.Store
}

// NewInsightService creates a new InsightServicer.
func NewInsightService(st *store.Store) InsightServicer {
	return &insightService{store: st}
}

// Summary returns the dashboard header, breakdown, trend and comparisons.
func (s *insightService) Summary() aggregate.Summary {
	return aggregate.Summarize(s.store.Snapshot(), s.store.Now())
}

// CategoryBreakdown splits the spend between from and to by category. Missing
// bounds default to the current calendar month.
func (s *insightService) CategoryBreakdown(from, to *time.Time) CategoryBreakdown {
	window := aggregate.MonthWindow(s.store.Now())
	if from != nil {
		window.Start = *from
	}
	if to != nil {
		window.End = *to
	}

	totals := aggregate.CategoryTotals(s.store.Expenses(), window.Start, window.End)
	total := totals.Sum()
	return CategoryBreakdown{
		Window:     window,
		Total:      total,
		Categories: aggregate.PercentageBreakdown(totals, total),
	}
}

// DailySpending returns the spend of each of the last days days.
func (s *insightService) DailySpending(days int) []aggregate.DayAmount {
	days = min(days, MaxTrendDays)
	return aggregate.DailySeries(s.store.Expenses(), days, s.store.Now())
}

// BudgetVsActual compares every budget with this month's spend.
func (s *insightService) BudgetVsActual() []aggregate.Comparison {
	snap := s.store.Snapshot()
	return aggregate.BudgetVsActual(snap.Budgets, snap.Expenses, s.store.Now())
}
