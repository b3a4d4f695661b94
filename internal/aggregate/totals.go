package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"budgetly/internal/models"
)

var hundred = decimal.NewFromInt(100)

// CategoryAmount is the summed spend of one category.
type CategoryAmount struct {
	Category models.Category `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// Totals lists category sums in the order each category first appeared.
type Totals []CategoryAmount

// Sum adds up every category total.
func (t Totals) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, c := range t {
		sum = sum.Add(c.Amount)
	}
	return sum
}

// Get returns the total for category, if present.
func (t Totals) Get(category models.Category) (decimal.Decimal, bool) {
	for _, c := range t {
		if c.Category == category {
			return c.Amount, true
		}
	}
	return decimal.Zero, false
}

// CategoryTotals sums the expenses dated within [start, end] by category.
// Categories without a matching expense are left out rather than reported as 0.
func CategoryTotals(expenses []models.Expense, start, end time.Time) Totals {
	w := Window{Start: start, End: end}
	index := make(map[models.Category]int)
	var out Totals
	for _, e := range expenses {
		if !w.Contains(e.Date) {
			continue
		}
		i, ok := index[e.Category]
		if !ok {
			i = len(out)
			index[e.Category] = i
			out = append(out, CategoryAmount{Category: e.Category, Amount: decimal.Zero})
		}
		out[i].Amount = out[i].Amount.Add(e.Amount)
	}
	return out
}

// CategoryShare is a category total with its share of the overall spend.
type CategoryShare struct {
	Category   models.Category `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
}

// PercentageBreakdown expresses each total as a percentage of totalAmount,
// rounded to one decimal place. A zero totalAmount yields 0% for every entry.
func PercentageBreakdown(totals Totals, totalAmount decimal.Decimal) []CategoryShare {
	out := make([]CategoryShare, 0, len(totals))
	for _, c := range totals {
		out = append(out, CategoryShare{
			Category:   c.Category,
			Amount:     c.Amount,
			Percentage: percentOf(c.Amount, totalAmount),
		})
	}
	return out
}

// DayAmount is the spend of a single calendar day.
type DayAmount struct {
	Day    string          `json:"day"`
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// DailySeries returns the spend of each of the last days calendar days, oldest
// first and ending with today. Days are matched by calendar date in now's
// location, not by rolling 24h windows.
func DailySeries(expenses []models.Expense, days int, now time.Time) []DayAmount {
	if days <= 0 {
		return []DayAmount{}
	}
	today := startOfDay(now)
	out := make([]DayAmount, days)
	for i := range out {
		day := today.AddDate(0, 0, i-(days-1))
		out[i] = DayAmount{Day: day.Format("Mon"), Date: day, Amount: decimal.Zero}
	}
	w := TrailingDays(now, days)
	for _, e := range expenses {
		local := e.Date.In(now.Location())
		if !w.Contains(local) {
			continue
		}
		for i := range out {
			if sameDay(local, out[i].Date) {
				out[i].Amount = out[i].Amount.Add(e.Amount)
				break
			}
		}
	}
	return out
}

// percentOf returns part/whole*100 rounded to one decimal, or 0 for a zero whole.
func percentOf(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(hundred).Round(1).InexactFloat64()
}
