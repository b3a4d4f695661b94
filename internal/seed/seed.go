// Package seed supplies the records a store starts with.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"budgetly/internal/models"
)

// Source produces the initial snapshot of a store.
type Source interface {
	Seed(ctx context.Context, now time.Time) (models.Snapshot, error)
}

// Fixture is a Source that always returns the same snapshot.
type Fixture models.Snapshot

// Seed returns a copy of the fixture.
func (f Fixture) Seed(_ context.Context, _ time.Time) (models.Snapshot, error) {
	return models.Snapshot(f).Clone(), nil
}

// Empty is a Source with no records.
var Empty Source = Fixture{}

var descriptions = map[models.Category][]string{
	models.CategoryFoodDining:     {"Starbucks Coffee", "Lunch at Subway", "Grocery Shopping", "Pizza Delivery", "Restaurant Dinner"},
	models.CategoryTransportation: {"Gas Station", "Uber Ride", "Bus Ticket", "Parking Fee", "Car Maintenance"},
	models.CategoryShopping:       {"Amazon Purchase", "Clothing Store", "Electronics", "Home Supplies", "Books"},
	models.CategoryEntertainment:  {"Movie Tickets", "Concert", "Streaming Service", "Gaming", "Sports Event"},
	models.CategoryBills:          {"Electric Bill", "Internet Bill", "Phone Bill", "Water Bill", "Insurance"},
	models.CategoryHealthcare:     {"Doctor Visit", "Pharmacy", "Dental Care", "Health Insurance", "Vitamins"},
	models.CategoryTravel:         {"Hotel Booking", "Flight Ticket", "Car Rental", "Travel Insurance", "Vacation"},
	models.CategoryEducation:      {"Course Fee", "Books", "Online Learning", "Workshop", "Certification"},
	models.CategoryOther:          {"Gift", "Donation", "Miscellaneous", "Emergency", "Investment"},
}

// DefaultBudgets are the monthly budgets every random seed starts with.
func DefaultBudgets() []models.Budget {
	return []models.Budget{
		{ID: "budget-1", Category: models.CategoryFoodDining, Amount: decimal.NewFromInt(500), Period: models.BudgetPeriodMonthly},
		{ID: "budget-2", Category: models.CategoryTransportation, Amount: decimal.NewFromInt(200), Period: models.BudgetPeriodMonthly},
		{ID: "budget-3", Category: models.CategoryShopping, Amount: decimal.NewFromInt(300), Period: models.BudgetPeriodMonthly},
		{ID: "budget-4", Category: models.CategoryEntertainment, Amount: decimal.NewFromInt(150), Period: models.BudgetPeriodMonthly},
		{ID: "budget-5", Category: models.CategoryBills, Amount: decimal.NewFromInt(400), Period: models.BudgetPeriodMonthly},
	}
}

// Random generates mock expenses spread over the last Days days together with
// DefaultBudgets.
type Random struct {
	Expenses int
	Days     int
	rng      *rand.Rand
}

// NewRandom returns a Random source. A zero seed draws a random one, any other
// value makes the output reproducible.
func NewRandom(expenses int, seed uint64) *Random {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Random{
		Expenses: expenses,
		Days:     30,
		rng:      rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

// Seed builds the mock snapshot. Amounts fall in [5, 205) rounded to cents.
func (r *Random) Seed(ctx context.Context, now time.Time) (models.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return models.Snapshot{}, err
	}
	cats := models.AllCategories()
	methods := models.AllPaymentMethods()

	expenses := make([]models.Expense, 0, r.Expenses)
	for i := 0; i < r.Expenses; i++ {
		cat := cats[r.rng.IntN(len(cats))]
		descs := descriptions[cat]
		cents := int64(500 + r.rng.IntN(20000))
		expenses = append(expenses, models.Expense{
			ID:            fmt.Sprintf("expense-%d", i),
			Description:   descs[r.rng.IntN(len(descs))],
			Amount:        decimal.New(cents, -2),
			Category:      cat,
			PaymentMethod: methods[r.rng.IntN(len(methods))],
			Date:          now.AddDate(0, 0, -r.rng.IntN(max(r.Days, 1))),
		})
	}
	return models.Snapshot{Expenses: expenses, Budgets: DefaultBudgets()}, nil
}

// FirstNonEmpty returns a Source that tries each source in order and keeps the
// first snapshot holding any record. It is how stored records win over mock
// data on restart.
func FirstNonEmpty(sources ...Source) Source {
	return firstNonEmpty(sources)
}

type firstNonEmpty []Source

func (f firstNonEmpty) Seed(ctx context.Context, now time.Time) (models.Snapshot, error) {
	for _, src := range f {
		snap, err := src.Seed(ctx, now)
		if err != nil {
			return models.Snapshot{}, err
		}
		if len(snap.Expenses) > 0 || len(snap.Budgets) > 0 {
			return snap, nil
		}
	}
	return models.Snapshot{}, nil
}
