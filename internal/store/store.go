// Package store holds the in-memory expense and budget collections and the only
// code allowed to mutate them.
package store

import (
	"sync"
	"time"

	"budgetly/internal/models"
	"budgetly/internal/uuid"
)

// Store owns the expense and budget collections. Both are kept newest first.
// Every mutation runs under a single lock, so callers always observe a settled
// state. The store does not validate its input.
type Store struct {
	mu       sync.RWMutex
	expenses []models.Expense
	budgets  []models.Budget

	now   func() time.Time
	newID uuid.Generator
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used to stamp new expenses.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides how record IDs are generated.
func WithIDGenerator(gen uuid.Generator) Option {
	return func(s *Store) { s.newID = gen }
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		now:   time.Now,
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the store clock's current time.
func (s *Store) Now() time.Time {
	return s.now()
}

// Replace installs snap as the full contents of the store. It is used once at
// start-up to load seed records.
func (s *Store) Replace(snap models.Snapshot) {
	snap = snap.Clone()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = snap.Expenses
	s.budgets = snap.Budgets
}

// Snapshot returns a copy of both collections.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.Snapshot{Expenses: s.expenses, Budgets: s.budgets}.Clone()
}

// Expenses returns a copy of the expense collection, newest first.
func (s *Store) Expenses() []models.Expense {
	return s.Snapshot().Expenses
}

// Budgets returns a copy of the budget collection, newest first.
func (s *Store) Budgets() []models.Budget {
	return s.Snapshot().Budgets
}

// AddExpense stamps in with a new ID and the current time and prepends it.
func (s *Store) AddExpense(in models.NewExpense) models.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := models.Expense{
		ID:            s.newID(),
		Description:   in.Description,
		Amount:        in.Amount,
		Category:      in.Category,
		PaymentMethod: in.PaymentMethod,
		Date:          s.now(),
	}
	s.expenses = prepend(s.expenses, e)
	return e
}

// Expense looks up an expense by ID.
func (s *Store) Expense(id string) (models.Expense, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.expenses {
		if e.ID == id {
			return e, true
		}
	}
	return models.Expense{}, false
}

// DeleteExpense removes the expense with the given ID. An unknown ID is a no-op;
// the result only reports whether something was removed.
func (s *Store) DeleteExpense(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed bool
	s.expenses, removed = without(s.expenses, func(e models.Expense) bool { return e.ID == id })
	return removed
}

// AddBudget assigns in a new ID and prepends it. Categories need not be unique.
func (s *Store) AddBudget(in models.NewBudget) models.Budget {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := models.Budget{
		ID:       s.newID(),
		Category: in.Category,
		Amount:   in.Amount,
		Period:   in.Period,
	}
	s.budgets = prepend(s.budgets, b)
	return b
}

// Budget looks up a budget by ID.
func (s *Store) Budget(id string) (models.Budget, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.budgets {
		if b.ID == id {
			return b, true
		}
	}
	return models.Budget{}, false
}

// UpdateBudget merges patch into the budget with the given ID, keeping its
// position. An unknown ID is a no-op and returns false.
func (s *Store) UpdateBudget(id string, patch models.BudgetPatch) (models.Budget, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.budgets {
		if b.ID != id {
			continue
		}
		updated := patch.Apply(b)
		// Copy on write: earlier snapshots keep seeing the old value.
		next := make([]models.Budget, len(s.budgets))
		copy(next, s.budgets)
		next[i] = updated
		s.budgets = next
		return updated, true
	}
	return models.Budget{}, false
}

// DeleteBudget removes the budget with the given ID. An unknown ID is a no-op.
func (s *Store) DeleteBudget(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed bool
	s.budgets, removed = without(s.budgets, func(b models.Budget) bool { return b.ID == id })
	return removed
}

func prepend[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

// without returns a fresh slice lacking the items matched by drop. When nothing
// matches the original slice is returned untouched.
func without[T any](items []T, drop func(T) bool) ([]T, bool) {
	idx := -1
	for i, item := range items {
		if drop(item) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return items, false
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:idx]...)
	return append(out, items[idx+1:]...), true
}
