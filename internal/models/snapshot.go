package models

// Snapshot is an immutable copy of both record collections, newest first.
type Snapshot struct {
	Expenses []Expense `json:"expenses"`
	Budgets  []Budget  `json:"budgets"`
}

// Clone returns a deep copy so that callers can't alias the original slices.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Expenses: make([]Expense, len(s.Expenses)),
		Budgets:  make([]Budget, len(s.Budgets)),
	}
	copy(out.Expenses, s.Expenses)
	copy(out.Budgets, s.Budgets)
	return out
}
