package services

import (
	"context"
	"strings"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/listing"
	"budgetly/internal/logger"
	"budgetly/internal/metrics"
	"budgetly/internal/models"
	"budgetly/internal/pagination"
	"budgetly/internal/store"

	"github.com/shopspring/decimal"
)

// Preset is a one-click expense template.
type Preset struct {
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Category models.Category `json:"category"`
}

var presets = []Preset{
	{Name: "Coffee", Amount: decimal.NewFromInt(5), Category: models.CategoryFoodDining},
	{Name: "Lunch", Amount: decimal.NewFromInt(15), Category: models.CategoryFoodDining},
	{Name: "Gas", Amount: decimal.NewFromInt(40), Category: models.CategoryTransportation},
	{Name: "Groceries", Amount: decimal.NewFromInt(80), Category: models.CategoryShopping},
}

// expenseService handles expense-related business logic.
type expenseService struct {
	store    *store.Store
	recorder *Recorder
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(st *store.Store, recorder *Recorder) ExpenseServicer {
	return &expenseService{store: st, recorder: recorder}
}

// CreateExpense validates the input and adds it to the store. The payment
// method defaults to card.
func (s *expenseService) CreateExpense(ctx context.Context, in models.NewExpense) (*models.Expense, error) {
	in.Description = strings.TrimSpace(in.Description)
	if in.PaymentMethod == "" {
		in.PaymentMethod = models.PaymentMethodCard
	}
	if err := validateExpense(in); err != nil {
		return nil, err
	}

	expense := s.store.AddExpense(in)
	logger.Get().Debugw("expense created", "id", expense.ID, "category", expense.Category, "amount", expense.Amount.String())

	if err := s.recorder.Commit(ctx, metrics.EntityExpense, metrics.OpCreate); err != nil {
		return &expense, err
	}
	return &expense, nil
}

func validateExpense(in models.NewExpense) error {
	switch {
	case in.Description == "":
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	case in.Amount.IsNegative():
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	case !in.Category.Valid():
		return apperrors.ErrInvalidCategory
	case !in.PaymentMethod.Valid():
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown payment method")
	}
	return nil
}

// GetExpense returns an expense by ID.
func (s *expenseService) GetExpense(id string) (*models.Expense, error) {
	expense, ok := s.store.Expense(id)
	if !ok {
		return nil, apperrors.ErrExpenseNotFound
	}
	return &expense, nil
}

// ListExpenses filters, sorts and paginates the current expenses.
func (s *expenseService) ListExpenses(query listing.Query, page pagination.PageRequest) (*ExpenseList, error) {
	if query.Category != "" && !query.Category.Valid() {
		return nil, apperrors.ErrInvalidCategory
	}

	result := listing.Apply(s.store.Expenses(), query)
	return &ExpenseList{
		PageResponse: pagination.Paginate(result.Expenses, page),
		Count:        result.Count,
		Total:        result.Total,
	}, nil
}

// DeleteExpense removes an expense. Unknown IDs are ignored.
func (s *expenseService) DeleteExpense(ctx context.Context, id string) error {
	op := metrics.OpDelete
	if !s.store.DeleteExpense(id) {
		op = metrics.OpNoop
	}
	return s.recorder.Commit(ctx, metrics.EntityExpense, op)
}

// Presets returns the quick-add templates.
func (s *expenseService) Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// QuickAdd creates an expense from the preset called name, paid by card.
func (s *expenseService) QuickAdd(ctx context.Context, name string) (*models.Expense, error) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return s.CreateExpense(ctx, models.NewExpense{
				Description:   p.Name,
				Amount:        p.Amount,
				Category:      p.Category,
				PaymentMethod: models.PaymentMethodCard,
			})
		}
	}
	return nil, apperrors.ErrPresetNotFound
}
