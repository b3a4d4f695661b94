package services

import (
	"context"

	"budgetly/internal/aggregate"
	apperrors "budgetly/internal/errors"
	"budgetly/internal/logger"
	"budgetly/internal/metrics"
	"budgetly/internal/models"
	"budgetly/internal/store"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	store    *store.Store
	recorder *Recorder
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(st *store.Store, recorder *Recorder) BudgetServicer {
	return &budgetService{store: st, recorder: recorder}
}

// CreateBudget creates a new budget for a category. The period defaults to
// monthly. Several budgets may target the same category.
func (s *budgetService) CreateBudget(ctx context.Context, in models.NewBudget) (*models.Budget, error) {
	if in.Period == "" {
		in.Period = models.BudgetPeriodMonthly
	}
	if err := validatePatch(models.BudgetPatch{Category: &in.Category, Amount: &in.Amount, Period: &in.Period}); err != nil {
		return nil, err
	}

	budget := s.store.AddBudget(in)
	logger.Get().Debugw("budget created", "id", budget.ID, "category", budget.Category, "amount", budget.Amount.String())

	if err := s.recorder.Commit(ctx, metrics.EntityBudget, metrics.OpCreate); err != nil {
		return &budget, err
	}
	return &budget, nil
}

// GetBudgets returns every budget, newest first.
func (s *budgetService) GetBudgets() []models.Budget {
	return s.store.Budgets()
}

// UpdateBudget merges patch into an existing budget. An unknown ID is a
// silent no-op whatever the patch holds.
func (s *budgetService) UpdateBudget(ctx context.Context, id string, patch models.BudgetPatch) (*models.Budget, error) {
	if _, ok := s.store.Budget(id); !ok {
		return nil, s.recorder.Commit(ctx, metrics.EntityBudget, metrics.OpNoop)
	}
	if patch.IsEmpty() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "no fields to update")
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	budget, ok := s.store.UpdateBudget(id, patch)
	if !ok {
		return nil, s.recorder.Commit(ctx, metrics.EntityBudget, metrics.OpNoop)
	}
	if err := s.recorder.Commit(ctx, metrics.EntityBudget, metrics.OpUpdate); err != nil {
		return &budget, err
	}
	return &budget, nil
}

// validatePatch checks the fields a patch sets.
func validatePatch(p models.BudgetPatch) error {
	switch {
	case p.Category != nil && !p.Category.Valid():
		return apperrors.ErrInvalidCategory
	case p.Amount != nil && p.Amount.IsNegative():
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	case p.Period != nil && !p.Period.Valid():
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "period must be weekly, monthly or yearly")
	}
	return nil
}

// DeleteBudget removes a budget. Unknown IDs are ignored.
func (s *budgetService) DeleteBudget(ctx context.Context, id string) error {
	op := metrics.OpDelete
	if !s.store.DeleteBudget(id) {
		op = metrics.OpNoop
	}
	return s.recorder.Commit(ctx, metrics.EntityBudget, op)
}

// GetBudgetStatus returns the current-month status of a single budget.
func (s *budgetService) GetBudgetStatus(id string) (*aggregate.Status, error) {
	budget, ok := s.store.Budget(id)
	if !ok {
		return nil, apperrors.ErrBudgetNotFound
	}
	status := aggregate.BudgetStatus(budget, s.store.Expenses(), s.store.Now())
	return &status, nil
}

// GetOverview returns the status of every budget with the card totals.
func (s *budgetService) GetOverview() aggregate.Overview {
	snap := s.store.Snapshot()
	return aggregate.BudgetOverview(snap.Budgets, snap.Expenses, s.store.Now())
}
