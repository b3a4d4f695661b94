// Package storage persists store snapshots through gorm so that records survive
// a restart.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"budgetly/internal/models"
)

// Persister saves and restores whole snapshots.
type Persister interface {
	Load(ctx context.Context) (models.Snapshot, error)
	Save(ctx context.Context, snap models.Snapshot) error
}

// ExpenseRow is the persisted form of an expense. Position keeps the
// newest-first order of the store.
type ExpenseRow struct {
	ID            string          `gorm:"primaryKey;type:varchar(64)"`
	Position      int             `gorm:"not null;index"`
	Description   string          `gorm:"not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Category      string          `gorm:"type:varchar(64);not null"`
	PaymentMethod string          `gorm:"type:varchar(32);not null"`
	Date          time.Time       `gorm:"not null"`
}

// TableName overrides the gorm default.
func (ExpenseRow) TableName() string { return "expenses" }

// BudgetRow is the persisted form of a budget.
type BudgetRow struct {
	ID       string          `gorm:"primaryKey;type:varchar(64)"`
	Position int             `gorm:"not null;index"`
	Category string          `gorm:"type:varchar(64);not null"`
	Amount   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Period   string          `gorm:"type:varchar(16);not null"`
}

// TableName overrides the gorm default.
func (BudgetRow) TableName() string { return "budgets" }

// Tables lists the row models for auto-migration.
func Tables() []any {
	return []any{&ExpenseRow{}, &BudgetRow{}}
}

// Repository is a gorm-backed Persister.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over an open connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Load reads the stored snapshot, preserving record order.
func (r *Repository) Load(ctx context.Context) (models.Snapshot, error) {
	var expenseRows []ExpenseRow
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&expenseRows).Error; err != nil {
		return models.Snapshot{}, fmt.Errorf("loading expenses: %w", err)
	}
	var budgetRows []BudgetRow
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&budgetRows).Error; err != nil {
		return models.Snapshot{}, fmt.Errorf("loading budgets: %w", err)
	}

	snap := models.Snapshot{
		Expenses: make([]models.Expense, len(expenseRows)),
		Budgets:  make([]models.Budget, len(budgetRows)),
	}
	for i, row := range expenseRows {
		snap.Expenses[i] = row.toModel()
	}
	for i, row := range budgetRows {
		snap.Budgets[i] = row.toModel()
	}
	return snap, nil
}

// Save replaces everything stored with snap in a single transaction.
func (r *Repository) Save(ctx context.Context, snap models.Snapshot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&ExpenseRow{}).Error; err != nil {
			return fmt.Errorf("clearing expenses: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&BudgetRow{}).Error; err != nil {
			return fmt.Errorf("clearing budgets: %w", err)
		}

		if len(snap.Expenses) > 0 {
			rows := make([]ExpenseRow, len(snap.Expenses))
			for i, e := range snap.Expenses {
				rows[i] = expenseRowFrom(i, e)
			}
			if err := tx.CreateInBatches(rows, 200).Error; err != nil {
				return fmt.Errorf("saving expenses: %w", err)
			}
		}
		if len(snap.Budgets) > 0 {
			rows := make([]BudgetRow, len(snap.Budgets))
			for i, b := range snap.Budgets {
				rows[i] = budgetRowFrom(i, b)
			}
			if err := tx.CreateInBatches(rows, 200).Error; err != nil {
				return fmt.Errorf("saving budgets: %w", err)
			}
		}
		return nil
	})
}

// Seed lets a repository act as the initial data source of a store.
func (r *Repository) Seed(ctx context.Context, _ time.Time) (models.Snapshot, error) {
	return r.Load(ctx)
}

func expenseRowFrom(position int, e models.Expense) ExpenseRow {
	return ExpenseRow{
		ID:            e.ID,
		Position:      position,
		Description:   e.Description,
		Amount:        e.Amount,
		Category:      string(e.Category),
		PaymentMethod: string(e.PaymentMethod),
		Date:          e.Date,
	}
}

func (row ExpenseRow) toModel() models.Expense {
	return models.Expense{
		ID:            row.ID,
		Description:   row.Description,
		Amount:        row.Amount,
		Category:      models.Category(row.Category),
		PaymentMethod: models.PaymentMethod(row.PaymentMethod),
		Date:          row.Date,
	}
}

func budgetRowFrom(position int, b models.Budget) BudgetRow {
	return BudgetRow{
		ID:       b.ID,
		Position: position,
		Category: string(b.Category),
		Amount:   b.Amount,
		Period:   string(b.Period),
	}
}

func (row BudgetRow) toModel() models.Budget {
	return models.Budget{
		ID:       row.ID,
		Category: models.Category(row.Category),
		Amount:   row.Amount,
		Period:   models.BudgetPeriod(row.Period),
	}
}
