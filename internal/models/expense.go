package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Expense is a single logged purchase. ID and Date are assigned by the store
// and never change afterwards.
type Expense struct {
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Category      Category        `json:"category"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Date          time.Time       `json:"date"`
}

// NewExpense holds the caller-supplied fields of an expense.
type NewExpense struct {
	Description   string
	Amount        decimal.Decimal
	Category      Category
	PaymentMethod PaymentMethod
}
