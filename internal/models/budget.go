package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is the stored form of a monthly allocation.
type Budget struct {
	BudgetID  string          `db:"budget_id"`
	UserID    string          `db:"user_id"`
	Year      int             `db:"year"`
	Month     int             `db:"month"`
	AccountID string          `db:"account_id"`
	Amount    decimal.Decimal `db:"amount"`
	CreatedAt time.Time       `db:"created_at"`
}
