package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Preset is the stored form of an entry preset. Amount and DayOfMonth are nullable.
type Preset struct {
	PresetID        string              `db:"preset_id"`
	UserID          string              `db:"user_id"`
	Name            string              `db:"name"`
	PresetType      string              `db:"preset_type"`
	Item            string              `db:"item"`
	Amount          decimal.NullDecimal `db:"amount"`
	DebitAccountID  string              `db:"debit_account_id"`
	CreditAccountID string              `db:"credit_account_id"`
	DayOfMonth      sql.NullInt32       `db:"day_of_month"`
	CreatedAt       time.Time           `db:"created_at"`
}
