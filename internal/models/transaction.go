package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the stored form of one double-entry ledger line.
// TxnDate is a DATE column; CreatedAt orders rows entered on the same day.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	UserID          string          `db:"user_id"`
	TxnDate         time.Time       `db:"txn_date"`
	Item            string          `db:"item"`
	Memo            string          `db:"memo"`
	Amount          decimal.Decimal `db:"amount"`
	DebitAccountID  string          `db:"debit_account_id"`
	CreditAccountID string          `db:"credit_account_id"`
	IsRepayment     bool            `db:"is_repayment"`
	CreatedAt       time.Time       `db:"created_at"`
}
