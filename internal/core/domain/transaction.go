package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates on which side of an entry an account appears.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// Transaction is one double-entry ledger line moving Amount from the credit
// account to the debit account.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	UserID          string          `json:"userID"`
	Date            time.Time       `json:"date"`
	Item            string          `json:"item"`
	Memo            string          `json:"memo"`
	Amount          decimal.Decimal `json:"amount"`
	DebitAccountID  string          `json:"debitAccountID"`
	CreditAccountID string          `json:"creditAccountID"`
	IsRepayment     bool            `json:"isRepayment"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// SideOf returns the side on which accountID appears. A transaction that
// uses the account on both sides reports ok=false.
func (t Transaction) SideOf(accountID string) (side TransactionType, ok bool) {
	isDebit := t.DebitAccountID == accountID
	isCredit := t.CreditAccountID == accountID
	switch {
	case isDebit && !isCredit:
		return Debit, true
	case isCredit && !isDebit:
		return Credit, true
	}
	return "", false
}

// Before reports whether t sorts before o in chronological ledger order.
func (t Transaction) Before(o Transaction) bool {
	if !t.Date.Equal(o.Date) {
		return t.Date.Before(o.Date)
	}
	return t.CreatedAt.Before(o.CreatedAt)
}

// TransactionFilter narrows a ledger listing. Zero values mean "no filter".
type TransactionFilter struct {
	AccountID       string
	DebitAccountID  string
	CreditAccountID string
	ItemContains    string
	MemoContains    string
	From            *time.Time
	To              *time.Time
}

// EntryResult is the outcome of recording one entry submission.
type EntryResult struct {
	Transactions []Transaction `json:"transactions"`
	Warnings     []string      `json:"warnings"`
}

// LedgerRow is a transaction annotated with the running balance of the
// selected account.
type LedgerRow struct {
	Transaction
	RunningBalance *decimal.Decimal `json:"runningBalance,omitempty"`
}

// Ledger is a filtered window of transactions.
type Ledger struct {
	Rows            []LedgerRow      `json:"rows"`
	From            time.Time        `json:"from"`
	To              time.Time        `json:"to"`
	PeriodTotal     decimal.Decimal  `json:"periodTotal"`
	OpeningBalance  *decimal.Decimal `json:"openingBalance,omitempty"`
	CumulativeTotal *decimal.Decimal `json:"cumulativeTotal,omitempty"`
}
