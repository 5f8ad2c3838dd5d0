package dto

import (
	"time"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// CreateTransactionRequest is one submission of the entry form. An item of
// the form "<name>//<months>" is expanded into monthly installments.
type CreateTransactionRequest struct {
	Date            string          `json:"date" binding:"required,datetime=2006-01-02"`
	Item            string          `json:"item" binding:"required,max=200"`
	Memo            string          `json:"memo" binding:"max=500"`
	Amount          decimal.Decimal `json:"amount" swaggertype:"string"`
	DebitAccountID  string          `json:"debitAccountID" binding:"required"`
	CreditAccountID string          `json:"creditAccountID" binding:"required"`
	IsRepayment     bool            `json:"isRepayment"`
}

// UpdateTransactionRequest replaces the editable fields of one transaction.
// The item is stored as given; installment syntax applies to new entries only.
type UpdateTransactionRequest struct {
	Date            string          `json:"date" binding:"required,datetime=2006-01-02"`
	Item            string          `json:"item" binding:"required,max=200"`
	Memo            string          `json:"memo" binding:"max=500"`
	Amount          decimal.Decimal `json:"amount" swaggertype:"string"`
	DebitAccountID  string          `json:"debitAccountID" binding:"required"`
	CreditAccountID string          `json:"creditAccountID" binding:"required"`
	IsRepayment     bool            `json:"isRepayment"`
}

// ListTransactionsParams defines the ledger view filters. The window is taken
// from year+month when both are set, otherwise from start/end, otherwise the
// last month up to today.
type ListTransactionsParams struct {
	Account       string `form:"account"`
	DebitAccount  string `form:"debit_account"`
	CreditAccount string `form:"credit_account"`
	Item          string `form:"item" binding:"max=200"`
	Memo          string `form:"memo" binding:"max=500"`
	Year          int    `form:"year" binding:"omitempty,min=1900,max=9999"`
	Month         int    `form:"month" binding:"omitempty,min=1,max=12"`
	Start         string `form:"start" binding:"omitempty,datetime=2006-01-02"`
	End           string `form:"end" binding:"omitempty,datetime=2006-01-02"`
}

// ListRecentTransactionsParams defines the keyset pagination of the recent feed.
type ListRecentTransactionsParams struct {
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	Date            string          `json:"date"`
	Item            string          `json:"item"`
	Memo            string          `json:"memo"`
	Amount          decimal.Decimal `json:"amount"`
	DebitAccountID  string          `json:"debitAccountID"`
	CreditAccountID string          `json:"creditAccountID"`
	IsRepayment     bool            `json:"isRepayment"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		Date:            txn.Date.Format(DateLayout),
		Item:            txn.Item,
		Memo:            txn.Memo,
		Amount:          txn.Amount,
		DebitAccountID:  txn.DebitAccountID,
		CreditAccountID: txn.CreditAccountID,
		IsRepayment:     txn.IsRepayment,
		CreatedAt:       txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}

// CreateTransactionResponse returns the rows created by one submission and
// any non-fatal warnings.
type CreateTransactionResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Warnings     []string              `json:"warnings"`
}

// ToCreateTransactionResponse converts an entry result.
func ToCreateTransactionResponse(res *domain.EntryResult) CreateTransactionResponse {
	warnings := res.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return CreateTransactionResponse{
		Transactions: ToTransactionResponses(res.Transactions),
		Warnings:     warnings,
	}
}

// LedgerRowResponse is a transaction with the selected account's running balance.
type LedgerRowResponse struct {
	TransactionResponse
	RunningBalance *decimal.Decimal `json:"runningBalance,omitempty"`
}

// LedgerResponse is the filtered ledger view.
type LedgerResponse struct {
	From            string              `json:"from"`
	To              string              `json:"to"`
	Rows            []LedgerRowResponse `json:"rows"`
	PeriodTotal     decimal.Decimal     `json:"periodTotal"`
	OpeningBalance  *decimal.Decimal    `json:"openingBalance,omitempty"`
	CumulativeTotal *decimal.Decimal    `json:"cumulativeTotal,omitempty"`
}

// ToLedgerResponse converts a domain.Ledger to LedgerResponse DTO.
func ToLedgerResponse(l *domain.Ledger) LedgerResponse {
	rows := make([]LedgerRowResponse, len(l.Rows))
	for i, row := range l.Rows {
		rows[i] = LedgerRowResponse{
			TransactionResponse: ToTransactionResponse(&row.Transaction),
			RunningBalance:      row.RunningBalance,
		}
	}
	return LedgerResponse{
		From:            l.From.Format(DateLayout),
		To:              l.To.Format(DateLayout),
		Rows:            rows,
		PeriodTotal:     l.PeriodTotal,
		OpeningBalance:  l.OpeningBalance,
		CumulativeTotal: l.CumulativeTotal,
	}
}

// ListRecentTransactionsResponse is one page of the recent feed.
type ListRecentTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}
