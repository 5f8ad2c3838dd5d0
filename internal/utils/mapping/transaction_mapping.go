package mapping

import (
	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/soyjefu/theprepared-PFM/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		UserID:          d.UserID,
		TxnDate:         domain.DateOnly(d.Date),
		Item:            d.Item,
		Memo:            d.Memo,
		Amount:          d.Amount,
		DebitAccountID:  d.DebitAccountID,
		CreditAccountID: d.CreditAccountID,
		IsRepayment:     d.IsRepayment,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		UserID:          m.UserID,
		Date:            domain.DateOnly(m.TxnDate),
		Item:            m.Item,
		Memo:            m.Memo,
		Amount:          m.Amount,
		DebitAccountID:  m.DebitAccountID,
		CreditAccountID: m.CreditAccountID,
		IsRepayment:     m.IsRepayment,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}
