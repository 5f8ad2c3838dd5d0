package services

import (
	"context"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/soyjefu/theprepared-PFM/internal/dto"
)

// TransactionEntrySvc records entry form submissions.
type TransactionEntrySvc interface {
	// RecordEntry validates one submission and stores every row it produces
	// (installments and linked settlements) atomically.
	RecordEntry(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.EntryResult, error)
}

// TransactionReaderSvc defines read operations for ledger rows
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a single transaction.
	GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)

	// GetLedger returns a filtered window of the ledger. When an account is
	// selected the rows carry its running balance.
	GetLedger(ctx context.Context, userID string, params dto.ListTransactionsParams) (*domain.Ledger, error)

	// ListRecentTransactions returns one page of the newest rows by creation
	// time and the token of the next page, if any.
	ListRecentTransactions(ctx context.Context, userID string, params dto.ListRecentTransactionsParams) ([]domain.Transaction, *string, error)
}

// TransactionWriterSvc defines single-row edits
type TransactionWriterSvc interface {
	UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionEntrySvc
	TransactionReaderSvc
	TransactionWriterSvc
}
