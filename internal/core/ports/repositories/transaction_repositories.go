package repositories

import (
	"context"
	"time"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations for ledger rows.
type TransactionReader interface {
	// FindTransactionByID retrieves a single transaction owned by the user.
	FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the rows matching filter, newest first
	// (date DESC, created_at DESC).
	ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// ListRecentTransactions retrieves up to limit rows ordered by created_at DESC.
	// When createdBefore and idBefore are set only rows strictly older than
	// that keyset position are returned.
	ListRecentTransactions(ctx context.Context, userID string, limit int, createdBefore *time.Time, idBefore *string) ([]domain.Transaction, error)

	// HasTransactionsSince reports whether any row is dated on or after since.
	HasTransactionsSince(ctx context.Context, userID string, since time.Time) (bool, error)
}

// TransactionWriter defines single-row write operations.
type TransactionWriter interface {
	// UpdateTransaction replaces the editable fields of a transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}

// TransactionBatchSupport defines ledger operations that run inside a caller's transaction.
type TransactionBatchSupport interface {
	// SaveTransactionsInTx inserts all rows within a transaction.
	SaveTransactionsInTx(ctx context.Context, tx pgx.Tx, txns []domain.Transaction) error

	// DeleteTransactionsByUserInTx removes every row of the user within a transaction.
	DeleteTransactionsByUserInTx(ctx context.Context, tx pgx.Tx, userID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionBatchSupport
}
