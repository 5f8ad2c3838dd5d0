package services

import (
	"context"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
)

// ImportSvcFacade loads accounts and transactions from tabular files that
// were already decoded into rows of cells.
type ImportSvcFacade interface {
	// ImportAccounts creates the accounts named in rows that do not exist yet.
	ImportAccounts(ctx context.Context, userID string, rows [][]string) (*domain.ImportResult, error)

	// ImportTransactions inserts every valid row in one database transaction;
	// invalid rows are skipped and reported.
	ImportTransactions(ctx context.Context, userID string, rows [][]string) (*domain.ImportResult, error)
}
