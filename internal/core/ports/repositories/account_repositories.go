package repositories

import (
	"context"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AccountReader defines read operations for account data.
// Every lookup is scoped to the owning user.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs.
	FindAccountsByIDs(ctx context.Context, userID string, accountIDs []string) (map[string]domain.Account, error)

	// FindAccountByRole retrieves the account holding a settlement role.
	FindAccountByRole(ctx context.Context, userID string, role domain.AccountRole) (*domain.Account, error)

	// ListAccounts retrieves the user's accounts ordered by type and name,
	// optionally restricted to one type.
	ListAccounts(ctx context.Context, userID string, accountType *domain.AccountType) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account. It fails with ErrConflict while
	// transactions still reference it.
	DeleteAccount(ctx context.Context, userID string, accountID string) error
}

// AccountTransactionSupport defines account operations that run inside a caller's transaction.
type AccountTransactionSupport interface {
	// ListAccountsInTx retrieves all accounts of the user within a transaction.
	ListAccountsInTx(ctx context.Context, tx pgx.Tx, userID string) ([]domain.Account, error)

	// SaveAccountsInTx persists several new accounts within a transaction.
	SaveAccountsInTx(ctx context.Context, tx pgx.Tx, accounts []domain.Account) error

	// DeleteAccountsByUserInTx removes every account of the user within a transaction.
	DeleteAccountsByUserInTx(ctx context.Context, tx pgx.Tx, userID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
