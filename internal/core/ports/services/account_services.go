package services

import (
	"context"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/soyjefu/theprepared-PFM/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error)

	// ListAccounts retrieves the user's accounts, optionally restricted to one type.
	ListAccounts(ctx context.Context, userID string, accountType *domain.AccountType) ([]domain.Account, error)

	// GetEntryOptions groups the user's accounts by type for each side of the entry form.
	GetEntryOptions(ctx context.Context, userID string) (*domain.EntryOptions, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount validates and persists a new account.
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, userID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account that no transaction references.
	DeleteAccount(ctx context.Context, userID string, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
