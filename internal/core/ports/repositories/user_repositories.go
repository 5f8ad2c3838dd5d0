package repositories

import (
	"context"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a local user by login name.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByProviderID retrieves a user created through an external identity provider.
	FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUserInTx persists a new user within a transaction so default
	// accounts can be created atomically with it.
	SaveUserInTx(ctx context.Context, tx pgx.Tx, user domain.User) error

	// UpdateUser updates an existing user's profile.
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
