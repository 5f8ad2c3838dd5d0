package services

import (
	"context"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/soyjefu/theprepared-PFM/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a password user together with the default accounts.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// UpdateUser updates an existing user.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// FindOrCreateGoogleUser returns the user bound to a Google identity,
	// creating it with the default accounts on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, identity domain.GoogleIdentity) (*domain.User, error)
}

// UserDataSvc defines bulk operations on a user's ledger data
type UserDataSvc interface {
	// DeleteAllData removes every transaction and then every account of the user.
	DeleteAllData(ctx context.Context, userID string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser checks a username and password.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserDataSvc
	UserAuthSvc
}
