package services

import (
	"context"
	"time"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
)

// TokenSvcFacade defines the interface for access token management.
type TokenSvcFacade interface {
	// GenerateAccessToken signs a JWT for the user and returns it with its expiry.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleOAuthHandlerSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthHandlerSvcFacade interface {
	// ExchangeCode exchanges an authorization code with Google, validates the
	// returned ID token and extracts the identity it asserts.
	ExchangeCode(ctx context.Context, code string) (*domain.GoogleIdentity, error)
}
