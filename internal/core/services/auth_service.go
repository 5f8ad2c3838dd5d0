package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/soyjefu/theprepared-PFM/internal/apperrors"
	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	portssvc "github.com/soyjefu/theprepared-PFM/internal/core/ports/services"
	"github.com/soyjefu/theprepared-PFM/internal/platform/config"
	"github.com/soyjefu/theprepared-PFM/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// tokenService implements the TokenSvcFacade for issuing JWT access tokens.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, opts ...Option) portssvc.TokenSvcFacade {
	return &tokenService{
		BaseService: newBaseService(opts),
		cfg:         cfg,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	issuedAt := s.Now()
	expiryTime := issuedAt.Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTIssuer, issuedAt, expiryTime)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token",
			slog.String("user_id", user.UserID))
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, expiryTime, nil
}

// idTokenValidator matches idtoken.Validate.
type idTokenValidator func(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)

// googleOAuthHandlerService implements the GoogleOAuthHandlerSvcFacade.
type googleOAuthHandlerService struct {
	BaseService
	cfg          *config.Config
	oauth2Config *oauth2.Config
	validate     idTokenValidator
}

// NewGoogleOAuthHandlerService creates a new instance of googleOAuthHandlerService.
func NewGoogleOAuthHandlerService(cfg *config.Config, opts ...Option) portssvc.GoogleOAuthHandlerSvcFacade {
	return &googleOAuthHandlerService{
		BaseService: newBaseService(opts),
		cfg:         cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
		validate: idtoken.Validate,
	}
}

var _ portssvc.GoogleOAuthHandlerSvcFacade = (*googleOAuthHandlerService)(nil)

// ExchangeCode trades the authorization code for tokens and verifies the
// returned ID token against the configured client ID.
func (s *googleOAuthHandlerService) ExchangeCode(ctx context.Context, code string) (*domain.GoogleIdentity, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, apperrors.NewAppError(http.StatusServiceUnavailable, "Google sign-in is not configured", nil)
	}

	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		s.LogWarn(ctx, "Google code exchange failed",
			slog.String("error", err.Error()))
		return nil, apperrors.NewUnauthorizedError("invalid authorization code")
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, apperrors.NewUnauthorizedError("Google did not return an ID token")
	}

	payload, err := s.validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		s.LogWarn(ctx, "Google ID token validation failed",
			slog.String("error", err.Error()))
		return nil, apperrors.NewUnauthorizedError("invalid Google ID token")
	}
	return identityFromPayload(payload)
}

// identityFromPayload extracts the identity claims of a verified ID token.
func identityFromPayload(payload *idtoken.Payload) (*domain.GoogleIdentity, error) {
	if payload == nil || payload.Subject == "" {
		return nil, errors.New("google ID token has no subject")
	}
	identity := &domain.GoogleIdentity{Subject: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		identity.Name = name
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		identity.EmailVerified = verified
	}
	return identity, nil
}
