package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/soyjefu/theprepared-PFM/internal/apperrors"
	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	portsrepo "github.com/soyjefu/theprepared-PFM/internal/core/ports/repositories"
	portssvc "github.com/soyjefu/theprepared-PFM/internal/core/ports/services"
	"github.com/soyjefu/theprepared-PFM/internal/dto"
	"github.com/soyjefu/theprepared-PFM/internal/utils"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	txManager       portsrepo.TransactionManager
	userRepo        portsrepo.UserRepositoryFacade
	accountRepo     portsrepo.AccountTransactionSupport
	transactionRepo portsrepo.TransactionBatchSupport
}

// NewUserService creates a new user service with the provided options
func NewUserService(
	txManager portsrepo.TransactionManager,
	userRepo portsrepo.UserRepositoryFacade,
	accountRepo portsrepo.AccountTransactionSupport,
	transactionRepo portsrepo.TransactionBatchSupport,
	opts ...Option,
) portssvc.UserSvcFacade {
	return &userService{
		BaseService:     newBaseService(opts),
		txManager:       txManager,
		userRepo:        userRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// createWithDefaults stores a new user and the starter accounts atomically.
func (s *userService) createWithDefaults(ctx context.Context, user domain.User) error {
	return runInTx(ctx, s.txManager, func(tx pgx.Tx) error {
		if err := s.userRepo.SaveUserInTx(ctx, tx, user); err != nil {
			return err
		}
		return s.accountRepo.SaveAccountsInTx(ctx, tx, s.defaultAccounts(user.UserID))
	})
}

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	if _, err := s.userRepo.FindUserByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("username %q: %w", username, apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check username availability")
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.Now()
	user := domain.User{
		UserID:        uuid.NewString(),
		Username:      username,
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.TrimSpace(req.Email),
		PasswordHash:  hash,
		AuthProvider:  domain.ProviderLocal,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	if err := s.createWithDefaults(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("username %q: %w", username, err)
		}
		s.LogError(ctx, err, "Failed to register user",
			slog.String("username", username))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.LogInfo(ctx, "User registered",
		slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to load user for login")
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "Rejected login attempt",
			slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID",
				slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.Name == nil {
		return user, nil
	}

	name := strings.TrimSpace(*req.Name)
	if name == "" {
		return nil, apperrors.NewFieldError("name", "name must not be empty")
	}
	user.Name = name
	user.LastUpdatedAt = s.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user",
			slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *userService) FindOrCreateGoogleUser(ctx context.Context, identity domain.GoogleIdentity) (*domain.User, error) {
	if identity.Subject == "" {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindUserByProviderID(ctx, domain.ProviderGoogle, identity.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up Google user")
		return nil, fmt.Errorf("failed to look up google user: %w", err)
	}

	name := identity.Name
	if name == "" {
		name, _, _ = strings.Cut(identity.Email, "@")
	}
	now := s.Now()
	newUser := domain.User{
		UserID:         uuid.NewString(),
		Username:       "google_" + identity.Subject,
		Name:           name,
		Email:          identity.Email,
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: identity.Subject,
		CreatedAt:      now,
		LastUpdatedAt:  now,
	}
	if err := s.createWithDefaults(ctx, newUser); err != nil {
		s.LogError(ctx, err, "Failed to create Google user")
		return nil, fmt.Errorf("failed to create google user: %w", err)
	}

	s.LogInfo(ctx, "User created from Google sign-in",
		slog.String("user_id", newUser.UserID))
	return &newUser, nil
}

func (s *userService) DeleteAllData(ctx context.Context, userID string) error {
	err := runInTx(ctx, s.txManager, func(tx pgx.Tx) error {
		if err := s.transactionRepo.DeleteTransactionsByUserInTx(ctx, tx, userID); err != nil {
			return fmt.Errorf("failed to delete transactions: %w", err)
		}
		if err := s.accountRepo.DeleteAccountsByUserInTx(ctx, tx, userID); err != nil {
			return fmt.Errorf("failed to delete accounts: %w", err)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete user data",
			slog.String("user_id", userID))
		return err
	}

	s.LogInfo(ctx, "All ledger data deleted",
		slog.String("user_id", userID))
	return nil
}
