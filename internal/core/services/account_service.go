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
	"github.com/soyjefu/theprepared-PFM/internal/utils/accounting"
	"github.com/google/uuid"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, opts ...Option) portssvc.AccountSvcFacade {
	return &accountService{
		BaseService: newBaseService(opts),
		accountRepo: repo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// validateAccount applies the classification rules every stored account must satisfy.
func validateAccount(acc *domain.Account) error {
	acc.Name = strings.TrimSpace(acc.Name)
	if acc.Name == "" {
		return apperrors.NewFieldError("name", "name is required")
	}
	if err := accounting.ValidateCategory(acc.AccountType, acc.Category); err != nil {
		return err
	}
	switch acc.Role {
	case "", domain.RoleNone:
		acc.Role = domain.RoleNone
	case domain.RoleCash:
		if acc.AccountType != domain.Asset {
			return apperrors.NewFieldError("role", "the cash role requires an ASSET account")
		}
	case domain.RoleCheckCard:
		if acc.AccountType != domain.Asset && acc.AccountType != domain.Liability {
			return apperrors.NewFieldError("role", "the checking-card role requires an ASSET or LIABILITY account")
		}
	default:
		return apperrors.NewFieldError("role", "unknown role %q", acc.Role)
	}
	return nil
}

// assignRoleByName gives acc the settlement role its name carries. The role
// falls back to NONE when the type cannot hold it or another account has it.
func (s *accountService) assignRoleByName(ctx context.Context, userID string, acc *domain.Account) error {
	acc.Role = domain.RoleNone
	role := s.RoleForName(strings.TrimSpace(acc.Name))
	if role == domain.RoleNone {
		return nil
	}
	candidate := *acc
	candidate.Role = role
	if validateAccount(&candidate) != nil {
		return nil
	}

	holder, err := s.accountRepo.FindAccountByRole(ctx, userID, role)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		acc.Role = role
	case err != nil:
		s.LogError(ctx, err, "Failed to look up role holder", slog.String("role", string(role)))
		return fmt.Errorf("failed to look up %s account: %w", role, err)
	case holder.AccountID == acc.AccountID:
		acc.Role = role
	}
	return nil
}

func (s *accountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	category := req.Category
	if category == "" {
		category = accounting.DefaultCategory(req.AccountType)
	}

	now := s.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		AccountType: req.AccountType,
		Category:    category,
		Role:        req.Role,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if req.Role == "" {
		if err := s.assignRoleByName(ctx, userID, &account); err != nil {
			return nil, err
		}
	}
	if err := validateAccount(&account); err != nil {
		return nil, err
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_name", account.Name))
		return nil, fmt.Errorf("failed to create account %q: %w", account.Name, err)
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("account_type", string(account.AccountType)))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID",
				slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, userID string, accountType *domain.AccountType) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, userID, accountType)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *accountService) GetEntryOptions(ctx context.Context, userID string) (*domain.EntryOptions, error) {
	accounts, err := s.ListAccounts(ctx, userID, nil)
	if err != nil {
		return nil, err
	}

	byType := make(map[domain.AccountType][]domain.Account)
	for _, acc := range accounts {
		byType[acc.AccountType] = append(byType[acc.AccountType], acc)
	}

	opts := &domain.EntryOptions{Debit: []domain.AccountGroup{}, Credit: []domain.AccountGroup{}}
	for _, t := range domain.AccountTypes {
		group, ok := byType[t]
		if !ok {
			continue
		}
		if t != domain.Revenue {
			opts.Debit = append(opts.Debit, domain.AccountGroup{AccountType: t, Accounts: group})
		}
		if t != domain.Expense {
			opts.Credit = append(opts.Credit, domain.AccountGroup{AccountType: t, Accounts: group})
		}
	}
	return opts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, userID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	updated := false
	renamed := false
	if req.Name != nil {
		renamed = strings.TrimSpace(*req.Name) != account.Name
		account.Name = *req.Name
		updated = true
	}
	if req.AccountType != nil {
		account.AccountType = *req.AccountType
		updated = true
	}
	if req.Category != nil {
		account.Category = *req.Category
		updated = true
	}
	if req.Role != nil {
		account.Role = *req.Role
		updated = true
	} else if renamed {
		if err := s.assignRoleByName(ctx, userID, account); err != nil {
			return nil, err
		}
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for account update",
			slog.String("account_id", accountID))
		return account, nil
	}

	if err := validateAccount(account); err != nil {
		return nil, err
	}
	account.LastUpdatedAt = s.Now()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account",
			slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.LogInfo(ctx, "Account updated successfully",
		slog.String("account_id", account.AccountID))
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, userID string, accountID string) error {
	if _, err := s.GetAccountByID(ctx, userID, accountID); err != nil {
		return err
	}

	if err := s.accountRepo.DeleteAccount(ctx, userID, accountID); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.LogInfo(ctx, "Account still referenced by transactions",
				slog.String("account_id", accountID))
			return fmt.Errorf("account is used by existing transactions: %w", err)
		}
		s.LogError(ctx, err, "Failed to delete account",
			slog.String("account_id", accountID))
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.LogInfo(ctx, "Account deleted successfully",
		slog.String("account_id", accountID))
	return nil
}

// defaultAccounts builds the starter chart of accounts for a new user.
func (s *BaseService) defaultAccounts(userID string) []domain.Account {
	now := s.Now()
	seed := []struct {
		name     string
		accType  domain.AccountType
		category domain.AccountCategory
	}{
		{"기초잔액", domain.Equity, domain.CategoryGeneral},
		{"현금", domain.Asset, domain.CategoryVariable},
		{"적금", domain.Asset, domain.CategorySaving},
		{"신용카드", domain.Liability, domain.CategoryVariable},
		{"급여", domain.Revenue, domain.CategoryFixed},
		{"식비", domain.Expense, domain.CategoryVariable},
	}
	accounts := make([]domain.Account, 0, len(seed))
	for _, a := range seed {
		accounts = append(accounts, domain.Account{
			AccountID:   uuid.NewString(),
			UserID:      userID,
			Name:        a.name,
			AccountType: a.accType,
			Category:    a.category,
			Role:        s.RoleForName(a.name),
			AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		})
	}
	return accounts
}
