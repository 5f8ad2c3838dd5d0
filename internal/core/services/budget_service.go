package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/soyjefu/theprepared-PFM/internal/apperrors"
	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	portsrepo "github.com/soyjefu/theprepared-PFM/internal/core/ports/repositories"
	portssvc "github.com/soyjefu/theprepared-PFM/internal/core/ports/services"
	"github.com/soyjefu/theprepared-PFM/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type budgetService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	budgetRepo  portsrepo.BudgetRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewBudgetService creates the monthly budget service.
func NewBudgetService(txManager portsrepo.TransactionManager, budgetRepo portsrepo.BudgetRepositoryFacade, accountRepo portsrepo.AccountReader, opts ...Option) portssvc.BudgetSvcFacade {
	return &budgetService{
		BaseService: newBaseService(opts),
		txManager:   txManager,
		budgetRepo:  budgetRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) ListBudgets(ctx context.Context, userID string, period domain.YearMonth) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx, userID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets",
			slog.Int("year", period.Year), slog.Int("month", period.Month))
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	if budgets == nil {
		return []domain.Budget{}, nil
	}
	return budgets, nil
}

func (s *budgetService) UpsertBudget(ctx context.Context, userID string, req dto.UpsertBudgetRequest) (*domain.Budget, error) {
	if req.Amount.IsNegative() || !req.Amount.IsInteger() {
		return nil, apperrors.NewFieldError("amount", "amount must be a non-negative whole number")
	}
	account, err := s.accountRepo.FindAccountByID(ctx, userID, req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("budget account: %w", err)
	}
	if account.AccountType != domain.Expense {
		return nil, apperrors.NewFieldError("accountID", "budgets can only be set on EXPENSE accounts")
	}

	stored, err := s.budgetRepo.UpsertBudget(ctx, domain.Budget{
		BudgetID:  uuid.NewString(),
		UserID:    userID,
		Year:      req.Year,
		Month:     req.Month,
		AccountID: req.AccountID,
		Amount:    req.Amount,
		CreatedAt: s.Now(),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert budget",
			slog.String("account_id", req.AccountID))
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}
	return stored, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, userID string, budgetID string) error {
	if err := s.budgetRepo.DeleteBudget(ctx, userID, budgetID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete budget", slog.String("budget_id", budgetID))
		}
		return err
	}
	return nil
}

func (s *budgetService) CarryForward(ctx context.Context, userID string, target domain.YearMonth) (*domain.CarryForwardResult, error) {
	if target.Month < 1 || target.Month > 12 {
		return nil, apperrors.NewFieldError("month", "month must be between 1 and 12")
	}
	source := target.Previous()
	result := &domain.CarryForwardResult{Source: source, Target: target}

	err := runInTx(ctx, s.txManager, func(tx pgx.Tx) error {
		sourceRows, err := s.budgetRepo.ListBudgetsInTx(ctx, tx, userID, source)
		if err != nil {
			return fmt.Errorf("failed to read source budgets: %w", err)
		}
		if len(sourceRows) == 0 {
			result.NothingToCopy = true
			return nil
		}

		if err := s.budgetRepo.DeleteBudgetsForMonthInTx(ctx, tx, userID, target); err != nil {
			return fmt.Errorf("failed to clear target budgets: %w", err)
		}

		now := s.Now()
		copies := make([]domain.Budget, len(sourceRows))
		for i, b := range sourceRows {
			copies[i] = domain.Budget{
				BudgetID:  uuid.NewString(),
				UserID:    userID,
				Year:      target.Year,
				Month:     target.Month,
				AccountID: b.AccountID,
				Amount:    b.Amount,
				CreatedAt: now,
			}
		}
		if err := s.budgetRepo.SaveBudgetsInTx(ctx, tx, copies); err != nil {
			return fmt.Errorf("failed to copy budgets: %w", err)
		}
		result.Copied = len(copies)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Budget carry-forward failed",
			slog.Int("target_year", target.Year), slog.Int("target_month", target.Month))
		return nil, err
	}

	s.LogInfo(ctx, "Budget carry-forward finished",
		slog.Int("copied", result.Copied),
		slog.Bool("nothing_to_copy", result.NothingToCopy))
	return result, nil
}
