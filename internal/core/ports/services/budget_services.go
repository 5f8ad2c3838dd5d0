package services

import (
	"context"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/soyjefu/theprepared-PFM/internal/dto"
)

// BudgetSvcFacade defines the operations on monthly budget allocations.
type BudgetSvcFacade interface {
	// ListBudgets returns the allocations of one month.
	ListBudgets(ctx context.Context, userID string, period domain.YearMonth) ([]domain.Budget, error)

	// UpsertBudget creates or updates the allocation of an expense account for a month.
	UpsertBudget(ctx context.Context, userID string, req dto.UpsertBudgetRequest) (*domain.Budget, error)

	// DeleteBudget removes one allocation.
	DeleteBudget(ctx context.Context, userID string, budgetID string) error

	// CarryForward replaces the target month's allocations with a copy of the
	// preceding month's.
	CarryForward(ctx context.Context, userID string, target domain.YearMonth) (*domain.CarryForwardResult, error)
}
