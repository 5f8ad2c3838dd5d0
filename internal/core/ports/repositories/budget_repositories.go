package repositories

import (
	"context"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// BudgetReader defines read operations for monthly budget allocations
type BudgetReader interface {
	// FindBudgetByID retrieves a budget row owned by the user.
	FindBudgetByID(ctx context.Context, userID string, budgetID string) (*domain.Budget, error)

	// ListBudgets retrieves the user's allocations for one month.
	ListBudgets(ctx context.Context, userID string, period domain.YearMonth) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for monthly budget allocations
type BudgetWriter interface {
	// UpsertBudget creates the allocation or updates the amount of the existing
	// row with the same (user, year, month, account). It returns the stored row.
	UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error)

	// DeleteBudget removes a budget row.
	DeleteBudget(ctx context.Context, userID string, budgetID string) error
}

// BudgetTransactionSupport defines budget operations that run inside a caller's transaction.
type BudgetTransactionSupport interface {
	ListBudgetsInTx(ctx context.Context, tx pgx.Tx, userID string, period domain.YearMonth) ([]domain.Budget, error)
	DeleteBudgetsForMonthInTx(ctx context.Context, tx pgx.Tx, userID string, period domain.YearMonth) error
	SaveBudgetsInTx(ctx context.Context, tx pgx.Tx, budgets []domain.Budget) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
	BudgetTransactionSupport
}
