package pgsql

import (
	"context"
	"fmt"

	"github.com/soyjefu/theprepared-PFM/internal/apperrors"
	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	portsrepo "github.com/soyjefu/theprepared-PFM/internal/core/ports/repositories"
	"github.com/soyjefu/theprepared-PFM/internal/models"
	"github.com/soyjefu/theprepared-PFM/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const budgetColumns = `budget_id, user_id, year, month, account_id, amount, created_at`

// PgxBudgetRepository stores monthly allocations. (user, year, month, account)
// is unique.
type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

func scanBudget(row rowScanner) (domain.Budget, error) {
	var m models.Budget
	if err := row.Scan(&m.BudgetID, &m.UserID, &m.Year, &m.Month, &m.AccountID, &m.Amount, &m.CreatedAt); err != nil {
		return domain.Budget{}, err
	}
	return mapping.ToDomainBudget(m), nil
}

func collectBudgets(rows pgx.Rows) ([]domain.Budget, error) {
	defer rows.Close()
	budgets := []domain.Budget{}
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", err)
	}
	return budgets, nil
}

const listBudgetsQuery = `SELECT ` + budgetColumns + ` FROM budgets WHERE user_id = $1 AND year = $2 AND month = $3 ORDER BY created_at;`

func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, userID string, budgetID string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE user_id = $1 AND budget_id = $2;`
	b, err := scanBudget(r.Pool.QueryRow(ctx, query, userID, budgetID))
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to find budget %s", budgetID))
	}
	return &b, nil
}

func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, userID string, period domain.YearMonth) ([]domain.Budget, error) {
	rows, err := r.Pool.Query(ctx, listBudgetsQuery, userID, period.Year, period.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets for %d-%02d: %w", period.Year, period.Month, err)
	}
	return collectBudgets(rows)
}

// UpsertBudget inserts the allocation or overwrites the amount of the row
// already stored for the same account and month. The stored row is returned,
// so an update keeps its original ID.
func (r *PgxBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	m := mapping.ToModelBudget(budget)
	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, year, month, account_id) DO UPDATE SET amount = EXCLUDED.amount
		RETURNING ` + budgetColumns + `;
	`
	stored, err := scanBudget(r.Pool.QueryRow(ctx, query,
		m.BudgetID, m.UserID, m.Year, m.Month, m.AccountID, m.Amount, m.CreatedAt))
	if err != nil {
		return nil, translateError(err, "failed to upsert budget")
	}
	return &stored, nil
}

func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, userID string, budgetID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM budgets WHERE user_id = $1 AND budget_id = $2;`, userID, budgetID)
	if err != nil {
		return fmt.Errorf("failed to delete budget %s: %w", budgetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBudgetRepository) ListBudgetsInTx(ctx context.Context, tx pgx.Tx, userID string, period domain.YearMonth) ([]domain.Budget, error) {
	rows, err := tx.Query(ctx, listBudgetsQuery, userID, period.Year, period.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets for %d-%02d: %w", period.Year, period.Month, err)
	}
	return collectBudgets(rows)
}

func (r *PgxBudgetRepository) DeleteBudgetsForMonthInTx(ctx context.Context, tx pgx.Tx, userID string, period domain.YearMonth) error {
	_, err := tx.Exec(ctx, `DELETE FROM budgets WHERE user_id = $1 AND year = $2 AND month = $3;`, userID, period.Year, period.Month)
	if err != nil {
		return fmt.Errorf("failed to clear budgets for %d-%02d: %w", period.Year, period.Month, err)
	}
	return nil
}

func (r *PgxBudgetRepository) SaveBudgetsInTx(ctx context.Context, tx pgx.Tx, budgets []domain.Budget) error {
	query := `INSERT INTO budgets (` + budgetColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7);`
	batch := &pgx.Batch{}
	for _, b := range budgets {
		m := mapping.ToModelBudget(b)
		batch.Queue(query, m.BudgetID, m.UserID, m.Year, m.Month, m.AccountID, m.Amount, m.CreatedAt)
	}
	return execBatch(ctx, tx, batch, "failed to save budgets")
}
