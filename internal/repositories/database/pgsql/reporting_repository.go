package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	portsrepo "github.com/soyjefu/theprepared-PFM/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// sidesQuery unfolds every row into its debit and its credit leg so that a
// single GROUP BY yields both totals per account.
const sidesQuery = `
	SELECT debit_account_id AS account_id, txn_date, amount AS debit, 0::numeric AS credit
	FROM transactions
	WHERE user_id = $1 AND ($2::date IS NULL OR txn_date >= $2) AND ($3::date IS NULL OR txn_date <= $3)
	UNION ALL
	SELECT credit_account_id AS account_id, txn_date, 0::numeric AS debit, amount AS credit
	FROM transactions
	WHERE user_id = $1 AND ($2::date IS NULL OR txn_date >= $2) AND ($3::date IS NULL OR txn_date <= $3)
`

func dateBound(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := domain.DateOnly(*t)
	return &d
}

// SumByAccount returns debit and credit totals per account for rows dated within [from, to].
func (r *reportingRepository) SumByAccount(ctx context.Context, userID string, from, to *time.Time) (map[string]domain.AccountTotals, error) {
	query := `
		SELECT s.account_id, SUM(s.debit) AS total_debit, SUM(s.credit) AS total_credit
		FROM (` + sidesQuery + `) s
		GROUP BY s.account_id
	`
	rows, err := r.Pool.Query(ctx, query, userID, dateBound(from), dateBound(to))
	if err != nil {
		return nil, fmt.Errorf("error querying account totals: %w", err)
	}
	defer rows.Close()

	result := make(map[string]domain.AccountTotals)
	for rows.Next() {
		var row domain.AccountTotals
		if err := rows.Scan(&row.AccountID, &row.Debit, &row.Credit); err != nil {
			return nil, fmt.Errorf("error scanning account totals row: %w", err)
		}
		result[row.AccountID] = row
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account totals rows: %w", err)
	}
	return result, nil
}

// SumByAccountAndMonth returns per-account totals grouped by calendar month.
func (r *reportingRepository) SumByAccountAndMonth(ctx context.Context, userID string, from, to time.Time) ([]domain.MonthlyAccountTotals, error) {
	query := `
		SELECT
			EXTRACT(YEAR FROM s.txn_date)::int AS year,
			EXTRACT(MONTH FROM s.txn_date)::int AS month,
			s.account_id,
			SUM(s.debit) AS total_debit,
			SUM(s.credit) AS total_credit
		FROM (` + sidesQuery + `) s
		GROUP BY 1, 2, s.account_id
		ORDER BY 1, 2, s.account_id
	`
	rows, err := r.Pool.Query(ctx, query, userID, dateBound(&from), dateBound(&to))
	if err != nil {
		return nil, fmt.Errorf("error querying monthly account totals: %w", err)
	}
	defer rows.Close()

	var result []domain.MonthlyAccountTotals
	for rows.Next() {
		var row domain.MonthlyAccountTotals
		if err := rows.Scan(&row.Month.Year, &row.Month.Month, &row.AccountID, &row.Debit, &row.Credit); err != nil {
			return nil, fmt.Errorf("error scanning monthly account totals row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly account totals rows: %w", err)
	}

	if len(result) == 0 {
		// Return empty slice instead of nil
		return []domain.MonthlyAccountTotals{}, nil
	}
	return result, nil
}

// SumRepayments returns the total amount of repayment rows within [from, to].
func (r *reportingRepository) SumRepayments(ctx context.Context, userID string, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND is_repayment AND txn_date BETWEEN $2 AND $3
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, userID, domain.DateOnly(from), domain.DateOnly(to)).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("error querying repayment total: %w", err)
	}
	return total, nil
}
