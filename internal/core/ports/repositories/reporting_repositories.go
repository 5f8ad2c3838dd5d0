package repositories

import (
	"context"
	"time"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the grouped-sum queries behind balances and reports.
// Date bounds are inclusive; a nil bound leaves that side open.
type ReportingRepository interface {
	// SumByAccount returns debit and credit totals per account for rows dated within [from, to].
	SumByAccount(ctx context.Context, userID string, from, to *time.Time) (map[string]domain.AccountTotals, error)

	// SumByAccountAndMonth returns per-account totals grouped by calendar month for rows within [from, to].
	SumByAccountAndMonth(ctx context.Context, userID string, from, to time.Time) ([]domain.MonthlyAccountTotals, error)

	// SumRepayments returns the total amount of repayment rows within [from, to].
	SumRepayments(ctx context.Context, userID string, from, to time.Time) (decimal.Decimal, error)
}
