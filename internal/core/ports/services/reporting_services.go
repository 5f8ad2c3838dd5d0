package services

import (
	"context"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// Dashboard computes current and lifetime balances, net worth and the
	// twelve-month net worth trend.
	Dashboard(ctx context.Context, userID string) (*domain.Dashboard, error)

	// MonthlyReport summarizes income, expense and budget usage for one month.
	MonthlyReport(ctx context.Context, userID string, period domain.YearMonth) (*domain.MonthlyReport, error)
}
