package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/soyjefu/theprepared-PFM/internal/apperrors"
	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	portsrepo "github.com/soyjefu/theprepared-PFM/internal/core/ports/repositories"
	portssvc "github.com/soyjefu/theprepared-PFM/internal/core/ports/services"
	"github.com/soyjefu/theprepared-PFM/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	accountRepo     portsrepo.AccountReader
	transactionRepo portsrepo.TransactionReader
	budgetRepo      portsrepo.BudgetReader
	reportingRepo   portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(
	accountRepo portsrepo.AccountReader,
	transactionRepo portsrepo.TransactionReader,
	budgetRepo portsrepo.BudgetReader,
	reportingRepo portsrepo.ReportingRepository,
	opts ...Option,
) portssvc.ReportingService {
	return &reportingService{
		BaseService:     newBaseService(opts),
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		reportingRepo:   reportingRepo,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) Dashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, userID, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for dashboard")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	today := s.Today()
	current, err := s.reportingRepo.SumByAccount(ctx, userID, nil, &today)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum current balances")
		return nil, fmt.Errorf("failed to compute current balances: %w", err)
	}
	lifetime, err := s.reportingRepo.SumByAccount(ctx, userID, nil, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum lifetime balances")
		return nil, fmt.Errorf("failed to compute lifetime balances: %w", err)
	}

	balances, err := accounting.ComputeAccountBalances(accounts, current, lifetime)
	if err != nil {
		return nil, err
	}
	dashboard := &domain.Dashboard{
		Accounts:         balances,
		CurrentNetWorth:  accounting.ComputeNetWorth(balances, accounting.CurrentBalance),
		LifetimeNetWorth: accounting.ComputeNetWorth(balances, accounting.LifetimeBalance),
		Trend:            []domain.TrendPoint{},
	}

	start := accounting.TrendWindowStart(today)
	hasRecent, err := s.transactionRepo.HasTransactionsSince(ctx, userID, start)
	if err != nil {
		s.LogError(ctx, err, "Failed to check trend window")
		return nil, fmt.Errorf("failed to compute trend: %w", err)
	}
	if !hasRecent {
		return dashboard, nil
	}

	beforeStart := start.AddDate(0, 0, -1)
	opening, err := s.reportingRepo.SumByAccount(ctx, userID, nil, &beforeStart)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum opening balances for trend")
		return nil, fmt.Errorf("failed to compute trend: %w", err)
	}
	monthly, err := s.reportingRepo.SumByAccountAndMonth(ctx, userID, start, today)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum monthly balances for trend")
		return nil, fmt.Errorf("failed to compute trend: %w", err)
	}
	dashboard.Trend, err = accounting.BuildNetWorthTrend(accounts, opening, monthly, today)
	if err != nil {
		return nil, err
	}
	return dashboard, nil
}

func (s *reportingService) MonthlyReport(ctx context.Context, userID string, period domain.YearMonth) (*domain.MonthlyReport, error) {
	if period.Month < 1 || period.Month > 12 {
		return nil, apperrors.NewFieldError("month", "month must be between 1 and 12")
	}
	from, to := period.Bounds()

	accounts, err := s.accountRepo.ListAccounts(ctx, userID, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for monthly report")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	totals, err := s.reportingRepo.SumByAccount(ctx, userID, &from, &to)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum monthly totals")
		return nil, fmt.Errorf("failed to compute monthly totals: %w", err)
	}
	repayments, err := s.reportingRepo.SumRepayments(ctx, userID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum repayments")
		return nil, fmt.Errorf("failed to compute repayments: %w", err)
	}
	budgets, err := s.budgetRepo.ListBudgets(ctx, userID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets for monthly report")
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	report := buildMonthlyReport(period, accounts, totals, budgets)
	report.Repayments = repayments
	report.AvailableCash = report.Net.Sub(report.Savings).Sub(repayments)

	s.LogDebug(ctx, "Monthly report computed",
		slog.Int("year", period.Year), slog.Int("month", period.Month))
	return report, nil
}

// buildMonthlyReport aggregates one month of per-account totals. Income is
// what revenue accounts were credited, expense what expense accounts were
// debited, savings what saving accounts were debited.
func buildMonthlyReport(period domain.YearMonth, accounts []domain.Account, totals map[string]domain.AccountTotals, budgets []domain.Budget) *domain.MonthlyReport {
	r := &domain.MonthlyReport{
		Period:            period,
		Income:            []domain.AccountAmount{},
		Expenses:          []domain.AccountAmount{},
		FixedIncome:       []domain.AccountAmount{},
		FixedExpenses:     []domain.FixedExpenseLine{},
		BudgetUsage:       []domain.BudgetUsage{},
		OtherIncomeTotal:  decimal.Zero,
		OtherExpenseTotal: decimal.Zero,
		TotalIncome:       decimal.Zero,
		TotalExpense:      decimal.Zero,
		Savings:           decimal.Zero,
		Repayments:        decimal.Zero,
		TotalBudget:       decimal.Zero,
	}

	budgetByAccount := make(map[string]decimal.Decimal, len(budgets))
	for _, b := range budgets {
		budgetByAccount[b.AccountID] = b.Amount
		r.TotalBudget = r.TotalBudget.Add(b.Amount)
	}

	fixedExpenseTotal := decimal.Zero
	var fixedExpenses []domain.AccountAmount
	for _, acc := range accounts {
		t := totalsOrZero(totals, acc.AccountID)
		switch {
		case acc.AccountType == domain.Revenue:
			line := domain.AccountAmount{AccountID: acc.AccountID, Name: acc.Name, Amount: t.Credit}
			// Fixed lines are listed even before anything was received.
			if acc.Category == domain.CategoryFixed {
				r.FixedIncome = append(r.FixedIncome, line)
			}
			if !t.Credit.IsPositive() {
				continue
			}
			r.Income = append(r.Income, line)
			r.TotalIncome = r.TotalIncome.Add(t.Credit)
			if acc.Category != domain.CategoryFixed {
				r.OtherIncomeTotal = r.OtherIncomeTotal.Add(t.Credit)
			}
		case acc.AccountType == domain.Expense:
			budget, hasBudget := budgetByAccount[acc.AccountID]
			if !hasBudget {
				budget = decimal.Zero
			}
			r.BudgetUsage = append(r.BudgetUsage, domain.BudgetUsage{
				AccountID:    acc.AccountID,
				AccountName:  acc.Name,
				Budget:       budget,
				Spent:        t.Debit,
				UsagePercent: floorPercent(t.Debit, budget),
			})
			line := domain.AccountAmount{AccountID: acc.AccountID, Name: acc.Name, Amount: t.Debit}
			if acc.Category == domain.CategoryFixed {
				fixedExpenses = append(fixedExpenses, line)
				fixedExpenseTotal = fixedExpenseTotal.Add(t.Debit)
			}
			if !t.Debit.IsPositive() {
				continue
			}
			r.Expenses = append(r.Expenses, line)
			r.TotalExpense = r.TotalExpense.Add(t.Debit)
			if acc.Category != domain.CategoryFixed {
				r.OtherExpenseTotal = r.OtherExpenseTotal.Add(t.Debit)
			}
		case acc.IsSaving():
			r.Savings = r.Savings.Add(t.Debit)
		}
	}

	for _, line := range fixedExpenses {
		r.FixedExpenses = append(r.FixedExpenses, domain.FixedExpenseLine{
			AccountAmount: line,
			Percent:       floorPercent(line.Amount, fixedExpenseTotal),
		})
	}

	sortByAmountDesc(r.Income)
	sortByAmountDesc(r.Expenses)
	sortByAmountDesc(r.FixedIncome)
	sort.SliceStable(r.FixedExpenses, func(i, j int) bool {
		return lessByAmountDesc(r.FixedExpenses[i].AccountAmount, r.FixedExpenses[j].AccountAmount)
	})
	sort.SliceStable(r.BudgetUsage, func(i, j int) bool {
		return r.BudgetUsage[i].AccountName < r.BudgetUsage[j].AccountName
	})

	r.Net = r.TotalIncome.Sub(r.TotalExpense)
	r.AvailableCash = r.Net.Sub(r.Savings)
	return r
}

// floorPercent returns floor(part / whole * 100), or 0 when whole is not positive.
func floorPercent(part, whole decimal.Decimal) int {
	if !whole.IsPositive() {
		return 0
	}
	return int(part.Mul(hundred).Div(whole).Floor().IntPart())
}

func lessByAmountDesc(a, b domain.AccountAmount) bool {
	if !a.Amount.Equal(b.Amount) {
		return a.Amount.GreaterThan(b.Amount)
	}
	return a.Name < b.Name
}

func sortByAmountDesc(lines []domain.AccountAmount) {
	sort.SliceStable(lines, func(i, j int) bool {
		return lessByAmountDesc(lines[i], lines[j])
	})
}
