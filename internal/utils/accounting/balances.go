package accounting

import (
	"fmt"
	"sort"
	"time"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrendMonths is the length of the net worth series.
const TrendMonths = 12

// ComputeAccountBalances derives current and lifetime balances for every
// account from per-account side totals. Accounts without totals have zero balances.
func ComputeAccountBalances(accounts []domain.Account, current, lifetime map[string]domain.AccountTotals) ([]domain.AccountBalance, error) {
	balances := make([]domain.AccountBalance, 0, len(accounts))
	for _, acc := range accounts {
		cur, err := BalanceFromTotals(totalsFor(current, acc.AccountID), acc.AccountType)
		if err != nil {
			return nil, err
		}
		life, err := BalanceFromTotals(totalsFor(lifetime, acc.AccountID), acc.AccountType)
		if err != nil {
			return nil, err
		}
		balances = append(balances, domain.AccountBalance{Account: acc, Current: cur, Lifetime: life})
	}
	return balances, nil
}

// ComputeNetWorth sums assets (non-saving), savings and liabilities using the
// balance chosen by pick. Total = assets + savings - liabilities.
func ComputeNetWorth(balances []domain.AccountBalance, pick func(domain.AccountBalance) decimal.Decimal) domain.NetWorth {
	nw := domain.NetWorth{Assets: decimal.Zero, Savings: decimal.Zero, Liabilities: decimal.Zero}
	for _, b := range balances {
		switch {
		case b.IsSaving():
			nw.Savings = nw.Savings.Add(pick(b))
		case b.AccountType == domain.Asset:
			nw.Assets = nw.Assets.Add(pick(b))
		case b.AccountType == domain.Liability:
			nw.Liabilities = nw.Liabilities.Add(pick(b))
		}
	}
	nw.Total = nw.Assets.Add(nw.Savings).Sub(nw.Liabilities)
	return nw
}

// CurrentBalance and LifetimeBalance are pick functions for ComputeNetWorth.
func CurrentBalance(b domain.AccountBalance) decimal.Decimal  { return b.Current }
func LifetimeBalance(b domain.AccountBalance) decimal.Decimal { return b.Lifetime }

// TrendWindowStart returns the first day of the month eleven months before today.
func TrendWindowStart(today time.Time) time.Time {
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, -(TrendMonths - 1), 0)
}

// BuildNetWorthTrend produces one point per month from the window start to
// today's month. opening holds per-account totals dated before the window
// start; monthly holds per-account totals for each month inside the window,
// already bounded by today. Each point is assets minus liabilities as of the
// end of its month, carried forward from the previous month.
func BuildNetWorthTrend(accounts []domain.Account, opening map[string]domain.AccountTotals, monthly []domain.MonthlyAccountTotals, today time.Time) ([]domain.TrendPoint, error) {
	types := make(map[string]domain.AccountType, len(accounts))
	running := make(map[string]decimal.Decimal, len(accounts))
	for _, acc := range accounts {
		if acc.AccountType != domain.Asset && acc.AccountType != domain.Liability {
			continue
		}
		types[acc.AccountID] = acc.AccountType
		bal, err := BalanceFromTotals(totalsFor(opening, acc.AccountID), acc.AccountType)
		if err != nil {
			return nil, err
		}
		running[acc.AccountID] = bal
	}

	byMonth := make(map[domain.YearMonth][]domain.AccountTotals)
	for _, m := range monthly {
		byMonth[m.Month] = append(byMonth[m.Month], m.AccountTotals)
	}

	start := TrendWindowStart(today)
	points := make([]domain.TrendPoint, 0, TrendMonths)
	for i := 0; i < TrendMonths; i++ {
		bucket := start.AddDate(0, i, 0)
		ym := domain.YearMonth{Year: bucket.Year(), Month: int(bucket.Month())}
		for _, delta := range byMonth[ym] {
			accType, ok := types[delta.AccountID]
			if !ok {
				continue
			}
			change, err := BalanceFromTotals(delta, accType)
			if err != nil {
				return nil, err
			}
			running[delta.AccountID] = running[delta.AccountID].Add(change)
		}

		assets, liabilities := decimal.Zero, decimal.Zero
		for id, bal := range running {
			if types[id] == domain.Asset {
				assets = assets.Add(bal)
			} else {
				liabilities = liabilities.Add(bal)
			}
		}
		points = append(points, domain.TrendPoint{
			Label:    fmt.Sprintf("%04d-%02d", ym.Year, ym.Month),
			NetWorth: assets.Sub(liabilities),
		})
	}
	return points, nil
}

// RunningBalance walks rows in chronological order starting from opening,
// attaching the running balance of account to each row. The returned rows
// are in reverse chronological order; the second result is the final balance.
func RunningBalance(account domain.Account, opening decimal.Decimal, rows []domain.Transaction) ([]domain.LedgerRow, decimal.Decimal, error) {
	ordered := make([]domain.Transaction, len(rows))
	copy(ordered, rows)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Before(ordered[j])
	})

	balance := opening
	out := make([]domain.LedgerRow, len(ordered))
	for i, txn := range ordered {
		delta, err := SignedDelta(txn, account)
		if err != nil {
			return nil, decimal.Zero, err
		}
		balance = balance.Add(delta)
		b := balance
		// fill from the back so the result is newest first
		out[len(ordered)-1-i] = domain.LedgerRow{Transaction: txn, RunningBalance: &b}
	}
	return out, balance, nil
}

func totalsFor(m map[string]domain.AccountTotals, accountID string) domain.AccountTotals {
	if t, ok := m[accountID]; ok {
		return t
	}
	return domain.AccountTotals{AccountID: accountID, Debit: decimal.Zero, Credit: decimal.Zero}
}
