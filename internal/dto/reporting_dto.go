package dto

import (
	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
)

// DashboardResponse is the balance overview: per-account balances, net worth
// and the monthly trend.
type DashboardResponse struct {
	Accounts         []AccountBalanceResponse `json:"accounts"`
	CurrentNetWorth  domain.NetWorth          `json:"currentNetWorth"`
	LifetimeNetWorth domain.NetWorth          `json:"lifetimeNetWorth"`
	Trend            []domain.TrendPoint      `json:"trend"`
}

// ToDashboardResponse converts a domain.Dashboard.
func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	accounts := make([]AccountBalanceResponse, len(d.Accounts))
	for i, b := range d.Accounts {
		accounts[i] = AccountBalanceResponse{
			AccountResponse: ToAccountResponse(&b.Account),
			Current:         b.Current,
			Lifetime:        b.Lifetime,
		}
	}
	trend := d.Trend
	if trend == nil {
		trend = []domain.TrendPoint{}
	}
	return DashboardResponse{
		Accounts:         accounts,
		CurrentNetWorth:  d.CurrentNetWorth,
		LifetimeNetWorth: d.LifetimeNetWorth,
		Trend:            trend,
	}
}
