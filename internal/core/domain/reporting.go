package domain

import (
	"github.com/shopspring/decimal"
)

// AccountTotals holds the summed debit and credit sides of one account.
type AccountTotals struct {
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// MonthlyAccountTotals holds one account's side totals within one month.
type MonthlyAccountTotals struct {
	Month YearMonth `json:"month"`
	AccountTotals
}

// AccountBalance pairs an account with its current and lifetime balances.
type AccountBalance struct {
	Account
	Current  decimal.Decimal `json:"current"`
	Lifetime decimal.Decimal `json:"lifetime"`
}

// NetWorth breaks net worth into its components.
type NetWorth struct {
	Assets      decimal.Decimal `json:"assets"`
	Savings     decimal.Decimal `json:"savings"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Total       decimal.Decimal `json:"total"`
}

// TrendPoint is one month of the net worth series.
type TrendPoint struct {
	Label    string          `json:"label"`
	NetWorth decimal.Decimal `json:"netWorth"`
}

// Dashboard is the balance overview for one user.
type Dashboard struct {
	Accounts         []AccountBalance `json:"accounts"`
	CurrentNetWorth  NetWorth         `json:"currentNetWorth"`
	LifetimeNetWorth NetWorth         `json:"lifetimeNetWorth"`
	Trend            []TrendPoint     `json:"trend"`
}

// AccountAmount represents an account with an amount for financial reports
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// FixedExpenseLine is an itemized fixed expense with its share of all fixed expenses.
type FixedExpenseLine struct {
	AccountAmount
	Percent int `json:"percent"`
}

// BudgetUsage compares an expense account's spending with its allocation.
type BudgetUsage struct {
	AccountID    string          `json:"accountID"`
	AccountName  string          `json:"accountName"`
	Budget       decimal.Decimal `json:"budget"`
	Spent        decimal.Decimal `json:"spent"`
	UsagePercent int             `json:"usagePercent"`
}

// MonthlyReport summarizes one month of income, expense and budget usage.
type MonthlyReport struct {
	Period            YearMonth          `json:"period"`
	Income            []AccountAmount    `json:"income"`
	Expenses          []AccountAmount    `json:"expenses"`
	FixedIncome       []AccountAmount    `json:"fixedIncome"`
	OtherIncomeTotal  decimal.Decimal    `json:"otherIncomeTotal"`
	FixedExpenses     []FixedExpenseLine `json:"fixedExpenses"`
	OtherExpenseTotal decimal.Decimal    `json:"otherExpenseTotal"`
	TotalIncome       decimal.Decimal    `json:"totalIncome"`
	TotalExpense      decimal.Decimal    `json:"totalExpense"`
	Savings           decimal.Decimal    `json:"savings"`
	Repayments        decimal.Decimal    `json:"repayments"`
	Net               decimal.Decimal    `json:"net"`
	AvailableCash     decimal.Decimal    `json:"availableCash"`
	BudgetUsage       []BudgetUsage      `json:"budgetUsage"`
	TotalBudget       decimal.Decimal    `json:"totalBudget"`
}
