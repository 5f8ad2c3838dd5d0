package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a monthly allocation for one expense account.
type Budget struct {
	BudgetID  string          `json:"budgetID"`
	UserID    string          `json:"userID"`
	Year      int             `json:"year"`
	Month     int             `json:"month"`
	AccountID string          `json:"accountID"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
}

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Previous returns the preceding calendar month.
func (ym YearMonth) Previous() YearMonth {
	if ym.Month == 1 {
		return YearMonth{Year: ym.Year - 1, Month: 12}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month - 1}
}

// Bounds returns the first and last day of the month.
func (ym YearMonth) Bounds() (time.Time, time.Time) {
	first := time.Date(ym.Year, time.Month(ym.Month), 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}

// CarryForwardResult describes a budget copy between months.
type CarryForwardResult struct {
	Source        YearMonth `json:"source"`
	Target        YearMonth `json:"target"`
	Copied        int       `json:"copied"`
	NothingToCopy bool      `json:"nothingToCopy"`
}
