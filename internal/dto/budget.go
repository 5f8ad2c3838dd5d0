package dto

import (
	"time"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertBudgetRequest sets the allocation of one expense account for a month.
type UpsertBudgetRequest struct {
	Year      int             `json:"year" binding:"required,min=1900,max=9999"`
	Month     int             `json:"month" binding:"required,min=1,max=12"`
	AccountID string          `json:"accountID" binding:"required"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string"`
}

// PeriodParams selects a calendar month.
type PeriodParams struct {
	Year  int `form:"year" json:"year" binding:"required,min=1900,max=9999"`
	Month int `form:"month" json:"month" binding:"required,min=1,max=12"`
}

// ToYearMonth converts the params into a domain period.
func (p PeriodParams) ToYearMonth() domain.YearMonth {
	return domain.YearMonth{Year: p.Year, Month: p.Month}
}

// BudgetResponse defines the data returned for a budget row.
type BudgetResponse struct {
	BudgetID  string          `json:"budgetID"`
	Year      int             `json:"year"`
	Month     int             `json:"month"`
	AccountID string          `json:"accountID"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ListBudgetsResponse wraps one month of budgets.
type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:  b.BudgetID,
		Year:      b.Year,
		Month:     b.Month,
		AccountID: b.AccountID,
		Amount:    b.Amount,
		CreatedAt: b.CreatedAt,
	}
}

// ToListBudgetsResponse converts a slice of budgets.
func ToListBudgetsResponse(budgets []domain.Budget) ListBudgetsResponse {
	res := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		res[i] = ToBudgetResponse(&b)
	}
	return ListBudgetsResponse{Budgets: res}
}

// CarryForwardResponse reports the outcome of copying last month's budgets.
type CarryForwardResponse struct {
	Source  domain.YearMonth `json:"source"`
	Target  domain.YearMonth `json:"target"`
	Copied  int              `json:"copied"`
	Message string           `json:"message"`
}
