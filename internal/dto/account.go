package dto

import (
	"time"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name        string                 `json:"name" binding:"required,max=100"`
	AccountType domain.AccountType     `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Category    domain.AccountCategory `json:"category" binding:"omitempty,oneof=FIXED VARIABLE SAVING GENERAL"` // Optional, defaults per type
	Role        domain.AccountRole     `json:"role" binding:"omitempty,oneof=NONE CASH CHECK_CARD"`             // Optional
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name        *string                 `json:"name" binding:"omitempty,min=1,max=100"`
	AccountType *domain.AccountType     `json:"accountType" binding:"omitempty,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Category    *domain.AccountCategory `json:"category" binding:"omitempty,oneof=FIXED VARIABLE SAVING GENERAL"`
	Role        *domain.AccountRole     `json:"role" binding:"omitempty,oneof=NONE CASH CHECK_CARD"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string                 `json:"accountID"`
	Name          string                 `json:"name"`
	AccountType   domain.AccountType     `json:"accountType"`
	Category      domain.AccountCategory `json:"category"`
	Role          domain.AccountRole     `json:"role"`
	CreatedAt     time.Time              `json:"createdAt"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Name:          acc.Name,
		AccountType:   acc.AccountType,
		Category:      acc.Category,
		Role:          acc.Role,
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Type string `form:"type" binding:"omitempty,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// AccountGroupResponse lists the accounts of one type.
type AccountGroupResponse struct {
	AccountType domain.AccountType `json:"accountType"`
	Accounts    []AccountResponse  `json:"accounts"`
}

// EntryOptionsResponse is everything the entry form needs in one call.
type EntryOptionsResponse struct {
	DebitAccounts  []AccountGroupResponse `json:"debitAccounts"`
	CreditAccounts []AccountGroupResponse `json:"creditAccounts"`
	Presets        PresetGroupsResponse   `json:"presets"`
}

// ToAccountGroupResponses converts grouped accounts for the entry form.
func ToAccountGroupResponses(groups []domain.AccountGroup) []AccountGroupResponse {
	res := make([]AccountGroupResponse, len(groups))
	for i, g := range groups {
		res[i] = AccountGroupResponse{AccountType: g.AccountType, Accounts: ToListAccountResponse(g.Accounts)}
	}
	return res
}

// AccountBalanceResponse defines one row of the balance overview.
type AccountBalanceResponse struct {
	AccountResponse
	Current  decimal.Decimal `json:"current"`
	Lifetime decimal.Decimal `json:"lifetime"`
}
