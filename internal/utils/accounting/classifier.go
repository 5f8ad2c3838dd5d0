package accounting

import (
	"github.com/soyjefu/theprepared-PFM/internal/apperrors"
	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
)

var allowedCategories = map[domain.AccountType][]domain.AccountCategory{
	domain.Equity:    {domain.CategoryGeneral},
	domain.Asset:     {domain.CategoryGeneral, domain.CategoryVariable, domain.CategorySaving},
	domain.Liability: {domain.CategoryGeneral, domain.CategoryVariable},
	domain.Revenue:   {domain.CategoryFixed, domain.CategoryVariable},
	domain.Expense:   {domain.CategoryFixed, domain.CategoryVariable},
}

// AllowedCategories returns the legal categories for an account type, or nil
// for an unknown type.
func AllowedCategories(accountType domain.AccountType) []domain.AccountCategory {
	cats := allowedCategories[accountType]
	out := make([]domain.AccountCategory, len(cats))
	copy(out, cats)
	return out
}

// DefaultCategory is the category given to accounts created without one.
func DefaultCategory(accountType domain.AccountType) domain.AccountCategory {
	switch accountType {
	case domain.Revenue, domain.Expense:
		return domain.CategoryVariable
	}
	return domain.CategoryGeneral
}

// ValidateCategory checks that category is legal for accountType.
func ValidateCategory(accountType domain.AccountType, category domain.AccountCategory) error {
	cats, ok := allowedCategories[accountType]
	if !ok {
		return apperrors.NewFieldError("accountType", "unknown account type %q", accountType)
	}
	for _, c := range cats {
		if c == category {
			return nil
		}
	}
	return apperrors.NewFieldError("category", "category %q is not allowed for %s accounts", category, accountType)
}
