package mapping

import (
	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/soyjefu/theprepared-PFM/internal/models"
)

// ToModelBudget converts a domain Budget to a model Budget
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget(d)
}

// ToDomainBudget converts a model Budget to a domain Budget
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget(m)
}

// ToDomainBudgetSlice converts a slice of model Budgets to domain Budgets
func ToDomainBudgetSlice(ms []models.Budget) []domain.Budget {
	out := make([]domain.Budget, len(ms))
	for i, m := range ms {
		out[i] = ToDomainBudget(m)
	}
	return out
}
