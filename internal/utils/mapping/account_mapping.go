package mapping

import (
	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/soyjefu/theprepared-PFM/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	role := d.Role
	if role == "" {
		role = domain.RoleNone
	}
	return models.Account{
		AccountID:   d.AccountID,
		UserID:      d.UserID,
		Name:        d.Name,
		AccountType: string(d.AccountType),
		Category:    string(d.Category),
		Role:        string(role),
		AuditFields: models.AuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		UserID:      m.UserID,
		Name:        m.Name,
		AccountType: domain.AccountType(m.AccountType),
		Category:    domain.AccountCategory(m.Category),
		Role:        domain.AccountRole(m.Role),
		AuditFields: domain.AuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	out := make([]domain.Account, len(ms))
	for i, m := range ms {
		out[i] = ToDomainAccount(m)
	}
	return out
}
