package mapping

import (
	"database/sql"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/soyjefu/theprepared-PFM/internal/models"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:         d.UserID,
		Username:       d.Username,
		PasswordHash:   nullString(d.PasswordHash),
		Name:           d.Name,
		Email:          nullString(d.Email),
		AuthProvider:   string(d.AuthProvider),
		ProviderUserID: nullString(d.ProviderUserID),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:         m.UserID,
		Username:       m.Username,
		PasswordHash:   m.PasswordHash.String,
		Name:           m.Name,
		Email:          m.Email.String,
		AuthProvider:   domain.AuthProvider(m.AuthProvider),
		ProviderUserID: m.ProviderUserID.String,
		CreatedAt:      m.CreatedAt,
		LastUpdatedAt:  m.LastUpdatedAt,
	}
}
