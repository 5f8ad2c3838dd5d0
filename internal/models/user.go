package models

import (
	"database/sql"
)

// User represents a user of the application.
// PasswordHash is empty for users created through an external provider, and
// ProviderUserID is null for password users.
type User struct {
	UserID         string         `db:"user_id"`
	Username       string         `db:"username"`
	PasswordHash   sql.NullString `db:"password_hash"`
	Name           string         `db:"name"`
	Email          sql.NullString `db:"email"`
	AuthProvider   string         `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`
	AuditFields
}
