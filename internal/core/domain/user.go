package domain

import "time"

// AuthProvider names how a user signs in.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents a user of the application in the domain.
type User struct {
	UserID         string       `json:"userID"`
	Username       string       `json:"username"`
	Name           string       `json:"name"`
	Email          string       `json:"email,omitempty"`
	PasswordHash   string       `json:"-"`
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID string       `json:"-"`
	CreatedAt      time.Time    `json:"createdAt"`
	LastUpdatedAt  time.Time    `json:"lastUpdatedAt"`
}

// GoogleIdentity is the verified subset of a Google ID token.
type GoogleIdentity struct {
	Subject       string
	Email         string
	Name          string
	EmailVerified bool
}
