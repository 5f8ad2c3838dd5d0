package dto

import (
	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
)

// RegisterRequest defines the data needed to sign up with a password.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50,alphanum"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// LoginRequest defines the credentials of a password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=100"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID       string              `json:"userID"`
	Username     string              `json:"username"`
	Name         string              `json:"name"`
	Email        string              `json:"email,omitempty"`
	AuthProvider domain.AuthProvider `json:"authProvider"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:       user.UserID,
		Username:     user.Username,
		Name:         user.Name,
		Email:        user.Email,
		AuthProvider: user.AuthProvider,
	}
}
