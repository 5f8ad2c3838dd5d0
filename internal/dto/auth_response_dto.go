package dto

import "time"

// LoginResponse represents the response for a successful login or signup.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// ExchangeCodeRequest carries the authorization code obtained by the frontend from Google.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
