package dto

import "time"

// LoginRequest defines the credentials for a login attempt.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest carries the refresh token to exchange for a new pair.
type RefreshTokenRequest struct {
	UserID       string `json:"userID" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LoginResponse represents the response for a successful login or refresh.
type LoginResponse struct {
	Token              string       `json:"token"`
	TokenExpiry        time.Time    `json:"tokenExpiry"`
	RefreshToken       string       `json:"refreshToken"`
	RefreshTokenExpiry time.Time    `json:"refreshTokenExpiry"`
	User               UserResponse `json:"user"`
}
