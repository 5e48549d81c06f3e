package dto

import "github.com/yigit/schooladmin/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest creates a non-admin employee account.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email,max=60"`
	Username  string `json:"username" binding:"required,alphanum,max=60"`
	FirstName string `json:"firstName" binding:"required,max=60"`
	LastName  string `json:"lastName" binding:"required,max=60"`
	Password  string `json:"password" binding:"required,min=8"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token    TokenResponse    `json:"token"`
	Employee *models.Employee `json:"employee"`
}
