package dto

import "time"

// RegisterRequest defines the data for creating a local-credential profile.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
}

// LoginRequest defines login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the session tokens issued on successful login.
type LoginResponse struct {
	Token            string           `json:"token"`
	ExpiresAt        time.Time        `json:"expiresAt"`
	RefreshToken     string           `json:"refreshToken"`
	RefreshExpiresAt time.Time        `json:"refreshExpiresAt"`
	Employee         EmployeeResponse `json:"employee"`
}

// RefreshRequest presents a refresh token for rotation.
type RefreshRequest struct {
	ProfileID    string `json:"profileID" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}
