package dto

import (
	"time"

	"github.com/wandermart/onboarding_backend/internal/core/domain"
)

// EmployeeResponse defines the profile data returned to clients.
type EmployeeResponse struct {
	ProfileID  string    `json:"profileID"`
	EmployeeID int64     `json:"employeeID"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToEmployeeResponse converts a domain.Employee to the response DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ProfileID:  e.ProfileID,
		EmployeeID: e.EmployeeID,
		Email:      e.Email,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		CreatedAt:  e.CreatedAt,
	}
}

// RoleResponse tells the client which dashboard entry points to show.
type RoleResponse struct {
	EmployeeID int64          `json:"employeeID"`
	Role       domain.AppRole `json:"role"`
}
