package domain

import (
	"strings"
	"time"
)

// AppRole is the fixed role enumeration; authorization for the admin
// dashboard is gated on this value exclusively.
type AppRole string

const (
	RoleAdmin   AppRole = "admin"
	RoleTrainee AppRole = "trainee"
)

// Auth provider identifiers for employee sign-in.
const (
	ProviderLocal  = "LOCAL"
	ProviderGoogle = "GOOGLE"
)

// Employee is a profile row: the 1:1 link between an authenticated identity
// and an employee number, plus the credentials this backend owns.
type Employee struct {
	ProfileID    string  `json:"profileID"`  // Primary key (UUID)
	EmployeeID   int64   `json:"employeeID"` // Employee number, unique
	Email        string  `json:"email"`
	PasswordHash *string `json:"-"` // nil for externally-authenticated employees
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`

	AuthProvider   string  `json:"-"` // LOCAL or GOOGLE
	ProviderUserID *string `json:"-"` // subject from the external provider

	RefreshTokenHash       *string    `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	AuditFields
}

// FullName joins first and last name, tolerating either being empty.
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}
