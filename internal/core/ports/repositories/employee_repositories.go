package repositories

import (
	"context"
	"time"

	"github.com/wandermart/onboarding_backend/internal/core/domain"
)

// EmployeeReader defines read operations for employee profiles.
type EmployeeReader interface {
	// FindEmployeeByProfileID retrieves a profile by its UUID (the JWT subject).
	FindEmployeeByProfileID(ctx context.Context, profileID string) (*domain.Employee, error)

	// FindEmployeeByEmployeeID retrieves a profile by its employee number.
	FindEmployeeByEmployeeID(ctx context.Context, employeeID int64) (*domain.Employee, error)

	// FindEmployeeByEmail retrieves a profile by email (login).
	FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error)

	// FindEmployeeByProviderDetails retrieves a profile by external auth provider identity.
	FindEmployeeByProviderDetails(ctx context.Context, authProvider, providerUserID string) (*domain.Employee, error)

	// ListEmployees retrieves all profiles, ordered by employee number.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee profiles.
type EmployeeWriter interface {
	// SaveEmployee persists a new profile and returns it with the
	// database-assigned employee number.
	SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error)

	// UpdateEmployee updates name fields of an existing profile.
	UpdateEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateRefreshToken stores the hash and expiry of a rotated refresh token.
	UpdateRefreshToken(ctx context.Context, profileID, refreshTokenHash string, expiry time.Time) error

	// ClearRefreshToken removes the stored refresh token (logout).
	ClearRefreshToken(ctx context.Context, profileID string) error
}

// RoleReader defines read access to the role assignment table.
type RoleReader interface {
	// FindRoleByEmployeeID returns the employee's app role, or ErrNotFound
	// when no assignment exists.
	FindRoleByEmployeeID(ctx context.Context, employeeID int64) (domain.AppRole, error)
}

// RoleWriter defines write access to the role assignment table.
type RoleWriter interface {
	// AssignRole maps an employee to exactly one role (upsert).
	AssignRole(ctx context.Context, employeeID int64, role domain.AppRole) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces.
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
	RoleReader
	RoleWriter
}
