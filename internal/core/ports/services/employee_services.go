package services

import (
	"context"
	"time"

	"github.com/wandermart/onboarding_backend/internal/core/domain"
	"github.com/wandermart/onboarding_backend/internal/dto"
)

// EmployeeReaderSvc exposes profile lookups.
type EmployeeReaderSvc interface {
	GetEmployeeByProfileID(ctx context.Context, profileID string) (*domain.Employee, error)
	GetEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error)
	GetRole(ctx context.Context, employeeID int64) (domain.AppRole, error)
}

// EmployeeRegistrarSvc exposes account creation.
type EmployeeRegistrarSvc interface {
	// RegisterEmployee creates a local-credential profile with the trainee role.
	RegisterEmployee(ctx context.Context, req dto.RegisterRequest) (*domain.Employee, error)

	// FindOrCreateGoogleEmployee maps a verified Google identity to a profile,
	// creating a trainee profile on first sign-in.
	FindOrCreateGoogleEmployee(ctx context.Context, providerUserID, email, firstName, lastName string) (*domain.Employee, error)

	// BootstrapAdmin creates the configured admin credential and role.
	// Returns ErrDuplicate once the admin already exists.
	BootstrapAdmin(ctx context.Context, email, password, firstName, lastName string) (*domain.Employee, error)
}

// EmployeeSessionSvc exposes refresh-token persistence.
type EmployeeSessionSvc interface {
	StoreRefreshToken(ctx context.Context, profileID, tokenHash string, expiry time.Time) error
	ClearRefreshToken(ctx context.Context, profileID string) error
}

// EmployeeSvcFacade combines all employee service interfaces.
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeRegistrarSvc
	EmployeeSessionSvc
}
