package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wandermart/onboarding_backend/internal/apperrors"
	"github.com/wandermart/onboarding_backend/internal/core/domain"
	portsrepo "github.com/wandermart/onboarding_backend/internal/core/ports/repositories"
	portssvc "github.com/wandermart/onboarding_backend/internal/core/ports/services"
	"github.com/wandermart/onboarding_backend/internal/dto"
	"github.com/wandermart/onboarding_backend/internal/utils"
)

type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates the profile and role service.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) GetEmployeeByProfileID(ctx context.Context, profileID string) (*domain.Employee, error) {
	return s.employeeRepo.FindEmployeeByProfileID(ctx, profileID)
}

func (s *employeeService) GetEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	return s.employeeRepo.FindEmployeeByEmail(ctx, email)
}

// GetRole returns the employee's assigned role, defaulting to trainee when no
// assignment row exists.
func (s *employeeService) GetRole(ctx context.Context, employeeID int64) (domain.AppRole, error) {
	role, err := s.employeeRepo.FindRoleByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.RoleTrainee, nil
		}
		return "", err
	}
	return role, nil
}

func (s *employeeService) RegisterEmployee(ctx context.Context, req dto.RegisterRequest) (*domain.Employee, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, apperrors.NewAppError(500, "failed to process password", err)
	}

	now := time.Now()
	employee := domain.Employee{
		ProfileID:    uuid.NewString(),
		Email:        req.Email,
		PasswordHash: &passwordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	saved, err := s.employeeRepo.SaveEmployee(ctx, employee)
	if err != nil {
		return nil, err
	}

	if err := s.employeeRepo.AssignRole(ctx, saved.EmployeeID, domain.RoleTrainee); err != nil {
		s.LogError(ctx, err, "Failed to assign trainee role", "employee_id", saved.EmployeeID)
		return nil, err
	}

	s.LogInfo(ctx, "Registered employee", "employee_id", saved.EmployeeID)
	return saved, nil
}

func (s *employeeService) FindOrCreateGoogleEmployee(ctx context.Context, providerUserID, email, firstName, lastName string) (*domain.Employee, error) {
	existing, err := s.employeeRepo.FindEmployeeByProviderDetails(ctx, domain.ProviderGoogle, providerUserID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	// An employee who registered locally with the same email keeps their
	// profile; the Google identity is not silently linked.
	if _, err := s.employeeRepo.FindEmployeeByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflictError("email is already registered with a password")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	employee := domain.Employee{
		ProfileID:      uuid.NewString(),
		Email:          email,
		FirstName:      firstName,
		LastName:       lastName,
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: &providerUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	saved, err := s.employeeRepo.SaveEmployee(ctx, employee)
	if err != nil {
		return nil, err
	}

	if err := s.employeeRepo.AssignRole(ctx, saved.EmployeeID, domain.RoleTrainee); err != nil {
		s.LogError(ctx, err, "Failed to assign trainee role", "employee_id", saved.EmployeeID)
		return nil, err
	}

	s.LogInfo(ctx, "Created profile from Google sign-in", "employee_id", saved.EmployeeID)
	return saved, nil
}

// BootstrapAdmin creates the configured admin credential. Once any admin role
// assignment exists the call returns ErrDuplicate.
func (s *employeeService) BootstrapAdmin(ctx context.Context, email, password, firstName, lastName string) (*domain.Employee, error) {
	if email == "" || password == "" {
		return nil, apperrors.NewValidationFailedError("bootstrap admin credentials are not configured")
	}

	if existing, err := s.employeeRepo.FindEmployeeByEmail(ctx, email); err == nil {
		role, roleErr := s.GetRole(ctx, existing.EmployeeID)
		if roleErr == nil && role == domain.RoleAdmin {
			return nil, apperrors.ErrDuplicate
		}
		// Promote an existing profile rather than duplicating it.
		if err := s.employeeRepo.AssignRole(ctx, existing.EmployeeID, domain.RoleAdmin); err != nil {
			return nil, err
		}
		s.LogInfo(ctx, "Promoted existing profile to admin", "employee_id", existing.EmployeeID)
		return existing, nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	saved, err := s.RegisterEmployee(ctx, dto.RegisterRequest{
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		return nil, err
	}

	if err := s.employeeRepo.AssignRole(ctx, saved.EmployeeID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Bootstrapped admin account", "employee_id", saved.EmployeeID)
	return saved, nil
}

func (s *employeeService) StoreRefreshToken(ctx context.Context, profileID, tokenHash string, expiry time.Time) error {
	return s.employeeRepo.UpdateRefreshToken(ctx, profileID, tokenHash, expiry)
}

func (s *employeeService) ClearRefreshToken(ctx context.Context, profileID string) error {
	return s.employeeRepo.ClearRefreshToken(ctx, profileID)
}
