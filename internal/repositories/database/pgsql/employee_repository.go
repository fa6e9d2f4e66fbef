package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wandermart/onboarding_backend/internal/apperrors"
	"github.com/wandermart/onboarding_backend/internal/core/domain"
	portsrepo "github.com/wandermart/onboarding_backend/internal/core/ports/repositories"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for profile and role data.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxEmployeeRepository implements portsrepo.EmployeeRepositoryFacade
var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

var FULL_EMPLOYEE_SELECT_QUERY = `
SELECT
	p.profile_id, p.employee_id, p.email, p.password_hash, p.first_name, p.last_name,
	p.auth_provider, p.provider_user_id, p.refresh_token_hash, p.refresh_token_expiry_time,
	p.created_at, p.last_updated_at
FROM profiles p
`

// getEmployees private func to get profiles from the select query filters
func (r *PgxEmployeeRepository) getEmployees(ctx context.Context, filterQuery string, args ...any) ([]domain.Employee, error) {
	query := FULL_EMPLOYEE_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query profiles", err)
	}
	defer rows.Close()
	employees, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Employee])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Employee{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect profile rows", err)
	}
	return employees, nil
}

// findOneEmployee wraps getEmployees for single-row lookups.
func (r *PgxEmployeeRepository) findOneEmployee(ctx context.Context, filterQuery string, args ...any) (*domain.Employee, error) {
	employees, err := r.getEmployees(ctx, filterQuery, args...)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &employees[0], nil
}

func (r *PgxEmployeeRepository) FindEmployeeByProfileID(ctx context.Context, profileID string) (*domain.Employee, error) {
	return r.findOneEmployee(ctx, `WHERE p.profile_id = $1`, profileID)
}

func (r *PgxEmployeeRepository) FindEmployeeByEmployeeID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	return r.findOneEmployee(ctx, `WHERE p.employee_id = $1`, employeeID)
}

func (r *PgxEmployeeRepository) FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	return r.findOneEmployee(ctx, `WHERE lower(p.email) = lower($1)`, email)
}

func (r *PgxEmployeeRepository) FindEmployeeByProviderDetails(ctx context.Context, authProvider, providerUserID string) (*domain.Employee, error) {
	return r.findOneEmployee(ctx, `WHERE p.auth_provider = $1 AND p.provider_user_id = $2`, authProvider, providerUserID)
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return r.getEmployees(ctx, `ORDER BY p.employee_id`)
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	// employee_id is identity-assigned; the caller never picks the number.
	query := `
		INSERT INTO profiles (
			profile_id, email, password_hash, first_name, last_name,
			auth_provider, provider_user_id, created_at, last_updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING employee_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		employee.ProfileID,
		employee.Email,
		employee.PasswordHash,
		employee.FirstName,
		employee.LastName,
		employee.AuthProvider,
		employee.ProviderUserID,
		employee.CreatedAt,
		employee.LastUpdatedAt,
	).Scan(&employee.EmployeeID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return nil, apperrors.NewConflictError("email is already registered")
			}
		}
		return nil, apperrors.NewAppError(500, "failed to save profile "+employee.ProfileID, err)
	}
	return &employee, nil
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		UPDATE profiles
		SET first_name = $1, last_name = $2, last_updated_at = $3
		WHERE profile_id = $4;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		employee.FirstName,
		employee.LastName,
		employee.LastUpdatedAt,
		employee.ProfileID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update profile "+employee.ProfileID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEmployeeRepository) UpdateRefreshToken(ctx context.Context, profileID, refreshTokenHash string, expiry time.Time) error {
	query := `
		UPDATE profiles
		SET refresh_token_hash = $1, refresh_token_expiry_time = $2, last_updated_at = now()
		WHERE profile_id = $3;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, refreshTokenHash, expiry, profileID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update refresh token", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEmployeeRepository) ClearRefreshToken(ctx context.Context, profileID string) error {
	query := `
		UPDATE profiles
		SET refresh_token_hash = NULL, refresh_token_expiry_time = NULL, last_updated_at = now()
		WHERE profile_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, profileID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to clear refresh token", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEmployeeRepository) FindRoleByEmployeeID(ctx context.Context, employeeID int64) (domain.AppRole, error) {
	query := `
		SELECT role
		FROM user_roles
		WHERE employee_id = $1;
	`
	var role domain.AppRole
	err := r.Pool.QueryRow(ctx, query, employeeID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.NewAppError(500, "failed to find role", err)
	}
	return role, nil
}

func (r *PgxEmployeeRepository) AssignRole(ctx context.Context, employeeID int64, role domain.AppRole) error {
	query := `
		INSERT INTO user_roles (employee_id, role)
		VALUES ($1, $2)
		ON CONFLICT (employee_id) DO UPDATE SET role = EXCLUDED.role;
	`
	_, err := r.Pool.Exec(ctx, query, employeeID, role)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("employee number does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to assign role", err)
	}
	return nil
}
