package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wandermart/onboarding_backend/internal/apperrors"
	"github.com/wandermart/onboarding_backend/internal/core/domain"
	portsrepo "github.com/wandermart/onboarding_backend/internal/core/ports/repositories"
)

type PgxDepartmentRepository struct {
	BaseRepository
}

// newPgxDepartmentRepository creates a new repository for department data.
func newPgxDepartmentRepository(pool *pgxpool.Pool) portsrepo.DepartmentReader {
	return &PgxDepartmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxDepartmentRepository implements portsrepo.DepartmentReader
var _ portsrepo.DepartmentReader = (*PgxDepartmentRepository)(nil)

var FULL_DEPARTMENT_SELECT_QUERY = `
SELECT
	d.id, d.name, d.description, d.image_url, d.manager_id, d.created_at
FROM departments d
`

// getDepartments private func to get departments from the select query filters
func (r *PgxDepartmentRepository) getDepartments(ctx context.Context, filterQuery string, args ...any) ([]domain.Department, error) {
	query := FULL_DEPARTMENT_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query departments", err)
	}
	defer rows.Close()
	departments, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Department])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Department{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect department rows", err)
	}
	return departments, nil
}

func (r *PgxDepartmentRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	return r.getDepartments(ctx, `ORDER BY d.name`)
}

func (r *PgxDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID int64) (*domain.Department, error) {
	departments, err := r.getDepartments(ctx, `WHERE d.id = $1`, departmentID)
	if err != nil {
		return nil, err
	}
	if len(departments) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &departments[0], nil
}

func (r *PgxDepartmentRepository) FindManagerByID(ctx context.Context, employeeID int64) (*domain.Manager, error) {
	query := `
		SELECT employee_id, name, description, photo
		FROM managers
		WHERE employee_id = $1;
	`
	var m domain.Manager
	err := r.Pool.QueryRow(ctx, query, employeeID).Scan(
		&m.EmployeeID,
		&m.Name,
		&m.Description,
		&m.Photo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find manager", err)
	}
	return &m, nil
}
