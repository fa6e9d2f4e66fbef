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

type PgxProgressRepository struct {
	BaseRepository
}

// newPgxProgressRepository creates a new repository for per-course progress rows.
func newPgxProgressRepository(pool *pgxpool.Pool) portsrepo.ProgressRepositoryFacade {
	return &PgxProgressRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxProgressRepository implements portsrepo.ProgressRepositoryFacade
var _ portsrepo.ProgressRepositoryFacade = (*PgxProgressRepository)(nil)

var FULL_PROGRESS_SELECT_QUERY = `
SELECT
	up.employee_id, up.course_id, up.status, up.started_at, up.completed_at,
	up.approval_status, up.approved_by, up.approved_at,
	up.created_at, up.last_updated_at
FROM user_progress up
`

// upsertProgressQuery keeps the earliest started_at across repeated upserts.
var upsertProgressQuery = `
	INSERT INTO user_progress (
		employee_id, course_id, status, started_at, completed_at,
		approval_status, approved_by, approved_at, created_at, last_updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (employee_id, course_id) DO UPDATE SET
		status = EXCLUDED.status,
		started_at = COALESCE(user_progress.started_at, EXCLUDED.started_at),
		completed_at = EXCLUDED.completed_at,
		approval_status = EXCLUDED.approval_status,
		approved_by = EXCLUDED.approved_by,
		approved_at = EXCLUDED.approved_at,
		last_updated_at = EXCLUDED.last_updated_at;
`

// getProgress private func to get progress rows from the select query filters
func (r *PgxProgressRepository) getProgress(ctx context.Context, filterQuery string, args ...any) ([]domain.UserProgress, error) {
	query := FULL_PROGRESS_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query progress", err)
	}
	defer rows.Close()
	progress, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.UserProgress])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.UserProgress{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect progress rows", err)
	}
	return progress, nil
}

func (r *PgxProgressRepository) ListProgressByEmployee(ctx context.Context, employeeID int64) ([]domain.UserProgress, error) {
	return r.getProgress(ctx, `WHERE up.employee_id = $1 ORDER BY up.course_id`, employeeID)
}

func (r *PgxProgressRepository) FindProgress(ctx context.Context, employeeID, courseID int64) (*domain.UserProgress, error) {
	progress, err := r.getProgress(ctx, `WHERE up.employee_id = $1 AND up.course_id = $2`, employeeID, courseID)
	if err != nil {
		return nil, err
	}
	if len(progress) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &progress[0], nil
}

func (r *PgxProgressRepository) UpsertProgress(ctx context.Context, progress domain.UserProgress) error {
	_, err := r.Pool.Exec(ctx, upsertProgressQuery,
		progress.EmployeeID,
		progress.CourseID,
		progress.Status,
		progress.StartedAt,
		progress.CompletedAt,
		progress.ApprovalStatus,
		progress.ApprovedBy,
		progress.ApprovedAt,
		progress.CreatedAt,
		progress.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("employee or course does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to upsert progress", err)
	}
	return nil
}

func (r *PgxProgressRepository) UpdateApproval(ctx context.Context, employeeID, courseID int64, status domain.ApprovalStatus, approvedBy string, approvedAt time.Time) error {
	query := `
		UPDATE user_progress
		SET approval_status = $1, approved_by = $2, approved_at = $3, last_updated_at = $3
		WHERE employee_id = $4 AND course_id = $5;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, status, approvedBy, approvedAt, employeeID, courseID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update approval status", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
