package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wandermart/onboarding_backend/internal/apperrors"
	"github.com/wandermart/onboarding_backend/internal/core/domain"
	portsrepo "github.com/wandermart/onboarding_backend/internal/core/ports/repositories"
)

type PgxVisitRepository struct {
	BaseRepository
}

// newPgxVisitRepository creates a new repository for location visit rows.
func newPgxVisitRepository(pool *pgxpool.Pool) portsrepo.VisitRepositoryFacade {
	return &PgxVisitRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxVisitRepository implements portsrepo.VisitRepositoryFacade
var _ portsrepo.VisitRepositoryFacade = (*PgxVisitRepository)(nil)

var FULL_VISIT_SELECT_QUERY = `
SELECT
	v.employee_id, v.location_id, v.quiz_score, v.visited_at
FROM user_location_visits v
`

var insertVisitQuery = `
	INSERT INTO user_location_visits (employee_id, location_id, quiz_score, visited_at)
	VALUES ($1, $2, $3, $4);
`

// getVisits private func to get visit rows from the select query filters
func (r *PgxVisitRepository) getVisits(ctx context.Context, filterQuery string, args ...any) ([]domain.LocationVisit, error) {
	query := FULL_VISIT_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query visits", err)
	}
	defer rows.Close()
	visits, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.LocationVisit])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.LocationVisit{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect visit rows", err)
	}
	return visits, nil
}

func (r *PgxVisitRepository) ListVisitsByEmployee(ctx context.Context, employeeID int64) ([]domain.LocationVisit, error) {
	return r.getVisits(ctx, `WHERE v.employee_id = $1 ORDER BY v.visited_at`, employeeID)
}

func (r *PgxVisitRepository) ListVisitsForCourse(ctx context.Context, employeeID, courseID int64) ([]domain.LocationVisit, error) {
	filter := `
		JOIN locations l ON l.location_id = v.location_id
		WHERE v.employee_id = $1 AND l.course_id = $2
		ORDER BY l.order_index
	`
	return r.getVisits(ctx, filter, employeeID, courseID)
}

// translateVisitError maps the unique and foreign key violations of the visit
// table to app errors.
func translateVisitError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		if pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("employee or location does not exist")
		}
	}
	return nil
}

func (r *PgxVisitRepository) SaveVisit(ctx context.Context, visit domain.LocationVisit) error {
	_, err := r.Pool.Exec(ctx, insertVisitQuery,
		visit.EmployeeID,
		visit.LocationID,
		visit.QuizScore,
		visit.VisitedAt,
	)
	if err != nil {
		if translated := translateVisitError(err); translated != nil {
			return translated
		}
		return apperrors.NewAppError(500, "failed to save visit", err)
	}
	return nil
}

// SaveVisitAndProgress writes the visit row and the progress upsert in one
// transaction. The visit insert carries the duplicate check, so a replayed
// request cannot double-record a stop.
func (r *PgxVisitRepository) SaveVisitAndProgress(ctx context.Context, visit domain.LocationVisit, progress domain.UserProgress) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	_, err = tx.Exec(ctx, insertVisitQuery,
		visit.EmployeeID,
		visit.LocationID,
		visit.QuizScore,
		visit.VisitedAt,
	)
	if err != nil {
		if translated := translateVisitError(err); translated != nil {
			return translated
		}
		return apperrors.NewAppError(500, "failed to save visit", err)
	}

	_, err = tx.Exec(ctx, upsertProgressQuery,
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
		return apperrors.NewAppError(500, "failed to upsert progress", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxVisitRepository) UpdateVisitScore(ctx context.Context, employeeID, locationID int64, score int) error {
	query := `
		UPDATE user_location_visits
		SET quiz_score = $1
		WHERE employee_id = $2 AND location_id = $3;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, score, employeeID, locationID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update visit score", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
