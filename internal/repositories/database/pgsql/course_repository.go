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

type PgxCourseRepository struct {
	BaseRepository
}

// newPgxCourseRepository creates a new repository for curriculum data.
func newPgxCourseRepository(pool *pgxpool.Pool) portsrepo.CourseRepositoryFacade {
	return &PgxCourseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxCourseRepository implements portsrepo.CourseRepositoryFacade
var _ portsrepo.CourseRepositoryFacade = (*PgxCourseRepository)(nil)

var FULL_COURSE_SELECT_QUERY = `
SELECT
	c.course_id, c.department_id, c.title, c.description, c.sequence_num,
	c.total_locations, c.created_at, c.last_updated_at
FROM courses c
`

var FULL_LOCATION_SELECT_QUERY = `
SELECT
	l.location_id, l.course_id, l.name, l.description, l.address,
	l.latitude, l.longitude, l.content, l.order_index,
	l.created_at, l.last_updated_at
FROM locations l
`

// getCourses private func to get courses from the select query filters
func (r *PgxCourseRepository) getCourses(ctx context.Context, filterQuery string, args ...any) ([]domain.Course, error) {
	query := FULL_COURSE_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query courses", err)
	}
	defer rows.Close()
	courses, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Course])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Course{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect course rows", err)
	}
	return courses, nil
}

// getLocations private func to get locations from the select query filters
func (r *PgxCourseRepository) getLocations(ctx context.Context, filterQuery string, args ...any) ([]domain.Location, error) {
	query := FULL_LOCATION_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query locations", err)
	}
	defer rows.Close()
	locations, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Location])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Location{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect location rows", err)
	}
	return locations, nil
}

func (r *PgxCourseRepository) ListCourses(ctx context.Context) ([]domain.Course, error) {
	return r.getCourses(ctx, `ORDER BY c.sequence_num`)
}

func (r *PgxCourseRepository) FindCourseByID(ctx context.Context, courseID int64) (*domain.Course, error) {
	courses, err := r.getCourses(ctx, `WHERE c.course_id = $1`, courseID)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &courses[0], nil
}

func (r *PgxCourseRepository) ListLocationsByCourse(ctx context.Context, courseID int64) ([]domain.Location, error) {
	return r.getLocations(ctx, `WHERE l.course_id = $1 ORDER BY l.order_index`, courseID)
}

func (r *PgxCourseRepository) FindLocationByID(ctx context.Context, locationID int64) (*domain.Location, error) {
	locations, err := r.getLocations(ctx, `WHERE l.location_id = $1`, locationID)
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &locations[0], nil
}

func (r *PgxCourseRepository) FindQuizByCourse(ctx context.Context, courseID int64) (*domain.Quiz, error) {
	// Time limit lives on the course row; a missing course is an error, a
	// course without questions is not.
	var timeLimit int
	err := r.Pool.QueryRow(ctx,
		`SELECT quiz_time_limit_minutes FROM courses WHERE course_id = $1`,
		courseID,
	).Scan(&timeLimit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query quiz time limit", err)
	}

	query := `
		SELECT q.question_id, q.course_id, q.prompt, q.options, q.correct_option, q.position
		FROM quiz_questions q
		WHERE q.course_id = $1
		ORDER BY q.position;
	`
	rows, err := r.Pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query quiz questions", err)
	}
	defer rows.Close()
	questions, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.QuizQuestion])
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewAppError(500, "failed to collect quiz question rows", err)
		}
		questions = []domain.QuizQuestion{}
	}

	return &domain.Quiz{
		CourseID:         courseID,
		Questions:        questions,
		TimeLimitMinutes: timeLimit,
	}, nil
}
