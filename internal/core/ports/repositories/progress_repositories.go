package repositories

import (
	"context"
	"time"

	"github.com/wandermart/onboarding_backend/internal/core/domain"
)

// ProgressReader defines read operations over user_progress rows.
type ProgressReader interface {
	// ListProgressByEmployee retrieves all progress rows for an employee.
	ListProgressByEmployee(ctx context.Context, employeeID int64) ([]domain.UserProgress, error)

	// FindProgress retrieves the row for one (employee, course) pair, or
	// ErrNotFound when the employee has not started the course.
	FindProgress(ctx context.Context, employeeID, courseID int64) (*domain.UserProgress, error)
}

// ProgressWriter defines write operations over user_progress rows.
type ProgressWriter interface {
	// UpsertProgress inserts or updates the (employee, course) row.
	UpsertProgress(ctx context.Context, progress domain.UserProgress) error

	// UpdateApproval sets the approval sub-state, approver and timestamp on a
	// progress row. The write is idempotent: repeating it yields the same row
	// state apart from the timestamp refresh.
	UpdateApproval(ctx context.Context, employeeID, courseID int64, status domain.ApprovalStatus, approvedBy string, approvedAt time.Time) error
}

// VisitReader defines read operations over user_location_visits rows.
type VisitReader interface {
	// ListVisitsByEmployee retrieves all of an employee's visit rows.
	ListVisitsByEmployee(ctx context.Context, employeeID int64) ([]domain.LocationVisit, error)

	// ListVisitsForCourse retrieves the employee's visit rows restricted to
	// one course's locations.
	ListVisitsForCourse(ctx context.Context, employeeID, courseID int64) ([]domain.LocationVisit, error)
}

// VisitWriter defines write operations over user_location_visits rows.
type VisitWriter interface {
	// SaveVisit inserts a visit row. Duplicate (employee, location) pairs
	// return ErrDuplicate.
	SaveVisit(ctx context.Context, visit domain.LocationVisit) error

	// SaveVisitAndProgress inserts the visit row and upserts the progress row
	// inside one transaction, so a crash cannot leave a visit recorded
	// without its course status update.
	SaveVisitAndProgress(ctx context.Context, visit domain.LocationVisit, progress domain.UserProgress) error

	// UpdateVisitScore stores a quiz score on an existing visit row.
	UpdateVisitScore(ctx context.Context, employeeID, locationID int64, score int) error
}

// ProgressRepositoryFacade combines progress interfaces.
type ProgressRepositoryFacade interface {
	ProgressReader
	ProgressWriter
}

// VisitRepositoryFacade combines visit interfaces.
type VisitRepositoryFacade interface {
	VisitReader
	VisitWriter
}
