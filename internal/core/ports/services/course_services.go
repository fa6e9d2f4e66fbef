package services

import (
	"context"

	"github.com/wandermart/onboarding_backend/internal/core/domain"
)

// CourseSvcFacade exposes the curriculum read model: departments, the
// per-employee journey, and course/location detail with derived state.
type CourseSvcFacade interface {
	ListDepartments(ctx context.Context) ([]domain.Department, error)
	GetDepartment(ctx context.Context, departmentID int64) (*domain.Department, error)

	// GetJourney returns every course annotated with the employee's derived
	// unlock/completed state, ordered by sequence number.
	GetJourney(ctx context.Context, employeeID int64) ([]domain.CourseState, error)

	// GetCourseLocations returns a course and its locations annotated with
	// the employee's derived visit/unlock state, ordered by order index.
	GetCourseLocations(ctx context.Context, employeeID, courseID int64) (*domain.Course, []domain.LocationState, error)

	// GetLocationDetail returns a location with the hosting department's
	// manager profile, when one is assigned.
	GetLocationDetail(ctx context.Context, locationID int64) (*domain.Location, *domain.Manager, error)
}

// QuizSvcFacade exposes the per-course quiz.
type QuizSvcFacade interface {
	// GetCourseQuiz returns the course's question set. The answer key is
	// stripped at the DTO layer, not here.
	GetCourseQuiz(ctx context.Context, courseID int64) (*domain.Quiz, error)
}
