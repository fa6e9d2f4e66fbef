package repositories

import (
	"context"

	"github.com/wandermart/onboarding_backend/internal/core/domain"
)

// DepartmentReader defines read operations for departments and managers.
type DepartmentReader interface {
	// ListDepartments retrieves all departments ordered by name.
	ListDepartments(ctx context.Context) ([]domain.Department, error)

	// FindDepartmentByID retrieves a single department.
	FindDepartmentByID(ctx context.Context, departmentID int64) (*domain.Department, error)

	// FindManagerByID retrieves a manager profile.
	FindManagerByID(ctx context.Context, employeeID int64) (*domain.Manager, error)
}

// CourseReader defines read operations for the course curriculum.
type CourseReader interface {
	// ListCourses retrieves all courses ordered by sequence number.
	ListCourses(ctx context.Context) ([]domain.Course, error)

	// FindCourseByID retrieves a single course.
	FindCourseByID(ctx context.Context, courseID int64) (*domain.Course, error)

	// ListLocationsByCourse retrieves a course's locations ordered by order index.
	ListLocationsByCourse(ctx context.Context, courseID int64) ([]domain.Location, error)

	// FindLocationByID retrieves a single location.
	FindLocationByID(ctx context.Context, locationID int64) (*domain.Location, error)
}

// QuizReader defines read access to the per-course quiz question bank.
type QuizReader interface {
	// FindQuizByCourse retrieves the course's ordered question set. A course
	// without questions yields a Quiz with an empty slice, not an error.
	FindQuizByCourse(ctx context.Context, courseID int64) (*domain.Quiz, error)
}

// CourseRepositoryFacade combines curriculum read interfaces.
type CourseRepositoryFacade interface {
	CourseReader
	QuizReader
}
