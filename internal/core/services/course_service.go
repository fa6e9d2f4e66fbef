package services

import (
	"context"
	"errors"

	"github.com/wandermart/onboarding_backend/internal/apperrors"
	"github.com/wandermart/onboarding_backend/internal/core/domain"
	portsrepo "github.com/wandermart/onboarding_backend/internal/core/ports/repositories"
	portssvc "github.com/wandermart/onboarding_backend/internal/core/ports/services"
)

type courseService struct {
	BaseService
	departmentRepo portsrepo.DepartmentReader
	courseRepo     portsrepo.CourseRepositoryFacade
	progressRepo   portsrepo.ProgressReader
	visitRepo      portsrepo.VisitReader
}

// NewCourseService creates the curriculum read-model service.
func NewCourseService(
	departmentRepo portsrepo.DepartmentReader,
	courseRepo portsrepo.CourseRepositoryFacade,
	progressRepo portsrepo.ProgressReader,
	visitRepo portsrepo.VisitReader,
) portssvc.CourseSvcFacade {
	return &courseService{
		departmentRepo: departmentRepo,
		courseRepo:     courseRepo,
		progressRepo:   progressRepo,
		visitRepo:      visitRepo,
	}
}

var _ portssvc.CourseSvcFacade = (*courseService)(nil)

func (s *courseService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	return s.departmentRepo.ListDepartments(ctx)
}

func (s *courseService) GetDepartment(ctx context.Context, departmentID int64) (*domain.Department, error) {
	return s.departmentRepo.FindDepartmentByID(ctx, departmentID)
}

// validateCourseOrdering rejects curricula whose sequence numbers are not
// strictly increasing. The unlock chain is positional, so a broken ordering
// would silently unlock the wrong course.
func validateCourseOrdering(courses []domain.Course) error {
	for i := 1; i < len(courses); i++ {
		if courses[i].SequenceNum <= courses[i-1].SequenceNum {
			return apperrors.NewAppError(500, "course sequence numbers are not strictly increasing", nil)
		}
	}
	return nil
}

// validateLocationOrdering is the same check for a course's location order
// indexes.
func validateLocationOrdering(locations []domain.Location) error {
	for i := 1; i < len(locations); i++ {
		if locations[i].OrderIndex <= locations[i-1].OrderIndex {
			return apperrors.NewAppError(500, "location order indexes are not strictly increasing", nil)
		}
	}
	return nil
}

func (s *courseService) GetJourney(ctx context.Context, employeeID int64) ([]domain.CourseState, error) {
	courses, err := s.courseRepo.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateCourseOrdering(courses); err != nil {
		s.LogError(ctx, err, "Corrupt curriculum ordering")
		return nil, err
	}

	progressRows, err := s.progressRepo.ListProgressByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	progress := make(map[int64]domain.UserProgress, len(progressRows))
	for _, p := range progressRows {
		progress[p.CourseID] = p
	}

	return domain.DeriveCourseStates(courses, progress), nil
}

func (s *courseService) GetCourseLocations(ctx context.Context, employeeID, courseID int64) (*domain.Course, []domain.LocationState, error) {
	course, err := s.courseRepo.FindCourseByID(ctx, courseID)
	if err != nil {
		return nil, nil, err
	}

	locations, err := s.courseRepo.ListLocationsByCourse(ctx, courseID)
	if err != nil {
		return nil, nil, err
	}
	if err := validateLocationOrdering(locations); err != nil {
		s.LogError(ctx, err, "Corrupt location ordering", "course_id", courseID)
		return nil, nil, err
	}

	visitRows, err := s.visitRepo.ListVisitsForCourse(ctx, employeeID, courseID)
	if err != nil {
		return nil, nil, err
	}
	visited := make(map[int64]domain.LocationVisit, len(visitRows))
	for _, v := range visitRows {
		visited[v.LocationID] = v
	}

	return course, domain.DeriveLocationStates(locations, visited), nil
}

func (s *courseService) GetLocationDetail(ctx context.Context, locationID int64) (*domain.Location, *domain.Manager, error) {
	location, err := s.courseRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		return nil, nil, err
	}

	course, err := s.courseRepo.FindCourseByID(ctx, location.CourseID)
	if err != nil {
		return nil, nil, err
	}
	if course.DepartmentID == nil {
		return location, nil, nil
	}

	department, err := s.departmentRepo.FindDepartmentByID(ctx, *course.DepartmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return location, nil, nil
		}
		return nil, nil, err
	}
	if department.ManagerID == nil {
		return location, nil, nil
	}

	manager, err := s.departmentRepo.FindManagerByID(ctx, *department.ManagerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// A dangling manager reference degrades to no host, not an error.
			s.LogWarn(ctx, "Department references missing manager", "department_id", department.ID)
			return location, nil, nil
		}
		return nil, nil, err
	}

	return location, manager, nil
}
