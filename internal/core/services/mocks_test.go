package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/wandermart/onboarding_backend/internal/core/domain"
	portsrepo "github.com/wandermart/onboarding_backend/internal/core/ports/repositories"
)

// --- Mock DepartmentRepository ---

type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID int64) (*domain.Department, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindManagerByID(ctx context.Context, employeeID int64) (*domain.Manager, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Manager), args.Error(1)
}

var _ portsrepo.DepartmentReader = (*MockDepartmentRepository)(nil)

// --- Mock CourseRepository ---

type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) ListCourses(ctx context.Context) ([]domain.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Course), args.Error(1)
}

func (m *MockCourseRepository) FindCourseByID(ctx context.Context, courseID int64) (*domain.Course, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *MockCourseRepository) ListLocationsByCourse(ctx context.Context, courseID int64) ([]domain.Location, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Location), args.Error(1)
}

func (m *MockCourseRepository) FindLocationByID(ctx context.Context, locationID int64) (*domain.Location, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockCourseRepository) FindQuizByCourse(ctx context.Context, courseID int64) (*domain.Quiz, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

var _ portsrepo.CourseRepositoryFacade = (*MockCourseRepository)(nil)

// --- Mock ProgressRepository ---

type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) ListProgressByEmployee(ctx context.Context, employeeID int64) ([]domain.UserProgress, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserProgress), args.Error(1)
}

func (m *MockProgressRepository) FindProgress(ctx context.Context, employeeID, courseID int64) (*domain.UserProgress, error) {
	args := m.Called(ctx, employeeID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProgress), args.Error(1)
}

func (m *MockProgressRepository) UpsertProgress(ctx context.Context, progress domain.UserProgress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

func (m *MockProgressRepository) UpdateApproval(ctx context.Context, employeeID, courseID int64, status domain.ApprovalStatus, approvedBy string, approvedAt time.Time) error {
	args := m.Called(ctx, employeeID, courseID, status, approvedBy, approvedAt)
	return args.Error(0)
}

var _ portsrepo.ProgressRepositoryFacade = (*MockProgressRepository)(nil)

// --- Mock VisitRepository ---

type MockVisitRepository struct {
	mock.Mock
}

func (m *MockVisitRepository) ListVisitsByEmployee(ctx context.Context, employeeID int64) ([]domain.LocationVisit, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocationVisit), args.Error(1)
}

func (m *MockVisitRepository) ListVisitsForCourse(ctx context.Context, employeeID, courseID int64) ([]domain.LocationVisit, error) {
	args := m.Called(ctx, employeeID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocationVisit), args.Error(1)
}

func (m *MockVisitRepository) SaveVisit(ctx context.Context, visit domain.LocationVisit) error {
	args := m.Called(ctx, visit)
	return args.Error(0)
}

func (m *MockVisitRepository) SaveVisitAndProgress(ctx context.Context, visit domain.LocationVisit, progress domain.UserProgress) error {
	args := m.Called(ctx, visit, progress)
	return args.Error(0)
}

func (m *MockVisitRepository) UpdateVisitScore(ctx context.Context, employeeID, locationID int64, score int) error {
	args := m.Called(ctx, employeeID, locationID, score)
	return args.Error(0)
}

var _ portsrepo.VisitRepositoryFacade = (*MockVisitRepository)(nil)

// --- Mock EmployeeRepository ---

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByProfileID(ctx context.Context, profileID string) (*domain.Employee, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByEmployeeID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByProviderDetails(ctx context.Context, authProvider, providerUserID string) (*domain.Employee, error) {
	args := m.Called(ctx, authProvider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateRefreshToken(ctx context.Context, profileID, refreshTokenHash string, expiry time.Time) error {
	args := m.Called(ctx, profileID, refreshTokenHash, expiry)
	return args.Error(0)
}

func (m *MockEmployeeRepository) ClearRefreshToken(ctx context.Context, profileID string) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

func (m *MockEmployeeRepository) FindRoleByEmployeeID(ctx context.Context, employeeID int64) (domain.AppRole, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(domain.AppRole), args.Error(1)
}

func (m *MockEmployeeRepository) AssignRole(ctx context.Context, employeeID int64, role domain.AppRole) error {
	args := m.Called(ctx, employeeID, role)
	return args.Error(0)
}

var _ portsrepo.EmployeeRepositoryFacade = (*MockEmployeeRepository)(nil)
