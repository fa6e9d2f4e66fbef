package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wandermart/onboarding_backend/internal/apperrors"
	"github.com/wandermart/onboarding_backend/internal/core/domain"
	portssvc "github.com/wandermart/onboarding_backend/internal/core/ports/services"
	"github.com/wandermart/onboarding_backend/internal/core/services"
)

type ApprovalServiceTestSuite struct {
	suite.Suite
	mockEmployeeRepo *MockEmployeeRepository
	mockProgressRepo *MockProgressRepository
	mockCourseRepo   *MockCourseRepository
	service          portssvc.ApprovalSvcFacade
}

func (suite *ApprovalServiceTestSuite) SetupTest() {
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockProgressRepo = new(MockProgressRepository)
	suite.mockCourseRepo = new(MockCourseRepository)
	// mail is disabled in tests; decisions must not depend on delivery
	suite.service = services.NewApprovalService(suite.mockEmployeeRepo, suite.mockProgressRepo, suite.mockCourseRepo, nil)
}

// --- ListEmployeeOverview ---

func (suite *ApprovalServiceTestSuite) TestListEmployeeOverview_AggregatesProgress() {
	ctx := context.Background()
	employees := []domain.Employee{
		{ProfileID: "p1", EmployeeID: 1, Email: "one@example.com"},
		{ProfileID: "p2", EmployeeID: 2, Email: "two@example.com"},
	}

	suite.mockEmployeeRepo.On("ListEmployees", ctx).Return(employees, nil).Once()
	suite.mockEmployeeRepo.On("FindRoleByEmployeeID", ctx, int64(1)).Return(domain.RoleAdmin, nil).Once()
	suite.mockEmployeeRepo.On("FindRoleByEmployeeID", ctx, int64(2)).Return(domain.AppRole(""), apperrors.ErrNotFound).Once()
	suite.mockProgressRepo.On("ListProgressByEmployee", ctx, int64(1)).Return([]domain.UserProgress{}, nil).Once()
	suite.mockProgressRepo.On("ListProgressByEmployee", ctx, int64(2)).Return([]domain.UserProgress{
		{EmployeeID: 2, CourseID: 1, Status: domain.StatusCompleted, ApprovalStatus: domain.ApprovalApproved},
		{EmployeeID: 2, CourseID: 2, Status: domain.StatusCompleted, ApprovalStatus: domain.ApprovalPending},
	}, nil).Once()

	overviews, err := suite.service.ListEmployeeOverview(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(overviews, 2)

	suite.Equal(domain.RoleAdmin, overviews[0].Role)
	suite.Equal(0, overviews[0].CompletedCourses)
	suite.Equal(domain.ApprovalNone, overviews[0].AggregateStatus)

	// missing role row defaults to trainee; pending dominates approved
	suite.Equal(domain.RoleTrainee, overviews[1].Role)
	suite.Equal(2, overviews[1].CompletedCourses)
	suite.Equal(domain.ApprovalPending, overviews[1].AggregateStatus)
}

func (suite *ApprovalServiceTestSuite) TestListEmployeeOverview_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockEmployeeRepo.On("ListEmployees", ctx).Return(nil, expectedErr).Once()

	overviews, err := suite.service.ListEmployeeOverview(ctx)

	suite.Require().Error(err)
	suite.Nil(overviews)
	suite.ErrorIs(err, expectedErr)
}

// --- Approve / Reject ---

func (suite *ApprovalServiceTestSuite) TestApprove_UpdatesApproval() {
	ctx := context.Background()

	suite.mockProgressRepo.On("UpdateApproval", ctx, int64(2), int64(3), domain.ApprovalApproved, "admin-profile", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.Approve(ctx, "admin-profile", 2, 3)

	suite.Require().NoError(err)
	suite.mockProgressRepo.AssertExpectations(suite.T())
}

func (suite *ApprovalServiceTestSuite) TestReject_UpdatesApproval() {
	ctx := context.Background()

	suite.mockProgressRepo.On("UpdateApproval", ctx, int64(2), int64(3), domain.ApprovalRejected, "admin-profile", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.Reject(ctx, "admin-profile", 2, 3)

	suite.Require().NoError(err)
	suite.mockProgressRepo.AssertExpectations(suite.T())
}

func (suite *ApprovalServiceTestSuite) TestApprove_MissingProgressRow() {
	ctx := context.Background()

	suite.mockProgressRepo.On("UpdateApproval", ctx, int64(2), int64(3), domain.ApprovalApproved, "admin-profile", mock.AnythingOfType("time.Time")).Return(apperrors.ErrNotFound).Once()

	err := suite.service.Approve(ctx, "admin-profile", 2, 3)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ApprovalServiceTestSuite) TestApprove_Repeated_Idempotent() {
	ctx := context.Background()

	suite.mockProgressRepo.On("UpdateApproval", ctx, int64(2), int64(3), domain.ApprovalApproved, "admin-profile", mock.AnythingOfType("time.Time")).Return(nil).Twice()

	suite.Require().NoError(suite.service.Approve(ctx, "admin-profile", 2, 3))
	suite.Require().NoError(suite.service.Approve(ctx, "admin-profile", 2, 3))
	suite.mockProgressRepo.AssertExpectations(suite.T())
}

func TestApprovalService(t *testing.T) {
	suite.Run(t, new(ApprovalServiceTestSuite))
}
