package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wandermart/onboarding_backend/internal/apperrors"
	"github.com/wandermart/onboarding_backend/internal/core/domain"
	portssvc "github.com/wandermart/onboarding_backend/internal/core/ports/services"
	"github.com/wandermart/onboarding_backend/internal/core/services"
)

type ProgressionServiceTestSuite struct {
	suite.Suite
	mockDeptRepo     *MockDepartmentRepository
	mockCourseRepo   *MockCourseRepository
	mockProgressRepo *MockProgressRepository
	mockVisitRepo    *MockVisitRepository
	service          portssvc.ProgressionSvcFacade
}

func (suite *ProgressionServiceTestSuite) SetupTest() {
	suite.mockDeptRepo = new(MockDepartmentRepository)
	suite.mockCourseRepo = new(MockCourseRepository)
	suite.mockProgressRepo = new(MockProgressRepository)
	suite.mockVisitRepo = new(MockVisitRepository)
	courseSvc := services.NewCourseService(suite.mockDeptRepo, suite.mockCourseRepo, suite.mockProgressRepo, suite.mockVisitRepo)
	suite.service = services.NewProgressionService(suite.mockCourseRepo, suite.mockProgressRepo, suite.mockVisitRepo, courseSvc)
}

func twoCourses() []domain.Course {
	return []domain.Course{
		{CourseID: 1, Title: "Day 1", SequenceNum: 1, TotalLocations: 2},
		{CourseID: 2, Title: "Day 2", SequenceNum: 2, TotalLocations: 2},
	}
}

func twoLocations(courseID int64) []domain.Location {
	return []domain.Location{
		{LocationID: 10, CourseID: courseID, Name: "Front Desk", OrderIndex: 1},
		{LocationID: 11, CourseID: courseID, Name: "Warehouse", OrderIndex: 2},
	}
}

// --- StartCourse ---

func (suite *ProgressionServiceTestSuite) TestStartCourse_FirstCourse_Success() {
	ctx := context.Background()
	employeeID := int64(42)

	suite.mockCourseRepo.On("ListCourses", ctx).Return(twoCourses(), nil).Once()
	suite.mockProgressRepo.On("ListProgressByEmployee", ctx, employeeID).Return([]domain.UserProgress{}, nil).Once()
	suite.mockCourseRepo.On("ListLocationsByCourse", ctx, int64(1)).Return(twoLocations(1), nil).Once()
	suite.mockProgressRepo.On("UpsertProgress", ctx, mock.MatchedBy(func(p domain.UserProgress) bool {
		return p.EmployeeID == employeeID && p.CourseID == 1 &&
			p.Status == domain.StatusInProgress && p.StartedAt != nil &&
			p.ApprovalStatus == domain.ApprovalNone
	})).Return(nil).Once()

	progress, err := suite.service.StartCourse(ctx, employeeID, 1)

	suite.Require().NoError(err)
	suite.Require().NotNil(progress)
	suite.Equal(domain.StatusInProgress, progress.Status)
	suite.mockProgressRepo.AssertExpectations(suite.T())
}

func (suite *ProgressionServiceTestSuite) TestStartCourse_LockedCourse_Forbidden() {
	ctx := context.Background()
	employeeID := int64(42)

	suite.mockCourseRepo.On("ListCourses", ctx).Return(twoCourses(), nil).Once()
	suite.mockProgressRepo.On("ListProgressByEmployee", ctx, employeeID).Return([]domain.UserProgress{}, nil).Once()

	progress, err := suite.service.StartCourse(ctx, employeeID, 2)

	suite.Require().Error(err)
	suite.Nil(progress)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockProgressRepo.AssertNotCalled(suite.T(), "UpsertProgress", mock.Anything, mock.Anything)
}

func (suite *ProgressionServiceTestSuite) TestStartCourse_AlreadyStarted_NoOp() {
	ctx := context.Background()
	employeeID := int64(42)
	startedAt := time.Now().Add(-time.Hour)
	existing := domain.UserProgress{
		EmployeeID: employeeID, CourseID: 1,
		Status: domain.StatusInProgress, StartedAt: &startedAt,
	}

	suite.mockCourseRepo.On("ListCourses", ctx).Return(twoCourses(), nil).Once()
	suite.mockProgressRepo.On("ListProgressByEmployee", ctx, employeeID).Return([]domain.UserProgress{existing}, nil).Once()

	progress, err := suite.service.StartCourse(ctx, employeeID, 1)

	suite.Require().NoError(err)
	suite.Require().NotNil(progress)
	suite.Equal(existing.Status, progress.Status)
	suite.Equal(existing.StartedAt, progress.StartedAt)
	suite.mockProgressRepo.AssertNotCalled(suite.T(), "UpsertProgress", mock.Anything, mock.Anything)
}

func (suite *ProgressionServiceTestSuite) TestStartCourse_SecondCourse_UnlockedAfterCompletion() {
	ctx := context.Background()
	employeeID := int64(42)
	completed := domain.UserProgress{EmployeeID: employeeID, CourseID: 1, Status: domain.StatusCompleted}

	suite.mockCourseRepo.On("ListCourses", ctx).Return(twoCourses(), nil).Once()
	suite.mockProgressRepo.On("ListProgressByEmployee", ctx, employeeID).Return([]domain.UserProgress{completed}, nil).Once()
	suite.mockCourseRepo.On("ListLocationsByCourse", ctx, int64(2)).Return(twoLocations(2), nil).Once()
	suite.mockProgressRepo.On("UpsertProgress", ctx, mock.AnythingOfType("domain.UserProgress")).Return(nil).Once()

	progress, err := suite.service.StartCourse(ctx, employeeID, 2)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusInProgress, progress.Status)
	suite.mockProgressRepo.AssertExpectations(suite.T())
}

func (suite *ProgressionServiceTestSuite) TestStartCourse_EmptyCourseWithoutQuiz_CompletesImmediately() {
	ctx := context.Background()
	employeeID := int64(42)
	courses := []domain.Course{
		{CourseID: 1, Title: "Welcome", SequenceNum: 1},
		{CourseID: 2, Title: "Day 2", SequenceNum: 2, TotalLocations: 2},
	}

	suite.mockCourseRepo.On("ListCourses", ctx).Return(courses, nil).Once()
	suite.mockProgressRepo.On("ListProgressByEmployee", ctx, employeeID).Return([]domain.UserProgress{}, nil).Once()
	suite.mockCourseRepo.On("ListLocationsByCourse", ctx, int64(1)).Return([]domain.Location{}, nil).Once()
	suite.mockCourseRepo.On("FindQuizByCourse", ctx, int64(1)).Return(&domain.Quiz{CourseID: 1}, nil).Once()
	suite.mockProgressRepo.On("UpsertProgress", ctx, mock.MatchedBy(func(p domain.UserProgress) bool {
		return p.CourseID == 1 && p.Status == domain.StatusCompleted &&
			p.CompletedAt != nil && p.ApprovalStatus == domain.ApprovalPending
	})).Return(nil).Once()

	progress, err := suite.service.StartCourse(ctx, employeeID, 1)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCompleted, progress.Status)
	suite.Equal(domain.ApprovalPending, progress.ApprovalStatus)
	suite.mockProgressRepo.AssertExpectations(suite.T())
}

func (suite *ProgressionServiceTestSuite) TestStartCourse_EmptyCourseWithQuiz_StaysInProgress() {
	ctx := context.Background()
	employeeID := int64(42)
	courses := []domain.Course{{CourseID: 1, Title: "Welcome", SequenceNum: 1}}

	suite.mockCourseRepo.On("ListCourses", ctx).Return(courses, nil).Once()
	suite.mockProgressRepo.On("ListProgressByEmployee", ctx, employeeID).Return([]domain.UserProgress{}, nil).Once()
	suite.mockCourseRepo.On("ListLocationsByCourse", ctx, int64(1)).Return([]domain.Location{}, nil).Once()
	suite.mockCourseRepo.On("FindQuizByCourse", ctx, int64(1)).Return(quizWithTwoQuestions(), nil).Once()
	suite.mockProgressRepo.On("UpsertProgress", ctx, mock.MatchedBy(func(p domain.UserProgress) bool {
		return p.Status == domain.StatusInProgress && p.CompletedAt == nil
	})).Return(nil).Once()

	progress, err := suite.service.StartCourse(ctx, employeeID, 1)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusInProgress, progress.Status)
	suite.mockProgressRepo.AssertExpectations(suite.T())
}

func (suite *ProgressionServiceTestSuite) TestStartCourse_UnknownCourse_NotFound() {
	ctx := context.Background()
	employeeID := int64(42)

	suite.mockCourseRepo.On("ListCourses", ctx).Return(twoCourses(), nil).Once()
	suite.mockProgressRepo.On("ListProgressByEmployee", ctx, employeeID).Return([]domain.UserProgress{}, nil).Once()

	progress, err := suite.service.StartCourse(ctx, employeeID, 99)

	suite.Require().Error(err)
	suite.Nil(progress)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- RecordVisit ---

func (suite *ProgressionServiceTestSuite) TestRecordVisit_FirstLocation_Success() {
	ctx := context.Background()
	employeeID := int64(42)
	location := &domain.Location{LocationID: 10, CourseID: 1, OrderIndex: 1}

	suite.mockCourseRepo.On("FindLocationByID", ctx, int64(10)).Return(location, nil).Once()
	suite.mockCourseRepo.On("ListCourses", ctx).Return(twoCourses(), nil).Once()
	suite.mockProgressRepo.On("ListProgressByEmployee", ctx, employeeID).Return([]domain.UserProgress{}, nil).Once()
	suite.mockCourseRepo.On("FindCourseByID", ctx, int64(1)).Return(&twoCourses()[0], nil).Once()
	suite.mockCourseRepo.On("ListLocationsByCourse", ctx, int64(1)).Return(twoLocations(1), nil).Once()
	suite.mockVisitRepo.On("ListVisitsForCourse", ctx, employeeID, int64(1)).Return([]domain.LocationVisit{}, nil).Once()
	suite.mockVisitRepo.On("SaveVisitAndProgress", ctx,
		mock.MatchedBy(func(v domain.LocationVisit) bool {
			return v.EmployeeID == employeeID && v.LocationID == 10
		}),
		mock.MatchedBy(func(p domain.UserProgress) bool {
			// first of two locations: course stays in progress
			return p.CourseID == 1 && p.Status == domain.StatusInProgress
		}),
	).Return(nil).Once()

	visit, err := suite.service.RecordVisit(ctx, employeeID, 10)

	suite.Require().NoError(err)
	suite.Require().NotNil(visit)
	suite.Equal(int64(10), visit.LocationID)
	suite.mockVisitRepo.AssertExpectations(suite.T())
}

func (suite *ProgressionServiceTestSuite) TestRecordVisit_AlreadyVisited_Duplicate() {
	ctx := context.Background()
	employeeID := int64(42)
	location := &domain.Location{LocationID: 10, CourseID: 1, OrderIndex: 1}

	suite.mockCourseRepo.On("FindLocationByID", ctx, int64(10)).Return(location, nil).Once()
	suite.mockCourseRepo.On("ListCourses", ctx).Return(twoCourses(), nil).Once()
	suite.mockProgressRepo.On("ListProgressByEmployee", ctx, employeeID).Return([]domain.UserProgress{}, nil).Once()
	suite.mockCourseRepo.On("FindCourseByID", ctx, int64(1)).Return(&twoCourses()[0], nil).Once()
	suite.mockCourseRepo.On("ListLocationsByCourse", ctx, int64(1)).Return(twoLocations(1), nil).Once()
	suite.mockVisitRepo.On("ListVisitsForCourse", ctx, employeeID, int64(1)).Return([]domain.LocationVisit{
		{EmployeeID: employeeID, LocationID: 10},
	}, nil).Once()

	visit, err := suite.service.RecordVisit(ctx, employeeID, 10)

	suite.Require().Error(err)
	suite.Nil(visit)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockVisitRepo.AssertNotCalled(suite.T(), "SaveVisitAndProgress", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProgressionServiceTestSuite) TestRecordVisit_LockedLocation_Forbidden() {
	ctx := context.Background()
	employeeID := int64(42)
	location := &domain.Location{LocationID: 11, CourseID: 1, OrderIndex: 2}

	suite.mockCourseRepo.On("FindLocationByID", ctx, int64(11)).Return(location, nil).Once()
	suite.mockCourseRepo.On("ListCourses", ctx).Return(twoCourses(), nil).Once()
	suite.mockProgressRepo.On("ListProgressByEmployee", ctx, employeeID).Return([]domain.UserProgress{}, nil).Once()
	suite.mockCourseRepo.On("FindCourseByID", ctx, int64(1)).Return(&twoCourses()[0], nil).Once()
	suite.mockCourseRepo.On("ListLocationsByCourse", ctx, int64(1)).Return(twoLocations(1), nil).Once()
	suite.mockVisitRepo.On("ListVisitsForCourse", ctx, employeeID, int64(1)).Return([]domain.LocationVisit{}, nil).Once()

	visit, err := suite.service.RecordVisit(ctx, employeeID, 11)

	suite.Require().Error(err)
	suite.Nil(visit)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockVisitRepo.AssertNotCalled(suite.T(), "SaveVisitAndProgress", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProgressionServiceTestSuite) TestRecordVisit_LastLocation_QuizlessCourseCompletes() {
	ctx := context.Background()
	employeeID := int64(42)
	location := &domain.Location{LocationID: 11, CourseID: 1, OrderIndex: 2}
	startedAt := time.Now().Add(-time.Hour)
	existing := domain.UserProgress{
		EmployeeID: employeeID, CourseID: 1,
		Status: domain.StatusInProgress, StartedAt: &startedAt,
	}

	suite.mockCourseRepo.On("FindLocationByID", ctx, int64(11)).Return(location, nil).Once()
	suite.mockCourseRepo.On("ListCourses", ctx).Return(twoCourses(), nil).Once()
	suite.mockProgressRepo.On("ListProgressByEmployee", ctx, employeeID).Return([]domain.UserProgress{existing}, nil).Once()
	suite.mockCourseRepo.On("FindCourseByID", ctx, int64(1)).Return(&twoCourses()[0], nil).Once()
	suite.mockCourseRepo.On("ListLocationsByCourse", ctx, int64(1)).Return(twoLocations(1), nil).Once()
	suite.mockVisitRepo.On("ListVisitsForCourse", ctx, employeeID, int64(1)).Return([]domain.LocationVisit{
		{EmployeeID: employeeID, LocationID: 10},
	}, nil).Once()
	suite.mockCourseRepo.On("FindQuizByCourse", ctx, int64(1)).Return(&domain.Quiz{CourseID: 1, Questions: []domain.QuizQuestion{}}, nil).Once()
	suite.mockVisitRepo.On("SaveVisitAndProgress", ctx,
		mock.AnythingOfType("domain.LocationVisit"),
		mock.MatchedBy(func(p domain.UserProgress) bool {
			return p.Status == domain.StatusCompleted &&
				p.CompletedAt != nil &&
				p.ApprovalStatus == domain.ApprovalPending &&
				p.StartedAt == &startedAt
		}),
	).Return(nil).Once()

	visit, err := suite.service.RecordVisit(ctx, employeeID, 11)

	suite.Require().NoError(err)
	suite.Require().NotNil(visit)
	suite.mockVisitRepo.AssertExpectations(suite.T())
}

func (suite *ProgressionServiceTestSuite) TestRecordVisit_LastLocation_QuizCourseStaysInProgress() {
	ctx := context.Background()
	employeeID := int64(42)
	location := &domain.Location{LocationID: 11, CourseID: 1, OrderIndex: 2}

	suite.mockCourseRepo.On("FindLocationByID", ctx, int64(11)).Return(location, nil).Once()
	suite.mockCourseRepo.On("ListCourses", ctx).Return(twoCourses(), nil).Once()
	suite.mockProgressRepo.On("ListProgressByEmployee", ctx, employeeID).Return([]domain.UserProgress{}, nil).Once()
	suite.mockCourseRepo.On("FindCourseByID", ctx, int64(1)).Return(&twoCourses()[0], nil).Once()
	suite.mockCourseRepo.On("ListLocationsByCourse", ctx, int64(1)).Return(twoLocations(1), nil).Once()
	suite.mockVisitRepo.On("ListVisitsForCourse", ctx, employeeID, int64(1)).Return([]domain.LocationVisit{
		{EmployeeID: employeeID, LocationID: 10},
	}, nil).Once()
	suite.mockCourseRepo.On("FindQuizByCourse", ctx, int64(1)).Return(&domain.Quiz{
		CourseID:  1,
		Questions: []domain.QuizQuestion{{QuestionID: "q1", CourseID: 1, CorrectOption: 0}},
	}, nil).Once()
	suite.mockVisitRepo.On("SaveVisitAndProgress", ctx,
		mock.AnythingOfType("domain.LocationVisit"),
		mock.MatchedBy(func(p domain.UserProgress) bool {
			return p.Status == domain.StatusInProgress && p.ApprovalStatus == domain.ApprovalNone
		}),
	).Return(nil).Once()

	_, err := suite.service.RecordVisit(ctx, employeeID, 11)

	suite.Require().NoError(err)
	suite.mockVisitRepo.AssertExpectations(suite.T())
}

// --- SubmitQuiz ---

func quizWithTwoQuestions() *domain.Quiz {
	return &domain.Quiz{
		CourseID: 1,
		Questions: []domain.QuizQuestion{
			{QuestionID: "q1", CourseID: 1, Prompt: "First?", Options: []string{"a", "b"}, CorrectOption: 0, Position: 1},
			{QuestionID: "q2", CourseID: 1, Prompt: "Second?", Options: []string{"a", "b"}, CorrectOption: 1, Position: 2},
		},
		TimeLimitMinutes: 10,
	}
}

func allVisits(employeeID int64) []domain.LocationVisit {
	return []domain.LocationVisit{
		{EmployeeID: employeeID, LocationID: 10},
		{EmployeeID: employeeID, LocationID: 11},
	}
}

func (suite *ProgressionServiceTestSuite) TestSubmitQuiz_NoQuestions_ValidationError() {
	ctx := context.Background()
	employeeID := int64(42)

	suite.mockCourseRepo.On("FindQuizByCourse", ctx, int64(1)).Return(&domain.Quiz{CourseID: 1, Questions: []domain.QuizQuestion{}}, nil).Once()

	result, err := suite.service.SubmitQuiz(ctx, employeeID, 1, map[string]int{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ProgressionServiceTestSuite) TestSubmitQuiz_PassWithAllVisited_Completes() {
	ctx := context.Background()
	employeeID := int64(42)
	startedAt := time.Now().Add(-2 * time.Hour)
	existing := &domain.UserProgress{
		EmployeeID: employeeID, CourseID: 1,
		Status: domain.StatusInProgress, StartedAt: &startedAt,
		ApprovalStatus: domain.ApprovalNone,
	}

	suite.mockCourseRepo.On("FindQuizByCourse", ctx, int64(1)).Return(quizWithTwoQuestions(), nil).Once()
	suite.mockCourseRepo.On("ListLocationsByCourse", ctx, int64(1)).Return(twoLocations(1), nil).Once()
	suite.mockVisitRepo.On("ListVisitsForCourse", ctx, employeeID, int64(1)).Return(allVisits(employeeID), nil).Once()
	suite.mockVisitRepo.On("UpdateVisitScore", ctx, employeeID, int64(11), 100).Return(nil).Once()
	suite.mockProgressRepo.On("FindProgress", ctx, employeeID, int64(1)).Return(existing, nil).Once()
	suite.mockProgressRepo.On("UpsertProgress", ctx, mock.MatchedBy(func(p domain.UserProgress) bool {
		return p.Status == domain.StatusCompleted &&
			p.ApprovalStatus == domain.ApprovalPending &&
			p.StartedAt == &startedAt &&
			p.CompletedAt != nil
	})).Return(nil).Once()

	result, err := suite.service.SubmitQuiz(ctx, employeeID, 1, map[string]int{"q1": 0, "q2": 1})

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(100, result.Score)
	suite.True(result.Passed)
	suite.True(result.CourseCompleted)
	suite.mockProgressRepo.AssertExpectations(suite.T())
}

func (suite *ProgressionServiceTestSuite) TestSubmitQuiz_Fail_NotCompleted() {
	ctx := context.Background()
	employeeID := int64(42)

	suite.mockCourseRepo.On("FindQuizByCourse", ctx, int64(1)).Return(quizWithTwoQuestions(), nil).Once()
	suite.mockCourseRepo.On("ListLocationsByCourse", ctx, int64(1)).Return(twoLocations(1), nil).Once()
	suite.mockVisitRepo.On("ListVisitsForCourse", ctx, employeeID, int64(1)).Return(allVisits(employeeID), nil).Once()
	suite.mockVisitRepo.On("UpdateVisitScore", ctx, employeeID, int64(11), 50).Return(nil).Once()

	result, err := suite.service.SubmitQuiz(ctx, employeeID, 1, map[string]int{"q1": 0, "q2": 0})

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(50, result.Score)
	suite.False(result.Passed)
	suite.False(result.CourseCompleted)
	suite.mockProgressRepo.AssertNotCalled(suite.T(), "UpsertProgress", mock.Anything, mock.Anything)
}

func (suite *ProgressionServiceTestSuite) TestSubmitQuiz_MissingVisits_NotCompleted() {
	ctx := context.Background()
	employeeID := int64(42)

	suite.mockCourseRepo.On("FindQuizByCourse", ctx, int64(1)).Return(quizWithTwoQuestions(), nil).Once()
	suite.mockCourseRepo.On("ListLocationsByCourse", ctx, int64(1)).Return(twoLocations(1), nil).Once()
	suite.mockVisitRepo.On("ListVisitsForCourse", ctx, employeeID, int64(1)).Return([]domain.LocationVisit{
		{EmployeeID: employeeID, LocationID: 10},
	}, nil).Once()

	result, err := suite.service.SubmitQuiz(ctx, employeeID, 1, map[string]int{"q1": 0, "q2": 1})

	suite.Require().NoError(err)
	suite.True(result.Passed)
	suite.False(result.CourseCompleted)
	suite.mockProgressRepo.AssertNotCalled(suite.T(), "UpsertProgress", mock.Anything, mock.Anything)
}

func (suite *ProgressionServiceTestSuite) TestSubmitQuiz_Repass_KeepsAdminDecision() {
	ctx := context.Background()
	employeeID := int64(42)
	startedAt := time.Now().Add(-48 * time.Hour)
	decidedAt := time.Now().Add(-24 * time.Hour)
	adminID := "admin-profile-id"
	existing := &domain.UserProgress{
		EmployeeID: employeeID, CourseID: 1,
		Status: domain.StatusCompleted, StartedAt: &startedAt, CompletedAt: &decidedAt,
		ApprovalStatus: domain.ApprovalApproved, ApprovedBy: &adminID, ApprovedAt: &decidedAt,
	}

	suite.mockCourseRepo.On("FindQuizByCourse", ctx, int64(1)).Return(quizWithTwoQuestions(), nil).Once()
	suite.mockCourseRepo.On("ListLocationsByCourse", ctx, int64(1)).Return(twoLocations(1), nil).Once()
	suite.mockVisitRepo.On("ListVisitsForCourse", ctx, employeeID, int64(1)).Return(allVisits(employeeID), nil).Once()
	suite.mockVisitRepo.On("UpdateVisitScore", ctx, employeeID, int64(11), 100).Return(nil).Once()
	suite.mockProgressRepo.On("FindProgress", ctx, employeeID, int64(1)).Return(existing, nil).Once()
	suite.mockProgressRepo.On("UpsertProgress", ctx, mock.MatchedBy(func(p domain.UserProgress) bool {
		return p.ApprovalStatus == domain.ApprovalApproved &&
			p.ApprovedBy == &adminID &&
			p.CompletedAt == &decidedAt
	})).Return(nil).Once()

	result, err := suite.service.SubmitQuiz(ctx, employeeID, 1, map[string]int{"q1": 0, "q2": 1})

	suite.Require().NoError(err)
	suite.True(result.CourseCompleted)
	suite.mockProgressRepo.AssertExpectations(suite.T())
}

func TestProgressionService(t *testing.T) {
	suite.Run(t, new(ProgressionServiceTestSuite))
}
