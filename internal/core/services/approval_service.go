package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wandermart/onboarding_backend/internal/apperrors"
	"github.com/wandermart/onboarding_backend/internal/core/domain"
	portsrepo "github.com/wandermart/onboarding_backend/internal/core/ports/repositories"
	portssvc "github.com/wandermart/onboarding_backend/internal/core/ports/services"
	"github.com/wandermart/onboarding_backend/internal/utils"
)

type approvalService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
	progressRepo portsrepo.ProgressRepositoryFacade
	courseRepo   portsrepo.CourseRepositoryFacade
	mailer       *utils.Mailer
}

// NewApprovalService creates the admin review workflow service.
func NewApprovalService(
	employeeRepo portsrepo.EmployeeRepositoryFacade,
	progressRepo portsrepo.ProgressRepositoryFacade,
	courseRepo portsrepo.CourseRepositoryFacade,
	mailer *utils.Mailer,
) portssvc.ApprovalSvcFacade {
	return &approvalService{
		employeeRepo: employeeRepo,
		progressRepo: progressRepo,
		courseRepo:   courseRepo,
		mailer:       mailer,
	}
}

var _ portssvc.ApprovalSvcFacade = (*approvalService)(nil)

func (s *approvalService) ListEmployeeOverview(ctx context.Context) ([]domain.EmployeeOverview, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	overviews := make([]domain.EmployeeOverview, 0, len(employees))
	for _, e := range employees {
		role, err := s.employeeRepo.FindRoleByEmployeeID(ctx, e.EmployeeID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				return nil, err
			}
			role = domain.RoleTrainee
		}

		progress, err := s.progressRepo.ListProgressByEmployee(ctx, e.EmployeeID)
		if err != nil {
			return nil, err
		}

		completed := 0
		for _, p := range progress {
			if p.Status == domain.StatusCompleted {
				completed++
			}
		}
		aggregate, _ := domain.SummarizeApproval(progress)

		overviews = append(overviews, domain.EmployeeOverview{
			Employee:         e,
			Role:             role,
			Progress:         progress,
			CompletedCourses: completed,
			AggregateStatus:  aggregate,
		})
	}
	return overviews, nil
}

func (s *approvalService) Approve(ctx context.Context, adminProfileID string, employeeID, courseID int64) error {
	return s.decide(ctx, adminProfileID, employeeID, courseID, domain.ApprovalApproved)
}

func (s *approvalService) Reject(ctx context.Context, adminProfileID string, employeeID, courseID int64) error {
	return s.decide(ctx, adminProfileID, employeeID, courseID, domain.ApprovalRejected)
}

// decide applies an approval decision. Repeating a decision is a harmless
// rewrite of the same state.
func (s *approvalService) decide(ctx context.Context, adminProfileID string, employeeID, courseID int64, status domain.ApprovalStatus) error {
	now := time.Now()
	if err := s.progressRepo.UpdateApproval(ctx, employeeID, courseID, status, adminProfileID, now); err != nil {
		return err
	}

	s.LogInfo(ctx, "Approval decision recorded",
		"employee_id", employeeID,
		"course_id", courseID,
		"decision", string(status),
	)

	s.notify(ctx, employeeID, courseID, status)
	return nil
}

// notify sends the decision mail best-effort; delivery failure never fails
// the decision itself.
func (s *approvalService) notify(ctx context.Context, employeeID, courseID int64, status domain.ApprovalStatus) {
	if !s.mailer.Enabled() {
		return
	}

	employee, err := s.employeeRepo.FindEmployeeByEmployeeID(ctx, employeeID)
	if err != nil {
		s.LogWarn(ctx, "Skipping decision mail, profile lookup failed", "employee_id", employeeID, "error", err.Error())
		return
	}

	courseTitle := fmt.Sprintf("course %d", courseID)
	if course, err := s.courseRepo.FindCourseByID(ctx, courseID); err == nil {
		courseTitle = course.Title
	}

	var subject, body string
	switch status {
	case domain.ApprovalApproved:
		subject = "Onboarding course approved"
		body = fmt.Sprintf("Hi %s,\n\nYour completion of %q has been approved. The next course is now available.\n", employee.FirstName, courseTitle)
	case domain.ApprovalRejected:
		subject = "Onboarding course needs another look"
		body = fmt.Sprintf("Hi %s,\n\nYour completion of %q was not approved. Please contact your onboarding coordinator.\n", employee.FirstName, courseTitle)
	default:
		return
	}

	if err := s.mailer.Send(employee.Email, subject, body); err != nil {
		s.LogWarn(ctx, "Failed to send decision mail", "employee_id", employeeID, "error", err.Error())
	}
}
