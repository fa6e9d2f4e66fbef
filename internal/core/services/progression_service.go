package services

import (
	"context"
	"errors"
	"time"

	"github.com/wandermart/onboarding_backend/internal/apperrors"
	"github.com/wandermart/onboarding_backend/internal/core/domain"
	portsrepo "github.com/wandermart/onboarding_backend/internal/core/ports/repositories"
	portssvc "github.com/wandermart/onboarding_backend/internal/core/ports/services"
)

type progressionService struct {
	BaseService
	courseRepo   portsrepo.CourseRepositoryFacade
	progressRepo portsrepo.ProgressRepositoryFacade
	visitRepo    portsrepo.VisitRepositoryFacade
	courseSvc    portssvc.CourseSvcFacade
}

// NewProgressionService creates the service owning all progression writes.
func NewProgressionService(
	courseRepo portsrepo.CourseRepositoryFacade,
	progressRepo portsrepo.ProgressRepositoryFacade,
	visitRepo portsrepo.VisitRepositoryFacade,
	courseSvc portssvc.CourseSvcFacade,
) portssvc.ProgressionSvcFacade {
	return &progressionService{
		courseRepo:   courseRepo,
		progressRepo: progressRepo,
		visitRepo:    visitRepo,
		courseSvc:    courseSvc,
	}
}

var _ portssvc.ProgressionSvcFacade = (*progressionService)(nil)

// findCourseState resolves one course's derived state within the employee's
// journey.
func (s *progressionService) findCourseState(ctx context.Context, employeeID, courseID int64) (*domain.CourseState, error) {
	states, err := s.courseSvc.GetJourney(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	for i := range states {
		if states[i].Course.CourseID == courseID {
			return &states[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *progressionService) StartCourse(ctx context.Context, employeeID, courseID int64) (*domain.UserProgress, error) {
	state, err := s.findCourseState(ctx, employeeID, courseID)
	if err != nil {
		return nil, err
	}
	if !state.Unlocked {
		return nil, apperrors.NewForbiddenError("course is locked until the previous course is completed")
	}
	if state.Progress != nil {
		// Starting twice is a no-op; the existing row wins.
		return state.Progress, nil
	}

	now := time.Now()
	progress := domain.UserProgress{
		EmployeeID:     employeeID,
		CourseID:       courseID,
		Status:         domain.StatusInProgress,
		StartedAt:      &now,
		ApprovalStatus: domain.ApprovalNone,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	// A course with no locations and no quiz has nothing left to do: the row
	// lands completed right away so the next course unlocks.
	locations, err := s.courseRepo.ListLocationsByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		quiz, err := s.courseRepo.FindQuizByCourse(ctx, courseID)
		if err != nil {
			return nil, err
		}
		if len(quiz.Questions) == 0 {
			progress.Status = domain.StatusCompleted
			progress.CompletedAt = &now
			progress.ApprovalStatus = domain.ApprovalPending
		}
	}

	if err := s.progressRepo.UpsertProgress(ctx, progress); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Course started", "employee_id", employeeID, "course_id", courseID, "status", string(progress.Status))
	return &progress, nil
}

func (s *progressionService) RecordVisit(ctx context.Context, employeeID, locationID int64) (*domain.LocationVisit, error) {
	location, err := s.courseRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		return nil, err
	}

	courseState, err := s.findCourseState(ctx, employeeID, location.CourseID)
	if err != nil {
		return nil, err
	}
	if !courseState.Unlocked {
		return nil, apperrors.NewForbiddenError("course is locked until the previous course is completed")
	}

	_, locationStates, err := s.courseSvc.GetCourseLocations(ctx, employeeID, location.CourseID)
	if err != nil {
		return nil, err
	}
	var target *domain.LocationState
	visitedCount := 0
	for i := range locationStates {
		if locationStates[i].Visited {
			visitedCount++
		}
		if locationStates[i].Location.LocationID == locationID {
			target = &locationStates[i]
		}
	}
	if target == nil {
		return nil, apperrors.ErrNotFound
	}
	if target.Visited {
		return nil, apperrors.ErrDuplicate
	}
	if !target.Unlocked {
		return nil, apperrors.NewForbiddenError("location is locked until the previous location is visited")
	}

	now := time.Now()
	visit := domain.LocationVisit{
		EmployeeID: employeeID,
		LocationID: locationID,
		VisitedAt:  now,
	}

	progress := s.nextProgressAfterVisit(ctx, courseState, employeeID, location.CourseID, visitedCount+1, len(locationStates), now)

	// Visit row and progress update land in one transaction.
	if err := s.visitRepo.SaveVisitAndProgress(ctx, visit, progress); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Location visit recorded",
		"employee_id", employeeID,
		"location_id", locationID,
		"course_id", location.CourseID,
		"course_status", string(progress.Status),
	)
	return &visit, nil
}

// nextProgressAfterVisit computes the progress row to write alongside a new
// visit. A quizless course completes the moment its last location is visited;
// a course with a quiz stays in progress until the quiz is passed.
func (s *progressionService) nextProgressAfterVisit(ctx context.Context, state *domain.CourseState, employeeID, courseID int64, visitedAfter, totalLocations int, now time.Time) domain.UserProgress {
	progress := domain.UserProgress{
		EmployeeID:     employeeID,
		CourseID:       courseID,
		Status:         domain.StatusInProgress,
		StartedAt:      &now,
		ApprovalStatus: domain.ApprovalNone,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if state.Progress != nil {
		progress.StartedAt = state.Progress.StartedAt
		progress.ApprovalStatus = state.Progress.ApprovalStatus
		progress.ApprovedBy = state.Progress.ApprovedBy
		progress.ApprovedAt = state.Progress.ApprovedAt
		progress.CreatedAt = state.Progress.CreatedAt
	}

	if visitedAfter < totalLocations {
		return progress
	}

	quiz, err := s.courseRepo.FindQuizByCourse(ctx, courseID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load quiz while finishing visits", "course_id", courseID)
		return progress
	}
	if len(quiz.Questions) > 0 {
		return progress
	}

	progress.Status = domain.StatusCompleted
	progress.CompletedAt = &now
	progress.ApprovalStatus = domain.ApprovalPending
	return progress
}

func (s *progressionService) SubmitQuiz(ctx context.Context, employeeID, courseID int64, answers map[string]int) (*domain.QuizResult, error) {
	quiz, err := s.courseRepo.FindQuizByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	score, err := domain.ScoreQuiz(quiz.Questions, answers)
	if err != nil {
		if errors.Is(err, domain.ErrNoQuestions) {
			return nil, apperrors.NewValidationFailedError("course has no quiz")
		}
		return nil, err
	}
	passed := domain.Passed(score)

	locations, err := s.courseRepo.ListLocationsByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	visitRows, err := s.visitRepo.ListVisitsForCourse(ctx, employeeID, courseID)
	if err != nil {
		return nil, err
	}
	visited := make(map[int64]domain.LocationVisit, len(visitRows))
	for _, v := range visitRows {
		visited[v.LocationID] = v
	}

	completed := domain.CourseCompleted(locations, visited, true, passed)

	// The score is pinned to the course's final visited location.
	if len(locations) > 0 {
		last := locations[len(locations)-1]
		if _, ok := visited[last.LocationID]; ok {
			if err := s.visitRepo.UpdateVisitScore(ctx, employeeID, last.LocationID, score); err != nil {
				s.LogWarn(ctx, "Failed to store quiz score on visit", "location_id", last.LocationID, "error", err.Error())
			}
		}
	}

	if completed {
		now := time.Now()
		existing, err := s.progressRepo.FindProgress(ctx, employeeID, courseID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}

		progress := domain.UserProgress{
			EmployeeID:     employeeID,
			CourseID:       courseID,
			Status:         domain.StatusCompleted,
			StartedAt:      &now,
			CompletedAt:    &now,
			ApprovalStatus: domain.ApprovalPending,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
		if existing != nil {
			progress.StartedAt = existing.StartedAt
			progress.CreatedAt = existing.CreatedAt
			// A course already decided by an admin keeps its decision; a
			// re-submission never reopens review.
			if existing.ApprovalStatus == domain.ApprovalApproved || existing.ApprovalStatus == domain.ApprovalRejected {
				progress.ApprovalStatus = existing.ApprovalStatus
				progress.ApprovedBy = existing.ApprovedBy
				progress.ApprovedAt = existing.ApprovedAt
			}
			if existing.CompletedAt != nil {
				progress.CompletedAt = existing.CompletedAt
			}
		}

		if err := s.progressRepo.UpsertProgress(ctx, progress); err != nil {
			return nil, err
		}
		s.LogInfo(ctx, "Course completed via quiz", "employee_id", employeeID, "course_id", courseID, "score", score)
	}

	return &domain.QuizResult{
		Score:           score,
		Passed:          passed,
		CourseCompleted: completed,
	}, nil
}
