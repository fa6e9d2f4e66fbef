package services

import (
	"context"

	"github.com/wandermart/onboarding_backend/internal/core/domain"
)

// ProgressionSvcFacade owns all progression writes: starting a course,
// recording location visits (order-enforced), and quiz submission with the
// completed/pending-approval transition.
type ProgressionSvcFacade interface {
	// StartCourse marks a course in-progress for the employee. Rejects
	// courses that are still locked by the unlock chain.
	StartCourse(ctx context.Context, employeeID, courseID int64) (*domain.UserProgress, error)

	// RecordVisit records that the employee completed a location's content
	// steps. Rejects visits to locked locations; duplicate visits are a
	// no-op returning the existing row semantics (ErrDuplicate).
	RecordVisit(ctx context.Context, employeeID, locationID int64) (*domain.LocationVisit, error)

	// SubmitQuiz scores the answers against the course's question set and,
	// on pass with all locations visited, transitions the course to
	// completed with approval pending.
	SubmitQuiz(ctx context.Context, employeeID, courseID int64, answers map[string]int) (*domain.QuizResult, error)
}
