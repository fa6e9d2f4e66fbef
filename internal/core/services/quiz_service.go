package services

import (
	"context"

	"github.com/wandermart/onboarding_backend/internal/core/domain"
	portsrepo "github.com/wandermart/onboarding_backend/internal/core/ports/repositories"
	portssvc "github.com/wandermart/onboarding_backend/internal/core/ports/services"
)

type quizService struct {
	BaseService
	courseRepo portsrepo.CourseRepositoryFacade
}

// NewQuizService creates the quiz read service.
func NewQuizService(courseRepo portsrepo.CourseRepositoryFacade) portssvc.QuizSvcFacade {
	return &quizService{courseRepo: courseRepo}
}

var _ portssvc.QuizSvcFacade = (*quizService)(nil)

func (s *quizService) GetCourseQuiz(ctx context.Context, courseID int64) (*domain.Quiz, error) {
	return s.courseRepo.FindQuizByCourse(ctx, courseID)
}
