package services

import (
	portsrepo "github.com/wandermart/onboarding_backend/internal/core/ports/repositories"
	portssvc "github.com/wandermart/onboarding_backend/internal/core/ports/services"
	"github.com/wandermart/onboarding_backend/internal/platform/config"
	"github.com/wandermart/onboarding_backend/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Employee = NewEmployeeService(repos.EmployeeRepo)
	container.Course = NewCourseService(repos.DepartmentRepo, repos.CourseRepo, repos.ProgressRepo, repos.VisitRepo)
	container.Quiz = NewQuizService(repos.CourseRepo)
	container.Progression = NewProgressionService(repos.CourseRepo, repos.ProgressRepo, repos.VisitRepo, container.Course)

	mailer := utils.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	container.Approval = NewApprovalService(repos.EmployeeRepo, repos.ProgressRepo, repos.CourseRepo, mailer)

	container.Chat = NewChatService(cfg)

	container.TokenService = NewTokenService(cfg, container.Employee)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg, container.Employee)

	return container
}
