package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/wandermart/onboarding_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	departmentRepo := newPgxDepartmentRepository(dbPool)
	courseRepo := newPgxCourseRepository(dbPool)
	employeeRepo := newPgxEmployeeRepository(dbPool)
	progressRepo := newPgxProgressRepository(dbPool)
	visitRepo := newPgxVisitRepository(dbPool)

	return portsrepo.RepositoryProvider{
		DepartmentRepo: departmentRepo,
		CourseRepo:     courseRepo,
		EmployeeRepo:   employeeRepo,
		ProgressRepo:   progressRepo,
		VisitRepo:      visitRepo,
	}
}
