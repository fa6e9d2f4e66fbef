package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	DepartmentRepo DepartmentReader
	CourseRepo     CourseRepositoryFacade
	EmployeeRepo   EmployeeRepositoryFacade
	ProgressRepo   ProgressRepositoryFacade
	VisitRepo      VisitRepositoryFacade
}
