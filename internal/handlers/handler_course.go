package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wandermart/onboarding_backend/internal/core/domain"
	portssvc "github.com/wandermart/onboarding_backend/internal/core/ports/services"
	"github.com/wandermart/onboarding_backend/internal/dto"
	"github.com/wandermart/onboarding_backend/internal/middleware"
)

// courseHandler serves the curriculum read model.
type courseHandler struct {
	courseService   portssvc.CourseSvcFacade
	quizService     portssvc.QuizSvcFacade
	employeeService portssvc.EmployeeSvcFacade
}

func newCourseHandler(cs portssvc.CourseSvcFacade, qs portssvc.QuizSvcFacade, es portssvc.EmployeeSvcFacade) *courseHandler {
	return &courseHandler{
		courseService:   cs,
		quizService:     qs,
		employeeService: es,
	}
}

// registerCourseRoutes registers the curriculum read routes.
func registerCourseRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newCourseHandler(services.Course, services.Quiz, services.Employee)

	rg.GET("/departments", h.listDepartments)
	rg.GET("/departments/:id", h.getDepartment)
	rg.GET("/journey", h.getJourney)

	courses := rg.Group("/courses")
	{
		courses.GET("/:id/locations", h.getCourseLocations)
		courses.GET("/:id/quiz", h.getCourseQuiz)
	}

	rg.GET("/locations/:id", h.getLocationDetail)
}

// currentEmployee resolves the authenticated profile to its employee row.
func currentEmployee(c *gin.Context, employeeService portssvc.EmployeeSvcFacade) (*domain.Employee, bool) {
	profileID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	employee, err := employeeService.GetEmployeeByProfileID(c.Request.Context(), profileID)
	if err != nil {
		respondWithError(c, err)
		return nil, false
	}
	return employee, true
}

// pathID parses a numeric path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + name + " parameter"})
		return 0, false
	}
	return id, true
}

// listDepartments godoc
// @Summary List departments
// @Tags courses
// @Produce json
// @Success 200 {object} dto.ListDepartmentsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /departments [get]
func (h *courseHandler) listDepartments(c *gin.Context) {
	departments, err := h.courseService.ListDepartments(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListDepartmentsResponse(departments))
}

// getDepartment godoc
// @Summary Get a department
// @Tags courses
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} dto.DepartmentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /departments/{id} [get]
func (h *courseHandler) getDepartment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	department, err := h.courseService.GetDepartment(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDepartmentResponse(department))
}

// getJourney godoc
// @Summary Get the employee's course journey
// @Description Returns every course with the employee's derived unlock and completion state, ordered by day.
// @Tags courses
// @Produce json
// @Success 200 {object} dto.JourneyResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /journey [get]
func (h *courseHandler) getJourney(c *gin.Context) {
	employee, ok := currentEmployee(c, h.employeeService)
	if !ok {
		return
	}
	states, err := h.courseService.GetJourney(c.Request.Context(), employee.EmployeeID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJourneyResponse(states))
}

// getCourseLocations godoc
// @Summary Get a course's locations with visit state
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.CourseLocationsResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /courses/{id}/locations [get]
func (h *courseHandler) getCourseLocations(c *gin.Context) {
	employee, ok := currentEmployee(c, h.employeeService)
	if !ok {
		return
	}
	courseID, ok := pathID(c, "id")
	if !ok {
		return
	}
	course, states, err := h.courseService.GetCourseLocations(c.Request.Context(), employee.EmployeeID, courseID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCourseLocationsResponse(course, states))
}

// getCourseQuiz godoc
// @Summary Get a course's quiz
// @Description Returns the question set without the answer key.
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /courses/{id}/quiz [get]
func (h *courseHandler) getCourseQuiz(c *gin.Context) {
	courseID, ok := pathID(c, "id")
	if !ok {
		return
	}
	quiz, err := h.quizService.GetCourseQuiz(c.Request.Context(), courseID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToQuizResponse(quiz))
}

// getLocationDetail godoc
// @Summary Get a location's content payload
// @Description Returns the location detail with its hosting manager profile when one is assigned.
// @Tags courses
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} dto.LocationDetailResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations/{id} [get]
func (h *courseHandler) getLocationDetail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	location, manager, err := h.courseService.GetLocationDetail(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLocationDetailResponse(location, manager))
}
