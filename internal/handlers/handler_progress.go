package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/wandermart/onboarding_backend/internal/core/ports/services"
	"github.com/wandermart/onboarding_backend/internal/dto"
)

// progressHandler serves the progression write endpoints and the employee's
// own progress view.
type progressHandler struct {
	progressionService portssvc.ProgressionSvcFacade
	employeeService    portssvc.EmployeeSvcFacade
}

func newProgressHandler(ps portssvc.ProgressionSvcFacade, es portssvc.EmployeeSvcFacade) *progressHandler {
	return &progressHandler{
		progressionService: ps,
		employeeService:    es,
	}
}

// registerProgressRoutes registers the progression routes.
func registerProgressRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newProgressHandler(services.Progression, services.Employee)

	rg.POST("/courses/:id/start", h.startCourse)
	rg.POST("/courses/:id/quiz", h.submitQuiz)
	rg.POST("/locations/:id/visit", h.recordVisit)
	rg.GET("/me/role", h.myRole)
}

// startCourse godoc
// @Summary Start a course
// @Description Marks an unlocked course in progress. Starting twice is a no-op.
// @Tags progress
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.ProgressResponse
// @Failure 403 {object} ErrorResponse "Course locked"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /courses/{id}/start [post]
func (h *progressHandler) startCourse(c *gin.Context) {
	employee, ok := currentEmployee(c, h.employeeService)
	if !ok {
		return
	}
	courseID, ok := pathID(c, "id")
	if !ok {
		return
	}
	progress, err := h.progressionService.StartCourse(c.Request.Context(), employee.EmployeeID, courseID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProgressResponse(progress))
}

// recordVisit godoc
// @Summary Record a location visit
// @Description Records completion of a location's content steps. The previous location in the course must already be visited.
// @Tags progress
// @Produce json
// @Param id path int true "Location ID"
// @Success 201 {object} dto.VisitResponse
// @Failure 403 {object} ErrorResponse "Location locked"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already visited"
// @Security BearerAuth
// @Router /locations/{id}/visit [post]
func (h *progressHandler) recordVisit(c *gin.Context) {
	employee, ok := currentEmployee(c, h.employeeService)
	if !ok {
		return
	}
	locationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	visit, err := h.progressionService.RecordVisit(c.Request.Context(), employee.EmployeeID, locationID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToVisitResponse(visit))
}

// submitQuiz godoc
// @Summary Submit quiz answers
// @Description Scores the submitted answers. A passing score with every location visited completes the course and queues it for admin approval.
// @Tags progress
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param answers body dto.SubmitQuizRequest true "Question ID to selected option index"
// @Success 200 {object} dto.QuizResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /courses/{id}/quiz [post]
func (h *progressHandler) submitQuiz(c *gin.Context) {
	employee, ok := currentEmployee(c, h.employeeService)
	if !ok {
		return
	}
	courseID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	result, err := h.progressionService.SubmitQuiz(c.Request.Context(), employee.EmployeeID, courseID, req.Answers)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToQuizResultResponse(result))
}

// myRole godoc
// @Summary Get the authenticated employee's role
// @Tags progress
// @Produce json
// @Success 200 {object} dto.RoleResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/role [get]
func (h *progressHandler) myRole(c *gin.Context) {
	employee, ok := currentEmployee(c, h.employeeService)
	if !ok {
		return
	}
	role, err := h.employeeService.GetRole(c.Request.Context(), employee.EmployeeID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RoleResponse{EmployeeID: employee.EmployeeID, Role: role})
}
