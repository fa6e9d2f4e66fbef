package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/wandermart/onboarding_backend/internal/core/ports/services"
	"github.com/wandermart/onboarding_backend/internal/dto"
	"github.com/wandermart/onboarding_backend/internal/middleware"
	"github.com/wandermart/onboarding_backend/internal/platform/config"
)

// adminHandler serves the admin review dashboard and approval decisions.
type adminHandler struct {
	approvalService portssvc.ApprovalSvcFacade
	employeeService portssvc.EmployeeSvcFacade
	cfg             *config.Config
}

func newAdminHandler(as portssvc.ApprovalSvcFacade, es portssvc.EmployeeSvcFacade, cfg *config.Config) *adminHandler {
	return &adminHandler{
		approvalService: as,
		employeeService: es,
		cfg:             cfg,
	}
}

// registerAdminRoutes registers the admin-guarded routes.
func registerAdminRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAdminHandler(services.Approval, services.Employee, cfg)

	admin := rg.Group("/admin", middleware.RequireAdmin(services.Employee))
	{
		admin.GET("/employees", h.listEmployees)
		admin.POST("/employees/:employeeID/courses/:courseID/approve", h.approve)
		admin.POST("/employees/:employeeID/courses/:courseID/reject", h.reject)
	}
}

// registerBootstrapRoute registers the public one-shot admin provisioning
// endpoint. It is public because it must work before any admin exists; the
// configured credentials are the gate.
func registerBootstrapRoute(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAdminHandler(services.Approval, services.Employee, cfg)
	r.POST("/api/v1/admin/bootstrap", h.bootstrap)
}

// listEmployees godoc
// @Summary List all employees with progress
// @Description Admin dashboard rows: every profile with its progress and the aggregate approval status (pending > rejected > approved > none).
// @Tags admin
// @Produce json
// @Success 200 {object} dto.ListEmployeeOverviewResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/employees [get]
func (h *adminHandler) listEmployees(c *gin.Context) {
	overviews, err := h.approvalService.ListEmployeeOverview(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListEmployeeOverviewResponse(overviews))
}

func (h *adminHandler) decide(c *gin.Context, approve bool) {
	adminProfileID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	employeeID, ok := pathID(c, "employeeID")
	if !ok {
		return
	}
	courseID, ok := pathID(c, "courseID")
	if !ok {
		return
	}

	var err error
	if approve {
		err = h.approvalService.Approve(c.Request.Context(), adminProfileID, employeeID, courseID)
	} else {
		err = h.approvalService.Reject(c.Request.Context(), adminProfileID, employeeID, courseID)
	}
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// approve godoc
// @Summary Approve a completed course
// @Description Marks the employee's completed course approved. Idempotent.
// @Tags admin
// @Param employeeID path int true "Employee number"
// @Param courseID path int true "Course ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/employees/{employeeID}/courses/{courseID}/approve [post]
func (h *adminHandler) approve(c *gin.Context) {
	h.decide(c, true)
}

// reject godoc
// @Summary Reject a completed course
// @Description Marks the employee's completed course rejected. Idempotent.
// @Tags admin
// @Param employeeID path int true "Employee number"
// @Param courseID path int true "Course ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/employees/{employeeID}/courses/{courseID}/reject [post]
func (h *adminHandler) reject(c *gin.Context) {
	h.decide(c, false)
}

// bootstrap godoc
// @Summary Provision the configured admin account
// @Description Creates the admin credential and role from configuration. Returns 409 once an admin already exists.
// @Tags admin
// @Produce json
// @Success 201 {object} dto.BootstrapAdminResponse
// @Failure 400 {object} ErrorResponse "Credentials not configured"
// @Failure 409 {object} ErrorResponse "Admin already exists"
// @Router /admin/bootstrap [post]
func (h *adminHandler) bootstrap(c *gin.Context) {
	employee, err := h.employeeService.BootstrapAdmin(
		c.Request.Context(),
		h.cfg.BootstrapAdminEmail,
		h.cfg.BootstrapAdminPassword,
		"Admin",
		"",
	)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.BootstrapAdminResponse{
		Success: true,
		Message: "Admin account provisioned",
		Email:   employee.Email,
	})
}
