package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wandermart/onboarding_backend/internal/core/domain"
	portssvc "github.com/wandermart/onboarding_backend/internal/core/ports/services"
)

// RequireAdmin creates a Gin middleware that only lets employees holding the
// admin role through. It must run after AuthMiddleware.
func RequireAdmin(employeeSvc portssvc.EmployeeReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		profileID, ok := GetUserIDFromContext(c)
		if !ok {
			logger.Warn("Admin check without authenticated profile")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		employee, err := employeeSvc.GetEmployeeByProfileID(c.Request.Context(), profileID)
		if err != nil {
			logger.Warn("Admin check failed to load profile", "error", err)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
			return
		}

		role, err := employeeSvc.GetRole(c.Request.Context(), employee.EmployeeID)
		if err != nil || role != domain.RoleAdmin {
			logger.Warn("Admin role denied", "employee_id", employee.EmployeeID)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
			return
		}

		c.Next()
	}
}
