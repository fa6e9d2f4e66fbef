package dto

import (
	"time"

	"github.com/wandermart/onboarding_backend/internal/core/domain"
)

// EmployeeOverviewResponse is one admin-dashboard row.
type EmployeeOverviewResponse struct {
	ProfileID        string             `json:"profileID"`
	EmployeeID       int64              `json:"employeeID"`
	FirstName        string             `json:"firstName"`
	LastName         string             `json:"lastName"`
	Role             string             `json:"role"`
	JoinedAt         time.Time          `json:"joinedAt"`
	CompletedCourses int                `json:"completedCourses"`
	AggregateStatus  string             `json:"aggregateStatus"`
	PendingCourseID  *int64             `json:"pendingCourseID,omitempty"` // the row awaiting admin action, if any
	Progress         []ProgressResponse `json:"progress"`
}

// ToEmployeeOverviewResponse converts a domain.EmployeeOverview to DTO.
func ToEmployeeOverviewResponse(o *domain.EmployeeOverview) EmployeeOverviewResponse {
	progress := make([]ProgressResponse, len(o.Progress))
	var pendingCourseID *int64
	for i, p := range o.Progress {
		progress[i] = ToProgressResponse(&p)
		if p.ApprovalStatus == domain.ApprovalPending && pendingCourseID == nil {
			id := p.CourseID
			pendingCourseID = &id
		}
	}
	return EmployeeOverviewResponse{
		ProfileID:        o.Employee.ProfileID,
		EmployeeID:       o.Employee.EmployeeID,
		FirstName:        o.Employee.FirstName,
		LastName:         o.Employee.LastName,
		Role:             string(o.Role),
		JoinedAt:         o.Employee.CreatedAt,
		CompletedCourses: o.CompletedCourses,
		AggregateStatus:  string(o.AggregateStatus),
		PendingCourseID:  pendingCourseID,
		Progress:         progress,
	}
}

// ListEmployeeOverviewResponse wraps the admin dashboard rows.
type ListEmployeeOverviewResponse struct {
	Employees []EmployeeOverviewResponse `json:"employees"`
}

// ToListEmployeeOverviewResponse converts overview rows to DTO.
func ToListEmployeeOverviewResponse(rows []domain.EmployeeOverview) ListEmployeeOverviewResponse {
	list := make([]EmployeeOverviewResponse, len(rows))
	for i, row := range rows {
		list[i] = ToEmployeeOverviewResponse(&row)
	}
	return ListEmployeeOverviewResponse{Employees: list}
}

// BootstrapAdminResponse confirms the one-shot admin provisioning.
type BootstrapAdminResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Email   string `json:"email"`
}
