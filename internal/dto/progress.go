package dto

import (
	"time"

	"github.com/wandermart/onboarding_backend/internal/core/domain"
)

// ProgressResponse is one user_progress row.
type ProgressResponse struct {
	EmployeeID     int64      `json:"employeeID"`
	CourseID       int64      `json:"courseID"`
	Status         string     `json:"status"`
	StartedAt      *time.Time `json:"startedAt,omitempty"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	ApprovalStatus string     `json:"approvalStatus"`
	ApprovedBy     *string    `json:"approvedBy,omitempty"`
	ApprovedAt     *time.Time `json:"approvedAt,omitempty"`
}

// ToProgressResponse converts a domain.UserProgress to DTO.
func ToProgressResponse(p *domain.UserProgress) ProgressResponse {
	approval := string(domain.ApprovalNone)
	if p.ApprovalStatus != "" {
		approval = string(p.ApprovalStatus)
	}
	return ProgressResponse{
		EmployeeID:     p.EmployeeID,
		CourseID:       p.CourseID,
		Status:         string(p.Status),
		StartedAt:      p.StartedAt,
		CompletedAt:    p.CompletedAt,
		ApprovalStatus: approval,
		ApprovedBy:     p.ApprovedBy,
		ApprovedAt:     p.ApprovedAt,
	}
}

// VisitResponse is one user_location_visits row.
type VisitResponse struct {
	EmployeeID int64     `json:"employeeID"`
	LocationID int64     `json:"locationID"`
	QuizScore  *int      `json:"quizScore,omitempty"`
	VisitedAt  time.Time `json:"visitedAt"`
}

// ToVisitResponse converts a domain.LocationVisit to DTO.
func ToVisitResponse(v *domain.LocationVisit) VisitResponse {
	return VisitResponse{
		EmployeeID: v.EmployeeID,
		LocationID: v.LocationID,
		QuizScore:  v.QuizScore,
		VisitedAt:  v.VisitedAt,
	}
}
