package domain

import "time"

// ProgressStatus is the per-course completion state of an employee.
type ProgressStatus string

const (
	StatusNotStarted ProgressStatus = "not_started"
	StatusInProgress ProgressStatus = "in_progress"
	StatusCompleted  ProgressStatus = "completed"
)

// ApprovalStatus is the administrative sub-state attached to a completed
// course. It is only meaningful once Status == StatusCompleted.
type ApprovalStatus string

const (
	ApprovalNone     ApprovalStatus = "none"
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// UserProgress is one row per (employee, course): status, timestamps and the
// approval sub-state with approver identity.
type UserProgress struct {
	EmployeeID     int64          `json:"employeeID"`
	CourseID       int64          `json:"courseID"`
	Status         ProgressStatus `json:"status"`
	StartedAt      *time.Time     `json:"startedAt,omitempty"`
	CompletedAt    *time.Time     `json:"completedAt,omitempty"`
	ApprovalStatus ApprovalStatus `json:"approvalStatus"`
	ApprovedBy     *string        `json:"approvedBy,omitempty"` // profile ID of the deciding admin
	ApprovedAt     *time.Time     `json:"approvedAt,omitempty"`
	AuditFields
}

// LocationVisit is proof that an employee completed a location's content
// steps. Unique per (employee, location).
type LocationVisit struct {
	EmployeeID int64     `json:"employeeID"`
	LocationID int64     `json:"locationID"`
	QuizScore  *int      `json:"quizScore,omitempty"`
	VisitedAt  time.Time `json:"visitedAt"`
}

// SummarizeApproval reduces an employee's progress rows to a single aggregate
// status for the admin overview. Priority: pending > rejected > approved >
// none — any pending row dominates regardless of other rows' states.
func SummarizeApproval(rows []UserProgress) (ApprovalStatus, int) {
	var pending, rejected, approved int
	for _, r := range rows {
		switch r.ApprovalStatus {
		case ApprovalPending:
			pending++
		case ApprovalRejected:
			rejected++
		case ApprovalApproved:
			approved++
		}
	}
	switch {
	case pending > 0:
		return ApprovalPending, pending
	case rejected > 0:
		return ApprovalRejected, rejected
	case approved > 0:
		return ApprovalApproved, approved
	}
	return ApprovalNone, 0
}

// EmployeeOverview is one admin-dashboard row: a profile together with its
// progress rows and the derived aggregate approval status.
type EmployeeOverview struct {
	Employee         Employee       `json:"employee"`
	Role             AppRole        `json:"role"`
	Progress         []UserProgress `json:"progress"`
	CompletedCourses int            `json:"completedCourses"`
	AggregateStatus  ApprovalStatus `json:"aggregateStatus"`
}
