package services

import (
	"context"

	"github.com/wandermart/onboarding_backend/internal/core/domain"
)

// ApprovalSvcFacade is the admin review workflow: the dashboard overview and
// the approve/reject transitions. Route-level admin authorization happens in
// middleware; these operations trust the caller is an admin.
type ApprovalSvcFacade interface {
	// ListEmployeeOverview returns every profile with its progress rows and
	// the aggregate approval status (pending > rejected > approved > none).
	ListEmployeeOverview(ctx context.Context) ([]domain.EmployeeOverview, error)

	// Approve marks the (employee, course) progress row approved. Idempotent.
	Approve(ctx context.Context, adminProfileID string, employeeID, courseID int64) error

	// Reject marks the (employee, course) progress row rejected. Idempotent.
	Reject(ctx context.Context, adminProfileID string, employeeID, courseID int64) error
}
