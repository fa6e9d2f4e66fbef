package domain

import "time"

// Department is an organizational unit hosting part of the onboarding program.
// Administrator-managed static data; changes rarely.
type Department struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageURL"`
	ManagerID   *int64    `json:"managerID,omitempty"` // FK -> managers.employee_id
	CreatedAt   time.Time `json:"createdAt"`
}

// Manager is the named profile shown as the host of a location's
// introductory content.
type Manager struct {
	EmployeeID  int64   `json:"employeeID"` // Primary key
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Photo       *string `json:"photo,omitempty"`
}
