package dto

import (
	"encoding/json"

	"github.com/wandermart/onboarding_backend/internal/core/domain"
)

// DepartmentResponse defines data returned for a department.
type DepartmentResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageURL"`
	ManagerID   *int64 `json:"managerID,omitempty"`
}

// ToDepartmentResponse converts domain.Department to DTO.
func ToDepartmentResponse(d *domain.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		ManagerID:   d.ManagerID,
	}
}

// ListDepartmentsResponse wraps a list of departments.
type ListDepartmentsResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}

// ToListDepartmentsResponse converts a slice of domain.Department to DTO.
func ToListDepartmentsResponse(ds []domain.Department) ListDepartmentsResponse {
	list := make([]DepartmentResponse, len(ds))
	for i, d := range ds {
		list[i] = ToDepartmentResponse(&d)
	}
	return ListDepartmentsResponse{Departments: list}
}

// CourseStateResponse is one journey entry: the course plus the employee's
// derived state.
type CourseStateResponse struct {
	CourseID       int64  `json:"courseID"`
	DepartmentID   *int64 `json:"departmentID,omitempty"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	SequenceNum    int    `json:"sequenceNum"`
	TotalLocations int    `json:"totalLocations"`
	Status         string `json:"status"`
	ApprovalStatus string `json:"approvalStatus"`
	Unlocked       bool   `json:"unlocked"`
	Completed      bool   `json:"completed"`
}

// JourneyResponse is the employee's full course overview.
type JourneyResponse struct {
	Courses []CourseStateResponse `json:"courses"`
}

// ToJourneyResponse converts derived course states to the journey DTO.
func ToJourneyResponse(states []domain.CourseState) JourneyResponse {
	courses := make([]CourseStateResponse, len(states))
	for i, s := range states {
		status := string(domain.StatusNotStarted)
		approval := string(domain.ApprovalNone)
		if s.Progress != nil {
			status = string(s.Progress.Status)
			if s.Progress.ApprovalStatus != "" {
				approval = string(s.Progress.ApprovalStatus)
			}
		}
		courses[i] = CourseStateResponse{
			CourseID:       s.Course.CourseID,
			DepartmentID:   s.Course.DepartmentID,
			Title:          s.Course.Title,
			Description:    s.Course.Description,
			SequenceNum:    s.Course.SequenceNum,
			TotalLocations: s.Course.TotalLocations,
			Status:         status,
			ApprovalStatus: approval,
			Unlocked:       s.Unlocked,
			Completed:      s.Completed,
		}
	}
	return JourneyResponse{Courses: courses}
}

// LocationStateResponse is one location annotated with derived state.
type LocationStateResponse struct {
	LocationID  int64    `json:"locationID"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	OrderIndex  int      `json:"orderIndex"`
	Visited     bool     `json:"visited"`
	Unlocked    bool     `json:"unlocked"`
}

// CourseLocationsResponse is a course with its derived location states.
type CourseLocationsResponse struct {
	CourseID    int64                   `json:"courseID"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	SequenceNum int                     `json:"sequenceNum"`
	Locations   []LocationStateResponse `json:"locations"`
}

// ToCourseLocationsResponse converts a course and its location states to DTO.
func ToCourseLocationsResponse(course *domain.Course, states []domain.LocationState) CourseLocationsResponse {
	locations := make([]LocationStateResponse, len(states))
	for i, s := range states {
		locations[i] = LocationStateResponse{
			LocationID:  s.Location.LocationID,
			Name:        s.Location.Name,
			Description: s.Location.Description,
			Address:     s.Location.Address,
			Latitude:    s.Location.Latitude,
			Longitude:   s.Location.Longitude,
			OrderIndex:  s.Location.OrderIndex,
			Visited:     s.Visited,
			Unlocked:    s.Unlocked,
		}
	}
	return CourseLocationsResponse{
		CourseID:    course.CourseID,
		Title:       course.Title,
		Description: course.Description,
		SequenceNum: course.SequenceNum,
		Locations:   locations,
	}
}

// ManagerResponse is the host shown in a location's introductory content.
type ManagerResponse struct {
	EmployeeID  int64   `json:"employeeID"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Photo       *string `json:"photo,omitempty"`
}

// LocationDetailResponse is a location's full content payload plus its host.
type LocationDetailResponse struct {
	LocationID  int64            `json:"locationID"`
	CourseID    int64            `json:"courseID"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Address     string           `json:"address"`
	Latitude    *float64         `json:"latitude,omitempty"`
	Longitude   *float64         `json:"longitude,omitempty"`
	Content     json.RawMessage  `json:"content,omitempty"`
	OrderIndex  int              `json:"orderIndex"`
	Manager     *ManagerResponse `json:"manager,omitempty"`
}

// ToLocationDetailResponse converts a location and optional manager to DTO.
func ToLocationDetailResponse(l *domain.Location, m *domain.Manager) LocationDetailResponse {
	resp := LocationDetailResponse{
		LocationID:  l.LocationID,
		CourseID:    l.CourseID,
		Name:        l.Name,
		Description: l.Description,
		Address:     l.Address,
		Latitude:    l.Latitude,
		Longitude:   l.Longitude,
		Content:     l.Content,
		OrderIndex:  l.OrderIndex,
	}
	if m != nil {
		resp.Manager = &ManagerResponse{
			EmployeeID:  m.EmployeeID,
			Name:        m.Name,
			Description: m.Description,
			Photo:       m.Photo,
		}
	}
	return resp
}
