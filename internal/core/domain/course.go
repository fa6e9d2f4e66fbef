package domain

import "encoding/json"

// Course is one day's curriculum within the onboarding program, composed of
// ordered locations. Course ordering is total and gapless within a
// department's curriculum (enforced by the unique sequence_num constraint and
// validated again on read).
type Course struct {
	CourseID       int64  `json:"courseID"`
	DepartmentID   *int64 `json:"departmentID,omitempty"` // FK -> departments.id
	Title          string `json:"title"`
	Description    string `json:"description"`
	SequenceNum    int    `json:"sequenceNum"` // 1-based day number
	TotalLocations int    `json:"totalLocations"`
	AuditFields
}

// Location is a physical stop within a course with its own content payload
// and an order index unique within the course.
type Location struct {
	LocationID  int64           `json:"locationID"`
	CourseID    int64           `json:"courseID"` // FK -> courses.course_id
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Address     string          `json:"address"`
	Latitude    *float64        `json:"latitude,omitempty"`
	Longitude   *float64        `json:"longitude,omitempty"`
	Content     json.RawMessage `json:"content,omitempty"` // free-form structured content steps
	OrderIndex  int             `json:"orderIndex"`
	AuditFields
}
