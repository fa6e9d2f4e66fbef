package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wandermart/onboarding_backend/internal/core/domain"
)

func courseSeq(n int) []domain.Course {
	courses := make([]domain.Course, n)
	for i := range courses {
		courses[i] = domain.Course{CourseID: int64(i + 1), SequenceNum: i + 1}
	}
	return courses
}

func locationSeq(courseID int64, n int) []domain.Location {
	locations := make([]domain.Location, n)
	for i := range locations {
		locations[i] = domain.Location{LocationID: int64(i + 1), CourseID: courseID, OrderIndex: i + 1}
	}
	return locations
}

func progressRow(courseID int64, status domain.ProgressStatus) domain.UserProgress {
	return domain.UserProgress{EmployeeID: 1, CourseID: courseID, Status: status}
}

func TestDeriveCourseStates(t *testing.T) {
	tests := []struct {
		name          string
		progress      map[int64]domain.UserProgress
		wantUnlocked  []bool
		wantCompleted []bool
	}{
		{
			name:          "no progress unlocks only the first course",
			progress:      map[int64]domain.UserProgress{},
			wantUnlocked:  []bool{true, false, false},
			wantCompleted: []bool{false, false, false},
		},
		{
			name: "completed first course unlocks the second",
			progress: map[int64]domain.UserProgress{
				1: progressRow(1, domain.StatusCompleted),
			},
			wantUnlocked:  []bool{true, true, false},
			wantCompleted: []bool{true, false, false},
		},
		{
			name: "in-progress course does not unlock its successor",
			progress: map[int64]domain.UserProgress{
				1: progressRow(1, domain.StatusInProgress),
			},
			wantUnlocked:  []bool{true, false, false},
			wantCompleted: []bool{false, false, false},
		},
		{
			name: "pending approval does not block the next course",
			progress: map[int64]domain.UserProgress{
				1: {EmployeeID: 1, CourseID: 1, Status: domain.StatusCompleted, ApprovalStatus: domain.ApprovalPending},
			},
			wantUnlocked:  []bool{true, true, false},
			wantCompleted: []bool{true, false, false},
		},
		{
			name: "gap in completion keeps later courses locked",
			progress: map[int64]domain.UserProgress{
				2: progressRow(2, domain.StatusCompleted),
			},
			wantUnlocked:  []bool{true, false, true},
			wantCompleted: []bool{false, true, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			states := domain.DeriveCourseStates(courseSeq(3), tt.progress)
			for i, s := range states {
				assert.Equal(t, tt.wantUnlocked[i], s.Unlocked, "course %d unlocked", i+1)
				assert.Equal(t, tt.wantCompleted[i], s.Completed, "course %d completed", i+1)
			}
		})
	}
}

func TestDeriveCourseStates_ProgressRowAttached(t *testing.T) {
	progress := map[int64]domain.UserProgress{
		1: progressRow(1, domain.StatusInProgress),
	}
	states := domain.DeriveCourseStates(courseSeq(2), progress)

	assert.NotNil(t, states[0].Progress)
	assert.Equal(t, domain.StatusInProgress, states[0].Progress.Status)
	assert.Nil(t, states[1].Progress)
}

func TestDeriveLocationStates(t *testing.T) {
	visit := func(ids ...int64) map[int64]domain.LocationVisit {
		m := make(map[int64]domain.LocationVisit, len(ids))
		for _, id := range ids {
			m[id] = domain.LocationVisit{EmployeeID: 1, LocationID: id, VisitedAt: time.Now()}
		}
		return m
	}

	tests := []struct {
		name         string
		visited      map[int64]domain.LocationVisit
		wantUnlocked []bool
		wantVisited  []bool
	}{
		{
			name:         "only first location unlocked initially",
			visited:      visit(),
			wantUnlocked: []bool{true, false, false},
			wantVisited:  []bool{false, false, false},
		},
		{
			name:         "visiting the first unlocks the second",
			visited:      visit(1),
			wantUnlocked: []bool{true, true, false},
			wantVisited:  []bool{true, false, false},
		},
		{
			name:         "all visited",
			visited:      visit(1, 2, 3),
			wantUnlocked: []bool{true, true, true},
			wantVisited:  []bool{true, true, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			states := domain.DeriveLocationStates(locationSeq(1, 3), tt.visited)
			for i, s := range states {
				assert.Equal(t, tt.wantUnlocked[i], s.Unlocked, "location %d unlocked", i+1)
				assert.Equal(t, tt.wantVisited[i], s.Visited, "location %d visited", i+1)
			}
		})
	}
}

func TestCourseCompleted(t *testing.T) {
	locations := locationSeq(1, 2)
	allVisited := map[int64]domain.LocationVisit{
		1: {LocationID: 1}, 2: {LocationID: 2},
	}
	partial := map[int64]domain.LocationVisit{1: {LocationID: 1}}

	tests := []struct {
		name         string
		locations    []domain.Location
		visited      map[int64]domain.LocationVisit
		quizRequired bool
		quizPassed   bool
		want         bool
	}{
		{"all visited, no quiz", locations, allVisited, false, false, true},
		{"all visited, quiz passed", locations, allVisited, true, true, true},
		{"all visited, quiz failed", locations, allVisited, true, false, false},
		{"partial visits", locations, partial, false, false, false},
		{"zero locations is trivially complete", nil, nil, false, false, true},
		{"zero locations still requires the quiz when one exists", nil, nil, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.CourseCompleted(tt.locations, tt.visited, tt.quizRequired, tt.quizPassed)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSummarizeApproval(t *testing.T) {
	row := func(s domain.ApprovalStatus) domain.UserProgress {
		return domain.UserProgress{ApprovalStatus: s}
	}

	tests := []struct {
		name string
		rows []domain.UserProgress
		want domain.ApprovalStatus
	}{
		{"empty", nil, domain.ApprovalNone},
		{"pending beats approved", []domain.UserProgress{row(domain.ApprovalApproved), row(domain.ApprovalPending)}, domain.ApprovalPending},
		{"pending beats rejected", []domain.UserProgress{row(domain.ApprovalRejected), row(domain.ApprovalPending)}, domain.ApprovalPending},
		{"rejected beats approved", []domain.UserProgress{row(domain.ApprovalApproved), row(domain.ApprovalRejected)}, domain.ApprovalRejected},
		{"approved only", []domain.UserProgress{row(domain.ApprovalApproved)}, domain.ApprovalApproved},
		{"none rows only", []domain.UserProgress{row(domain.ApprovalNone), row(domain.ApprovalNone)}, domain.ApprovalNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := domain.SummarizeApproval(tt.rows)
			assert.Equal(t, tt.want, got)
		})
	}
}
