package domain

// Progression derivation: unlock/completed flags are never stored; they are a
// pure function of a snapshot of rows, recomputed on every read. The inputs
// must already be sorted (courses by SequenceNum, locations by OrderIndex) —
// the course service validates the ordering before calling in here.

// CourseState is a course annotated with the employee's derived flags.
type CourseState struct {
	Course    Course
	Progress  *UserProgress // nil when no row exists yet
	Unlocked  bool
	Completed bool
}

// LocationState is a location annotated with the employee's derived flags.
type LocationState struct {
	Location Location
	Visited  bool
	Unlocked bool
}

// DeriveCourseStates computes the unlock chain over an ordered course list:
// course j is unlocked iff j == 0 or course j-1 has status completed.
// Approval status does not gate the next course (see DESIGN.md).
func DeriveCourseStates(courses []Course, progress map[int64]UserProgress) []CourseState {
	states := make([]CourseState, len(courses))
	prevCompleted := false
	for i, c := range courses {
		var row *UserProgress
		if p, ok := progress[c.CourseID]; ok {
			row = &p
		}
		completed := row != nil && row.Status == StatusCompleted
		states[i] = CourseState{
			Course:    c,
			Progress:  row,
			Unlocked:  i == 0 || prevCompleted,
			Completed: completed,
		}
		prevCompleted = completed
	}
	return states
}

// DeriveLocationStates computes the unlock chain within a course: location i
// is unlocked iff i == 0 or a visit record exists for location i-1.
func DeriveLocationStates(locations []Location, visited map[int64]LocationVisit) []LocationState {
	states := make([]LocationState, len(locations))
	prevVisited := false
	for i, l := range locations {
		_, isVisited := visited[l.LocationID]
		states[i] = LocationState{
			Location: l,
			Visited:  isVisited,
			Unlocked: i == 0 || prevVisited,
		}
		prevVisited = isVisited
	}
	return states
}

// AllLocationsVisited reports whether every location in the course has a
// visit record. A course with zero locations is trivially complete.
func AllLocationsVisited(locations []Location, visited map[int64]LocationVisit) bool {
	for _, l := range locations {
		if _, ok := visited[l.LocationID]; !ok {
			return false
		}
	}
	return true
}

// CourseCompleted reports whether a course counts as completed: every
// location visited and, when the course carries a quiz, the quiz passed.
func CourseCompleted(locations []Location, visited map[int64]LocationVisit, quizRequired, quizPassed bool) bool {
	if !AllLocationsVisited(locations, visited) {
		return false
	}
	if quizRequired {
		return quizPassed
	}
	return true
}
