package domain

import (
	"errors"
	"math"
)

// PassThreshold is the fixed minimum integer percentage to pass an
// end-of-course quiz. Not configurable per quiz.
const PassThreshold = 70

// ErrNoQuestions is returned when a quiz is scored with zero questions.
// This is a configuration error, not a runtime condition to paper over.
var ErrNoQuestions = errors.New("quiz has no questions")

// QuizQuestion is a single-choice question with exactly one correct option.
type QuizQuestion struct {
	QuestionID    string   `json:"questionID"`
	CourseID      int64    `json:"courseID"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correctOption"` // index into Options
	Position      int      `json:"position"`      // order within the quiz
}

// Quiz is the ordered question set attached to a course.
type Quiz struct {
	CourseID         int64          `json:"courseID"`
	Questions        []QuizQuestion `json:"questions"`
	TimeLimitMinutes int            `json:"timeLimitMinutes"` // 0 means untimed
}

// TimeLimitSeconds converts the display time limit to a countdown in
// seconds. Expiry is advisory only; submission is never forced.
func (q Quiz) TimeLimitSeconds() int {
	return q.TimeLimitMinutes * 60
}

// ScoreQuiz scores selected option indexes against the answer key:
// round(100 * correct / total), as an integer percentage. Unanswered
// questions count as wrong.
func ScoreQuiz(questions []QuizQuestion, answers map[string]int) (int, error) {
	if len(questions) == 0 {
		return 0, ErrNoQuestions
	}
	correct := 0
	for _, q := range questions {
		if selected, ok := answers[q.QuestionID]; ok && selected == q.CorrectOption {
			correct++
		}
	}
	return int(math.Round(100 * float64(correct) / float64(len(questions)))), nil
}

// Passed reports whether a score meets the pass threshold.
func Passed(score int) bool {
	return score >= PassThreshold
}

// QuizResult is the outcome of one quiz submission.
type QuizResult struct {
	Score           int  `json:"score"`
	Passed          bool `json:"passed"`
	CourseCompleted bool `json:"courseCompleted"`
}
