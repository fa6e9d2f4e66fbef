package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wandermart/onboarding_backend/internal/core/domain"
)

func twoQuestions() []domain.QuizQuestion {
	return []domain.QuizQuestion{
		{QuestionID: "q1", Options: []string{"a", "b", "c"}, CorrectOption: 1, Position: 1},
		{QuestionID: "q2", Options: []string{"a", "b", "c"}, CorrectOption: 2, Position: 2},
	}
}

func TestScoreQuiz(t *testing.T) {
	tests := []struct {
		name      string
		questions []domain.QuizQuestion
		answers   map[string]int
		want      int
		wantErr   error
	}{
		{
			name:      "both correct scores 100",
			questions: twoQuestions(),
			answers:   map[string]int{"q1": 1, "q2": 2},
			want:      100,
		},
		{
			name:      "one of two correct scores 50",
			questions: twoQuestions(),
			answers:   map[string]int{"q1": 1, "q2": 0},
			want:      50,
		},
		{
			name:      "unanswered questions count as wrong",
			questions: twoQuestions(),
			answers:   map[string]int{"q1": 1},
			want:      50,
		},
		{
			name:      "all wrong scores 0",
			questions: twoQuestions(),
			answers:   map[string]int{"q1": 0, "q2": 0},
			want:      0,
		},
		{
			name: "rounding: two of three correct is 67",
			questions: []domain.QuizQuestion{
				{QuestionID: "q1", CorrectOption: 0},
				{QuestionID: "q2", CorrectOption: 0},
				{QuestionID: "q3", CorrectOption: 0},
			},
			answers: map[string]int{"q1": 0, "q2": 0, "q3": 1},
			want:    67,
		},
		{
			name:      "zero questions is a configuration error",
			questions: nil,
			answers:   map[string]int{},
			wantErr:   domain.ErrNoQuestions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ScoreQuiz(tt.questions, tt.answers)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPassed(t *testing.T) {
	assert.True(t, domain.Passed(100))
	assert.True(t, domain.Passed(70))
	assert.False(t, domain.Passed(69))
	assert.False(t, domain.Passed(50))
}

func TestQuizTimeLimitSeconds(t *testing.T) {
	q := domain.Quiz{TimeLimitMinutes: 10}
	assert.Equal(t, 600, q.TimeLimitSeconds())

	untimed := domain.Quiz{}
	assert.Equal(t, 0, untimed.TimeLimitSeconds())
}
