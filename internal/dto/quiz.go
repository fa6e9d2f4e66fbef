package dto

import "github.com/wandermart/onboarding_backend/internal/core/domain"

// QuizQuestionResponse is one question as served to trainees: the answer key
// is deliberately absent.
type QuizQuestionResponse struct {
	QuestionID string   `json:"questionID"`
	Prompt     string   `json:"prompt"`
	Options    []string `json:"options"`
	Position   int      `json:"position"`
}

// QuizResponse is the course quiz as served to trainees.
type QuizResponse struct {
	CourseID         int64                  `json:"courseID"`
	TimeLimitSeconds int                    `json:"timeLimitSeconds"` // advisory countdown; expiry never auto-submits
	Questions        []QuizQuestionResponse `json:"questions"`
}

// ToQuizResponse converts a domain.Quiz to the trainee-facing DTO,
// stripping the correct option indexes.
func ToQuizResponse(q *domain.Quiz) QuizResponse {
	questions := make([]QuizQuestionResponse, len(q.Questions))
	for i, question := range q.Questions {
		questions[i] = QuizQuestionResponse{
			QuestionID: question.QuestionID,
			Prompt:     question.Prompt,
			Options:    question.Options,
			Position:   question.Position,
		}
	}
	return QuizResponse{
		CourseID:         q.CourseID,
		TimeLimitSeconds: q.TimeLimitSeconds(),
		Questions:        questions,
	}
}

// SubmitQuizRequest maps question IDs to selected option indexes.
type SubmitQuizRequest struct {
	Answers map[string]int `json:"answers" binding:"required"`
}

// QuizResultResponse is the scored outcome of a submission.
type QuizResultResponse struct {
	Score           int  `json:"score"`
	Passed          bool `json:"passed"`
	CourseCompleted bool `json:"courseCompleted"`
}

// ToQuizResultResponse converts a domain.QuizResult to DTO.
func ToQuizResultResponse(r *domain.QuizResult) QuizResultResponse {
	return QuizResultResponse{
		Score:           r.Score,
		Passed:          r.Passed,
		CourseCompleted: r.CourseCompleted,
	}
}
