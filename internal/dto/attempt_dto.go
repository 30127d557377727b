package dto

import "time"

// SubmitAttemptDTO carries the student's ordered answers. A null entry means
// the question was left unanswered. Length mismatches with the question count
// are tolerated and scored positionally.
type SubmitAttemptDTO struct {
	Answers []*int `json:"answers" binding:"required"`
}

// AttemptResultDTO is returned after a successful submission. The answer key
// is revealed here, after grading, so the client can show a review screen.
type AttemptResultDTO struct {
	AttemptID      uint    `json:"attempt_id"`
	TestID         uint    `json:"test_id"`
	Percentage     float64 `json:"percentage"`
	CorrectCount   int     `json:"correct_count"`
	IncorrectCount int     `json:"incorrect_count"`
	TotalQuestions int     `json:"total_questions"`
	AnswerKey      []int   `json:"answer_key"`
}

type AttemptSummaryDTO struct {
	ID             uint      `json:"id"`
	TestID         uint      `json:"test_id"`
	TestTitle      string    `json:"test_title,omitempty"`
	Sequence       int       `json:"sequence"`
	ScorePercent   float64   `json:"score_percent"`
	CorrectCount   int       `json:"correct_count"`
	IncorrectCount int       `json:"incorrect_count"`
	TotalQuestions int       `json:"total_questions"`
	CreatedAt      time.Time `json:"created_at"`
}

// AttemptDetailDTO includes the student's answers and the graded key snapshot.
type AttemptDetailDTO struct {
	AttemptSummaryDTO
	Answers   []*int `json:"answers"`
	AnswerKey []int  `json:"answer_key"`
}
