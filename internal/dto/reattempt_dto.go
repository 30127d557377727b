package dto

import "time"

type ReattemptCreateDTO struct {
	Message string `json:"message" binding:"omitempty,max=500"`
}

type ReattemptResolveDTO struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

// ReattemptRequestDTO is the faculty/admin queue view with joined user and
// test summaries.
type ReattemptRequestDTO struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	UserName     string    `json:"user_name,omitempty"`
	UserEmail    string    `json:"user_email,omitempty"`
	TestID       uint      `json:"test_id"`
	TestTitle    string    `json:"test_title,omitempty"`
	Status       string    `json:"status"`
	Message      string    `json:"message,omitempty"`
	ScorePercent *float64  `json:"score_percent,omitempty"` // score of the attempt being re-attempted
	CreatedAt    time.Time `json:"created_at"`
}
