package model

import "time"

// Attempt is one immutable scored submission for a (user, test) pair.
//
// AnswerKey is a snapshot of the test's key at submission time, copied rather
// than referenced, so later edits to the test never alter historical grading.
//
// Sequence is 1 for the first attempt and 2 for an approved re-attempt; the
// composite unique index makes two racing submissions for the same pair
// collide in the store instead of both inserting.
type Attempt struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	UserID         uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_attempt_user_test_seq"`
	TestID         uint      `json:"test_id" gorm:"not null;uniqueIndex:idx_attempt_user_test_seq"`
	Sequence       int       `json:"sequence" gorm:"not null;uniqueIndex:idx_attempt_user_test_seq"`
	ScorePercent   float64   `json:"score_percent" gorm:"not null"`
	CorrectCount   int       `json:"correct_count" gorm:"not null"`
	IncorrectCount int       `json:"incorrect_count" gorm:"not null"`
	TotalQuestions int       `json:"total_questions" gorm:"not null"`
	Answers        []*int    `json:"answers" gorm:"serializer:json;type:text"`    // nil entry = unanswered
	AnswerKey      []int     `json:"answer_key" gorm:"serializer:json;type:text"` // key snapshot at submission time
	CreatedAt      time.Time `json:"created_at"`
}
