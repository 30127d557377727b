package model

import "time"

const (
	ReattemptPending  = "pending"
	ReattemptApproved = "approved"
	ReattemptRejected = "rejected"
)

// ReattemptRequest gates a second Attempt for an already-attempted test.
// At most one pending request may exist per (user, test) pair; an approved
// request is consumed (hard-deleted) by the submission that uses it.
type ReattemptRequest struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `json:"user_id" gorm:"not null;index:idx_reattempt_user_test"`
	TestID    uint      `json:"test_id" gorm:"not null;index:idx_reattempt_user_test"`
	Status    string    `json:"status" gorm:"not null;default:'pending';index"` // "pending", "approved", "rejected"
	Message   string    `json:"message,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}
