package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	TestStatusDraft     = "draft"
	TestStatusPublished = "published"
	TestStatusDisabled  = "disabled"
)

type Test struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Title           string         `json:"title" gorm:"not null;uniqueIndex"`
	Subject         string         `json:"subject" gorm:"not null;index"`
	Category        string         `json:"category" gorm:"not null;index"` // "MRB" or "AIAPGET"
	Difficulty      string         `json:"difficulty,omitempty"`
	Status          string         `json:"status" gorm:"not null;default:'draft';index"` // "draft", "published", "disabled"
	DurationMinutes int            `json:"duration_minutes" gorm:"not null"`
	NegativeMarking bool           `json:"negative_marking" gorm:"not null;default:false"`
	AttemptCount    int64          `json:"attempt_count" gorm:"not null;default:0"` // incremented atomically, never read-modify-write
	StartsAt        *time.Time     `json:"starts_at,omitempty"`
	EndsAt          *time.Time     `json:"ends_at,omitempty"`
	Questions       []Question     `json:"questions,omitempty" gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// InWindow reports whether the test is open at t. A nil bound is unbounded.
func (m *Test) InWindow(t time.Time) bool {
	if m.StartsAt != nil && t.Before(*m.StartsAt) {
		return false
	}
	if m.EndsAt != nil && t.After(*m.EndsAt) {
		return false
	}
	return true
}

// AnswerKey returns the correct option index per question, in question order.
// Internal use only; must never reach a student-facing response.
func (m *Test) AnswerKey() []int {
	key := make([]int, len(m.Questions))
	for i, q := range m.Questions {
		key[i] = q.CorrectOption
	}
	return key
}
