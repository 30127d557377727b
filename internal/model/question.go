package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	TestID        uint           `json:"test_id" gorm:"not null;index"`
	OrderInTest   int            `json:"order_in_test" gorm:"not null"`
	Text          string         `json:"text" gorm:"type:text;not null"`
	OptionA       string         `json:"option_a" gorm:"type:text;not null"`
	OptionB       string         `json:"option_b" gorm:"type:text;not null"`
	OptionC       string         `json:"option_c" gorm:"type:text;not null"`
	OptionD       string         `json:"option_d" gorm:"type:text;not null"`
	CorrectOption int            `json:"correct_option" gorm:"not null"` // 0..3, stripped from student-facing reads
	FileURL       *string        `json:"file_url,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// Options returns the four option texts in display order.
func (q *Question) Options() []string {
	return []string{q.OptionA, q.OptionB, q.OptionC, q.OptionD}
}
