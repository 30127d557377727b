package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
	RoleAdmin   = "admin"

	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"

	CategoryMRB     = "MRB"
	CategoryAIAPGET = "AIAPGET"
)

type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	FullName     string         `json:"full_name" gorm:"not null"`
	Email        string         `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash string         `json:"-" gorm:"not null"`
	Role         string         `json:"role" gorm:"not null;index"` // "student", "faculty", "admin"
	Category     string         `json:"category,omitempty"`         // student-only: "MRB" or "AIAPGET"
	Status       string         `json:"status" gorm:"not null;default:'pending';index"`
	LastActiveAt *time.Time     `json:"last_active_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
