package dto

import "time"

// RegisterDTO is the student self-registration request. Accounts start in
// "pending" status until an admin approves them.
type RegisterDTO struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Category string `json:"category" binding:"required,oneof=MRB AIAPGET"`
}

// StaffCreateDTO is for admins creating faculty/admin accounts, which start
// approved.
type StaffCreateDTO struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=faculty admin"`
}

type LoginDTO struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	LoginType string `json:"login_type" binding:"required,oneof=student faculty admin"`
}

type LoginResponseDTO struct {
	Token string          `json:"token"`
	User  UserResponseDTO `json:"user"`
}

type UserResponseDTO struct {
	ID           uint       `json:"id"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	Category     string     `json:"category,omitempty"`
	Status       string     `json:"status"`
	LastActiveAt *time.Time `json:"last_active_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ProfileUpdateDTO covers self-service profile edits. Status and role are
// deliberately absent; those only change through admin actions.
type ProfileUpdateDTO struct {
	FullName string `json:"full_name" binding:"omitempty"`
	Password string `json:"password" binding:"omitempty,min=8"`
}
