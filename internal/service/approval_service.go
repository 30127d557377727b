package service

import (
	"errors"
	"fmt"

	"github.com/Abinaya-R-2005/siddha-sub000/internal/dto"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/model"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ApprovalService is the admin side of the registration workflow.
type ApprovalService interface {
	ListUsers(role, status string) ([]dto.UserResponseDTO, error)
	Approve(userID uint) error
	Reject(userID uint) error
	DeleteUser(userID uint) error
}

type approvalService struct {
	userRepo repository.UserRepository
}

func NewApprovalService(userRepo repository.UserRepository) ApprovalService {
	return &approvalService{userRepo: userRepo}
}

func (s *approvalService) ListUsers(role, status string) ([]dto.UserResponseDTO, error) {
	users, err := s.userRepo.FindAll(role, status)
	if err != nil {
		return nil, fmt.Errorf("error fetching users: %w", err)
	}
	dtos := make([]dto.UserResponseDTO, 0, len(users))
	for i := range users {
		userDTO, err := toUserDTO(&users[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *userDTO)
	}
	return dtos, nil
}

func (s *approvalService) Approve(userID uint) error {
	return s.transition(userID, model.StatusApproved)
}

func (s *approvalService) Reject(userID uint) error {
	return s.transition(userID, model.StatusRejected)
}

// transition enforces pending -> approved|rejected; resolved accounts stay put.
func (s *approvalService) transition(userID uint, target string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("error fetching user: %w", err)
	}
	if user.Status != model.StatusPending {
		return ErrInvalidTransition
	}
	if err := s.userRepo.UpdateStatus(userID, target); err != nil {
		return fmt.Errorf("error updating user status: %w", err)
	}
	log.Info().Uint("userID", userID).Str("status", target).Msg("User approval resolved")
	return nil
}

func (s *approvalService) DeleteUser(userID uint) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("error fetching user: %w", err)
	}
	if err := s.userRepo.DeleteCascade(userID); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	log.Info().Uint("userID", userID).Msg("User deleted with attempts and re-attempt requests")
	return nil
}
