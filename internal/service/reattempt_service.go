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

// ReattemptService runs the request/approval side of the re-attempt state
// machine. Consumption of an approval belongs to SubmissionService; resolving
// a request never deletes the attempt under review.
type ReattemptService interface {
	Request(userID, testID uint, req dto.ReattemptCreateDTO) (*dto.ReattemptRequestDTO, error)
	ListRequests(status string) ([]dto.ReattemptRequestDTO, error)
	Resolve(requestID uint, status string) error
}

type reattemptService struct {
	reattemptRepo repository.ReattemptRepository
	attemptRepo   repository.AttemptRepository
	testRepo      repository.TestRepository
}

func NewReattemptService(
	reattemptRepo repository.ReattemptRepository,
	attemptRepo repository.AttemptRepository,
	testRepo repository.TestRepository,
) ReattemptService {
	return &reattemptService{
		reattemptRepo: reattemptRepo,
		attemptRepo:   attemptRepo,
		testRepo:      testRepo,
	}
}

func (s *reattemptService) Request(userID, testID uint, req dto.ReattemptCreateDTO) (*dto.ReattemptRequestDTO, error) {
	if _, err := s.testRepo.FindByID(testID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching test %d: %w", testID, err)
	}

	// A re-attempt only makes sense once an attempt exists.
	count, err := s.attemptRepo.CountByUserAndTest(userID, testID)
	if err != nil {
		return nil, fmt.Errorf("error counting attempts: %w", err)
	}
	if count == 0 {
		return nil, ErrNoAttemptYet
	}

	pending, err := s.reattemptRepo.HasPending(userID, testID)
	if err != nil {
		return nil, fmt.Errorf("error checking pending requests: %w", err)
	}
	if pending {
		return nil, ErrDuplicatePendingRequest
	}

	request := model.ReattemptRequest{
		UserID:  userID,
		TestID:  testID,
		Status:  model.ReattemptPending,
		Message: req.Message,
	}
	if err := s.reattemptRepo.Create(&request); err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("testID", testID).Msg("Request: failed to create re-attempt request")
		return nil, fmt.Errorf("error creating re-attempt request: %w", err)
	}
	log.Info().Uint("userID", userID).Uint("testID", testID).Msg("Re-attempt requested")

	return &dto.ReattemptRequestDTO{
		ID:        request.ID,
		UserID:    request.UserID,
		TestID:    request.TestID,
		Status:    request.Status,
		Message:   request.Message,
		CreatedAt: request.CreatedAt,
	}, nil
}

func (s *reattemptService) ListRequests(status string) ([]dto.ReattemptRequestDTO, error) {
	requests, err := s.reattemptRepo.FindAll(status)
	if err != nil {
		return nil, fmt.Errorf("error fetching re-attempt requests: %w", err)
	}
	dtos := make([]dto.ReattemptRequestDTO, 0, len(requests))
	for _, r := range requests {
		item := dto.ReattemptRequestDTO{
			ID:        r.ID,
			UserID:    r.UserID,
			UserName:  r.UserName,
			UserEmail: r.UserEmail,
			TestID:    r.TestID,
			TestTitle: r.TestTitle,
			Status:    r.Status,
			Message:   r.Message,
			CreatedAt: r.CreatedAt,
		}
		// Latest score for the pair gives reviewers context on the queue page.
		attempts, err := s.attemptRepo.FindByUserAndTest(r.UserID, r.TestID)
		if err != nil {
			log.Warn().Err(err).Uint("requestID", r.ID).Msg("ListRequests: could not load attempts for request")
		} else if len(attempts) > 0 {
			score := attempts[len(attempts)-1].ScorePercent
			item.ScorePercent = &score
		}
		dtos = append(dtos, item)
	}
	return dtos, nil
}

// Resolve transitions a pending request to approved or rejected. History is
// retained for review: the corresponding attempt stays untouched either way.
func (s *reattemptService) Resolve(requestID uint, status string) error {
	if status != model.ReattemptApproved && status != model.ReattemptRejected {
		return ErrInvalidTransition
	}
	request, err := s.reattemptRepo.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("error fetching re-attempt request %d: %w", requestID, err)
	}
	if request.Status != model.ReattemptPending {
		return ErrAlreadyResolved
	}
	if err := s.reattemptRepo.UpdateStatus(requestID, status); err != nil {
		return fmt.Errorf("error updating re-attempt request: %w", err)
	}
	log.Info().Uint("requestID", requestID).Str("status", status).Msg("Re-attempt request resolved")
	return nil
}
