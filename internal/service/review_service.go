package service

import (
	"errors"
	"fmt"

	"github.com/Abinaya-R-2005/siddha-sub000/internal/dto"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/model"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/repository"
	"gorm.io/gorm"
)

type ReviewService interface {
	ListReviews() ([]dto.ReviewDTO, error)
	UpsertReview(userID uint, req dto.ReviewCreateDTO) (*dto.ReviewDTO, error)
	DeleteOwnReview(userID uint) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

func (s *reviewService) ListReviews() ([]dto.ReviewDTO, error) {
	reviews, err := s.reviewRepo.FindAllWithUser()
	if err != nil {
		return nil, fmt.Errorf("error fetching reviews: %w", err)
	}
	dtos := make([]dto.ReviewDTO, 0, len(reviews))
	for _, r := range reviews {
		dtos = append(dtos, dto.ReviewDTO{
			ID:        r.ID,
			UserID:    r.UserID,
			UserName:  r.User.FullName,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		})
	}
	return dtos, nil
}

// UpsertReview creates the caller's review or replaces the existing one; a
// user holds at most one review.
func (s *reviewService) UpsertReview(userID uint, req dto.ReviewCreateDTO) (*dto.ReviewDTO, error) {
	review, err := s.reviewRepo.FindByUser(userID)
	switch {
	case err == nil:
		review.Rating = req.Rating
		review.Comment = req.Comment
		if err := s.reviewRepo.Update(review); err != nil {
			return nil, fmt.Errorf("error updating review: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		review = &model.Review{UserID: userID, Rating: req.Rating, Comment: req.Comment}
		if err := s.reviewRepo.Create(review); err != nil {
			return nil, fmt.Errorf("error creating review: %w", err)
		}
	default:
		return nil, fmt.Errorf("error fetching review: %w", err)
	}
	return &dto.ReviewDTO{
		ID:        review.ID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}, nil
}

func (s *reviewService) DeleteOwnReview(userID uint) error {
	if _, err := s.reviewRepo.FindByUser(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("error fetching review: %w", err)
	}
	if err := s.reviewRepo.DeleteByUser(userID); err != nil {
		return fmt.Errorf("error deleting review: %w", err)
	}
	return nil
}
