package repository

import (
	"github.com/Abinaya-R-2005/siddha-sub000/internal/model"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *model.Review) error
	FindByUser(userID uint) (*model.Review, error)
	FindAllWithUser() ([]model.Review, error)
	Update(review *model.Review) error
	DeleteByUser(userID uint) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *model.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) FindByUser(userID uint) (*model.Review, error) {
	var review model.Review
	if err := r.db.Where("user_id = ?", userID).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindAllWithUser() ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.Preload("User").Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) Update(review *model.Review) error {
	return r.db.Save(review).Error
}

func (r *reviewRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.Review{}).Error
}
