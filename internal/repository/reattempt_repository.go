package repository

import (
	"github.com/Abinaya-R-2005/siddha-sub000/internal/model"
	"gorm.io/gorm"
)

type ReattemptRepository interface {
	Create(req *model.ReattemptRequest) error
	FindByID(id uint) (*model.ReattemptRequest, error)
	FindLatestByUserAndTest(userID, testID uint) (*model.ReattemptRequest, error)
	HasPending(userID, testID uint) (bool, error)
	FindAll(status string) ([]ReattemptWithDetails, error)
	UpdateStatus(id uint, status string) error
	CountPending() (int64, error)
	CountPendingByUser(userID uint) (int64, error)
}

type ReattemptWithDetails struct {
	model.ReattemptRequest
	UserName  string
	UserEmail string
	TestTitle string
}

type reattemptRepository struct {
	db *gorm.DB
}

func NewReattemptRepository(db *gorm.DB) ReattemptRepository {
	return &reattemptRepository{db: db}
}

func (r *reattemptRepository) Create(req *model.ReattemptRequest) error {
	return r.db.Create(req).Error
}

func (r *reattemptRepository) FindByID(id uint) (*model.ReattemptRequest, error) {
	var req model.ReattemptRequest
	if err := r.db.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *reattemptRepository) FindLatestByUserAndTest(userID, testID uint) (*model.ReattemptRequest, error) {
	var req model.ReattemptRequest
	err := r.db.Where("user_id = ? AND test_id = ?", userID, testID).
		Order("created_at DESC").
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *reattemptRepository) HasPending(userID, testID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.ReattemptRequest{}).
		Where("user_id = ? AND test_id = ? AND status = ?", userID, testID, model.ReattemptPending).
		Count(&count).Error
	return count > 0, err
}

func (r *reattemptRepository) FindAll(status string) ([]ReattemptWithDetails, error) {
	var results []ReattemptWithDetails
	query := r.db.Model(&model.ReattemptRequest{}).
		Select("reattempt_requests.*, users.full_name as user_name, users.email as user_email, tests.title as test_title").
		Joins("LEFT JOIN users ON users.id = reattempt_requests.user_id").
		Joins("LEFT JOIN tests ON tests.id = reattempt_requests.test_id").
		Order("reattempt_requests.created_at ASC")
	if status != "" {
		query = query.Where("reattempt_requests.status = ?", status)
	}
	err := query.Scan(&results).Error
	return results, err
}

func (r *reattemptRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&model.ReattemptRequest{}).Where("id = ?", id).Update("status", status).Error
}

func (r *reattemptRepository) CountPending() (int64, error) {
	var count int64
	err := r.db.Model(&model.ReattemptRequest{}).
		Where("status = ?", model.ReattemptPending).
		Count(&count).Error
	return count, err
}

func (r *reattemptRepository) CountPendingByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.ReattemptRequest{}).
		Where("user_id = ? AND status = ?", userID, model.ReattemptPending).
		Count(&count).Error
	return count, err
}
