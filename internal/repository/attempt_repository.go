package repository

import (
	"github.com/Abinaya-R-2005/siddha-sub000/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	CountByUserAndTest(userID, testID uint) (int64, error)
	FindByUserAndTest(userID, testID uint) ([]model.Attempt, error)
	FindByID(id uint) (*model.Attempt, error)
	FindAllByUser(userID uint) ([]AttemptWithTestTitle, error)
	CountByUser(userID uint) (int64, error)
	DistinctTestCountByUser(userID uint) (int64, error)
	UserScoreStats(userID uint) (avg, best float64, err error)
	TestAverages(limit int) ([]TestAverage, error)
	Count() (int64, error)
}

type AttemptWithTestTitle struct {
	model.Attempt
	TestTitle string
}

type TestAverage struct {
	TestID       uint
	Title        string
	AttemptCount int64
	AverageScore float64
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) CountByUserAndTest(userID, testID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Attempt{}).
		Where("user_id = ? AND test_id = ?", userID, testID).
		Count(&count).Error
	return count, err
}

func (r *attemptRepository) FindByUserAndTest(userID, testID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.Where("user_id = ? AND test_id = ?", userID, testID).
		Order("sequence ASC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindByID(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	if err := r.db.First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindAllByUser(userID uint) ([]AttemptWithTestTitle, error) {
	var results []AttemptWithTestTitle
	err := r.db.Model(&model.Attempt{}).
		Select("attempts.*, tests.title as test_title").
		Joins("LEFT JOIN tests ON tests.id = attempts.test_id").
		Where("attempts.user_id = ?", userID).
		Order("attempts.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *attemptRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Attempt{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *attemptRepository) DistinctTestCountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Attempt{}).
		Where("user_id = ?", userID).
		Distinct("test_id").
		Count(&count).Error
	return count, err
}

func (r *attemptRepository) UserScoreStats(userID uint) (float64, float64, error) {
	var row struct {
		Avg  float64
		Best float64
	}
	err := r.db.Model(&model.Attempt{}).
		Select("COALESCE(AVG(score_percent), 0) as avg, COALESCE(MAX(score_percent), 0) as best").
		Where("user_id = ?", userID).
		Scan(&row).Error
	return row.Avg, row.Best, err
}

func (r *attemptRepository) TestAverages(limit int) ([]TestAverage, error) {
	var results []TestAverage
	err := r.db.Model(&model.Attempt{}).
		Select("attempts.test_id, tests.title, COUNT(attempts.id) as attempt_count, COALESCE(AVG(attempts.score_percent), 0) as average_score").
		Joins("LEFT JOIN tests ON tests.id = attempts.test_id").
		Group("attempts.test_id, tests.title").
		Order("attempt_count DESC").
		Limit(limit).
		Scan(&results).Error
	return results, err
}

func (r *attemptRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Attempt{}).Count(&count).Error
	return count, err
}
