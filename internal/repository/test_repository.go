package repository

import (
	"github.com/Abinaya-R-2005/siddha-sub000/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	Create(test *model.Test) error
	FindByID(id uint) (*model.Test, error)
	FindByIDWithQuestions(id uint) (*model.Test, error)
	FindAllWithQuestionCount(status, category string) ([]TestWithQuestionCount, error)
	Update(test *model.Test) error
	UpdateStatus(id uint, status string) error
	ReplaceQuestions(testID uint, questions []model.Question) error
	Delete(id uint) error
}

type TestWithQuestionCount struct {
	model.Test
	QuestionCount int
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(test *model.Test) error {
	// GORM creates the associated questions along with the test.
	return r.db.Create(test).Error
}

func (r *testRepository) FindByID(id uint) (*model.Test, error) {
	var test model.Test
	if err := r.db.First(&test, id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindByIDWithQuestions(id uint) (*model.Test, error) {
	var test model.Test
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_in_test ASC")
	}).First(&test, id).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindAllWithQuestionCount(status, category string) ([]TestWithQuestionCount, error) {
	var results []TestWithQuestionCount
	query := r.db.Model(&model.Test{}).
		Select("tests.*, (SELECT COUNT(*) FROM questions WHERE questions.test_id = tests.id AND questions.deleted_at IS NULL) as question_count").
		Where("tests.deleted_at IS NULL").
		Order("tests.created_at DESC")
	if status != "" {
		query = query.Where("tests.status = ?", status)
	}
	if category != "" {
		query = query.Where("tests.category = ?", category)
	}
	err := query.Scan(&results).Error
	return results, err
}

func (r *testRepository) Update(test *model.Test) error {
	return r.db.Save(test).Error
}

func (r *testRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&model.Test{}).Where("id = ?", id).Update("status", status).Error
}

func (r *testRepository) ReplaceQuestions(testID uint, questions []model.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("test_id = ?", testID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].TestID = testID
		}
		return tx.Create(&questions).Error
	})
}

func (r *testRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("test_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.Test{}, id).Error
	})
}
