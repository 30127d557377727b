package repository

import (
	"github.com/Abinaya-R-2005/siddha-sub000/internal/model"
	"gorm.io/gorm"
)

type SubjectRepository interface {
	Create(subject *model.Subject) error
	FindByID(id uint) (*model.Subject, error)
	FindAll(category string) ([]model.Subject, error)
	Update(subject *model.Subject) error
	Delete(id uint) error
}

type subjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) Create(subject *model.Subject) error {
	return r.db.Create(subject).Error
}

func (r *subjectRepository) FindByID(id uint) (*model.Subject, error) {
	var subject model.Subject
	if err := r.db.First(&subject, id).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepository) FindAll(category string) ([]model.Subject, error) {
	var subjects []model.Subject
	query := r.db.Order("name ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Find(&subjects).Error
	return subjects, err
}

func (r *subjectRepository) Update(subject *model.Subject) error {
	return r.db.Save(subject).Error
}

func (r *subjectRepository) Delete(id uint) error {
	return r.db.Delete(&model.Subject{}, id).Error
}
