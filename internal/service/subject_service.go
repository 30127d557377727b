package service

import (
	"errors"
	"fmt"

	"github.com/Abinaya-R-2005/siddha-sub000/internal/dto"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/model"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/repository"
	"gorm.io/gorm"
)

type SubjectService interface {
	CreateSubject(req dto.SubjectCreateDTO) (*model.Subject, error)
	ListSubjects(category string) ([]model.Subject, error)
	UpdateSubject(id uint, req dto.SubjectCreateDTO) (*model.Subject, error)
	DeleteSubject(id uint) error
}

type subjectService struct {
	subjectRepo repository.SubjectRepository
}

func NewSubjectService(subjectRepo repository.SubjectRepository) SubjectService {
	return &subjectService{subjectRepo: subjectRepo}
}

func (s *subjectService) CreateSubject(req dto.SubjectCreateDTO) (*model.Subject, error) {
	subject := model.Subject{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
	}
	if err := s.subjectRepo.Create(&subject); err != nil {
		return nil, fmt.Errorf("error creating subject: %w", err)
	}
	return &subject, nil
}

func (s *subjectService) ListSubjects(category string) ([]model.Subject, error) {
	subjects, err := s.subjectRepo.FindAll(category)
	if err != nil {
		return nil, fmt.Errorf("error fetching subjects: %w", err)
	}
	return subjects, nil
}

func (s *subjectService) UpdateSubject(id uint, req dto.SubjectCreateDTO) (*model.Subject, error) {
	subject, err := s.subjectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching subject %d: %w", id, err)
	}
	subject.Name = req.Name
	subject.Category = req.Category
	subject.Description = req.Description
	if err := s.subjectRepo.Update(subject); err != nil {
		return nil, fmt.Errorf("error updating subject %d: %w", id, err)
	}
	return subject, nil
}

func (s *subjectService) DeleteSubject(id uint) error {
	if _, err := s.subjectRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("error fetching subject %d: %w", id, err)
	}
	return s.subjectRepo.Delete(id)
}
