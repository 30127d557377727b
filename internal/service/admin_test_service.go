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

// AdminTestService is the faculty/admin side of the question bank.
type AdminTestService interface {
	CreateTest(req dto.TestCreateDTO) (*dto.AdminTestDTO, error)
	GetTest(testID uint) (*dto.AdminTestDTO, error)
	ListTests(status, category string) ([]dto.TestSummaryDTO, error)
	UpdateTest(testID uint, req dto.TestUpdateDTO) (*dto.AdminTestDTO, error)
	SetStatus(testID uint, status string) error
	DeleteTest(testID uint) error
}

type adminTestService struct {
	testRepo repository.TestRepository
	uploads  UploadService
}

func NewAdminTestService(testRepo repository.TestRepository, uploads UploadService) AdminTestService {
	return &adminTestService{testRepo: testRepo, uploads: uploads}
}

func (s *adminTestService) CreateTest(req dto.TestCreateDTO) (*dto.AdminTestDTO, error) {
	test := model.Test{
		Title:           req.Title,
		Subject:         req.Subject,
		Category:        req.Category,
		Difficulty:      req.Difficulty,
		Status:          model.TestStatusDraft,
		DurationMinutes: req.DurationMinutes,
		NegativeMarking: req.NegativeMarking,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		Questions:       questionsFromDTO(req.Questions),
	}
	if err := s.testRepo.Create(&test); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateTest: failed to create test")
		return nil, fmt.Errorf("error creating test: %w", err)
	}
	log.Info().Uint("testID", test.ID).Int("questions", len(test.Questions)).Msg("Test created")
	return toAdminTestDTO(&test), nil
}

func (s *adminTestService) GetTest(testID uint) (*dto.AdminTestDTO, error) {
	test, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching test %d: %w", testID, err)
	}
	return toAdminTestDTO(test), nil
}

func (s *adminTestService) ListTests(status, category string) ([]dto.TestSummaryDTO, error) {
	testsWithCount, err := s.testRepo.FindAllWithQuestionCount(status, category)
	if err != nil {
		return nil, fmt.Errorf("error fetching tests: %w", err)
	}
	dtos := make([]dto.TestSummaryDTO, 0, len(testsWithCount))
	for _, twc := range testsWithCount {
		dtos = append(dtos, dto.TestSummaryDTO{
			ID:              twc.Test.ID,
			Title:           twc.Test.Title,
			Subject:         twc.Test.Subject,
			Category:        twc.Test.Category,
			Difficulty:      twc.Test.Difficulty,
			Status:          twc.Test.Status,
			DurationMinutes: twc.Test.DurationMinutes,
			NegativeMarking: twc.Test.NegativeMarking,
			QuestionCount:   twc.QuestionCount,
			AttemptCount:    twc.Test.AttemptCount,
			CreatedAt:       twc.Test.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *adminTestService) UpdateTest(testID uint, req dto.TestUpdateDTO) (*dto.AdminTestDTO, error) {
	test, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching test %d: %w", testID, err)
	}

	if req.Title != "" {
		test.Title = req.Title
	}
	if req.Subject != "" {
		test.Subject = req.Subject
	}
	if req.Difficulty != "" {
		test.Difficulty = req.Difficulty
	}
	if req.DurationMinutes > 0 {
		test.DurationMinutes = req.DurationMinutes
	}
	if req.NegativeMarking != nil {
		test.NegativeMarking = *req.NegativeMarking
	}
	if req.StartsAt != nil {
		test.StartsAt = req.StartsAt
	}
	if req.EndsAt != nil {
		test.EndsAt = req.EndsAt
	}

	// Editing metadata or the question set never touches existing attempts:
	// each attempt graded against its own answer-key snapshot.
	questions := test.Questions
	test.Questions = nil
	if err := s.testRepo.Update(test); err != nil {
		return nil, fmt.Errorf("error updating test %d: %w", testID, err)
	}
	if req.Questions != nil {
		questions = questionsFromDTO(req.Questions)
		if err := s.testRepo.ReplaceQuestions(testID, questions); err != nil {
			return nil, fmt.Errorf("error replacing questions for test %d: %w", testID, err)
		}
	}
	test.Questions = questions
	return toAdminTestDTO(test), nil
}

func (s *adminTestService) SetStatus(testID uint, status string) error {
	if status != model.TestStatusDraft && status != model.TestStatusPublished && status != model.TestStatusDisabled {
		return ErrInvalidTransition
	}
	if _, err := s.testRepo.FindByID(testID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("error fetching test %d: %w", testID, err)
	}
	if err := s.testRepo.UpdateStatus(testID, status); err != nil {
		return fmt.Errorf("error updating test status: %w", err)
	}
	log.Info().Uint("testID", testID).Str("status", status).Msg("Test status changed")
	return nil
}

func (s *adminTestService) DeleteTest(testID uint) error {
	test, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("error fetching test %d: %w", testID, err)
	}
	if err := s.testRepo.Delete(testID); err != nil {
		return fmt.Errorf("error deleting test %d: %w", testID, err)
	}
	// Deletion cascades to attached files; a leftover file is logged, not fatal.
	for _, q := range test.Questions {
		if q.FileURL == nil {
			continue
		}
		if err := s.uploads.Remove(*q.FileURL); err != nil {
			log.Warn().Err(err).Str("file", *q.FileURL).Msg("DeleteTest: failed to remove attached file")
		}
	}
	log.Info().Uint("testID", testID).Msg("Test deleted")
	return nil
}

func questionsFromDTO(reqs []dto.QuestionCreateDTO) []model.Question {
	questions := make([]model.Question, len(reqs))
	for i, q := range reqs {
		questions[i] = model.Question{
			OrderInTest:   i + 1,
			Text:          q.Text,
			OptionA:       q.Options[0],
			OptionB:       q.Options[1],
			OptionC:       q.Options[2],
			OptionD:       q.Options[3],
			CorrectOption: *q.CorrectOption,
			FileURL:       q.FileURL,
		}
	}
	return questions
}

func toAdminTestDTO(test *model.Test) *dto.AdminTestDTO {
	resp := dto.AdminTestDTO{
		ID:              test.ID,
		Title:           test.Title,
		Subject:         test.Subject,
		Category:        test.Category,
		Difficulty:      test.Difficulty,
		Status:          test.Status,
		DurationMinutes: test.DurationMinutes,
		NegativeMarking: test.NegativeMarking,
		AttemptCount:    test.AttemptCount,
		StartsAt:        test.StartsAt,
		EndsAt:          test.EndsAt,
		CreatedAt:       test.CreatedAt,
	}
	resp.Questions = make([]dto.AdminQuestionDTO, len(test.Questions))
	for i, q := range test.Questions {
		resp.Questions[i] = dto.AdminQuestionDTO{
			ID:            q.ID,
			OrderInTest:   q.OrderInTest,
			Text:          q.Text,
			Options:       q.Options(),
			CorrectOption: q.CorrectOption,
			FileURL:       q.FileURL,
		}
	}
	return &resp
}
