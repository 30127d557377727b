package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Abinaya-R-2005/siddha-sub000/internal/dto"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/model"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// UserTestService is the student-facing read side of the question bank. All
// test shapes it returns are public projections: the answer key is stripped
// before anything leaves this service.
type UserTestService interface {
	ListAvailableTests(category string) ([]dto.TestSummaryDTO, error)
	GetTestForAttempt(testID, userID uint) (*dto.TestForAttemptDTO, error)
	GetMyAttempts(userID uint) ([]dto.AttemptSummaryDTO, error)
	GetAttemptDetail(attemptID, userID uint) (*dto.AttemptDetailDTO, error)
}

type userTestService struct {
	testRepo      repository.TestRepository
	attemptRepo   repository.AttemptRepository
	reattemptRepo repository.ReattemptRepository
}

func NewUserTestService(
	testRepo repository.TestRepository,
	attemptRepo repository.AttemptRepository,
	reattemptRepo repository.ReattemptRepository,
) UserTestService {
	return &userTestService{
		testRepo:      testRepo,
		attemptRepo:   attemptRepo,
		reattemptRepo: reattemptRepo,
	}
}

// ListAvailableTests returns published tests inside their schedule window for
// the student's category. Status and window are only enforced here, at
// listing time, not again at submission.
func (s *userTestService) ListAvailableTests(category string) ([]dto.TestSummaryDTO, error) {
	testsWithCount, err := s.testRepo.FindAllWithQuestionCount(model.TestStatusPublished, category)
	if err != nil {
		return nil, fmt.Errorf("error fetching tests: %w", err)
	}
	now := time.Now()
	dtos := make([]dto.TestSummaryDTO, 0, len(testsWithCount))
	for _, twc := range testsWithCount {
		if !twc.Test.InWindow(now) {
			continue
		}
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

func (s *userTestService) GetTestForAttempt(testID, userID uint) (*dto.TestForAttemptDTO, error) {
	test, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching test %d: %w", testID, err)
	}

	attemptCount, err := s.attemptRepo.CountByUserAndTest(userID, testID)
	if err != nil {
		return nil, fmt.Errorf("error counting attempts: %w", err)
	}

	resp := dto.TestForAttemptDTO{
		Test:         toPublicTestDTO(test),
		HasAttempted: attemptCount > 0,
	}
	req, err := s.reattemptRepo.FindLatestByUserAndTest(userID, testID)
	switch {
	case err == nil:
		status := req.Status
		resp.RequestStatus = &status
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no request for this pair
	default:
		return nil, fmt.Errorf("error fetching re-attempt request: %w", err)
	}
	return &resp, nil
}

func (s *userTestService) GetMyAttempts(userID uint) ([]dto.AttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetMyAttempts: repository error")
		return nil, fmt.Errorf("error fetching attempts: %w", err)
	}
	dtos := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for _, a := range attempts {
		dtos = append(dtos, toAttemptSummaryDTO(&a.Attempt, a.TestTitle))
	}
	return dtos, nil
}

// GetAttemptDetail returns one of the caller's own attempts, answer-key
// snapshot included: the key is safe to reveal once the attempt is graded.
func (s *userTestService) GetAttemptDetail(attemptID, userID uint) (*dto.AttemptDetailDTO, error) {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching attempt %d: %w", attemptID, err)
	}
	if attempt.UserID != userID {
		return nil, ErrNotFound
	}
	resp := dto.AttemptDetailDTO{
		AttemptSummaryDTO: toAttemptSummaryDTO(attempt, ""),
		Answers:           attempt.Answers,
		AnswerKey:         attempt.AnswerKey,
	}
	return &resp, nil
}

func toPublicTestDTO(test *model.Test) dto.PublicTestDTO {
	resp := dto.PublicTestDTO{
		ID:              test.ID,
		Title:           test.Title,
		Subject:         test.Subject,
		Category:        test.Category,
		Difficulty:      test.Difficulty,
		DurationMinutes: test.DurationMinutes,
		NegativeMarking: test.NegativeMarking,
		Questions:       make([]dto.PublicQuestionDTO, len(test.Questions)),
	}
	for i, q := range test.Questions {
		resp.Questions[i] = dto.PublicQuestionDTO{
			ID:          q.ID,
			OrderInTest: q.OrderInTest,
			Text:        q.Text,
			Options:     q.Options(),
			FileURL:     q.FileURL,
		}
	}
	return resp
}

func toAttemptSummaryDTO(a *model.Attempt, testTitle string) dto.AttemptSummaryDTO {
	return dto.AttemptSummaryDTO{
		ID:             a.ID,
		TestID:         a.TestID,
		TestTitle:      testTitle,
		Sequence:       a.Sequence,
		ScorePercent:   a.ScorePercent,
		CorrectCount:   a.CorrectCount,
		IncorrectCount: a.IncorrectCount,
		TotalQuestions: a.TotalQuestions,
		CreatedAt:      a.CreatedAt,
	}
}
