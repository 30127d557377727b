package service

import (
	"errors"
	"fmt"

	"github.com/Abinaya-R-2005/siddha-sub000/internal/dto"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/model"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/repository"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/scoring"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmissionService decides whether a submission may create an Attempt,
// scores it, and persists it. The whole read-modify-write sequence runs in
// one transaction per (user, test) pair:
//
//   - first submission: the composite unique index on (user_id, test_id,
//     sequence) makes the loser of a race fail on insert instead of creating
//     a duplicate attempt;
//   - re-attempt: the approved request is consumed with a conditional delete
//     and checked via RowsAffected, so exactly one racing submission wins;
//   - attempt_count is incremented in place, never read-modify-write.
type SubmissionService interface {
	Submit(userID, testID uint, req dto.SubmitAttemptDTO) (*dto.AttemptResultDTO, error)
}

type submissionService struct {
	testRepo repository.TestRepository
	db       *gorm.DB
}

func NewSubmissionService(testRepo repository.TestRepository, db *gorm.DB) SubmissionService {
	return &submissionService{testRepo: testRepo, db: db}
}

func (s *submissionService) Submit(userID, testID uint, req dto.SubmitAttemptDTO) (*dto.AttemptResultDTO, error) {
	// The test's published status and schedule window are deliberately not
	// re-checked here; they gate listing only. A student who opened a test
	// before it was disabled may still finish the attempt in flight.
	test, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching test %d: %w", testID, err)
	}

	// Snapshot the key before grading so the attempt's record is decoupled
	// from later edits to the test.
	answerKey := test.AnswerKey()
	result := scoring.Score(req.Answers, answerKey, test.NegativeMarking)

	attempt := model.Attempt{
		UserID:         userID,
		TestID:         testID,
		ScorePercent:   result.Percentage,
		CorrectCount:   result.CorrectCount,
		IncorrectCount: result.IncorrectCount,
		TotalQuestions: result.TotalQuestions,
		Answers:        req.Answers,
		AnswerKey:      answerKey,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&model.Attempt{}).
			Where("user_id = ? AND test_id = ?", userID, testID).
			Count(&existing).Error; err != nil {
			return fmt.Errorf("error counting attempts: %w", err)
		}

		if existing > 0 {
			// A prior attempt exists; only an approved re-attempt request
			// unlocks another one. Conditional delete is the consumption:
			// zero rows means no approval (or a racer already took it).
			res := tx.Where("user_id = ? AND test_id = ? AND status = ?",
				userID, testID, model.ReattemptApproved).
				Delete(&model.ReattemptRequest{})
			if res.Error != nil {
				return fmt.Errorf("error consuming re-attempt approval: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				return ErrAlreadyAttempted
			}
		}

		attempt.Sequence = int(existing) + 1
		if err := tx.Create(&attempt).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost the first-submission race to a concurrent request.
				return ErrAlreadyAttempted
			}
			return fmt.Errorf("error persisting attempt: %w", err)
		}

		// Sweep any remaining requests for the pair so stale pending or
		// rejected rows cannot linger after a new attempt exists.
		if err := tx.Where("user_id = ? AND test_id = ?", userID, testID).
			Delete(&model.ReattemptRequest{}).Error; err != nil {
			return fmt.Errorf("error sweeping re-attempt requests: %w", err)
		}

		if err := tx.Model(&model.Test{}).Where("id = ?", testID).
			UpdateColumn("attempt_count", gorm.Expr("attempt_count + ?", 1)).Error; err != nil {
			return fmt.Errorf("error incrementing attempt count: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyAttempted) {
			return nil, ErrAlreadyAttempted
		}
		log.Error().Err(err).Uint("userID", userID).Uint("testID", testID).Msg("Submit: transaction failed")
		return nil, err
	}

	log.Info().
		Uint("userID", userID).
		Uint("testID", testID).
		Int("sequence", attempt.Sequence).
		Float64("percentage", result.Percentage).
		Msg("Attempt recorded")

	return &dto.AttemptResultDTO{
		AttemptID:      attempt.ID,
		TestID:         testID,
		Percentage:     result.Percentage,
		CorrectCount:   result.CorrectCount,
		IncorrectCount: result.IncorrectCount,
		TotalQuestions: result.TotalQuestions,
		AnswerKey:      answerKey,
	}, nil
}
