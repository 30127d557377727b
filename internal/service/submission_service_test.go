package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abinaya-R-2005/siddha-sub000/internal/dto"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/model"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/repository"
)

func TestSubmitFirstAttempt(t *testing.T) {
	db := newTestDB(t)
	testRepo := repository.NewTestRepository(db)
	svc := NewSubmissionService(testRepo, db)
	student := seedStudent(t, db, "student@example.com")
	test := seedPublishedTest(t, db, "Mock Test 1", false)

	result, err := svc.Submit(student.ID, test.ID, dto.SubmitAttemptDTO{
		Answers: []*int{intp(0), intp(1), intp(2), nil},
	})
	require.NoError(t, err)

	assert.Equal(t, 75.0, result.Percentage)
	assert.Equal(t, 3, result.CorrectCount)
	assert.Equal(t, 0, result.IncorrectCount)
	assert.Equal(t, 4, result.TotalQuestions)
	assert.Equal(t, []int{0, 1, 2, 3}, result.AnswerKey)

	var attempt model.Attempt
	require.NoError(t, db.First(&attempt, result.AttemptID).Error)
	assert.Equal(t, 1, attempt.Sequence)
	assert.Equal(t, student.ID, attempt.UserID)

	var stored model.Test
	require.NoError(t, db.First(&stored, test.ID).Error)
	assert.Equal(t, int64(1), stored.AttemptCount)
}

func TestSubmitNegativeMarking(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(repository.NewTestRepository(db), db)
	student := seedStudent(t, db, "student@example.com")
	test := seedPublishedTest(t, db, "Mock Test 1", true)

	// 1 correct, 2 wrong, 1 unanswered: (1 - 2*0.25) / 4 = 12.5%.
	result, err := svc.Submit(student.ID, test.ID, dto.SubmitAttemptDTO{
		Answers: []*int{intp(0), intp(0), intp(0), nil},
	})
	require.NoError(t, err)
	assert.Equal(t, 12.5, result.Percentage)
	assert.Equal(t, 1, result.CorrectCount)
	assert.Equal(t, 2, result.IncorrectCount)
}

func TestSubmitUnknownTest(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(repository.NewTestRepository(db), db)
	student := seedStudent(t, db, "student@example.com")

	_, err := svc.Submit(student.ID, 999, dto.SubmitAttemptDTO{Answers: []*int{intp(0)}})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitSecondWithoutApproval(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(repository.NewTestRepository(db), db)
	student := seedStudent(t, db, "student@example.com")
	test := seedPublishedTest(t, db, "Mock Test 1", false)

	_, err := svc.Submit(student.ID, test.ID, dto.SubmitAttemptDTO{Answers: []*int{intp(0)}})
	require.NoError(t, err)

	_, err = svc.Submit(student.ID, test.ID, dto.SubmitAttemptDTO{Answers: []*int{intp(0)}})
	assert.ErrorIs(t, err, ErrAlreadyAttempted)

	// The failed submission must leave nothing behind.
	var attempts int64
	require.NoError(t, db.Model(&model.Attempt{}).Count(&attempts).Error)
	assert.Equal(t, int64(1), attempts)

	var stored model.Test
	require.NoError(t, db.First(&stored, test.ID).Error)
	assert.Equal(t, int64(1), stored.AttemptCount)
}

func TestSubmitReattemptLifecycle(t *testing.T) {
	db := newTestDB(t)
	testRepo := repository.NewTestRepository(db)
	svc := NewSubmissionService(testRepo, db)
	reattempts := NewReattemptService(
		repository.NewReattemptRepository(db),
		repository.NewAttemptRepository(db),
		testRepo,
	)
	student := seedStudent(t, db, "student@example.com")
	test := seedPublishedTest(t, db, "Mock Test 1", false)

	_, err := svc.Submit(student.ID, test.ID, dto.SubmitAttemptDTO{
		Answers: []*int{intp(3), intp(3), intp(3), intp(3)},
	})
	require.NoError(t, err)

	req, err := reattempts.Request(student.ID, test.ID, dto.ReattemptCreateDTO{Message: "scored too low"})
	require.NoError(t, err)
	require.Equal(t, model.ReattemptPending, req.Status)

	// Still locked while the request is pending.
	_, err = svc.Submit(student.ID, test.ID, dto.SubmitAttemptDTO{Answers: []*int{intp(0)}})
	assert.ErrorIs(t, err, ErrAlreadyAttempted)

	require.NoError(t, reattempts.Resolve(req.ID, model.ReattemptApproved))

	result, err := svc.Submit(student.ID, test.ID, dto.SubmitAttemptDTO{
		Answers: []*int{intp(0), intp(1), intp(2), intp(3)},
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.Percentage)

	var attempt model.Attempt
	require.NoError(t, db.First(&attempt, result.AttemptID).Error)
	assert.Equal(t, 2, attempt.Sequence)

	// The approval is consumed by the submission; no request rows survive.
	var remaining int64
	require.NoError(t, db.Model(&model.ReattemptRequest{}).Count(&remaining).Error)
	assert.Equal(t, int64(0), remaining)

	// The cycle starts over: a third submission needs a fresh approval.
	_, err = svc.Submit(student.ID, test.ID, dto.SubmitAttemptDTO{Answers: []*int{intp(0)}})
	assert.ErrorIs(t, err, ErrAlreadyAttempted)
}

func TestSubmitSweepsStaleRequests(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(repository.NewTestRepository(db), db)
	student := seedStudent(t, db, "student@example.com")
	test := seedPublishedTest(t, db, "Mock Test 1", false)

	_, err := svc.Submit(student.ID, test.ID, dto.SubmitAttemptDTO{Answers: []*int{intp(0)}})
	require.NoError(t, err)

	// An approved request alongside a leftover rejected one.
	require.NoError(t, db.Create(&model.ReattemptRequest{
		UserID: student.ID, TestID: test.ID, Status: model.ReattemptApproved,
	}).Error)
	require.NoError(t, db.Create(&model.ReattemptRequest{
		UserID: student.ID, TestID: test.ID, Status: model.ReattemptRejected,
	}).Error)

	_, err = svc.Submit(student.ID, test.ID, dto.SubmitAttemptDTO{Answers: []*int{intp(0)}})
	require.NoError(t, err)

	var remaining int64
	require.NoError(t, db.Model(&model.ReattemptRequest{}).Count(&remaining).Error)
	assert.Equal(t, int64(0), remaining)
}

func TestAttemptKeepsAnswerKeySnapshot(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(repository.NewTestRepository(db), db)
	student := seedStudent(t, db, "student@example.com")
	test := seedPublishedTest(t, db, "Mock Test 1", false)

	result, err := svc.Submit(student.ID, test.ID, dto.SubmitAttemptDTO{
		Answers: []*int{intp(0), intp(1), intp(2), intp(3)},
	})
	require.NoError(t, err)
	require.Equal(t, 100.0, result.Percentage)

	// Fixing a question after the fact must not rewrite history.
	require.NoError(t, db.Model(&model.Question{}).
		Where("test_id = ?", test.ID).
		Update("correct_option", 1).Error)

	var attempt model.Attempt
	require.NoError(t, db.First(&attempt, result.AttemptID).Error)
	assert.Equal(t, []int{0, 1, 2, 3}, attempt.AnswerKey)
	assert.Equal(t, 100.0, attempt.ScorePercent)
}
