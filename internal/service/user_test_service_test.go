package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abinaya-R-2005/siddha-sub000/internal/dto"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/model"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/repository"
	"gorm.io/gorm"
)

func newUserTestService(db *gorm.DB) UserTestService {
	return NewUserTestService(
		repository.NewTestRepository(db),
		repository.NewAttemptRepository(db),
		repository.NewReattemptRepository(db),
	)
}

func TestListAvailableTestsFilters(t *testing.T) {
	db := newTestDB(t)
	svc := newUserTestService(db)

	seedPublishedTest(t, db, "MRB Mock 1", false)

	draft := seedPublishedTest(t, db, "Draft Mock", false)
	require.NoError(t, db.Model(&model.Test{}).Where("id = ?", draft.ID).
		Update("status", model.TestStatusDraft).Error)

	other := seedPublishedTest(t, db, "AIAPGET Mock", false)
	require.NoError(t, db.Model(&model.Test{}).Where("id = ?", other.ID).
		Update("category", model.CategoryAIAPGET).Error)

	expired := seedPublishedTest(t, db, "Expired Mock", false)
	past := time.Now().Add(-time.Hour)
	require.NoError(t, db.Model(&model.Test{}).Where("id = ?", expired.ID).
		Update("ends_at", past).Error)

	tests, err := svc.ListAvailableTests(model.CategoryMRB)
	require.NoError(t, err)
	require.Len(t, tests, 1)
	assert.Equal(t, "MRB Mock 1", tests[0].Title)
	assert.Equal(t, 4, tests[0].QuestionCount)
}

func TestGetTestForAttemptHidesKey(t *testing.T) {
	db := newTestDB(t)
	svc := newUserTestService(db)
	student := seedStudent(t, db, "student@example.com")
	test := seedPublishedTest(t, db, "MRB Mock 1", false)

	resp, err := svc.GetTestForAttempt(test.ID, student.ID)
	require.NoError(t, err)
	assert.False(t, resp.HasAttempted)
	assert.Nil(t, resp.RequestStatus)
	require.Len(t, resp.Test.Questions, 4)
	assert.Equal(t, []string{"A", "B", "C", "D"}, resp.Test.Questions[0].Options)

	// The serialized payload must not leak grading data anywhere.
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "correct_option")
	assert.NotContains(t, string(raw), "answer_key")
}

func TestGetTestForAttemptReflectsHistory(t *testing.T) {
	db := newTestDB(t)
	svc := newUserTestService(db)
	submissions := NewSubmissionService(repository.NewTestRepository(db), db)
	student := seedStudent(t, db, "student@example.com")
	test := seedPublishedTest(t, db, "MRB Mock 1", false)

	_, err := submissions.Submit(student.ID, test.ID, dto.SubmitAttemptDTO{Answers: []*int{intp(0)}})
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.ReattemptRequest{
		UserID: student.ID, TestID: test.ID, Status: model.ReattemptPending,
	}).Error)

	resp, err := svc.GetTestForAttempt(test.ID, student.ID)
	require.NoError(t, err)
	assert.True(t, resp.HasAttempted)
	require.NotNil(t, resp.RequestStatus)
	assert.Equal(t, model.ReattemptPending, *resp.RequestStatus)
}

func TestGetAttemptDetailOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newUserTestService(db)
	submissions := NewSubmissionService(repository.NewTestRepository(db), db)
	owner := seedStudent(t, db, "owner@example.com")
	other := seedStudent(t, db, "other@example.com")
	test := seedPublishedTest(t, db, "MRB Mock 1", false)

	result, err := submissions.Submit(owner.ID, test.ID, dto.SubmitAttemptDTO{
		Answers: []*int{intp(0), intp(1), intp(2), intp(3)},
	})
	require.NoError(t, err)

	detail, err := svc.GetAttemptDetail(result.AttemptID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, detail.AnswerKey)
	assert.Equal(t, 100.0, detail.ScorePercent)

	// Another student's attempt reads as missing, not forbidden.
	_, err = svc.GetAttemptDetail(result.AttemptID, other.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
