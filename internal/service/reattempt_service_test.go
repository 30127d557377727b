package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abinaya-R-2005/siddha-sub000/internal/dto"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/model"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/repository"
)

func TestRequestWithoutAttempt(t *testing.T) {
	db := newTestDB(t)
	svc := NewReattemptService(
		repository.NewReattemptRepository(db),
		repository.NewAttemptRepository(db),
		repository.NewTestRepository(db),
	)
	student := seedStudent(t, db, "student@example.com")
	test := seedPublishedTest(t, db, "Mock Test 1", false)

	_, err := svc.Request(student.ID, test.ID, dto.ReattemptCreateDTO{})
	assert.ErrorIs(t, err, ErrNoAttemptYet)
}

func TestRequestUnknownTest(t *testing.T) {
	db := newTestDB(t)
	svc := NewReattemptService(
		repository.NewReattemptRepository(db),
		repository.NewAttemptRepository(db),
		repository.NewTestRepository(db),
	)
	student := seedStudent(t, db, "student@example.com")

	_, err := svc.Request(student.ID, 999, dto.ReattemptCreateDTO{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRequestDuplicatePending(t *testing.T) {
	db := newTestDB(t)
	testRepo := repository.NewTestRepository(db)
	svc := NewReattemptService(
		repository.NewReattemptRepository(db),
		repository.NewAttemptRepository(db),
		testRepo,
	)
	submissions := NewSubmissionService(testRepo, db)
	student := seedStudent(t, db, "student@example.com")
	test := seedPublishedTest(t, db, "Mock Test 1", false)

	_, err := submissions.Submit(student.ID, test.ID, dto.SubmitAttemptDTO{Answers: []*int{intp(0)}})
	require.NoError(t, err)

	_, err = svc.Request(student.ID, test.ID, dto.ReattemptCreateDTO{Message: "please"})
	require.NoError(t, err)

	_, err = svc.Request(student.ID, test.ID, dto.ReattemptCreateDTO{Message: "again"})
	assert.ErrorIs(t, err, ErrDuplicatePendingRequest)
}

func TestResolveTransitions(t *testing.T) {
	db := newTestDB(t)
	testRepo := repository.NewTestRepository(db)
	svc := NewReattemptService(
		repository.NewReattemptRepository(db),
		repository.NewAttemptRepository(db),
		testRepo,
	)
	submissions := NewSubmissionService(testRepo, db)
	student := seedStudent(t, db, "student@example.com")
	test := seedPublishedTest(t, db, "Mock Test 1", false)

	_, err := submissions.Submit(student.ID, test.ID, dto.SubmitAttemptDTO{Answers: []*int{intp(0)}})
	require.NoError(t, err)

	req, err := svc.Request(student.ID, test.ID, dto.ReattemptCreateDTO{})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Resolve(req.ID, "pending"), ErrInvalidTransition)
	assert.ErrorIs(t, svc.Resolve(999, model.ReattemptApproved), ErrNotFound)

	require.NoError(t, svc.Resolve(req.ID, model.ReattemptRejected))
	assert.ErrorIs(t, svc.Resolve(req.ID, model.ReattemptApproved), ErrAlreadyResolved)

	// Rejection keeps the record and the attempt.
	var attempts int64
	require.NoError(t, db.Model(&model.Attempt{}).Count(&attempts).Error)
	assert.Equal(t, int64(1), attempts)
}

func TestListRequestsCarriesLatestScore(t *testing.T) {
	db := newTestDB(t)
	testRepo := repository.NewTestRepository(db)
	svc := NewReattemptService(
		repository.NewReattemptRepository(db),
		repository.NewAttemptRepository(db),
		testRepo,
	)
	submissions := NewSubmissionService(testRepo, db)
	student := seedStudent(t, db, "student@example.com")
	test := seedPublishedTest(t, db, "Mock Test 1", false)

	_, err := submissions.Submit(student.ID, test.ID, dto.SubmitAttemptDTO{
		Answers: []*int{intp(0), intp(1), nil, nil},
	})
	require.NoError(t, err)

	_, err = svc.Request(student.ID, test.ID, dto.ReattemptCreateDTO{Message: "retry please"})
	require.NoError(t, err)

	requests, err := svc.ListRequests(model.ReattemptPending)
	require.NoError(t, err)
	require.Len(t, requests, 1)

	assert.Equal(t, student.ID, requests[0].UserID)
	assert.Equal(t, "Test Student", requests[0].UserName)
	assert.Equal(t, "Mock Test 1", requests[0].TestTitle)
	require.NotNil(t, requests[0].ScorePercent)
	assert.Equal(t, 50.0, *requests[0].ScorePercent)
}
