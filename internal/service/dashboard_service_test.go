package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abinaya-R-2005/siddha-sub000/internal/dto"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/model"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/repository"
	"gorm.io/gorm"
)

func newDashboardService(db *gorm.DB) DashboardService {
	return NewDashboardService(
		repository.NewAttemptRepository(db),
		repository.NewReattemptRepository(db),
		repository.NewTestRepository(db),
		db,
	)
}

func TestStudentDashboard(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db)
	submissions := NewSubmissionService(repository.NewTestRepository(db), db)
	student := seedStudent(t, db, "student@example.com")
	test1 := seedPublishedTest(t, db, "MRB Mock 1", false)
	test2 := seedPublishedTest(t, db, "MRB Mock 2", false)

	_, err := submissions.Submit(student.ID, test1.ID, dto.SubmitAttemptDTO{
		Answers: []*int{intp(0), intp(1), nil, nil},
	})
	require.NoError(t, err)
	_, err = submissions.Submit(student.ID, test2.ID, dto.SubmitAttemptDTO{
		Answers: []*int{intp(0), intp(1), intp(2), intp(3)},
	})
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.ReattemptRequest{
		UserID: student.ID, TestID: test1.ID, Status: model.ReattemptPending,
	}).Error)

	resp, err := svc.StudentDashboard(student.ID, model.CategoryMRB)
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.AvailableTests)
	assert.Equal(t, int64(2), resp.AttemptedTests)
	assert.Equal(t, 75.0, resp.AverageScore)
	assert.Equal(t, 100.0, resp.BestScore)
	assert.Equal(t, int64(1), resp.PendingRequests)
	assert.Len(t, resp.RecentAttempts, 2)
}

func TestStudentDashboardEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db)
	student := seedStudent(t, db, "student@example.com")

	resp, err := svc.StudentDashboard(student.ID, model.CategoryMRB)
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.AttemptedTests)
	assert.Equal(t, 0.0, resp.AverageScore)
	assert.Equal(t, 0.0, resp.BestScore)
	assert.Empty(t, resp.RecentAttempts)
}

func TestAdminDashboard(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db)
	submissions := NewSubmissionService(repository.NewTestRepository(db), db)

	approved := seedStudent(t, db, "approved@example.com")
	require.NoError(t, db.Create(&model.User{
		FullName: "Waiting Student", Email: "pending@example.com", PasswordHash: "x",
		Role: model.RoleStudent, Category: model.CategoryAIAPGET, Status: model.StatusPending,
	}).Error)
	require.NoError(t, db.Create(&model.User{
		FullName: "Prof. Murugan", Email: "faculty@example.com", PasswordHash: "x",
		Role: model.RoleFaculty, Status: model.StatusApproved,
	}).Error)

	published := seedPublishedTest(t, db, "MRB Mock 1", false)
	draft := seedPublishedTest(t, db, "Draft Mock", false)
	require.NoError(t, db.Model(&model.Test{}).Where("id = ?", draft.ID).
		Update("status", model.TestStatusDraft).Error)

	_, err := submissions.Submit(approved.ID, published.ID, dto.SubmitAttemptDTO{
		Answers: []*int{intp(0), intp(1), nil, nil},
	})
	require.NoError(t, err)

	resp, err := svc.AdminDashboard()
	require.NoError(t, err)

	// Faculty accounts are not students.
	assert.Equal(t, int64(2), resp.TotalStudents)
	assert.Equal(t, int64(1), resp.PendingApprovals)
	assert.Equal(t, int64(2), resp.TotalTests)
	assert.Equal(t, int64(1), resp.PublishedTests)
	assert.Equal(t, int64(1), resp.TotalAttempts)
	assert.Equal(t, int64(0), resp.PendingReattempts)
	assert.Equal(t, int64(1), resp.CategoryBreakdown[model.CategoryMRB])
	assert.Equal(t, int64(1), resp.CategoryBreakdown[model.CategoryAIAPGET])

	require.Len(t, resp.TestPerformance, 1)
	assert.Equal(t, published.ID, resp.TestPerformance[0].TestID)
	assert.Equal(t, int64(1), resp.TestPerformance[0].AttemptCount)
	assert.Equal(t, 50.0, resp.TestPerformance[0].AverageScore)
}
