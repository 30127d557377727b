package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abinaya-R-2005/siddha-sub000/internal/dto"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/model"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/repository"
	"gorm.io/gorm"
)

func newAdminTestService(t *testing.T, db *gorm.DB) AdminTestService {
	t.Helper()
	uploads, err := NewUploadService(t.TempDir())
	require.NoError(t, err)
	return NewAdminTestService(repository.NewTestRepository(db), uploads)
}

func sampleQuestions(n int) []dto.QuestionCreateDTO {
	questions := make([]dto.QuestionCreateDTO, n)
	for i := range questions {
		questions[i] = dto.QuestionCreateDTO{
			Text:          "Which option is correct?",
			Options:       []string{"A", "B", "C", "D"},
			CorrectOption: intp(i % 4),
		}
	}
	return questions
}

func TestCreateTestStartsDraft(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminTestService(t, db)

	created, err := svc.CreateTest(dto.TestCreateDTO{
		Title:           "MRB Mock 1",
		Subject:         "Gunapadam",
		Category:        model.CategoryMRB,
		DurationMinutes: 90,
		Questions:       sampleQuestions(3),
	})
	require.NoError(t, err)
	assert.Equal(t, model.TestStatusDraft, created.Status)
	require.Len(t, created.Questions, 3)
	assert.Equal(t, 1, created.Questions[0].OrderInTest)
	assert.Equal(t, 0, created.Questions[0].CorrectOption)
}

func TestSetStatusTransitions(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminTestService(t, db)

	created, err := svc.CreateTest(dto.TestCreateDTO{
		Title:           "MRB Mock 1",
		Subject:         "Gunapadam",
		Category:        model.CategoryMRB,
		DurationMinutes: 90,
		Questions:       sampleQuestions(1),
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.SetStatus(created.ID, "archived"), ErrInvalidTransition)
	assert.ErrorIs(t, svc.SetStatus(999, model.TestStatusPublished), ErrNotFound)

	require.NoError(t, svc.SetStatus(created.ID, model.TestStatusPublished))
	got, err := svc.GetTest(created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TestStatusPublished, got.Status)

	require.NoError(t, svc.SetStatus(created.ID, model.TestStatusDisabled))
}

func TestUpdateTestReplacesQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminTestService(t, db)

	created, err := svc.CreateTest(dto.TestCreateDTO{
		Title:           "MRB Mock 1",
		Subject:         "Gunapadam",
		Category:        model.CategoryMRB,
		DurationMinutes: 90,
		Questions:       sampleQuestions(2),
	})
	require.NoError(t, err)

	negative := true
	updated, err := svc.UpdateTest(created.ID, dto.TestUpdateDTO{
		Title:           "MRB Mock 1 (revised)",
		NegativeMarking: &negative,
		Questions:       sampleQuestions(4),
	})
	require.NoError(t, err)
	assert.Equal(t, "MRB Mock 1 (revised)", updated.Title)
	assert.True(t, updated.NegativeMarking)
	assert.Len(t, updated.Questions, 4)

	// The replacement is total, not a merge.
	var count int64
	require.NoError(t, db.Model(&model.Question{}).Where("test_id = ?", created.ID).Count(&count).Error)
	assert.Equal(t, int64(4), count)
}

func TestUpdateTestMetadataKeepsQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminTestService(t, db)

	created, err := svc.CreateTest(dto.TestCreateDTO{
		Title:           "MRB Mock 1",
		Subject:         "Gunapadam",
		Category:        model.CategoryMRB,
		DurationMinutes: 90,
		Questions:       sampleQuestions(2),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateTest(created.ID, dto.TestUpdateDTO{DurationMinutes: 120})
	require.NoError(t, err)
	assert.Equal(t, 120, updated.DurationMinutes)
	assert.Len(t, updated.Questions, 2)
}

func TestDeleteTestRemovesAttachedFiles(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()
	uploads, err := NewUploadService(dir)
	require.NoError(t, err)
	svc := NewAdminTestService(repository.NewTestRepository(db), uploads)

	name := "diagram.png"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("png"), 0o644))
	fileURL := "/uploads/" + name

	questions := sampleQuestions(1)
	questions[0].FileURL = &fileURL
	created, err := svc.CreateTest(dto.TestCreateDTO{
		Title:           "MRB Mock 1",
		Subject:         "Gunapadam",
		Category:        model.CategoryMRB,
		DurationMinutes: 90,
		Questions:       questions,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTest(created.ID))
	assert.ErrorIs(t, svc.DeleteTest(created.ID), ErrNotFound)

	_, err = os.Stat(filepath.Join(dir, name))
	assert.True(t, os.IsNotExist(err))

	var count int64
	require.NoError(t, db.Unscoped().Model(&model.Question{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
