package service

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Abinaya-R-2005/siddha-sub000/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Subject{},
		&model.Test{},
		&model.Question{},
		&model.Attempt{},
		&model.ReattemptRequest{},
		&model.Review{},
	))
	return db
}

func seedStudent(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := model.User{
		FullName:     "Test Student",
		Email:        email,
		PasswordHash: "x",
		Role:         model.RoleStudent,
		Category:     model.CategoryMRB,
		Status:       model.StatusApproved,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// seedPublishedTest creates a published four-question test whose answer key
// is [0, 1, 2, 3].
func seedPublishedTest(t *testing.T, db *gorm.DB, title string, negative bool) *model.Test {
	t.Helper()
	test := model.Test{
		Title:           title,
		Subject:         "Gunapadam",
		Category:        model.CategoryMRB,
		Status:          model.TestStatusPublished,
		DurationMinutes: 60,
		NegativeMarking: negative,
	}
	for i := 0; i < 4; i++ {
		test.Questions = append(test.Questions, model.Question{
			OrderInTest:   i + 1,
			Text:          fmt.Sprintf("Question %d", i+1),
			OptionA:       "A",
			OptionB:       "B",
			OptionC:       "C",
			OptionD:       "D",
			CorrectOption: i,
		})
	}
	require.NoError(t, db.Create(&test).Error)
	return &test
}

func intp(v int) *int { return &v }
