package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abinaya-R-2005/siddha-sub000/internal/dto"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/model"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/repository"
)

const testJWTSecret = "test-secret"

func newAuthFixture(t *testing.T) (AuthService, ApprovalService) {
	t.Helper()
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	return NewAuthService(userRepo, testJWTSecret), NewApprovalService(userRepo)
}

func TestRegisterStartsPending(t *testing.T) {
	auth, _ := newAuthFixture(t)

	user, err := auth.Register(dto.RegisterDTO{
		FullName: "Anitha K",
		Email:    "anitha@example.com",
		Password: "password123",
		Category: model.CategoryMRB,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleStudent, user.Role)
	assert.Equal(t, model.StatusPending, user.Status)
	assert.Equal(t, model.CategoryMRB, user.Category)

	_, err = auth.Register(dto.RegisterDTO{
		FullName: "Someone Else",
		Email:    "anitha@example.com",
		Password: "password123",
		Category: model.CategoryAIAPGET,
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginRequiresApproval(t *testing.T) {
	auth, approvals := newAuthFixture(t)

	user, err := auth.Register(dto.RegisterDTO{
		FullName: "Anitha K",
		Email:    "anitha@example.com",
		Password: "password123",
		Category: model.CategoryMRB,
	})
	require.NoError(t, err)

	login := dto.LoginDTO{
		Email:     "anitha@example.com",
		Password:  "password123",
		LoginType: model.RoleStudent,
	}

	_, err = auth.Login(login)
	assert.ErrorIs(t, err, ErrAccountNotApproved)

	require.NoError(t, approvals.Approve(user.ID))

	resp, err := auth.Login(login)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.RoleStudent, claims.Role)
	assert.Equal(t, model.CategoryMRB, claims.Category)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	auth, approvals := newAuthFixture(t)

	user, err := auth.Register(dto.RegisterDTO{
		FullName: "Anitha K",
		Email:    "anitha@example.com",
		Password: "password123",
		Category: model.CategoryMRB,
	})
	require.NoError(t, err)
	require.NoError(t, approvals.Approve(user.ID))

	_, err = auth.Login(dto.LoginDTO{
		Email:     "anitha@example.com",
		Password:  "wrong-password",
		LoginType: model.RoleStudent,
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// A student token cannot be minted through the faculty portal.
	_, err = auth.Login(dto.LoginDTO{
		Email:     "anitha@example.com",
		Password:  "password123",
		LoginType: model.RoleFaculty,
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(dto.LoginDTO{
		Email:     "nobody@example.com",
		Password:  "password123",
		LoginType: model.RoleStudent,
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateStaffSkipsQueue(t *testing.T) {
	auth, _ := newAuthFixture(t)

	user, err := auth.CreateStaff(dto.StaffCreateDTO{
		FullName: "Prof. Murugan",
		Email:    "murugan@example.com",
		Password: "password123",
		Role:     model.RoleFaculty,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, user.Status)

	resp, err := auth.Login(dto.LoginDTO{
		Email:     "murugan@example.com",
		Password:  "password123",
		LoginType: model.RoleFaculty,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleFaculty, resp.User.Role)
}

func TestApproveRejectTransitions(t *testing.T) {
	auth, approvals := newAuthFixture(t)

	user, err := auth.Register(dto.RegisterDTO{
		FullName: "Anitha K",
		Email:    "anitha@example.com",
		Password: "password123",
		Category: model.CategoryMRB,
	})
	require.NoError(t, err)

	require.NoError(t, approvals.Reject(user.ID))
	// Resolved accounts cannot be re-resolved.
	assert.ErrorIs(t, approvals.Approve(user.ID), ErrInvalidTransition)
	assert.ErrorIs(t, approvals.Approve(999), ErrNotFound)
}
