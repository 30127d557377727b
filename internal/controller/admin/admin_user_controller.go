package admin

import (
	"errors"
	"net/http"

	"github.com/Abinaya-R-2005/siddha-sub000/internal/dto"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AdminUserController struct {
	approvalService service.ApprovalService
	authService     service.AuthService
}

func NewAdminUserController(approvalService service.ApprovalService, authService service.AuthService) *AdminUserController {
	return &AdminUserController{approvalService: approvalService, authService: authService}
}

// ListUsers godoc
// @Summary (Admin) List users
// @Tags Admin - Users
// @Produce json
// @Security BearerAuth
// @Param role query string false "Filter by role (student, faculty, admin)"
// @Param status query string false "Filter by status (pending, approved, rejected)"
// @Success 200 {array} dto.UserResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/users [get]
func (c *AdminUserController) ListUsers(ctx *gin.Context) {
	users, err := c.approvalService.ListUsers(ctx.Query("role"), ctx.Query("status"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve users"})
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// ApproveUser godoc
// @Summary (Admin) Approve a pending registration
// @Tags Admin - Users
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "User is not pending"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/users/{user_id}/approve [put]
func (c *AdminUserController) ApproveUser(ctx *gin.Context) {
	c.resolve(ctx, c.approvalService.Approve, "User approved")
}

// RejectUser godoc
// @Summary (Admin) Reject a pending registration
// @Tags Admin - Users
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "User is not pending"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/users/{user_id}/reject [put]
func (c *AdminUserController) RejectUser(ctx *gin.Context) {
	c.resolve(ctx, c.approvalService.Reject, "User rejected")
}

func (c *AdminUserController) resolve(ctx *gin.Context, action func(uint) error, message string) {
	userID, ok := pathID(ctx, "user_id")
	if !ok {
		return
	}
	if err := action(userID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "User not found"})
		case errors.Is(err, service.ErrInvalidTransition):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "User is not pending"})
		default:
			log.Error().Err(err).Uint("userID", userID).Msg("resolve user approval: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update user"})
		}
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

// DeleteUser godoc
// @Summary (Admin) Delete a user
// @Description Hard-deletes the user together with their attempts and re-attempt requests.
// @Tags Admin - Users
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/users/{user_id} [delete]
func (c *AdminUserController) DeleteUser(ctx *gin.Context) {
	userID, ok := pathID(ctx, "user_id")
	if !ok {
		return
	}
	if err := c.approvalService.DeleteUser(userID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "User not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete user"})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted"})
}

// CreateStaff godoc
// @Summary (Admin) Create a faculty or admin account
// @Description Staff accounts start approved; no registration queue.
// @Tags Admin - Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param account body dto.StaffCreateDTO true "Account data"
// @Success 201 {object} dto.UserResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /admin/users [post]
func (c *AdminUserController) CreateStaff(ctx *gin.Context) {
	var req dto.StaffCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	user, err := c.authService.CreateStaff(req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Email already registered"})
			return
		}
		log.Error().Err(err).Msg("CreateStaff: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create account"})
		return
	}
	ctx.JSON(http.StatusCreated, user)
}
