package admin

import (
	"errors"
	"net/http"

	"github.com/Abinaya-R-2005/siddha-sub000/internal/dto"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ReattemptAdminController struct {
	reattemptService service.ReattemptService
}

func NewReattemptAdminController(reattemptService service.ReattemptService) *ReattemptAdminController {
	return &ReattemptAdminController{reattemptService: reattemptService}
}

// ListRequests godoc
// @Summary (Faculty/Admin) List re-attempt requests
// @Description Requests with joined user and test summaries, oldest first.
// @Tags Admin - Re-attempts
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (pending, approved, rejected)"
// @Success 200 {array} dto.ReattemptRequestDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/reattempts [get]
func (c *ReattemptAdminController) ListRequests(ctx *gin.Context) {
	requests, err := c.reattemptService.ListRequests(ctx.Query("status"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve re-attempt requests"})
		return
	}
	ctx.JSON(http.StatusOK, requests)
}

// ResolveRequest godoc
// @Summary (Faculty/Admin) Approve or reject a re-attempt request
// @Description Approving unlocks exactly one further submission for the pair; the original attempt is kept for review.
// @Tags Admin - Re-attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request_id path int true "Request ID"
// @Param resolution body dto.ReattemptResolveDTO true "approved or rejected"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid status or request already resolved"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Router /admin/reattempts/{request_id} [put]
func (c *ReattemptAdminController) ResolveRequest(ctx *gin.Context) {
	requestID, ok := pathID(ctx, "request_id")
	if !ok {
		return
	}
	var req dto.ReattemptResolveDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.reattemptService.Resolve(requestID, req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Re-attempt request not found"})
		case errors.Is(err, service.ErrAlreadyResolved):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Re-attempt request already resolved"})
		case errors.Is(err, service.ErrInvalidTransition):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid resolution status"})
		default:
			log.Error().Err(err).Uint("requestID", requestID).Msg("ResolveRequest: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to resolve request"})
		}
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Re-attempt request resolved"})
}
