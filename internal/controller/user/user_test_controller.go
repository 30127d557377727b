package user

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/Abinaya-R-2005/siddha-sub000/internal/dto"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/middleware"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type UserTestController struct {
	userTestService   service.UserTestService
	submissionService service.SubmissionService
	reattemptService  service.ReattemptService
	dashboardService  service.DashboardService
}

func NewUserTestController(
	uts service.UserTestService,
	ss service.SubmissionService,
	rs service.ReattemptService,
	ds service.DashboardService,
) *UserTestController {
	return &UserTestController{
		userTestService:   uts,
		submissionService: ss,
		reattemptService:  rs,
		dashboardService:  ds,
	}
}

// ListTests godoc
// @Summary List available tests
// @Description Published tests inside their schedule window for the student's category.
// @Tags Student - Tests & Attempts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /tests [get]
func (c *UserTestController) ListTests(ctx *gin.Context) {
	category := ctx.GetString(middleware.ContextCategory)
	tests, err := c.userTestService.ListAvailableTests(category)
	if err != nil {
		log.Error().Err(err).Msg("ListTests: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve tests"})
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTestForAttempt godoc
// @Summary Get a test to attempt
// @Description Public projection of a test (no answer key) plus the caller's attempt and re-attempt request state.
// @Tags Student - Tests & Attempts
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.TestForAttemptDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid test ID"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{test_id} [get]
func (c *UserTestController) GetTestForAttempt(ctx *gin.Context) {
	testID, ok := pathID(ctx, "test_id")
	if !ok {
		return
	}
	resp, err := c.userTestService.GetTestForAttempt(testID, middleware.UserID(ctx))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Test not found"})
			return
		}
		log.Error().Err(err).Uint("testID", testID).Msg("GetTestForAttempt: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve test"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitAttempt godoc
// @Summary Submit answers for a test
// @Description Scores the submission and records an immutable attempt. A second submission requires an approved re-attempt request.
// @Tags Student - Tests & Attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Param submission body dto.SubmitAttemptDTO true "Ordered answers; null entries mean unanswered"
// @Success 200 {object} dto.AttemptResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Already attempted"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{test_id}/submit [post]
func (c *UserTestController) SubmitAttempt(ctx *gin.Context) {
	testID, ok := pathID(ctx, "test_id")
	if !ok {
		return
	}
	var req dto.SubmitAttemptDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	result, err := c.submissionService.Submit(middleware.UserID(ctx), testID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Test not found"})
		case errors.Is(err, service.ErrAlreadyAttempted):
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "Test already attempted"})
		default:
			log.Error().Err(err).Uint("testID", testID).Msg("SubmitAttempt: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit attempt"})
		}
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// MyAttempts godoc
// @Summary List own attempts
// @Tags Student - Tests & Attempts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /my-attempts [get]
func (c *UserTestController) MyAttempts(ctx *gin.Context) {
	attempts, err := c.userTestService.GetMyAttempts(middleware.UserID(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve attempts"})
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// AttemptDetail godoc
// @Summary Get one of the caller's attempts
// @Tags Student - Tests & Attempts
// @Produce json
// @Security BearerAuth
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /attempts/{attempt_id} [get]
func (c *UserTestController) AttemptDetail(ctx *gin.Context) {
	attemptID, ok := pathID(ctx, "attempt_id")
	if !ok {
		return
	}
	attempt, err := c.userTestService.GetAttemptDetail(attemptID, middleware.UserID(ctx))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Attempt not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve attempt"})
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// RequestReattempt godoc
// @Summary Request a re-attempt
// @Description Asks faculty/admin to unlock a second attempt for an already-attempted test.
// @Tags Student - Tests & Attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Param request body dto.ReattemptCreateDTO false "Optional message to the reviewer"
// @Success 201 {object} dto.ReattemptRequestDTO
// @Failure 400 {object} dto.ErrorResponse "Duplicate pending request or no attempt yet"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{test_id}/reattempt [post]
func (c *UserTestController) RequestReattempt(ctx *gin.Context) {
	testID, ok := pathID(ctx, "test_id")
	if !ok {
		return
	}
	// The message body is optional; an empty body is a request with no note.
	var req dto.ReattemptCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.reattemptService.Request(middleware.UserID(ctx), testID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Test not found"})
		case errors.Is(err, service.ErrNoAttemptYet):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "No attempt exists for this test yet"})
		case errors.Is(err, service.ErrDuplicatePendingRequest):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "A pending re-attempt request already exists"})
		default:
			log.Error().Err(err).Uint("testID", testID).Msg("RequestReattempt: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create re-attempt request"})
		}
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Dashboard godoc
// @Summary Student dashboard
// @Tags Student - Tests & Attempts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StudentDashboardDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard [get]
func (c *UserTestController) Dashboard(ctx *gin.Context) {
	resp, err := c.dashboardService.StudentDashboard(middleware.UserID(ctx), ctx.GetString(middleware.ContextCategory))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to build dashboard"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// pathID parses a uint path parameter, writing a 400 response on failure.
func pathID(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}
