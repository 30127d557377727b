package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Abinaya-R-2005/siddha-sub000/internal/dto"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AdminTestController struct {
	adminTestService service.AdminTestService
	uploadService    service.UploadService
}

func NewAdminTestController(adminTestService service.AdminTestService, uploadService service.UploadService) *AdminTestController {
	return &AdminTestController{adminTestService: adminTestService, uploadService: uploadService}
}

// CreateTest godoc
// @Summary (Faculty/Admin) Create a question bank
// @Description Creates a test in draft status with its full question set. Each question carries four options and the correct option index.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test body dto.TestCreateDTO true "Test data including questions"
// @Success 201 {object} dto.AdminTestDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /admin/tests [post]
func (c *AdminTestController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateTest: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	test, err := c.adminTestService.CreateTest(req)
	if err != nil {
		log.Error().Err(err).Msg("CreateTest: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create test", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, test)
}

// ListTests godoc
// @Summary (Faculty/Admin) List tests
// @Tags Admin - Tests
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (draft, published, disabled)"
// @Param category query string false "Filter by category (MRB, AIAPGET)"
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/tests [get]
func (c *AdminTestController) ListTests(ctx *gin.Context) {
	tests, err := c.adminTestService.ListTests(ctx.Query("status"), ctx.Query("category"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve tests"})
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTest godoc
// @Summary (Faculty/Admin) Get a test with answer key
// @Tags Admin - Tests
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.AdminTestDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{test_id} [get]
func (c *AdminTestController) GetTest(ctx *gin.Context) {
	testID, ok := pathID(ctx, "test_id")
	if !ok {
		return
	}
	test, err := c.adminTestService.GetTest(testID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Test not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve test"})
		return
	}
	ctx.JSON(http.StatusOK, test)
}

// UpdateTest godoc
// @Summary (Faculty/Admin) Update a test
// @Description Updates metadata and optionally replaces the question set. Existing attempts keep their answer-key snapshots.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Param test body dto.TestUpdateDTO true "Fields to update"
// @Success 200 {object} dto.AdminTestDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{test_id} [put]
func (c *AdminTestController) UpdateTest(ctx *gin.Context) {
	testID, ok := pathID(ctx, "test_id")
	if !ok {
		return
	}
	var req dto.TestUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	test, err := c.adminTestService.UpdateTest(testID, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Test not found"})
			return
		}
		log.Error().Err(err).Uint("testID", testID).Msg("UpdateTest: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update test"})
		return
	}
	ctx.JSON(http.StatusOK, test)
}

// SetTestStatus godoc
// @Summary (Faculty/Admin) Publish, disable or return a test to draft
// @Tags Admin - Tests
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Param status query string true "New status (draft, published, disabled)"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{test_id}/status [put]
func (c *AdminTestController) SetTestStatus(ctx *gin.Context) {
	testID, ok := pathID(ctx, "test_id")
	if !ok {
		return
	}
	status := ctx.Query("status")
	if err := c.adminTestService.SetStatus(testID, status); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Test not found"})
		case errors.Is(err, service.ErrInvalidTransition):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid test status"})
		default:
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update test status"})
		}
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Test status updated"})
}

// DeleteTest godoc
// @Summary (Faculty/Admin) Delete a test
// @Description Deletes the test, its questions, and any files attached to them.
// @Tags Admin - Tests
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{test_id} [delete]
func (c *AdminTestController) DeleteTest(ctx *gin.Context) {
	testID, ok := pathID(ctx, "test_id")
	if !ok {
		return
	}
	if err := c.adminTestService.DeleteTest(testID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Test not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete test"})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Test deleted"})
}

// UploadFile godoc
// @Summary (Faculty/Admin) Upload a question attachment
// @Tags Admin - Tests
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Attachment"
// @Success 201 {object} map[string]string "file_url of the stored attachment"
// @Failure 400 {object} dto.ErrorResponse "Missing file"
// @Router /admin/uploads [post]
func (c *AdminTestController) UploadFile(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing file in form data"})
		return
	}
	url, err := c.uploadService.Save(file)
	if err != nil {
		log.Error().Err(err).Msg("UploadFile: failed to store file")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to store file"})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"file_url": url})
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
