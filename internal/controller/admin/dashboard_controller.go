package admin

import (
	"errors"
	"net/http"

	"github.com/Abinaya-R-2005/siddha-sub000/internal/dto"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type DashboardController struct {
	dashboardService service.DashboardService
	subjectService   service.SubjectService
}

func NewDashboardController(dashboardService service.DashboardService, subjectService service.SubjectService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, subjectService: subjectService}
}

// Stats godoc
// @Summary (Faculty/Admin) Platform overview
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AdminDashboardDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/dashboard [get]
func (c *DashboardController) Stats(ctx *gin.Context) {
	resp, err := c.dashboardService.AdminDashboard()
	if err != nil {
		log.Error().Err(err).Msg("Stats: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to build dashboard"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateSubject godoc
// @Summary (Faculty/Admin) Create a subject
// @Tags Admin - Subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param subject body dto.SubjectCreateDTO true "Subject data"
// @Success 201 {object} model.Subject
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /admin/subjects [post]
func (c *DashboardController) CreateSubject(ctx *gin.Context) {
	var req dto.SubjectCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	subject, err := c.subjectService.CreateSubject(req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create subject"})
		return
	}
	ctx.JSON(http.StatusCreated, subject)
}

// ListSubjects godoc
// @Summary (Faculty/Admin) List subjects
// @Tags Admin - Subjects
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category (MRB, AIAPGET)"
// @Success 200 {array} model.Subject
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/subjects [get]
func (c *DashboardController) ListSubjects(ctx *gin.Context) {
	subjects, err := c.subjectService.ListSubjects(ctx.Query("category"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve subjects"})
		return
	}
	ctx.JSON(http.StatusOK, subjects)
}

// UpdateSubject godoc
// @Summary (Faculty/Admin) Update a subject
// @Tags Admin - Subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param subject_id path int true "Subject ID"
// @Param subject body dto.SubjectCreateDTO true "Subject data"
// @Success 200 {object} model.Subject
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /admin/subjects/{subject_id} [put]
func (c *DashboardController) UpdateSubject(ctx *gin.Context) {
	subjectID, ok := pathID(ctx, "subject_id")
	if !ok {
		return
	}
	var req dto.SubjectCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	subject, err := c.subjectService.UpdateSubject(subjectID, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Subject not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update subject"})
		return
	}
	ctx.JSON(http.StatusOK, subject)
}

// DeleteSubject godoc
// @Summary (Faculty/Admin) Delete a subject
// @Tags Admin - Subjects
// @Produce json
// @Security BearerAuth
// @Param subject_id path int true "Subject ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /admin/subjects/{subject_id} [delete]
func (c *DashboardController) DeleteSubject(ctx *gin.Context) {
	subjectID, ok := pathID(ctx, "subject_id")
	if !ok {
		return
	}
	if err := c.subjectService.DeleteSubject(subjectID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Subject not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete subject"})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Subject deleted"})
}
