package user

import (
	"errors"
	"net/http"

	"github.com/Abinaya-R-2005/siddha-sub000/internal/dto"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/middleware"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/service"
	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviewService service.ReviewService
}

func NewReviewController(reviewService service.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// ListReviews godoc
// @Summary List reviews
// @Tags Reviews
// @Produce json
// @Success 200 {array} dto.ReviewDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /reviews [get]
func (c *ReviewController) ListReviews(ctx *gin.Context) {
	reviews, err := c.reviewService.ListReviews()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve reviews"})
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}

// UpsertReview godoc
// @Summary Create or replace own review
// @Tags Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param review body dto.ReviewCreateDTO true "Rating and comment"
// @Success 200 {object} dto.ReviewDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /reviews [post]
func (c *ReviewController) UpsertReview(ctx *gin.Context) {
	var req dto.ReviewCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	review, err := c.reviewService.UpsertReview(middleware.UserID(ctx), req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to save review"})
		return
	}
	ctx.JSON(http.StatusOK, review)
}

// DeleteReview godoc
// @Summary Delete own review
// @Tags Reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "No review to delete"
// @Router /reviews [delete]
func (c *ReviewController) DeleteReview(ctx *gin.Context) {
	if err := c.reviewService.DeleteOwnReview(middleware.UserID(ctx)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No review to delete"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete review"})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Review deleted"})
}
