package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/suranga-printers/print-shop-api/config"
	"github.com/suranga-printers/print-shop-api/models"
	"gorm.io/gorm"
)

// CreateReviewRequest is a public review submission. Moderation flags are not accepted.
type CreateReviewRequest struct {
	Name    string `json:"name" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Message string `json:"message" binding:"required"`
}

// ModerateReviewRequest toggles the moderation flags. Omitted flags are left unchanged.
type ModerateReviewRequest struct {
	Approved *bool `json:"approved"`
	Featured *bool `json:"featured"`
}

// CreateReview handles POST /api/reviews - the review waits for approval
func CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	name := strings.TrimSpace(req.Name)
	message := strings.TrimSpace(req.Message)
	if name == "" || message == "" {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name and message are required")
		return
	}

	review := models.Review{
		Name:     name,
		Rating:   req.Rating,
		Message:  message,
		Approved: false,
		Featured: false,
	}
	if err := config.GetDB().Create(&review).Error; err != nil {
		log.Error().Err(err).Msg("failed to create review")
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to submit review")
		return
	}

	respondOK(c, http.StatusCreated, review)
}

// ListReviews handles GET /api/reviews - approved reviews, featured first
func ListReviews(c *gin.Context) {
	var reviews []models.Review
	if err := config.GetDB().
		Where("approved = ?", true).
		Order("featured DESC").Order("created_at DESC").Order("id DESC").
		Find(&reviews).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to retrieve reviews")
		return
	}
	respondOK(c, http.StatusOK, reviews)
}

// ListAllReviews handles GET /api/admin/reviews - every review, newest first
func ListAllReviews(c *gin.Context) {
	var reviews []models.Review
	if err := config.GetDB().Order("created_at DESC").Order("id DESC").Find(&reviews).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to retrieve reviews")
		return
	}
	respondOK(c, http.StatusOK, reviews)
}

// ModerateReview handles PATCH /api/admin/reviews/:id.
// Approved and featured are independent; a featured review stays hidden until approved.
func ModerateReview(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ModerateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Approved != nil {
		updates["approved"] = *req.Approved
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if len(updates) == 0 {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Nothing to update: send approved or featured")
		return
	}

	var review models.Review
	err := config.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&review, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&review).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&review, id).Error
	})
	if err != nil {
		respondLookupError(c, err, "Review")
		return
	}

	respondOK(c, http.StatusOK, review)
}

// DeleteReview handles DELETE /api/admin/reviews/:id
func DeleteReview(c *gin.Context) {
	deleteByID(c, &models.Review{}, "Review")
}
