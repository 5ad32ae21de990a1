package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/suranga-printers/print-shop-api/quote"
	"github.com/suranga-printers/print-shop-api/utils"
	"gorm.io/gorm"
)

func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func respondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": "Invalid request data",
			"details": err.Error(),
		},
	})
}

// respondDomainError maps typed quote and upload errors to a 400 with their code
func respondDomainError(c *gin.Context, err error) bool {
	var validationErr *quote.ValidationError
	if errors.As(err, &validationErr) {
		respondError(c, http.StatusBadRequest, validationErr.Code, validationErr.Message)
		return true
	}

	var uploadErr *utils.FileUploadError
	if errors.As(err, &uploadErr) {
		respondError(c, http.StatusBadRequest, uploadErr.Code, uploadErr.Message)
		return true
	}
	return false
}

// respondLookupError writes a 404 for missing rows and a 500 otherwise
func respondLookupError(c *gin.Context, err error, entity string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, "NOT_FOUND", entity+" not found")
		return
	}
	log.Error().Err(err).Str("entity", entity).Msg("lookup failed")
	respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load "+entity)
}

// parseID reads the :id path parameter, writing a 400 when it is not a positive integer
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID format")
		return 0, false
	}
	return uint(id), true
}
