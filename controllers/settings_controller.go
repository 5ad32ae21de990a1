package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/suranga-printers/print-shop-api/config"
	"github.com/suranga-printers/print-shop-api/models"
	"gorm.io/gorm"
)

// SettingsRequest replaces the whole settings record
type SettingsRequest struct {
	ShopName string               `json:"shop_name"`
	Address  string               `json:"address"`
	Phone    string               `json:"phone"`
	WhatsApp string               `json:"whatsapp"`
	Hours    models.BusinessHours `json:"hours"`
}

// loadSettings returns the saved settings, or the defaults when none were saved yet
func loadSettings(db *gorm.DB) (models.Settings, error) {
	var settings models.Settings
	err := db.First(&settings, models.SettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultSettings(), nil
	}
	return settings, err
}

// GetSettings handles GET /api/settings and GET /api/admin/settings
func GetSettings(c *gin.Context) {
	settings, err := loadSettings(config.GetDB())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load settings")
		return
	}
	respondOK(c, http.StatusOK, settings)
}

// UpdateSettings handles PUT /api/admin/settings
func UpdateSettings(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	settings := models.Settings{ID: models.SettingsID}
	if err := copier.Copy(&settings, &req); err != nil {
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to read settings")
		return
	}

	if err := config.GetDB().Save(&settings).Error; err != nil {
		log.Error().Err(err).Msg("failed to save settings")
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save settings")
		return
	}

	log.Info().Msg("settings updated")
	respondOK(c, http.StatusOK, settings)
}
