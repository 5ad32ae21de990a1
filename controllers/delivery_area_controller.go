package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/suranga-printers/print-shop-api/config"
	"github.com/suranga-printers/print-shop-api/models"
)

// DeliveryAreaRequest is the body of create and update delivery area requests
type DeliveryAreaRequest struct {
	Area   string `json:"area" binding:"required"`
	FeeLKR int    `json:"fee_lkr" binding:"min=0"`
	Active *bool  `json:"active" copier:"-"`
}

// ListDeliveryAreas handles GET /api/delivery-areas - active areas used to price delivery
func ListDeliveryAreas(c *gin.Context) {
	areas, err := activeDeliveryAreas()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to retrieve delivery areas")
		return
	}
	respondOK(c, http.StatusOK, areas)
}

func activeDeliveryAreas() ([]models.DeliveryArea, error) {
	var areas []models.DeliveryArea
	err := config.GetDB().Where("active = ?", true).Order("area ASC").Find(&areas).Error
	return areas, err
}

// ListAllDeliveryAreas handles GET /api/admin/delivery-areas
func ListAllDeliveryAreas(c *gin.Context) {
	var areas []models.DeliveryArea
	if err := config.GetDB().Order("area ASC").Find(&areas).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to retrieve delivery areas")
		return
	}
	respondOK(c, http.StatusOK, areas)
}

// CreateDeliveryArea handles POST /api/admin/delivery-areas
func CreateDeliveryArea(c *gin.Context) {
	var req DeliveryAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}
	saveDeliveryArea(c, &models.DeliveryArea{}, &req, http.StatusCreated)
}

// UpdateDeliveryArea handles PUT /api/admin/delivery-areas/:id
func UpdateDeliveryArea(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req DeliveryAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	var area models.DeliveryArea
	if err := config.GetDB().First(&area, id).Error; err != nil {
		respondLookupError(c, err, "Delivery area")
		return
	}
	saveDeliveryArea(c, &area, &req, http.StatusOK)
}

func saveDeliveryArea(c *gin.Context, area *models.DeliveryArea, req *DeliveryAreaRequest, status int) {
	name := strings.TrimSpace(req.Area)
	if name == "" {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Area name is required")
		return
	}

	if err := copier.Copy(area, req); err != nil {
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to read delivery area")
		return
	}
	area.Area = name
	area.Active = req.Active == nil || *req.Active

	if err := config.GetDB().Save(area).Error; err != nil {
		log.Error().Err(err).Str("area", name).Msg("failed to save delivery area")
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save delivery area")
		return
	}

	respondOK(c, status, area)
}

// DeleteDeliveryArea handles DELETE /api/admin/delivery-areas/:id.
// Quotes keep the area name and fee they were priced with.
func DeleteDeliveryArea(c *gin.Context) {
	deleteByID(c, &models.DeliveryArea{}, "Delivery area")
}
