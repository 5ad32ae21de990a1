package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/suranga-printers/print-shop-api/config"
	"github.com/suranga-printers/print-shop-api/models"
	"gorm.io/gorm"
)

const defaultServiceCategory = "General"

// ServiceRequest is the body of create and update service requests.
// Active defaults to true when omitted.
type ServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Featured    bool   `json:"featured"`
	Active      *bool  `json:"active" copier:"-"`
}

func (r *ServiceRequest) apply(service *models.Service) error {
	if err := copier.Copy(service, r); err != nil {
		return fmt.Errorf("failed to copy service fields: %w", err)
	}
	service.Name = strings.TrimSpace(r.Name)
	service.Category = strings.TrimSpace(r.Category)
	if service.Category == "" {
		service.Category = defaultServiceCategory
	}
	service.Active = r.Active == nil || *r.Active
	return nil
}

// uniqueServiceSlug derives a slug from name, suffixing -1, -2... when another service holds it
func uniqueServiceSlug(tx *gorm.DB, name string, exceptID uint) (string, error) {
	base := slug.Make(name)
	if base == "" {
		base = "service"
	}
	result := base

	for i := 1; ; i++ {
		var count int64
		if err := tx.Model(&models.Service{}).
			Where("slug = ? AND id <> ?", result, exceptID).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return result, nil
		}
		result = fmt.Sprintf("%s-%d", base, i)
	}
}

func serviceNameTaken(tx *gorm.DB, name string, exceptID uint) (bool, error) {
	var count int64
	err := tx.Model(&models.Service{}).
		Where("LOWER(name) = LOWER(?) AND id <> ?", name, exceptID).
		Count(&count).Error
	return count > 0, err
}

// ListServices handles GET /api/services - active services for the public site
func ListServices(c *gin.Context) {
	var services []models.Service
	if err := config.GetDB().
		Where("active = ?", true).
		Order("featured DESC").Order("name ASC").
		Find(&services).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to retrieve services")
		return
	}
	respondOK(c, http.StatusOK, services)
}

// ListAllServices handles GET /api/admin/services - every service including inactive ones
func ListAllServices(c *gin.Context) {
	var services []models.Service
	if err := config.GetDB().Order("name ASC").Find(&services).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to retrieve services")
		return
	}
	respondOK(c, http.StatusOK, services)
}

// CreateService handles POST /api/admin/services
func CreateService(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}
	saveService(c, &models.Service{}, &req, http.StatusCreated)
}

// UpdateService handles PUT /api/admin/services/:id - replaces every editable field
func UpdateService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	var service models.Service
	if err := config.GetDB().First(&service, id).Error; err != nil {
		respondLookupError(c, err, "Service")
		return
	}
	saveService(c, &service, &req, http.StatusOK)
}

func saveService(c *gin.Context, service *models.Service, req *ServiceRequest, status int) {
	if strings.TrimSpace(req.Name) == "" {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Service name is required")
		return
	}
	if err := req.apply(service); err != nil {
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to read service")
		return
	}

	db := config.GetDB()
	taken, err := serviceNameTaken(db, service.Name, service.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save service")
		return
	}
	if taken {
		respondError(c, http.StatusConflict, "DUPLICATE_SERVICE", "A service with this name already exists")
		return
	}

	service.Slug, err = uniqueServiceSlug(db, service.Name, service.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save service")
		return
	}

	if err := db.Save(service).Error; err != nil {
		log.Error().Err(err).Str("name", service.Name).Msg("failed to save service")
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save service")
		return
	}

	respondOK(c, status, service)
}

// DeleteService handles DELETE /api/admin/services/:id
func DeleteService(c *gin.Context) {
	deleteByID(c, &models.Service{}, "Service")
}

// deleteByID hard-deletes the row named by :id, answering 404 when nothing was removed
func deleteByID(c *gin.Context, model interface{}, entity string) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result := config.GetDB().Delete(model, id)
	if result.Error != nil {
		log.Error().Err(result.Error).Str("entity", entity).Uint("id", id).Msg("delete failed")
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete "+strings.ToLower(entity))
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "NOT_FOUND", entity+" not found")
		return
	}

	respondOK(c, http.StatusOK, gin.H{"id": id})
}
