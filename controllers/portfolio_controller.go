package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/suranga-printers/print-shop-api/config"
	"github.com/suranga-printers/print-shop-api/models"
	"github.com/suranga-printers/print-shop-api/services"
	"github.com/suranga-printers/print-shop-api/utils"
)

const (
	portfolioImageField      = "image"
	defaultPortfolioCategory = "Marketing"
)

// PortfolioRequest holds the text fields of the portfolio multipart form
type PortfolioRequest struct {
	Title       string `form:"title" binding:"required"`
	Category    string `form:"category"`
	Tag         string `form:"tag"`
	Description string `form:"description"`
	Featured    bool   `form:"featured"`
	Active      *bool  `form:"active"`
}

func (r *PortfolioRequest) apply(item *models.PortfolioItem) {
	item.Title = strings.TrimSpace(r.Title)
	item.Category = strings.TrimSpace(r.Category)
	if item.Category == "" {
		item.Category = defaultPortfolioCategory
	}
	item.Tag = strings.TrimSpace(r.Tag)
	item.Description = r.Description
	item.Featured = r.Featured
	item.Active = r.Active == nil || *r.Active
}

func withImageURL(ctx context.Context, storage services.FileStorage, item *models.PortfolioItem) {
	if item.ImageKey == "" {
		return
	}
	url, err := storage.URL(ctx, item.ImageKey)
	if err != nil {
		log.Warn().Err(err).Str("key", item.ImageKey).Msg("failed to resolve portfolio image URL")
		return
	}
	item.ImageURL = url
}

func listPortfolio(c *gin.Context, activeOnly bool) {
	query := config.GetDB().Order("featured DESC").Order("created_at DESC").Order("id DESC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var items []models.PortfolioItem
	if err := query.Find(&items).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to retrieve portfolio")
		return
	}

	ctx := c.Request.Context()
	storage := services.GetFileStorage()
	for i := range items {
		withImageURL(ctx, storage, &items[i])
	}
	respondOK(c, http.StatusOK, items)
}

// ListPortfolio handles GET /api/portfolio - active items for the gallery
func ListPortfolio(c *gin.Context) {
	listPortfolio(c, true)
}

// ListAllPortfolio handles GET /api/admin/portfolio
func ListAllPortfolio(c *gin.Context) {
	listPortfolio(c, false)
}

// CreatePortfolioItem handles POST /api/admin/portfolio - multipart with a required image
func CreatePortfolioItem(c *gin.Context) {
	var req PortfolioRequest
	if err := c.ShouldBind(&req); err != nil {
		respondValidationError(c, err)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Title is required")
		return
	}

	fileHeader, err := c.FormFile(portfolioImageField)
	if err != nil {
		respondError(c, http.StatusBadRequest, "MISSING_FILE", "An image is required")
		return
	}
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		respondDomainError(c, err)
		return
	}

	ctx := c.Request.Context()
	storage := services.GetFileStorage()
	key, err := storage.Save(ctx, fileHeader, services.PortfolioFolder)
	if err != nil {
		log.Error().Err(err).Msg("failed to store portfolio image")
		respondError(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to store image")
		return
	}

	item := models.PortfolioItem{ImageKey: key}
	req.apply(&item)
	if err := config.GetDB().Create(&item).Error; err != nil {
		log.Error().Err(err).Msg("failed to create portfolio item")
		if delErr := storage.Delete(ctx, key); delErr != nil {
			log.Warn().Err(delErr).Str("key", key).Msg("failed to remove orphaned image")
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create portfolio item")
		return
	}

	withImageURL(ctx, storage, &item)
	respondOK(c, http.StatusCreated, item)
}

// UpdatePortfolioItem handles PUT /api/admin/portfolio/:id.
// A new image replaces the old one, which is removed from storage.
func UpdatePortfolioItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req PortfolioRequest
	if err := c.ShouldBind(&req); err != nil {
		respondValidationError(c, err)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Title is required")
		return
	}

	db := config.GetDB()
	var item models.PortfolioItem
	if err := db.First(&item, id).Error; err != nil {
		respondLookupError(c, err, "Portfolio item")
		return
	}

	ctx := c.Request.Context()
	storage := services.GetFileStorage()

	oldKey := ""
	if fileHeader, err := c.FormFile(portfolioImageField); err == nil {
		if err := utils.ValidateImageFile(fileHeader); err != nil {
			respondDomainError(c, err)
			return
		}
		key, err := storage.Save(ctx, fileHeader, services.PortfolioFolder)
		if err != nil {
			log.Error().Err(err).Msg("failed to store portfolio image")
			respondError(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to store image")
			return
		}
		oldKey = item.ImageKey
		item.ImageKey = key
	}

	req.apply(&item)
	if err := db.Save(&item).Error; err != nil {
		log.Error().Err(err).Uint("id", id).Msg("failed to update portfolio item")
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update portfolio item")
		return
	}

	if oldKey != "" {
		if err := storage.Delete(ctx, oldKey); err != nil {
			log.Warn().Err(err).Str("key", oldKey).Msg("failed to remove replaced image")
		}
	}

	withImageURL(ctx, storage, &item)
	respondOK(c, http.StatusOK, item)
}

// DeletePortfolioItem handles DELETE /api/admin/portfolio/:id and removes its image
func DeletePortfolioItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var item models.PortfolioItem
	if err := db.First(&item, id).Error; err != nil {
		respondLookupError(c, err, "Portfolio item")
		return
	}
	if err := db.Delete(&item).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete portfolio item")
		return
	}

	if err := services.GetFileStorage().Delete(c.Request.Context(), item.ImageKey); err != nil {
		log.Warn().Err(err).Str("key", item.ImageKey).Msg("failed to remove portfolio image")
	}

	respondOK(c, http.StatusOK, gin.H{"id": id})
}
