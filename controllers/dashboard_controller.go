package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suranga-printers/print-shop-api/config"
	"github.com/suranga-printers/print-shop-api/models"
	"github.com/suranga-printers/print-shop-api/services"
)

const dashboardRecentLimit = 6

// DashboardCounts are the headline numbers on the admin landing page
type DashboardCounts struct {
	Received       int64 `json:"received"`
	Printing       int64 `json:"printing"`
	OutForDelivery int64 `json:"out_for_delivery"`
	PendingReviews int64 `json:"pending_reviews"`
}

// Dashboard is the admin overview
type Dashboard struct {
	Counts         DashboardCounts `json:"counts"`
	RecentQuotes   []models.Quote  `json:"recent_quotes"`
	PendingReviews []models.Review `json:"pending_reviews"`
}

// GetDashboard handles GET /api/admin/dashboard
func GetDashboard(c *gin.Context) {
	db := config.GetDB()
	var dash Dashboard

	for status, count := range map[models.QuoteStatus]*int64{
		models.StatusReceived:       &dash.Counts.Received,
		models.StatusPrinting:       &dash.Counts.Printing,
		models.StatusOutForDelivery: &dash.Counts.OutForDelivery,
	} {
		if err := db.Model(&models.Quote{}).Where("status = ?", status).Count(count).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to count quotes")
			return
		}
	}

	if err := db.Model(&models.Review{}).Where("approved = ?", false).Count(&dash.Counts.PendingReviews).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to count reviews")
		return
	}

	if err := db.Preload("Files").
		Order("created_at DESC").Order("id DESC").
		Limit(dashboardRecentLimit).
		Find(&dash.RecentQuotes).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to retrieve quotes")
		return
	}

	if err := db.Where("approved = ?", false).
		Order("created_at DESC").Order("id DESC").
		Limit(dashboardRecentLimit).
		Find(&dash.PendingReviews).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to retrieve reviews")
		return
	}

	ctx := c.Request.Context()
	storage := services.GetFileStorage()
	for i := range dash.RecentQuotes {
		withFileURLs(ctx, storage, &dash.RecentQuotes[i])
	}

	respondOK(c, http.StatusOK, dash)
}
