package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suranga-printers/print-shop-api/models"
)

func TestGetDashboard(t *testing.T) {
	db, _ := setupTestEnv(t)
	router := newTestRouter()

	now := time.Now()
	statuses := []models.QuoteStatus{
		models.StatusReceived, models.StatusReceived, models.StatusPrinting,
		models.StatusOutForDelivery, models.StatusCompleted, models.StatusCancelled,
		models.StatusReceived,
	}
	var latest models.Quote
	for i, status := range statuses {
		latest = seedQuote(t, status, now.Add(time.Duration(i)*time.Minute))
	}

	require.NoError(t, db.Create(&models.Review{Name: "a", Rating: 5, Message: "m"}).Error)
	require.NoError(t, db.Create(&models.Review{Name: "b", Rating: 5, Message: "m", Approved: true}).Error)

	w := doJSON(router, http.MethodGet, "/api/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var dash Dashboard
	decode(t, w, &dash)
	assert.Equal(t, DashboardCounts{Received: 3, Printing: 1, OutForDelivery: 1, PendingReviews: 1}, dash.Counts)
	require.Len(t, dash.RecentQuotes, 6)
	assert.Equal(t, latest.ID, dash.RecentQuotes[0].ID)
	require.Len(t, dash.PendingReviews, 1)
	assert.Equal(t, "a", dash.PendingReviews[0].Name)
}

func TestGetDashboard_Empty(t *testing.T) {
	setupTestEnv(t)
	router := newTestRouter()

	w := doJSON(router, http.MethodGet, "/api/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var dash Dashboard
	decode(t, w, &dash)
	assert.Zero(t, dash.Counts)
	assert.Empty(t, dash.RecentQuotes)
}
