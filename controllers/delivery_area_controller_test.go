package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suranga-printers/print-shop-api/models"
)

func TestListDeliveryAreas(t *testing.T) {
	db, _ := setupTestEnv(t)
	router := newTestRouter()

	seedArea(t, db, "Kandy", 600, true)
	seedArea(t, db, "Dambulla", 300, true)
	seedArea(t, db, "Jaffna", 1500, false)

	var public []models.DeliveryArea
	w := doJSON(router, http.MethodGet, "/api/delivery-areas", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &public)
	require.Len(t, public, 2, "inactive areas are not priced")
	assert.Equal(t, "Dambulla", public[0].Area)
	assert.Equal(t, "Kandy", public[1].Area)

	var all []models.DeliveryArea
	decode(t, doJSON(router, http.MethodGet, "/api/admin/delivery-areas", nil), &all)
	assert.Len(t, all, 3)
}

func TestCreateDeliveryArea(t *testing.T) {
	setupTestEnv(t)
	router := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/admin/delivery-areas", map[string]interface{}{
		"area":    " Dambulla ",
		"fee_lkr": 300,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var area models.DeliveryArea
	decode(t, w, &area)
	assert.Equal(t, "Dambulla", area.Area)
	assert.Equal(t, 300, area.FeeLKR)
	assert.True(t, area.Active, "active defaults to true")

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing area", map[string]interface{}{"fee_lkr": 100}},
		{"blank area", map[string]interface{}{"area": "   ", "fee_lkr": 100}},
		{"negative fee", map[string]interface{}{"area": "Kandy", "fee_lkr": -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireError(t, doJSON(router, http.MethodPost, "/api/admin/delivery-areas", tt.body),
				http.StatusBadRequest, "VALIDATION_ERROR")
		})
	}
}

func TestUpdateDeliveryArea(t *testing.T) {
	db, _ := setupTestEnv(t)
	router := newTestRouter()
	area := seedArea(t, db, "Dambulla", 300, true)

	w := doJSON(router, http.MethodPut, fmt.Sprintf("/api/admin/delivery-areas/%d", area.ID), map[string]interface{}{
		"area":    "Dambulla Town",
		"fee_lkr": 0,
		"active":  false,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored models.DeliveryArea
	require.NoError(t, db.First(&stored, area.ID).Error)
	assert.Equal(t, "Dambulla Town", stored.Area)
	assert.Zero(t, stored.FeeLKR)
	assert.False(t, stored.Active)

	requireError(t, doJSON(router, http.MethodPut, "/api/admin/delivery-areas/999", map[string]interface{}{"area": "X"}),
		http.StatusNotFound, "NOT_FOUND")
	requireError(t, doJSON(router, http.MethodPut, "/api/admin/delivery-areas/abc", map[string]interface{}{"area": "X"}),
		http.StatusBadRequest, "INVALID_ID")
}

func TestDeleteDeliveryArea(t *testing.T) {
	db, _ := setupTestEnv(t)
	router := newTestRouter()
	area := seedArea(t, db, "Kandy", 600, true)

	w := doJSON(router, http.MethodDelete, fmt.Sprintf("/api/admin/delivery-areas/%d", area.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var count int64
	require.NoError(t, db.Model(&models.DeliveryArea{}).Count(&count).Error)
	assert.Zero(t, count)

	requireError(t, doJSON(router, http.MethodDelete, fmt.Sprintf("/api/admin/delivery-areas/%d", area.ID), nil),
		http.StatusNotFound, "NOT_FOUND")
}
