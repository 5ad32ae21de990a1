package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suranga-printers/print-shop-api/models"
)

func TestCreatePortfolioItem(t *testing.T) {
	setupTestEnv(t)
	router := newTestRouter()

	w := doMultipart(t, router, http.MethodPost, "/api/admin/portfolio",
		map[string]string{"title": "Wedding invitations", "tag": "Cards"},
		[]upload{{field: "image", filename: "invite.jpg", content: []byte("jpg")}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var item models.PortfolioItem
	decode(t, w, &item)
	assert.Equal(t, "Marketing", item.Category)
	assert.True(t, item.Active)
	assert.Contains(t, item.ImageKey, "portfolio/")
	assert.Equal(t, "https://files.test/"+item.ImageKey, item.ImageURL)

	requireError(t, doMultipart(t, router, http.MethodPost, "/api/admin/portfolio",
		map[string]string{"title": "No image"}, nil), http.StatusBadRequest, "MISSING_FILE")
	requireError(t, doMultipart(t, router, http.MethodPost, "/api/admin/portfolio",
		map[string]string{"title": "Wrong type"}, []upload{{field: "image", filename: "brochure.pdf", content: []byte("pdf")}}),
		http.StatusBadRequest, "INVALID_FILE_FORMAT")
	requireError(t, doMultipart(t, router, http.MethodPost, "/api/admin/portfolio",
		map[string]string{"tag": "No title"}, []upload{{field: "image", filename: "a.png", content: []byte("png")}}),
		http.StatusBadRequest, "VALIDATION_ERROR")
}

func TestUpdatePortfolioItem_ReplacesImage(t *testing.T) {
	setupTestEnv(t)
	router := newTestRouter()

	var item models.PortfolioItem
	decode(t, doMultipart(t, router, http.MethodPost, "/api/admin/portfolio",
		map[string]string{"title": "Banner", "featured": "true"},
		[]upload{{field: "image", filename: "banner.png", content: []byte("v1")}}), &item)
	path := fmt.Sprintf("/api/admin/portfolio/%d", item.ID)
	storage := mockStorage(t)
	oldKey := item.ImageKey
	require.True(t, storage.Exists(oldKey))

	// text-only update keeps the image
	w := doMultipart(t, router, http.MethodPut, path, map[string]string{"title": "Shop banner", "active": "false"}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.PortfolioItem
	decode(t, w, &updated)
	assert.Equal(t, "Shop banner", updated.Title)
	assert.False(t, updated.Active)
	assert.False(t, updated.Featured)
	assert.Equal(t, oldKey, updated.ImageKey)

	w = doMultipart(t, router, http.MethodPut, path, map[string]string{"title": "Shop banner"},
		[]upload{{field: "image", filename: "banner.webp", content: []byte("v2")}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &updated)
	assert.NotEqual(t, oldKey, updated.ImageKey)
	assert.True(t, storage.Exists(updated.ImageKey))
	assert.False(t, storage.Exists(oldKey), "replaced image is removed")

	requireError(t, doMultipart(t, router, http.MethodPut, "/api/admin/portfolio/999", map[string]string{"title": "x"}, nil),
		http.StatusNotFound, "NOT_FOUND")
}

func TestListAndDeletePortfolio(t *testing.T) {
	setupTestEnv(t)
	router := newTestRouter()
	storage := mockStorage(t)

	var shown, hidden models.PortfolioItem
	decode(t, doMultipart(t, router, http.MethodPost, "/api/admin/portfolio",
		map[string]string{"title": "Shown"}, []upload{{field: "image", filename: "a.png", content: []byte("a")}}), &shown)
	decode(t, doMultipart(t, router, http.MethodPost, "/api/admin/portfolio",
		map[string]string{"title": "Hidden", "active": "false"}, []upload{{field: "image", filename: "b.png", content: []byte("b")}}), &hidden)

	var public []models.PortfolioItem
	decode(t, doJSON(router, http.MethodGet, "/api/portfolio", nil), &public)
	require.Len(t, public, 1)
	assert.Equal(t, "Shown", public[0].Title)
	assert.NotEmpty(t, public[0].ImageURL)

	var all []models.PortfolioItem
	decode(t, doJSON(router, http.MethodGet, "/api/admin/portfolio", nil), &all)
	assert.Len(t, all, 2)

	path := fmt.Sprintf("/api/admin/portfolio/%d", hidden.ID)
	require.Equal(t, http.StatusOK, doJSON(router, http.MethodDelete, path, nil).Code)
	assert.False(t, storage.Exists(hidden.ImageKey))
	assert.True(t, storage.Exists(shown.ImageKey))
	requireError(t, doJSON(router, http.MethodDelete, path, nil), http.StatusNotFound, "NOT_FOUND")
}
