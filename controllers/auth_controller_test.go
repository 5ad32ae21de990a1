package controllers

import (
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suranga-printers/print-shop-api/config"
	"github.com/suranga-printers/print-shop-api/models"
	"github.com/suranga-printers/print-shop-api/services"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedAdmin(t *testing.T) {
	db, _ := setupTestEnv(t)
	cfg := &config.Config{AdminEmail: " Owner@Example.com ", AdminPassword: "s3cret"}

	require.NoError(t, SeedAdmin(db, cfg))
	require.NoError(t, SeedAdmin(db, &config.Config{AdminEmail: "owner@example.com", AdminPassword: "changed"}))

	var admins []models.AdminUser
	require.NoError(t, db.Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, "owner@example.com", admins[0].Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admins[0].PasswordHash), []byte("s3cret")),
		"reseeding keeps the original password")

	require.NoError(t, SeedAdmin(db, &config.Config{}), "missing credentials skip seeding")
}

func TestLogin(t *testing.T) {
	db, _ := setupTestEnv(t)
	router := newTestRouter()
	require.NoError(t, SeedAdmin(db, &config.Config{AdminEmail: "owner@example.com", AdminPassword: "s3cret"}))

	w := doJSON(router, http.MethodPost, "/api/admin/auth/login", map[string]string{
		"email":    "OWNER@example.com",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp LoginResponse
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	assert.False(t, resp.ExpiresAt.IsZero())

	claims := &services.AdminClaims{}
	_, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("controller-test-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.Equal(t, "print-shop-api", claims.Issuer)
}

func TestLogin_Rejected(t *testing.T) {
	db, _ := setupTestEnv(t)
	router := newTestRouter()
	require.NoError(t, SeedAdmin(db, &config.Config{AdminEmail: "owner@example.com", AdminPassword: "s3cret"}))

	requireError(t, doJSON(router, http.MethodPost, "/api/admin/auth/login",
		map[string]string{"email": "owner@example.com", "password": "wrong"}),
		http.StatusUnauthorized, "INVALID_CREDENTIALS")
	requireError(t, doJSON(router, http.MethodPost, "/api/admin/auth/login",
		map[string]string{"email": "nobody@example.com", "password": "s3cret"}),
		http.StatusUnauthorized, "INVALID_CREDENTIALS")
	requireError(t, doJSON(router, http.MethodPost, "/api/admin/auth/login",
		map[string]string{"email": "not-an-email", "password": "s3cret"}),
		http.StatusBadRequest, "VALIDATION_ERROR")
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
}
