package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/suranga-printers/print-shop-api/config"
	"github.com/suranga-printers/print-shop-api/models"
	"github.com/suranga-printers/print-shop-api/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LoginRequest represents the request body for admin login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the bearer token handed to the admin console
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// HashPassword returns the bcrypt hash of password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Login handles POST /api/admin/auth/login
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	db := config.GetDB()
	var admin models.AdminUser
	err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&admin).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Msg("failed to load admin user")
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to log in")
		return
	}

	// same response for unknown email and wrong password
	if err != nil || bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		return
	}

	token, expiresAt, err := services.NewTokenIssuer(config.GetConfig()).Issue(admin)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue admin token")
		respondError(c, http.StatusInternalServerError, "TOKEN_ERROR", "Failed to issue token")
		return
	}

	log.Info().Uint("admin_id", admin.ID).Msg("admin logged in")
	respondOK(c, http.StatusOK, LoginResponse{Token: token, ExpiresAt: expiresAt})
}

// SeedAdmin makes sure the configured admin account exists.
// An existing account keeps its password.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" || cfg.AdminPassword == "" {
		log.Warn().Msg("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var count int64
	if err := db.Model(&models.AdminUser{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	if err := db.Create(&models.AdminUser{Email: email, PasswordHash: hash}).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Info().Str("email", email).Msg("seeded admin user")
	return nil
}
