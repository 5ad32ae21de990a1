package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/suranga-printers/print-shop-api/config"
)

const (
	adminIDKey = "admin_id"
	claimsKey  = "validated_claims"
)

// AdminClaims contains the custom data carried by admin tokens.
type AdminClaims struct {
	Email string `json:"email"`
}

// Validate rejects tokens that were not issued to an admin account.
func (c *AdminClaims) Validate(ctx context.Context) error {
	if c.Email == "" {
		return errors.New("token has no admin email")
	}
	return nil
}

// EnsureValidToken is a middleware that checks the admin bearer token.
func EnsureValidToken(cfg *config.Config) (gin.HandlerFunc, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT secret is not configured")
	}
	secret := []byte(cfg.JWTSecret)

	jwtValidator, err := validator.New(
		func(context.Context) (interface{}, error) {
			return secret, nil
		},
		validator.HS256,
		cfg.JWTIssuer,
		[]string{cfg.JWTAudience},
		validator.WithCustomClaims(
			func() validator.CustomClaims {
				return &AdminClaims{}
			},
		),
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set up the jwt validator: %w", err)
	}

	errorHandler := func(w http.ResponseWriter, r *http.Request, err error) {
		log.Warn().Err(err).Str("path", r.URL.Path).Msg("rejected admin token")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		if _, writeErr := w.Write([]byte(`{"success":false,"error":{"code":"INVALID_TOKEN","message":"Login required."}}`)); writeErr != nil {
			log.Error().Err(writeErr).Msg("failed to write error response")
		}
	}

	middleware := jwtmiddleware.New(
		jwtValidator.ValidateToken,
		jwtmiddleware.WithErrorHandler(errorHandler),
	)

	return func(c *gin.Context) {
		passed := false
		var handler http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			token := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims)

			id, err := strconv.ParseUint(token.RegisteredClaims.Subject, 10, 64)
			if err != nil {
				errorHandler(w, r, fmt.Errorf("invalid subject: %w", err))
				return
			}

			passed = true
			c.Request = r
			c.Set(adminIDKey, uint(id))
			c.Set(claimsKey, token)
			c.Next()
		}

		middleware.CheckJWT(handler).ServeHTTP(c.Writer, c.Request)
		if !passed {
			c.Abort()
		}
	}, nil
}

// GetAdminID extracts the authenticated admin's ID from the Gin context
func GetAdminID(c *gin.Context) (uint, error) {
	adminID, exists := c.Get(adminIDKey)
	if !exists {
		return 0, &AuthError{Code: "MISSING_ADMIN_ID", Message: "Admin ID not found in context"}
	}

	id, ok := adminID.(uint)
	if !ok {
		return 0, &AuthError{Code: "INVALID_ADMIN_ID", Message: "Admin ID is not a uint"}
	}

	return id, nil
}

// GetClaims extracts the validated JWT claims from the Gin context
func GetClaims(c *gin.Context) (*validator.ValidatedClaims, error) {
	claims, exists := c.Get(claimsKey)
	if !exists {
		return nil, &AuthError{Code: "MISSING_CLAIMS", Message: "Claims not found in context"}
	}

	validatedClaims, ok := claims.(*validator.ValidatedClaims)
	if !ok {
		return nil, &AuthError{Code: "INVALID_CLAIMS", Message: "Claims are not in the expected format"}
	}

	return validatedClaims, nil
}

// GetAdminEmail returns the email carried in the admin token
func GetAdminEmail(c *gin.Context) (string, error) {
	claims, err := GetClaims(c)
	if err != nil {
		return "", err
	}

	custom, ok := claims.CustomClaims.(*AdminClaims)
	if !ok {
		return "", &AuthError{Code: "INVALID_CLAIMS", Message: "Claims are not in the expected format"}
	}
	return custom.Email, nil
}

// AuthError represents an authentication error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
