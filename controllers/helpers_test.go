package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/suranga-printers/print-shop-api/config"
	"github.com/suranga-printers/print-shop-api/models"
	"github.com/suranga-printers/print-shop-api/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to connect to test database")

	// every pooled connection to :memory: would be a separate empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.All()...), "Failed to migrate test database")

	config.SetDB(db)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// setupTestEnv installs a fresh database, mock storage, and test configuration
func setupTestEnv(t *testing.T) (*gorm.DB, *services.MockStorage) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())

	db := setupTestDB(t)

	storage := services.NewMockStorage()
	services.SetFileStorage(storage)
	services.SetNotifier(services.NoopNotifier{})

	config.SetConfig(&config.Config{
		GoEnv:        "test",
		JWTSecret:    "controller-test-secret",
		JWTIssuer:    "print-shop-api",
		JWTAudience:  "print-shop-admin",
		TokenTTL:     time.Hour,
		PublicOrigin: "http://localhost:5000",
	})

	return db, storage
}

// mockAdmin stands in for the bearer token middleware
func mockAdmin(c *gin.Context) {
	c.Set("admin_id", uint(1))
	c.Next()
}

func newTestRouter() *gin.Engine {
	router := gin.New()

	api := router.Group("/api")
	api.GET("/health", HealthCheck)
	api.GET("/database/status", DatabaseStatus)
	api.GET("/services", ListServices)
	api.GET("/delivery-areas", ListDeliveryAreas)
	api.GET("/portfolio", ListPortfolio)
	api.GET("/reviews", ListReviews)
	api.POST("/reviews", CreateReview)
	api.GET("/settings", GetSettings)
	api.POST("/quotes", CreateQuote)
	api.POST("/admin/auth/login", Login)

	admin := api.Group("/admin", mockAdmin)
	admin.GET("/dashboard", GetDashboard)
	admin.GET("/quotes", ListQuotes)
	admin.GET("/quotes/:id", GetQuote)
	admin.PATCH("/quotes/:id", UpdateQuote)
	admin.GET("/services", ListAllServices)
	admin.POST("/services", CreateService)
	admin.PUT("/services/:id", UpdateService)
	admin.DELETE("/services/:id", DeleteService)
	admin.GET("/delivery-areas", ListAllDeliveryAreas)
	admin.POST("/delivery-areas", CreateDeliveryArea)
	admin.PUT("/delivery-areas/:id", UpdateDeliveryArea)
	admin.DELETE("/delivery-areas/:id", DeleteDeliveryArea)
	admin.GET("/portfolio", ListAllPortfolio)
	admin.POST("/portfolio", CreatePortfolioItem)
	admin.PUT("/portfolio/:id", UpdatePortfolioItem)
	admin.DELETE("/portfolio/:id", DeletePortfolioItem)
	admin.GET("/reviews", ListAllReviews)
	admin.PATCH("/reviews/:id", ModerateReview)
	admin.DELETE("/reviews/:id", DeleteReview)
	admin.GET("/settings", GetSettings)
	admin.PUT("/settings", UpdateSettings)

	router.GET("/uploads/*key", ServeUpload)
	return router
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type upload struct {
	field    string
	filename string
	content  []byte
}

func doMultipart(t *testing.T, router *gin.Engine, method, path string, fields map[string]string, files []upload) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "response should be valid JSON: %s", w.Body.String())
	if data != nil && env.Success {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func requireError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	require.Equal(t, status, w.Code, w.Body.String())
	env := decode(t, w, nil)
	require.False(t, env.Success)
	require.Equal(t, code, env.Error.Code)
}

func seedArea(t *testing.T, db *gorm.DB, area string, fee int, active bool) models.DeliveryArea {
	t.Helper()

	a := models.DeliveryArea{Area: area, FeeLKR: fee, Active: active}
	require.NoError(t, db.Create(&a).Error)
	return a
}

func boolPtr(b bool) *bool { return &b }

func mockStorage(t *testing.T) *services.MockStorage {
	t.Helper()

	storage, ok := services.GetFileStorage().(*services.MockStorage)
	require.True(t, ok, "test storage should be the mock")
	return storage
}
