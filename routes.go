package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/suranga-printers/print-shop-api/config"
	"github.com/suranga-printers/print-shop-api/controllers"
	"github.com/suranga-printers/print-shop-api/middleware"
	"github.com/suranga-printers/print-shop-api/utils"
)

// setupRouter builds the engine with every public and admin route
func setupRouter(cfg *config.Config) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())
	corsConfig := cors.Config{
		AllowOrigins:  cfg.CORSOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.CORSOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	requireAdmin, err := middleware.EnsureValidToken(cfg)
	if err != nil {
		return nil, err
	}

	api := router.Group("/api")
	{
		api.GET("/health", controllers.HealthCheck)
		api.GET("/database/status", controllers.DatabaseStatus)

		api.GET("/services", controllers.ListServices)
		api.GET("/delivery-areas", controllers.ListDeliveryAreas)
		api.GET("/portfolio", controllers.ListPortfolio)
		api.GET("/reviews", controllers.ListReviews)
		api.POST("/reviews", controllers.CreateReview)
		api.GET("/settings", controllers.GetSettings)
		api.POST("/quotes", controllers.CreateQuote)

		api.POST("/admin/auth/login", controllers.Login)
	}

	admin := api.Group("/admin", requireAdmin)
	{
		admin.GET("/dashboard", controllers.GetDashboard)

		admin.GET("/quotes", controllers.ListQuotes)
		admin.GET("/quotes/:id", controllers.GetQuote)
		admin.PATCH("/quotes/:id", controllers.UpdateQuote)

		admin.GET("/services", controllers.ListAllServices)
		admin.POST("/services", controllers.CreateService)
		admin.PUT("/services/:id", controllers.UpdateService)
		admin.DELETE("/services/:id", controllers.DeleteService)

		admin.GET("/delivery-areas", controllers.ListAllDeliveryAreas)
		admin.POST("/delivery-areas", controllers.CreateDeliveryArea)
		admin.PUT("/delivery-areas/:id", controllers.UpdateDeliveryArea)
		admin.DELETE("/delivery-areas/:id", controllers.DeleteDeliveryArea)

		admin.GET("/portfolio", controllers.ListAllPortfolio)
		admin.POST("/portfolio", controllers.CreatePortfolioItem)
		admin.PUT("/portfolio/:id", controllers.UpdatePortfolioItem)
		admin.DELETE("/portfolio/:id", controllers.DeletePortfolioItem)

		admin.GET("/reviews", controllers.ListAllReviews)
		admin.PATCH("/reviews/:id", controllers.ModerateReview)
		admin.DELETE("/reviews/:id", controllers.DeleteReview)

		admin.GET("/settings", controllers.GetSettings)
		admin.PUT("/settings", controllers.UpdateSettings)
	}

	router.GET(utils.UploadRoute+"/*key", controllers.ServeUpload)

	return router, nil
}
