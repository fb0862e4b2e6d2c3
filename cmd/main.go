package main

import (
	"github.com/HmzT270/Inventory-Stock-Project/internal/handler"
	mid "github.com/HmzT270/Inventory-Stock-Project/internal/middleware"
	"github.com/HmzT270/Inventory-Stock-Project/pkg/config"
	"github.com/HmzT270/Inventory-Stock-Project/pkg/database"
	"github.com/HmzT270/Inventory-Stock-Project/pkg/jwtutil"
	"github.com/HmzT270/Inventory-Stock-Project/pkg/logger"
	"github.com/HmzT270/Inventory-Stock-Project/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting inventory-api",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	err = database.InitDB(appConfig)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: appConfig.Server.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	api.POST("/auth/register", handler.Register)
	api.POST("/auth/login", handler.Login)
	api.GET("/me", handler.Me, mid.AuthMiddleware)

	// Product routes
	productAPI := api.Group("/products")
	productAPI.GET("", handler.ListProducts)
	productAPI.GET("/sorted", handler.ListSortedProducts)
	productAPI.GET("/search/:query", handler.SearchProductsByName)
	productAPI.GET("/byCategory/:categoryId", handler.ListProductsByCategory)
	productAPI.GET("/byBrand/:brandId", handler.ListProductsByBrand)
	productAPI.GET("/any", handler.GetAnyProduct)
	productAPI.GET("/recentDeleted", handler.ListRecentDeleted)
	productAPI.POST("", handler.CreateProduct)
	productAPI.PUT("/rename/:id", handler.RenameProduct)
	productAPI.PUT("/:id/description", handler.UpdateProductDescription)
	productAPI.PUT("/:id/category", handler.ChangeProductCategory)
	productAPI.PUT("/:id/stock", handler.UpdateProductStock)
	productAPI.PUT("/:id/favorite", handler.ToggleFavorite)
	productAPI.PUT("/criticalLevel/:value", handler.UpdateAllCriticalStockLevels)
	productAPI.DELETE("/favorites", handler.ClearFavorites)
	productAPI.DELETE("/:id", handler.DeleteProduct)
	productAPI.POST("/restore/:originalId", handler.RestoreProduct)

	// Category routes
	categoryAPI := api.Group("/categories")
	categoryAPI.GET("", handler.ListCategories)
	categoryAPI.GET("/:id", handler.GetCategory)
	categoryAPI.POST("", handler.CreateCategory)
	categoryAPI.PUT("/rename/:id", handler.RenameCategory)
	categoryAPI.PUT("/:id", handler.UpdateCategory)
	categoryAPI.DELETE("/:id", handler.DeleteCategory)

	// Brand routes
	brandAPI := api.Group("/brands")
	brandAPI.GET("", handler.ListBrands)
	brandAPI.GET("/:id", handler.GetBrand)
	brandAPI.POST("", handler.CreateBrand)
	brandAPI.PUT("/rename/:id", handler.RenameBrand)
	brandAPI.PUT("/:id", handler.UpdateBrand)
	brandAPI.DELETE("/:id", handler.DeleteBrand)

	// Stock movement routes
	movementAPI := api.Group("/stockMovements")
	movementAPI.GET("", handler.ListStockMovements)
	movementAPI.GET("/product/:productId", handler.ListMovementsByProduct)
	movementAPI.GET("/:id", handler.GetStockMovement)
	movementAPI.POST("", handler.CreateStockMovement)
	movementAPI.DELETE("/:id", handler.DeleteStockMovement)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
