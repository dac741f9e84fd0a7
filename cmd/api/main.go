package main

import (
	_ "backend/api/swagger" // swagger docs
	"backend/internal/cache"
	"backend/internal/database"
	"backend/internal/handler"
	"backend/internal/repository"
	"backend/internal/service"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	defaultCacheSize = 256
	defaultCacheTTL  = 5 * time.Minute
)

func cacheTTL() time.Duration {
	raw := os.Getenv("CACHE_TTL_SECONDS")
	if raw == "" {
		return defaultCacheTTL
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 0 {
		log.Printf("Ignoring invalid CACHE_TTL_SECONDS=%q", raw)
		return defaultCacheTTL
	}
	return time.Duration(seconds) * time.Second
}

// @title           Purchase History Analytics API
// @version         1.0
// @description     Aggregated analytics over an imported e-commerce purchase history: summary, time series, rankings and a digital order listing.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	// Money fields serialize as plain JSON numbers, matching the dashboard's
	// wire contract.
	decimal.MarshalJSONWithoutQuotes = true

	driver, dsn := database.FromEnv()
	db, err := database.NewConnection(driver, dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Printf("Connected to %s successfully.", driver)

	// Set up dependencies (Repository -> Service -> Handler)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	views := cache.New[any](defaultCacheSize, cacheTTL())
	analyticsService := service.NewAnalyticsService(orderRepo, views)
	orderQueryService := service.NewOrderQueryService(orderRepo)
	userService := service.NewUserService(userRepo)

	// Initialize Handlers
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	orderHandler := handler.NewOrderHandler(orderQueryService)
	userHandler := handler.NewUserHandler(userService)
	adminHandler := handler.NewAdminHandler(analyticsService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:3000"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// Register API Routes
	analyticsHandler.RegisterRoutes(router.Group(""))
	orderHandler.RegisterRoutes(router.Group(""))
	userHandler.RegisterRoutes(router.Group(""))
	adminHandler.RegisterRoutes(router.Group(""))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
