package main

import (
	"log"
	"time"

	"accounts-be/internal/cache"
	"accounts-be/internal/config"
	"accounts-be/internal/controllers"
	"accounts-be/internal/database"
	"accounts-be/internal/middleware"
	"accounts-be/internal/repository"
	"accounts-be/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		log.Println("Connected to Redis cache")
	}

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo)
	profileService := service.NewProfileService(
		userRepo,
		cacheClient,
		time.Duration(cfg.ProfileCacheTTLMin)*time.Minute,
	)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	profileController := controllers.NewProfileController(profileService)

	// Create a Gin router
	router := gin.Default()

	// CORS: the browser client sends the session cookie cross-origin
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.ClaimedUserHeader}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API v1 routes
	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
			auth.POST("/logout", authController.Logout)
			auth.POST("/validate", authController.ValidateSession)
		}

		// Public profile lookup
		api.GET("/users/:id", profileController.GetProfile)

		// Protected routes - require a valid session cookie plus the
		// matching claimed user id
		protected := api.Group("")
		protected.Use(middleware.SessionAuth(authService))
		{
			protected.GET("/me", profileController.GetMe)
		}
	}

	addr := ":" + cfg.Port
	log.Printf("Server starting on http://localhost%s", addr)
	router.Run(addr)
}
