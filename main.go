package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/MrAmlya/unheard-echoes/config"
	"github.com/MrAmlya/unheard-echoes/handlers"
	"github.com/MrAmlya/unheard-echoes/middleware"
	"github.com/MrAmlya/unheard-echoes/repositories"
	"github.com/MrAmlya/unheard-echoes/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database and cache
	db := config.InitDB()
	rdb := config.NewRedisClient()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	writingRepo := repositories.NewWritingRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	likeRepo := repositories.NewLikeRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	writingService := services.NewWritingService(writingRepo)
	moderationService := services.NewModerationService(writingRepo)
	engagementService := services.NewEngagementService(writingRepo, commentRepo, likeRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	oauthHandler := handlers.NewOAuthHandler(authService, config.GoogleOAuthConfig())
	writingHandler := handlers.NewWritingHandler(writingService)
	moderationHandler := handlers.NewModerationHandler(moderationService)
	engagementHandler := handlers.NewEngagementHandler(engagementService)

	// Setup router
	router := gin.Default()

	// CORS for the external frontend
	corsConfig := cors.DefaultConfig()
	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		corsConfig.AllowOrigins = []string{frontend}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	corsConfig.AllowCredentials = !corsConfig.AllowAllOrigins
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/profile", middleware.AuthRequired(), authHandler.GetProfile)
			auth.GET("/google", oauthHandler.GoogleLogin)
			auth.GET("/google/callback", oauthHandler.GoogleCallback)
		}

		// Every successful mutation under /writings invalidates the
		// public listing cache.
		writings := api.Group("/writings", middleware.CacheInvalidator(rdb))
		{
			// Public
			writings.GET("", middleware.ResponseCache(rdb, 30*time.Second), writingHandler.ListPublic)
			writings.GET("/:id", writingHandler.Get)
			writings.POST("/:id/like", middleware.OptionalAuth(), engagementHandler.ToggleLike)
			writings.POST("/:id/comments", engagementHandler.AddComment)

			// Authenticated
			writings.POST("", middleware.AuthRequired(), writingHandler.Create)
			writings.GET("/my-writings", middleware.AuthRequired(), writingHandler.ListMine)
			writings.PUT("/:id", middleware.AuthRequired(), writingHandler.Update)
			writings.DELETE("/:id", middleware.AuthRequired(), writingHandler.Delete)

			// Admin
			admin := writings.Group("", middleware.AuthRequired(), middleware.RequireAdmin())
			{
				admin.GET("/pending", moderationHandler.ListPending)
				admin.GET("/reviewed", moderationHandler.ListReviewed)
				admin.POST("/:id/approve", moderationHandler.Approve)
				admin.POST("/:id/reject", moderationHandler.Reject)
				admin.DELETE("/:id/comments/:commentId", engagementHandler.DeleteComment)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
