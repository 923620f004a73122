package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/kiowoji/blog-api/internal/config"
	"github.com/kiowoji/blog-api/internal/database"
	"github.com/kiowoji/blog-api/internal/handlers"
	"github.com/kiowoji/blog-api/internal/middleware"
	"github.com/kiowoji/blog-api/internal/repository"
	"github.com/kiowoji/blog-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(database.GetDB())
	articleRepo := repository.NewArticleRepository(database.GetDB())
	userService := services.NewUserService(userRepo)
	articleService := services.NewArticleService(articleRepo, userRepo)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	articleHandler := handlers.NewArticleHandler(articleService)

	// Initialize Gin router
	r := gin.Default()
	r.Use(middleware.RequestMetrics())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Blog API is running",
		})
	})

	// Article routes
	articles := r.Group("/articles")
	{
		articles.GET("", articleHandler.ListArticles)
		articles.GET("/:articleId", articleHandler.GetArticle)
		articles.POST("", articleHandler.CreateArticle)
		articles.PUT("/:articleId", articleHandler.UpdateArticle)
		articles.DELETE("/:articleId", articleHandler.DeleteArticle)
		articles.POST("/:articleId/like/:userId", articleHandler.ToggleLike)
	}

	// User routes
	users := r.Group("/users")
	{
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.POST("", userHandler.CreateUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
