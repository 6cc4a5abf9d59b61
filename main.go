package main

import (
	"context"
	"net/http"

	"github.com/sasaki-csngrp/myreno/config"
	"github.com/sasaki-csngrp/myreno/handlers"
	"github.com/sasaki-csngrp/myreno/logger"
	"github.com/sasaki-csngrp/myreno/mailer"
	"github.com/sasaki-csngrp/myreno/middleware"
	"github.com/sasaki-csngrp/myreno/models"
	"github.com/sasaki-csngrp/myreno/repositories"
	"github.com/sasaki-csngrp/myreno/services"
	"github.com/sasaki-csngrp/myreno/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		// .env is optional outside local development
	}

	log, err := logger.New(config.GetEnv("APP_ENV", "development"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Initialize database
	db, err := config.InitDB(log)
	if err != nil {
		log.Fatal("database initialization failed", "error", err)
	}

	if config.GetEnv("DB_AUTO_MIGRATE", "false") == "true" {
		if err := db.AutoMigrate(
			&models.User{},
			&models.VerificationToken{},
			&models.Recipe{},
			&models.TagNode{},
			&models.UserRecipePreference{},
			&models.UserFolder{},
			&models.RecentlyViewed{},
		); err != nil {
			log.Fatal("auto migration failed", "error", err)
		}
	}

	// Initialize external collaborators
	store, err := storage.NewS3Storage(context.Background())
	if err != nil {
		log.Fatal("object storage initialization failed", "error", err)
	}
	mail := mailer.NewSendGridMailer(log)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	tokenRepo := repositories.NewVerificationTokenRepository(db)
	recipeRepo := repositories.NewRecipeRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	prefRepo := repositories.NewPreferenceRepository(db)
	folderRepo := repositories.NewFolderRepository(db)
	recentlyRepo := repositories.NewRecentlyViewedRepository(db)

	// Initialize services
	baseURL := config.GetEnv("APP_BASE_URL", "http://localhost:8080")
	authService := services.NewAuthService(userRepo, tokenRepo, mail, baseURL, log)
	recipeService := services.NewRecipeService(recipeRepo, prefRepo, recentlyRepo)
	tagService := services.NewTagService(tagRepo)
	folderService := services.NewFolderService(folderRepo)
	userService := services.NewUserService(userRepo, store, log)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	recipeHandler := handlers.NewRecipeHandler(recipeService)
	tagHandler := handlers.NewTagHandler(tagService)
	folderHandler := handlers.NewFolderHandler(folderService)
	userHandler := handlers.NewUserHandler(userService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/verify-email", authHandler.VerifyEmail)
		}

		// Profile image proxy (public, the bucket itself is private)
		v1.GET("/user/image/:userId/:imageId", userHandler.GetImage)

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)
			protected.POST("/user/image", userHandler.UploadImage)
			protected.DELETE("/user/image", userHandler.DeleteImage)

			// Recipes
			recipes := protected.Group("/recipes")
			{
				recipes.GET("", recipeHandler.GetRecipes)
				recipes.GET("/search", recipeHandler.SearchRecipes)
				recipes.GET("/folder", recipeHandler.GetFolderRecipes)
				recipes.GET("/recently-viewed", recipeHandler.GetRecentlyViewed)
				recipes.POST("/:id/view", recipeHandler.RecordView)
				recipes.PUT("/:id/rank", recipeHandler.UpdateRank)
				recipes.PUT("/:id/comment", recipeHandler.UpdateComment)
			}

			// Folder membership
			folder := protected.Group("/folder/recipes")
			{
				folder.GET("/:id", folderHandler.CheckRecipe)
				folder.POST("/:id", folderHandler.AddRecipe)
				folder.DELETE("/:id", folderHandler.RemoveRecipe)
			}

			// Tags
			tags := protected.Group("/tags")
			{
				tags.GET("", tagHandler.GetTags)
				tags.POST("/by-names", tagHandler.GetTagsByNames)
				tags.GET("/breadcrumb", tagHandler.GetBreadcrumb)
				tags.GET("/recipe-count", tagHandler.GetRecipeCount)
			}
		}
	}

	// Start server
	port := config.GetEnv("PORT", "8080")

	log.Info("server starting", "port", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}
