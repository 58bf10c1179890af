package router

import (
	"log"

	"github.com/christopherece/StoryNest-prj/internal/handlers"
	"github.com/christopherece/StoryNest-prj/internal/middleware"
	"github.com/christopherece/StoryNest-prj/internal/models"
	"github.com/christopherece/StoryNest-prj/internal/repositories"
	"github.com/christopherece/StoryNest-prj/internal/services"
	"github.com/christopherece/StoryNest-prj/pkg/config"
	"github.com/christopherece/StoryNest-prj/pkg/media"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, cfg *config.Config) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Child{},
		&models.Comment{},
		&models.Like{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	childRepo := repositories.NewPostgresChildRepository(pgdb)
	postRepo := repositories.NewMongoPostRepository(mgClient.Database(cfg.MongoDatabase))
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)

	// --- Collaborators & Services ---
	mediaProcessor := media.NewLocalProcessor(cfg.MediaRoot)
	postService := services.NewPostService(pgdb, postRepo, commentRepo, likeRepo, notificationRepo, mediaProcessor)
	feedService := services.NewFeedService(postRepo)
	engagementService := services.NewEngagementService(pgdb, postRepo, commentRepo, likeRepo, notificationRepo)
	notificationService := services.NewNotificationService(notificationRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	// User profile routes
	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterProfileRoutes(api)
	log.Println("User profile routes configured.")

	// Child record routes
	childHandler := handlers.NewChildHandler(childRepo, mediaProcessor)
	childHandler.RegisterChildRoutes(api)
	log.Println("Child record routes configured.")

	// Post routes
	postHandler := handlers.NewPostHandler(postService)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	// Feed routes
	feedHandler := handlers.NewFeedHandler(feedService, userRepo, likeRepo)
	feedHandler.RegisterFeedRoutes(api)
	log.Println("Feed routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(engagementService)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	// Like routes
	likeHandler := handlers.NewLikeHandler(engagementService)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationService, userRepo)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	log.Println("All routes configured.")
}
