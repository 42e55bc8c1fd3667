package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/enviconnect/enviconnect/internal/handler/http"
	redisclient "github.com/enviconnect/enviconnect/internal/infrastructure/cache"
	"github.com/enviconnect/enviconnect/internal/infrastructure/config"
	database "github.com/enviconnect/enviconnect/internal/infrastructure/database"
	"github.com/enviconnect/enviconnect/internal/infrastructure/jwt"
	"github.com/enviconnect/enviconnect/internal/infrastructure/logger"
	passwordservice "github.com/enviconnect/enviconnect/internal/infrastructure/password_service"
	"github.com/enviconnect/enviconnect/internal/infrastructure/repository/mongodb"
	"github.com/enviconnect/enviconnect/internal/infrastructure/store"
	"github.com/enviconnect/enviconnect/internal/infrastructure/uploads"
	"github.com/enviconnect/enviconnect/internal/infrastructure/uuidgen"
	"github.com/enviconnect/enviconnect/internal/infrastructure/validator"
	"github.com/enviconnect/enviconnect/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	appConfig := config.NewConfig()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(dbName)
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	projectRepo := mongodb.NewProjectRepository(db)

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	jwtManager := jwt.NewJWTManager(jwtSecret, appConfig.GetAccessTokenExpiry(), appConfig.GetRefreshTokenExpiry())
	jwtService := jwt.NewJWTService(jwtManager)
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	imageStore, err := uploads.NewDiskImageStore(appConfig.GetUploadsDir())
	if err != nil {
		log.Fatalf("Failed to initialize uploads directory: %v", err)
	}

	// Dependency Injection: Usecases
	authUsecase := usecase.NewAuthUsecase(userRepo, hasher, jwtService, appLogger, appValidator, uuidGenerator)
	projectUsecase := usecase.NewProjectUsecase(projectRepo, userRepo, imageStore, uuidGenerator, appLogger)
	profileUsecase := usecase.NewProfileUsecase(userRepo, projectRepo, appLogger)

	// Optional Dependency Injection: Redis cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), redisURL)
		if rdb != nil {
			defer redisclient.Close(rdb)
			projectUsecase.SetProjectCache(store.NewProjectCacheStore(rdb))
		}
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(authUsecase, projectUsecase, profileUsecase, jwtService, appConfig.GetUploadsDir())
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
