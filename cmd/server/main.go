package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"drive_service/internal/database"
	"drive_service/internal/handlers"
	"drive_service/internal/kafka"
	"drive_service/internal/middleware"
	"drive_service/internal/redis"
	"drive_service/internal/router"
	"drive_service/internal/services"
	"drive_service/internal/storage"
	"drive_service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	logger.InitLogger()

	// Initialize database
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=drive port=5432 sslmode=disable"
	}
	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// Initialize blob storage
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	store, err := storage.NewLocalStorage(uploadDir)
	if err != nil {
		log.Fatal("Failed to initialize storage: ", err)
	}

	// Optional Kafka producer for asset change events
	var producer *kafka.Producer
	if kafkaBrokers := os.Getenv("KAFKA_BROKERS"); kafkaBrokers != "" {
		producer = kafka.NewProducer(strings.Split(kafkaBrokers, ","))
		defer producer.Close()
	}

	// Optional Redis metadata cache
	var cache services.MetadataCache
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		if svc := redis.NewService(redisAddr, os.Getenv("REDIS_PASSWORD"), 0); svc != nil {
			cache = svc
		}
	}

	// Setup Gin router
	r := gin.Default()

	middleware.SetupPrometheus(r)
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware())

	// Initialize services and handlers
	userService := services.NewUserService(db)
	folderService := services.NewFolderService(db, store, producer, cache)
	fileService := services.NewFileService(db, store, producer, cache)

	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	folderHandler := handlers.NewFolderHandler(folderService)
	fileHandler := handlers.NewFileHandler(fileService)

	router.SetupRouter(r, db, authHandler, userHandler, folderHandler, fileHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Printf("Server starting on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed: ", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown: ", err)
	}

	log.Println("Server exited")
}
