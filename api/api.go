package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"squadup/api/modules"
	"squadup/api/routes"
	"squadup/pkg/config"
	"squadup/pkg/database"
	"squadup/pkg/discord"
	"squadup/pkg/logger"
	"squadup/pkg/redis"
	"squadup/pkg/session"

	"github.com/joho/godotenv"
)

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	config.LoadEnv()

	fileLogger, err := logger.CreateLogger()
	if err != nil {
		log.Fatalf("Error creating the logger: %v", err)
	}
	defer fileLogger.CleanFile()

	db, err := database.NewConnection()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Error getting the underlying database handle: %v", err)
	}

	if err := database.RunMigrations(sqlDB); err != nil {
		log.Fatalf("Error running the migrations: %v", err)
	}

	redisClient := redis.NewClient()
	defer redisClient.Close()

	sessions := session.NewStore(redisClient)
	discordClient := discord.NewClient()

	// Create a module with all necessary handlers.
	module := modules.NewModule(&modules.ModuleDependencies{
		DB:       db,
		Discord:  discordClient,
		Logger:   fileLogger,
		Sessions: sessions,
		BaseURL:  config.Server.BaseURL,
	})

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router, module.AuthMiddleware)
	router.SetupRoutes(
		module.AuthHandler,
		module.ProfileHandler,
		module.TeammateHandler,
		module.RequestHandler,
		module.RatingHandler,
	)

	server := &http.Server{
		Addr:    ":" + config.Server.Port,
		Handler: module.Router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting the server: %v", err)
		}
	}()

	// Wait for a termination signal and drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fileLogger.Errorf("Forced shutdown: %v", err)
	}

	if err := fileLogger.Upload(ctx, "api"); err != nil {
		log.Printf("Error uploading the logs: %v", err)
	}
}
