package main

import (
	"log"
	"os"

	"worship-roster-backend/internal/api/routes"
	"worship-roster-backend/internal/config"
	"worship-roster-backend/internal/database"
	"worship-roster-backend/internal/logger"
	"worship-roster-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "worship-roster-backend/docs" // This is needed for swag
)

//	@title			Worship Roster Backend API
//	@version		1.0
//	@description	Backend API for managing a worship team roster: singers, musicians, instruments, the song catalog with performance history, service schedules and impediments.

//	@contact.name	API Support

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize storage
	store, err := openStore(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize storage:", err)
	}

	if err := storage.SeedDefaults(store); err != nil {
		logrus.Fatal("Failed to seed default data:", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(store, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.WithField("backend", cfg.StorageBackend).Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

// openStore picks the storage backend from configuration.
func openStore(cfg *config.Config) (storage.Store, error) {
	appLog := logger.New()

	switch cfg.StorageBackend {
	case config.StorageBackendFile:
		return storage.NewFileStore(cfg.DataFile, appLog)
	default:
		db, err := database.Initialize(cfg.DatabaseURL, nil)
		if err != nil {
			return nil, err
		}
		return storage.NewGormStore(db, appLog), nil
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
