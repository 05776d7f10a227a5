package main

import (
	"log"
	"os"

	"mod-registry-backend/internal/api/routes"
	"mod-registry-backend/internal/config"
	"mod-registry-backend/internal/database"
	"mod-registry-backend/internal/repository"
	"mod-registry-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "mod-registry-backend/docs" // This is needed for swag
)

//	@title			Mod Registry Backend API
//	@version		1.0
//	@description	This is the backend API for the community mod registry, providing endpoints for uploading, resolving, searching and verifying mod archives.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8000
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the registry token.

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

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Initialize artifact storage
	store := storage.NewArtifactStore(cfg.FilesPath)
	if err := store.EnsureTree(); err != nil {
		logrus.Fatal("Failed to prepare artifact storage:", err)
	}

	// Cross-check the catalog against the blob tree. A record without a blob
	// means a crash hit the upload commit window; it needs operator attention.
	checksums, err := repository.NewModRepository(db).AllChecksums()
	if err != nil {
		logrus.Fatal("Failed to list catalog checksums:", err)
	}
	store.Reconcile(checksums)

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(db, cfg, store)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8000"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
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
