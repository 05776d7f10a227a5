package routes

import (
	"fmt"
	"log"
	"time"

	"mod-registry-backend/internal/api/handlers"
	"mod-registry-backend/internal/api/middleware"
	"mod-registry-backend/internal/auth"
	"mod-registry-backend/internal/config"
	"mod-registry-backend/internal/repository"
	"mod-registry-backend/internal/search"
	"mod-registry-backend/internal/service"
	"mod-registry-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, store *storage.ArtifactStore) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	modRepo := repository.NewModRepository(db)
	ownershipRepo := repository.NewOwnershipRepository(db)
	verificationRepo := repository.NewVerificationRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	// Initialize services
	catalogService := service.NewCatalogService(modRepo, ownershipRepo, store, validator)
	verificationService := service.NewVerificationService(modRepo, ownershipRepo, verificationRepo)
	searchService := service.NewSearchService(modRepo, search.NewMatcher(cfg.SearchWorkers))
	teamService := service.NewTeamService(teamRepo, ownershipRepo, validator)
	tokenService, err := service.NewTokenService(tokenRepo, cfg.TokenKey(), cfg.TokenInitVector())
	if err != nil {
		return nil, fmt.Errorf("token service: %w", err)
	}

	// Initialize auth configuration and services
	providerConfig, err := auth.LoadProviderConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: Failed to load auth config: %v", err)
		// Fall back to environment-provided provider settings
		providerConfig = &auth.ProviderConfig{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			AuthURL:      cfg.OAuthAuthURL,
			TokenURL:     cfg.OAuthTokenURL,
			UserURL:      cfg.OAuthUserURL,
			RedirectURI:  cfg.OAuthRedirectURI,
		}
	}
	providerClient := auth.NewProviderClient(providerConfig)
	sessionService := auth.NewAuthService(cfg.JWTSecret, time.Duration(cfg.SessionTTLHours)*time.Hour)
	authMiddleware := auth.NewAuthMiddleware(tokenService, sessionService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	modHandler := handlers.NewModHandler(catalogService)
	searchHandler := handlers.NewSearchHandler(searchService)
	verificationHandler := handlers.NewVerificationHandler(verificationService)
	teamHandler := handlers.NewTeamHandler(teamService)
	authHandler := handlers.NewAuthHandler(providerClient, sessionService, tokenService)

	// Health check route
	router.GET("/health", healthHandler.Health)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Login flow, reachable without credentials
	router.GET("/login", authHandler.Login)
	router.GET("/callback", authHandler.Callback)

	// Public registry surface, no credentials required
	publicAPI := router.Group("/public_api")
	{
		publicAPI.GET("/get_mod", modHandler.GetMod)
		publicAPI.GET("/search", searchHandler.Search)
		publicAPI.GET("/download/:checksum", modHandler.Download)
	}

	// Browser-session surface
	session := router.Group("/")
	session.Use(authMiddleware.RequireSession())
	{
		session.GET("/token", authHandler.Token)
		session.GET("/me", authHandler.Me)

		teams := session.Group("/teams")
		{
			teams.POST("", teamHandler.Create)
			teams.POST("/:id/invite", teamHandler.Invite)
			teams.POST("/:id/transfer", teamHandler.Transfer)
			teams.POST("/join/:code", teamHandler.Join)
		}
	}

	// Registry-token surface
	api := router.Group("/api")
	api.Use(authMiddleware.RequireToken())
	{
		api.POST("/upload", modHandler.Upload)
		api.POST("/verify", verificationHandler.Verify)
		api.POST("/yank", verificationHandler.Yank)
		api.POST("/admin/trust", verificationHandler.SetTrust)
	}

	return router, nil
}
