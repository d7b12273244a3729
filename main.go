package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"contact-api/pkg/api"
	"contact-api/pkg/clients/listmonk"
	"contact-api/pkg/clients/resend"
	"contact-api/pkg/config"
	"contact-api/pkg/lists"
	"contact-api/pkg/middleware"
	"contact-api/pkg/services"
)

const timeFormat = "2006-01-02 15:04:05"

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Info().Msg("No .env file loaded")
	}

	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize logging. The default level keeps contact details out of
	// the logs; debug level includes full payloads and upstream bodies.
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: timeFormat}).
		Level(level).
		With().Timestamp().Logger()

	// Initialize API clients
	listmonkClient := listmonk.NewClient(cfg.ListmonkBaseURL, cfg.ListmonkUsername, cfg.ListmonkPassword)
	resendClient := resend.NewClient(cfg.ResendAPIKey)
	if !resendClient.Configured() {
		log.Warn().Msg("RESEND_API_KEY not set; email notifications disabled")
	}

	// Initialize services
	resolver := lists.NewResolver(cfg.ListMapping())
	subscriptionService := services.NewSubscriptionService(listmonkClient, resolver)
	notificationService := services.NewNotificationService(resendClient, cfg)
	submissionService := services.NewSubmissionService(subscriptionService, notificationService, cfg)

	// Create a new Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Initialize handlers
	handlers := api.NewHandlers(subscriptionService, notificationService, submissionService)

	// Register routes
	router.POST("/api/subscribe", handlers.HandleSubscribe)
	router.POST("/api/send-email", handlers.HandleSendEmail)
	router.POST("/api/contact", handlers.HandleContact)
	router.GET("/health", handlers.HealthCheck)

	// Get port from environment or default to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start the server
	log.Info().Str("port", port).Msg("Server starting")
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Error starting server")
	}
}
