package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	api "github.com/edlight123/rotaractnyc-sub001/internal/api/http"
	"github.com/edlight123/rotaractnyc-sub001/internal/config"
	"github.com/edlight123/rotaractnyc-sub001/internal/logger"
	"github.com/edlight123/rotaractnyc-sub001/internal/repository/firestore"
	"github.com/edlight123/rotaractnyc-sub001/internal/security"
	"github.com/edlight123/rotaractnyc-sub001/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rotaract NYC dues backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Firestore configuration", "project_id", cfg.Firestore.ProjectID)

	// Initialize Firestore
	ctx := context.Background()
	client, err := firestore.NewClient(ctx, cfg.Firestore.ProjectID, cfg.Firestore.CredentialsFile)
	if err != nil {
		logger.Error("Failed to connect to firestore", "error", err)
		log.Fatalf("Failed to connect to firestore: %v", err)
	}
	defer client.Close()
	logger.Info("Firestore connection established")

	// Initialize Repositories
	store := firestore.NewStore(client)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Initialize Services
	emailSvc := service.NewEmailService(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		cfg.SendGrid.FromName,
	)
	automationSvc := service.NewAutomationService(
		store.DuesCycleRepository,
		store.DuesRecordRepository,
		store.MemberRepository,
		emailSvc,
		nil,
	)
	duesSvc := service.NewDuesService(
		store.DuesCycleRepository,
		store.DuesRecordRepository,
		store.MemberRepository,
		nil,
	)
	cycleSvc := service.NewDuesCycleService(store.DuesCycleRepository)

	// Initialize HTTP handlers
	router := api.NewRouter(api.RouterDeps{
		Automation:   api.NewAutomationHandler(automationSvc, cfg.Cron.Secret),
		Cycles:       api.NewCycleHandler(cycleSvc),
		Dues:         api.NewDuesHandler(duesSvc, cycleSvc),
		Webhook:      api.NewStripeWebhookHandler(duesSvc, cfg.Stripe.WebhookSecret),
		TokenManager: tokenManager,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
