package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/edlight123/rotaractnyc-sub001/internal/config"
	"github.com/edlight123/rotaractnyc-sub001/internal/jobs"
	"github.com/edlight123/rotaractnyc-sub001/internal/logger"
	"github.com/edlight123/rotaractnyc-sub001/internal/repository/firestore"
	"github.com/edlight123/rotaractnyc-sub001/internal/scheduler"
	"github.com/edlight123/rotaractnyc-sub001/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'send-reminders', 'send-overdue', 'enforce-grace')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting dues cronjob runner...", "log_level", cfg.Log.Level)

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

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(automationSvc)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		if err := jobRunner.RunOnce(*runOnce); err != nil {
			logger.Error("Job execution failed", "job", *runOnce, "error", err)
			os.Exit(1)
		}
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner, cfg.Cron)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}
