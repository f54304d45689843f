package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/edlight123/rotaractnyc-sub001/internal/config"
	"github.com/edlight123/rotaractnyc-sub001/internal/jobs"
	"github.com/edlight123/rotaractnyc-sub001/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner
func NewScheduler(jobRunner *jobs.JobRunner, cfg config.CronConfig) *Scheduler {
	// Create cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs(cfg)
	return s
}

// registerJobs registers all scheduled jobs with the cron scheduler
func (s *Scheduler) registerJobs(cfg config.CronConfig) {
	_, err := s.cron.AddFunc(cfg.SendReminders, s.jobs.SendDuesReminders)
	if err != nil {
		logger.Error("Failed to register SendDuesReminders job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.SendOverdue, s.jobs.SendOverdueNotices)
	if err != nil {
		logger.Error("Failed to register SendOverdueNotices job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.EnforceGrace, s.jobs.EnforceGracePeriod)
	if err != nil {
		logger.Error("Failed to register EnforceGracePeriod job", "error", err)
	}

	logger.Info("All cron jobs registered successfully")
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// IsRunning returns true if the scheduler has registered entries
func (s *Scheduler) IsRunning() bool {
	return len(s.cron.Entries()) > 0
}
