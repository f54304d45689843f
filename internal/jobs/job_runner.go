package jobs

import (
	"context"
	"errors"
	"fmt"

	"github.com/edlight123/rotaractnyc-sub001/internal/domain"
	"github.com/edlight123/rotaractnyc-sub001/internal/logger"
	"github.com/edlight123/rotaractnyc-sub001/internal/service"
)

// JobRunner drives the dues automation actions from the in-process cron
// scheduler, as an alternative to an external scheduler hitting the HTTP
// endpoint. Both paths share the same AutomationService.
type JobRunner struct {
	automation service.AutomationService
}

func NewJobRunner(automation service.AutomationService) *JobRunner {
	return &JobRunner{automation: automation}
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

func (jr *JobRunner) SendDuesReminders() {
	jr.runWithRecovery("SendDuesReminders", func() {
		result, err := jr.automation.SendReminders(context.Background())
		if errors.Is(err, domain.ErrNoActiveCycle) {
			logger.Info("No active dues cycle; reminders skipped")
			return
		}
		if err != nil {
			logger.Error("Failed to send dues reminders", "error", err)
			return
		}
		logger.Info("Dues reminders sent",
			"sent", result.Sent, "failed", result.Failed, "total_unpaid", result.TotalUnpaid)
	})
}

func (jr *JobRunner) SendOverdueNotices() {
	jr.runWithRecovery("SendOverdueNotices", func() {
		result, err := jr.automation.SendOverdueNotices(context.Background())
		if errors.Is(err, domain.ErrNoActiveCycle) {
			logger.Info("No active dues cycle; overdue notices skipped")
			return
		}
		if err != nil {
			logger.Error("Failed to send overdue notices", "error", err)
			return
		}
		if result.Skipped {
			logger.Info("Overdue notices skipped", "reason", result.Message)
			return
		}
		logger.Info("Overdue notices sent",
			"sent", result.Sent, "failed", result.Failed, "total_overdue", result.TotalOverdue)
	})
}

func (jr *JobRunner) EnforceGracePeriod() {
	jr.runWithRecovery("EnforceGracePeriod", func() {
		result, err := jr.automation.EnforceGracePeriod(context.Background())
		if errors.Is(err, domain.ErrNoActiveCycle) {
			logger.Info("No active dues cycle; grace enforcement skipped")
			return
		}
		if err != nil {
			logger.Error("Failed to enforce grace period", "error", err)
			return
		}
		if result.Skipped {
			logger.Info("Grace enforcement skipped", "reason", result.Message)
			return
		}
		logger.Info("Grace period enforced", "flagged", result.Flagged)
	})
}

// RunOnce runs a single named job for manual execution.
func (jr *JobRunner) RunOnce(jobName string) error {
	switch jobName {
	case "send-reminders":
		jr.SendDuesReminders()
	case "send-overdue":
		jr.SendOverdueNotices()
	case "enforce-grace":
		jr.EnforceGracePeriod()
	default:
		return fmt.Errorf("unknown job %q; available: send-reminders, send-overdue, enforce-grace", jobName)
	}
	return nil
}
