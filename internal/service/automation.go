package service

import (
	"context"
	"fmt"
	"time"

	"github.com/edlight123/rotaractnyc-sub001/internal/domain"
	"github.com/edlight123/rotaractnyc-sub001/internal/logger"
	"github.com/edlight123/rotaractnyc-sub001/internal/repository"
)

type automationService struct {
	cycleRepo  repository.DuesCycleRepository
	recordRepo repository.DuesRecordRepository
	memberRepo repository.MemberRepository
	emailSvc   EmailService
	now        func() time.Time
}

// NewAutomationService creates the automation service. now may be nil, in
// which case time.Now is used; tests inject a fixed clock.
func NewAutomationService(
	cycleRepo repository.DuesCycleRepository,
	recordRepo repository.DuesRecordRepository,
	memberRepo repository.MemberRepository,
	emailSvc EmailService,
	now func() time.Time,
) AutomationService {
	if now == nil {
		now = time.Now
	}
	return &automationService{
		cycleRepo:  cycleRepo,
		recordRepo: recordRepo,
		memberRepo: memberRepo,
		emailSvc:   emailSvc,
		now:        now,
	}
}

// loadUnpaid fetches the active cycle and classifies the active-member set
// against its dues records. Returns domain.ErrNoActiveCycle when idle.
func (s *automationService) loadUnpaid(ctx context.Context) (*domain.DuesCycle, []domain.Member, error) {
	cycle, err := s.cycleRepo.GetActive(ctx)
	if err != nil {
		return nil, nil, err
	}

	records, err := s.recordRepo.ListByCycle(ctx, cycle.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load dues records: %w", err)
	}

	members, err := s.memberRepo.ListActive(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load active members: %w", err)
	}

	classification := Classify(records, members)
	return cycle, classification.UnpaidMembers, nil
}

// SendReminders emails every unpaid member. One member's delivery failure
// must not abort the rest, so failures are tallied, not propagated.
// Running it twice sends twice; dedup is the caller's schedule discipline.
func (s *automationService) SendReminders(ctx context.Context) (*ReminderResult, error) {
	cycle, unpaid, err := s.loadUnpaid(ctx)
	if err != nil {
		return nil, err
	}

	result := &ReminderResult{TotalUnpaid: len(unpaid)}
	for _, m := range unpaid {
		amount := cycle.AmountForType(m.MemberType)
		if err := s.emailSvc.SendDuesReminder(ctx, m.Email, m.DisplayName, cycle.Name, amount); err != nil {
			logger.Error("Failed to send dues reminder",
				"member_id", m.ID,
				"cycle_id", cycle.ID,
				"error", err)
			result.Failed++
			continue
		}
		result.Sent++
	}

	logger.Info("Dues reminders processed",
		"cycle_id", cycle.ID,
		"sent", result.Sent,
		"failed", result.Failed,
		"total_unpaid", result.TotalUnpaid)
	return result, nil
}

// SendOverdueNotices emails unpaid members once the cycle has ended. Before
// the end date it is a deliberate no-op reporting why nothing was sent.
func (s *automationService) SendOverdueNotices(ctx context.Context) (*OverdueResult, error) {
	cycle, unpaid, err := s.loadUnpaid(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if cycle.EndDate == nil || now.Before(*cycle.EndDate) {
		msg := fmt.Sprintf("cycle %q has not ended yet; no overdue notices sent", cycle.Name)
		if cycle.EndDate != nil {
			msg = fmt.Sprintf("cycle %q ends %s; no overdue notices sent",
				cycle.Name, cycle.EndDate.Format("2006-01-02"))
		}
		logger.Info("Overdue notices skipped", "cycle_id", cycle.ID, "reason", msg)
		return &OverdueResult{Skipped: true, Message: msg}, nil
	}

	var deadline *time.Time
	if d, ok := cycle.GraceDeadline(); ok {
		deadline = &d
	}

	result := &OverdueResult{TotalOverdue: len(unpaid)}
	for _, m := range unpaid {
		amount := cycle.AmountForType(m.MemberType)
		if err := s.emailSvc.SendOverdueNotice(ctx, m.Email, m.DisplayName, cycle.Name, amount, deadline); err != nil {
			logger.Error("Failed to send overdue notice",
				"member_id", m.ID,
				"cycle_id", cycle.ID,
				"error", err)
			result.Failed++
			continue
		}
		result.Sent++
	}

	logger.Info("Overdue notices processed",
		"cycle_id", cycle.ID,
		"sent", result.Sent,
		"failed", result.Failed,
		"total_overdue", result.TotalOverdue)
	return result, nil
}

// EnforceGracePeriod flags every unpaid member inactive once the grace
// deadline (endDate + gracePeriodDays) has passed. The flag write is one
// atomic batch: a partial flag set is never an acceptable outcome.
func (s *automationService) EnforceGracePeriod(ctx context.Context) (*GraceResult, error) {
	cycle, unpaid, err := s.loadUnpaid(ctx)
	if err != nil {
		return nil, err
	}

	deadline, ok := cycle.GraceDeadline()
	if !ok {
		msg := fmt.Sprintf("cycle %q has no end date; grace period cannot be computed", cycle.Name)
		logger.Warn("Grace enforcement skipped", "cycle_id", cycle.ID, "reason", msg)
		return &GraceResult{Skipped: true, Message: msg}, nil
	}

	now := s.now().UTC()
	if now.Before(deadline) {
		msg := fmt.Sprintf("grace period for cycle %q runs until %s; no members flagged",
			cycle.Name, deadline.Format("2006-01-02"))
		logger.Info("Grace enforcement skipped", "cycle_id", cycle.ID, "deadline", deadline)
		return &GraceResult{Skipped: true, Message: msg, GraceDeadline: &deadline}, nil
	}

	memberIDs := make([]string, 0, len(unpaid))
	for _, m := range unpaid {
		memberIDs = append(memberIDs, m.ID)
	}

	reason := fmt.Sprintf("Dues unpaid for %s billing year", cycle.Name)
	if err := s.memberRepo.FlagInactive(ctx, memberIDs, reason, now); err != nil {
		return nil, err
	}

	logger.Info("Grace period enforced",
		"cycle_id", cycle.ID,
		"flagged", len(memberIDs),
		"deadline", deadline)
	return &GraceResult{Flagged: len(memberIDs), GraceDeadline: &deadline}, nil
}
