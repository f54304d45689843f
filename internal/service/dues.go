package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/edlight123/rotaractnyc-sub001/internal/domain"
	"github.com/edlight123/rotaractnyc-sub001/internal/logger"
	"github.com/edlight123/rotaractnyc-sub001/internal/repository"
)

type duesService struct {
	cycleRepo  repository.DuesCycleRepository
	recordRepo repository.DuesRecordRepository
	memberRepo repository.MemberRepository
	now        func() time.Time
}

func NewDuesService(
	cycleRepo repository.DuesCycleRepository,
	recordRepo repository.DuesRecordRepository,
	memberRepo repository.MemberRepository,
	now func() time.Time,
) DuesService {
	if now == nil {
		now = time.Now
	}
	return &duesService{
		cycleRepo:  cycleRepo,
		recordRepo: recordRepo,
		memberRepo: memberRepo,
		now:        now,
	}
}

// HandleCheckoutCompleted upserts the dues record for a verified checkout
// event. The write is a full document set to a fixed terminal value, so a
// replayed event id converges on the identical record.
func (s *duesService) HandleCheckoutCompleted(ctx context.Context, evt CheckoutCompletedEvent) error {
	if evt.PaymentType != "dues" {
		logger.Debug("Ignoring non-dues checkout event", "event_id", evt.EventID, "type", evt.PaymentType)
		return nil
	}
	if evt.MemberID == "" || evt.CycleID == "" {
		return fmt.Errorf("checkout event %s missing memberId or cycleId metadata", evt.EventID)
	}

	paidAt := s.now().UTC()
	rec := &domain.MemberDuesRecord{
		MemberID:        evt.MemberID,
		CycleID:         evt.CycleID,
		Status:          domain.DuesStatusPaid,
		PaidAt:          &paidAt,
		StripeEventID:   evt.EventID,
		StripeSessionID: evt.SessionID,
	}
	if err := s.recordRepo.Set(ctx, rec); err != nil {
		return fmt.Errorf("failed to record dues payment: %w", err)
	}

	logger.Info("Dues payment recorded",
		"member_id", evt.MemberID,
		"cycle_id", evt.CycleID,
		"event_id", evt.EventID)
	return nil
}

func (s *duesService) MarkPaidOffline(ctx context.Context, cycleID, memberID, note, adminUID string) (*domain.MemberDuesRecord, error) {
	return s.adminTransition(ctx, cycleID, memberID, note, adminUID, domain.DuesStatusPaidOffline)
}

func (s *duesService) WaiveMemberDues(ctx context.Context, cycleID, memberID, note, adminUID string) (*domain.MemberDuesRecord, error) {
	return s.adminTransition(ctx, cycleID, memberID, note, adminUID, domain.DuesStatusWaived)
}

// adminTransition applies a manual terminal status with its audit fields.
// The note requirement is a data-quality invariant, checked before any read
// or write happens.
func (s *duesService) adminTransition(ctx context.Context, cycleID, memberID, note, adminUID string, status domain.DuesPaymentStatus) (*domain.MemberDuesRecord, error) {
	if strings.TrimSpace(note) == "" {
		return nil, domain.ErrNoteRequired
	}

	if _, err := s.cycleRepo.GetByID(ctx, cycleID); err != nil {
		return nil, err
	}
	if _, err := s.memberRepo.GetByID(ctx, memberID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	rec := &domain.MemberDuesRecord{
		MemberID: memberID,
		CycleID:  cycleID,
		Status:   status,
		Note:     note,
		AdminUID: adminUID,
	}
	switch status {
	case domain.DuesStatusPaidOffline:
		rec.PaidOfflineAt = &now
	case domain.DuesStatusWaived:
		rec.WaivedAt = &now
	}

	if err := s.recordRepo.Set(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to write dues record: %w", err)
	}

	logger.Info("Manual dues transition applied",
		"member_id", memberID,
		"cycle_id", cycleID,
		"status", status,
		"admin_uid", adminUID)
	return rec, nil
}

// ListMemberDues returns every member joined with their effective status for
// the cycle, defaulting members without a record to UNPAID.
func (s *duesService) ListMemberDues(ctx context.Context, cycleID string) ([]MemberDuesView, error) {
	cycle, err := s.cycleRepo.GetByID(ctx, cycleID)
	if err != nil {
		return nil, err
	}

	records, err := s.recordRepo.ListByCycle(ctx, cycleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load dues records: %w", err)
	}

	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	views := make([]MemberDuesView, 0, len(members))
	for _, m := range members {
		rec := records[m.ID]
		views = append(views, MemberDuesView{
			Member:      m,
			Status:      domain.StatusFor(rec),
			AmountCents: cycle.AmountForType(m.MemberType),
			Record:      rec,
		})
	}
	return views, nil
}
