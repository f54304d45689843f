package service

import (
	"context"
	"time"

	"github.com/edlight123/rotaractnyc-sub001/internal/domain"
)

// ReminderResult is the outcome of a send-reminders run.
type ReminderResult struct {
	Sent        int
	Failed      int
	TotalUnpaid int
}

// OverdueResult is the outcome of a send-overdue run. Skipped is true when
// the cycle has not ended yet; the run is a deliberate no-op, not a failure.
type OverdueResult struct {
	Sent         int
	Failed       int
	TotalOverdue int
	Skipped      bool
	Message      string
}

// GraceResult is the outcome of an enforce-grace run. Skipped is true when
// the deadline cannot be computed or has not passed.
type GraceResult struct {
	Flagged       int
	GraceDeadline *time.Time
	Skipped       bool
	Message       string
}

type AutomationService interface {
	SendReminders(ctx context.Context) (*ReminderResult, error)
	SendOverdueNotices(ctx context.Context) (*OverdueResult, error)
	EnforceGracePeriod(ctx context.Context) (*GraceResult, error)
}

// CheckoutCompletedEvent is the verified gateway event consumed by
// reconciliation. Metadata identity (EventID) makes replays detectable in
// audit; the full-overwrite record write makes them harmless.
type CheckoutCompletedEvent struct {
	EventID     string
	SessionID   string
	PaymentType string
	MemberID    string
	CycleID     string
}

// MemberDuesView is one roster row: a member joined with their effective
// dues status for a cycle.
type MemberDuesView struct {
	Member      domain.Member            `json:"member"`
	Status      domain.DuesPaymentStatus `json:"status"`
	AmountCents int64                    `json:"amountCents"`
	Record      *domain.MemberDuesRecord `json:"record,omitempty"`
}

type DuesService interface {
	HandleCheckoutCompleted(ctx context.Context, evt CheckoutCompletedEvent) error
	MarkPaidOffline(ctx context.Context, cycleID, memberID, note, adminUID string) (*domain.MemberDuesRecord, error)
	WaiveMemberDues(ctx context.Context, cycleID, memberID, note, adminUID string) (*domain.MemberDuesRecord, error)
	ListMemberDues(ctx context.Context, cycleID string) ([]MemberDuesView, error)
}

// CreateCycleInput carries the admin-supplied fields for a new cycle.
type CreateCycleInput struct {
	Name                    string
	StartDate               *time.Time
	EndDate                 *time.Time
	AmountProfessionalCents int64
	AmountStudentCents      int64
	GracePeriodDays         int
	IsActive                bool
	CreatedBy               string
}

// UpdateCycleInput patches a cycle; nil fields are left unchanged.
type UpdateCycleInput struct {
	Name                    *string
	StartDate               *time.Time
	EndDate                 *time.Time
	AmountProfessionalCents *int64
	AmountStudentCents      *int64
	GracePeriodDays         *int
	IsActive                *bool
}

type DuesCycleService interface {
	CreateCycle(ctx context.Context, input CreateCycleInput) (*domain.DuesCycle, error)
	GetActiveCycle(ctx context.Context) (*domain.DuesCycle, error)
	ListCycles(ctx context.Context) ([]domain.DuesCycle, error)
	UpdateCycle(ctx context.Context, id string, input UpdateCycleInput) (*domain.DuesCycle, error)
}

type EmailService interface {
	SendDuesReminder(ctx context.Context, email, name, cycleName string, amountCents int64) error
	SendOverdueNotice(ctx context.Context, email, name, cycleName string, amountCents int64, graceDeadline *time.Time) error
}
