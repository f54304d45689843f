package domain

import (
	"time"
)

// DuesPaymentStatus is the payment state of a member for one billing cycle.
type DuesPaymentStatus string

const (
	DuesStatusUnpaid      DuesPaymentStatus = "UNPAID"
	DuesStatusPaid        DuesPaymentStatus = "PAID"
	DuesStatusPaidOffline DuesPaymentStatus = "PAID_OFFLINE"
	DuesStatusWaived      DuesPaymentStatus = "WAIVED"
)

// Terminal reports whether the status is settled for the cycle. A terminal
// record is never re-solicited or flagged by automation.
func (s DuesPaymentStatus) Terminal() bool {
	switch s {
	case DuesStatusPaid, DuesStatusPaidOffline, DuesStatusWaived:
		return true
	}
	return false
}

// DefaultGracePeriodDays applies when a cycle is created without one.
const DefaultGracePeriodDays = 30

// DuesCycle is one annual billing year. At most one cycle is active at a
// time; activation deactivates all others in the same transaction.
type DuesCycle struct {
	ID                      string     `firestore:"-" json:"id"`
	Name                    string     `firestore:"name" json:"name"`
	StartDate               *time.Time `firestore:"startDate" json:"startDate,omitempty"`
	EndDate                 *time.Time `firestore:"endDate" json:"endDate,omitempty"`
	AmountProfessionalCents int64      `firestore:"amountProfessional" json:"amountProfessional"`
	AmountStudentCents      int64      `firestore:"amountStudent" json:"amountStudent"`
	GracePeriodDays         int        `firestore:"gracePeriodDays" json:"gracePeriodDays"`
	IsActive                bool       `firestore:"isActive" json:"isActive"`
	CreatedBy               string     `firestore:"createdBy" json:"createdBy,omitempty"`
	CreatedAt               time.Time  `firestore:"createdAt" json:"createdAt"`
	UpdatedAt               time.Time  `firestore:"updatedAt" json:"updatedAt"`
}

// AmountForType resolves the per-member dues amount. Anything other than the
// student type, including an empty or unrecognized value, pays the
// professional rate.
func (c *DuesCycle) AmountForType(mt MemberType) int64 {
	if mt == MemberTypeStudent {
		return c.AmountStudentCents
	}
	return c.AmountProfessionalCents
}

// GraceDeadline returns endDate + gracePeriodDays. The second return is
// false when the cycle has no end date, in which case no deadline exists and
// grace enforcement cannot run.
func (c *DuesCycle) GraceDeadline() (time.Time, bool) {
	if c.EndDate == nil || c.EndDate.IsZero() {
		return time.Time{}, false
	}
	days := c.GracePeriodDays
	if days <= 0 {
		days = DefaultGracePeriodDays
	}
	return c.EndDate.AddDate(0, 0, days), true
}

// MemberDuesRecord is the per-(member, cycle) payment record. Absence of a
// record is equivalent to DuesStatusUnpaid everywhere; use StatusFor to keep
// the two cases from diverging.
type MemberDuesRecord struct {
	MemberID        string            `firestore:"memberId" json:"memberId"`
	CycleID         string            `firestore:"cycleId" json:"cycleId"`
	Status          DuesPaymentStatus `firestore:"status" json:"status"`
	PaidAt          *time.Time        `firestore:"paidAt" json:"paidAt,omitempty"`
	PaidOfflineAt   *time.Time        `firestore:"paidOfflineAt" json:"paidOfflineAt,omitempty"`
	WaivedAt        *time.Time        `firestore:"waivedAt" json:"waivedAt,omitempty"`
	Note            string            `firestore:"note" json:"note,omitempty"`
	AdminUID        string            `firestore:"adminUid" json:"adminUid,omitempty"`
	StripeEventID   string            `firestore:"stripeEventId" json:"stripeEventId,omitempty"`
	StripeSessionID string            `firestore:"stripeSessionId" json:"stripeSessionId,omitempty"`
	UpdatedAt       time.Time         `firestore:"updatedAt" json:"updatedAt"`
}

// StatusFor maps a possibly-missing record to its effective status.
func StatusFor(rec *MemberDuesRecord) DuesPaymentStatus {
	if rec == nil || rec.Status == "" {
		return DuesStatusUnpaid
	}
	return rec.Status
}
