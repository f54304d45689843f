package repository

import (
	"context"
	"time"

	"github.com/edlight123/rotaractnyc-sub001/internal/domain"
)

type DuesCycleRepository interface {
	Create(ctx context.Context, cycle *domain.DuesCycle) error
	GetByID(ctx context.Context, id string) (*domain.DuesCycle, error)
	// GetActive returns the single active cycle, or domain.ErrNoActiveCycle.
	GetActive(ctx context.Context) (*domain.DuesCycle, error)
	List(ctx context.Context) ([]domain.DuesCycle, error)
	Update(ctx context.Context, cycle *domain.DuesCycle) error
	// Activate marks one cycle active and deactivates every other cycle in
	// the same transaction, preserving the at-most-one-active invariant.
	Activate(ctx context.Context, id string) error
}

type DuesRecordRepository interface {
	// Get returns (nil, nil) when no record exists for the pair; callers
	// treat that as UNPAID via domain.StatusFor.
	Get(ctx context.Context, cycleID, memberID string) (*domain.MemberDuesRecord, error)
	ListByCycle(ctx context.Context, cycleID string) (map[string]*domain.MemberDuesRecord, error)
	// Set writes the full record, overwriting any previous document. Full
	// overwrite is what makes gateway replays idempotent.
	Set(ctx context.Context, rec *domain.MemberDuesRecord) error
}

type MemberRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	List(ctx context.Context) ([]domain.Member, error)
	ListActive(ctx context.Context) ([]domain.Member, error)
	// FlagInactive sets status=inactive with the given reason on every
	// listed member as one atomic write; either all members are flagged or
	// none are.
	FlagInactive(ctx context.Context, memberIDs []string, reason string, at time.Time) error
}
