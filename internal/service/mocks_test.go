package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/edlight123/rotaractnyc-sub001/internal/domain"
)

// MockDuesCycleRepo
type MockDuesCycleRepo struct {
	mock.Mock
}

func (m *MockDuesCycleRepo) Create(ctx context.Context, cycle *domain.DuesCycle) error {
	args := m.Called(ctx, cycle)
	return args.Error(0)
}
func (m *MockDuesCycleRepo) GetByID(ctx context.Context, id string) (*domain.DuesCycle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DuesCycle), args.Error(1)
}
func (m *MockDuesCycleRepo) GetActive(ctx context.Context) (*domain.DuesCycle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DuesCycle), args.Error(1)
}
func (m *MockDuesCycleRepo) List(ctx context.Context) ([]domain.DuesCycle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DuesCycle), args.Error(1)
}
func (m *MockDuesCycleRepo) Update(ctx context.Context, cycle *domain.DuesCycle) error {
	args := m.Called(ctx, cycle)
	return args.Error(0)
}
func (m *MockDuesCycleRepo) Activate(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDuesRecordRepo
type MockDuesRecordRepo struct {
	mock.Mock
}

func (m *MockDuesRecordRepo) Get(ctx context.Context, cycleID, memberID string) (*domain.MemberDuesRecord, error) {
	args := m.Called(ctx, cycleID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MemberDuesRecord), args.Error(1)
}
func (m *MockDuesRecordRepo) ListByCycle(ctx context.Context, cycleID string) (map[string]*domain.MemberDuesRecord, error) {
	args := m.Called(ctx, cycleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*domain.MemberDuesRecord), args.Error(1)
}
func (m *MockDuesRecordRepo) Set(ctx context.Context, rec *domain.MemberDuesRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

// MockMemberRepo
type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberRepo) List(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}
func (m *MockMemberRepo) ListActive(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}
func (m *MockMemberRepo) FlagInactive(ctx context.Context, memberIDs []string, reason string, at time.Time) error {
	args := m.Called(ctx, memberIDs, reason, at)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendDuesReminder(ctx context.Context, email, name, cycleName string, amountCents int64) error {
	args := m.Called(ctx, email, name, cycleName, amountCents)
	return args.Error(0)
}
func (m *MockEmailService) SendOverdueNotice(ctx context.Context, email, name, cycleName string, amountCents int64, graceDeadline *time.Time) error {
	args := m.Called(ctx, email, name, cycleName, amountCents, graceDeadline)
	return args.Error(0)
}
