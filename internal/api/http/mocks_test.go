package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/edlight123/rotaractnyc-sub001/internal/domain"
	"github.com/edlight123/rotaractnyc-sub001/internal/service"
)

// MockAutomationService
type MockAutomationService struct {
	mock.Mock
}

func (m *MockAutomationService) SendReminders(ctx context.Context) (*service.ReminderResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReminderResult), args.Error(1)
}
func (m *MockAutomationService) SendOverdueNotices(ctx context.Context) (*service.OverdueResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.OverdueResult), args.Error(1)
}
func (m *MockAutomationService) EnforceGracePeriod(ctx context.Context) (*service.GraceResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GraceResult), args.Error(1)
}

// MockDuesService
type MockDuesService struct {
	mock.Mock
}

func (m *MockDuesService) HandleCheckoutCompleted(ctx context.Context, evt service.CheckoutCompletedEvent) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}
func (m *MockDuesService) MarkPaidOffline(ctx context.Context, cycleID, memberID, note, adminUID string) (*domain.MemberDuesRecord, error) {
	args := m.Called(ctx, cycleID, memberID, note, adminUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MemberDuesRecord), args.Error(1)
}
func (m *MockDuesService) WaiveMemberDues(ctx context.Context, cycleID, memberID, note, adminUID string) (*domain.MemberDuesRecord, error) {
	args := m.Called(ctx, cycleID, memberID, note, adminUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MemberDuesRecord), args.Error(1)
}
func (m *MockDuesService) ListMemberDues(ctx context.Context, cycleID string) ([]service.MemberDuesView, error) {
	args := m.Called(ctx, cycleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.MemberDuesView), args.Error(1)
}

// MockDuesCycleService
type MockDuesCycleService struct {
	mock.Mock
}

func (m *MockDuesCycleService) CreateCycle(ctx context.Context, input service.CreateCycleInput) (*domain.DuesCycle, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DuesCycle), args.Error(1)
}
func (m *MockDuesCycleService) GetActiveCycle(ctx context.Context) (*domain.DuesCycle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DuesCycle), args.Error(1)
}
func (m *MockDuesCycleService) ListCycles(ctx context.Context) ([]domain.DuesCycle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DuesCycle), args.Error(1)
}
func (m *MockDuesCycleService) UpdateCycle(ctx context.Context, id string, input service.UpdateCycleInput) (*domain.DuesCycle, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DuesCycle), args.Error(1)
}
