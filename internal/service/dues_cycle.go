package service

import (
	"context"

	"github.com/edlight123/rotaractnyc-sub001/internal/domain"
	"github.com/edlight123/rotaractnyc-sub001/internal/logger"
	"github.com/edlight123/rotaractnyc-sub001/internal/repository"
)

type duesCycleService struct {
	cycleRepo repository.DuesCycleRepository
}

func NewDuesCycleService(cycleRepo repository.DuesCycleRepository) DuesCycleService {
	return &duesCycleService{cycleRepo: cycleRepo}
}

func (s *duesCycleService) CreateCycle(ctx context.Context, input CreateCycleInput) (*domain.DuesCycle, error) {
	if input.StartDate != nil && input.EndDate != nil && !input.EndDate.After(*input.StartDate) {
		return nil, domain.ErrInvalidCycleDates
	}

	grace := input.GracePeriodDays
	if grace <= 0 {
		grace = domain.DefaultGracePeriodDays
	}

	cycle := &domain.DuesCycle{
		Name:                    input.Name,
		StartDate:               input.StartDate,
		EndDate:                 input.EndDate,
		AmountProfessionalCents: input.AmountProfessionalCents,
		AmountStudentCents:      input.AmountStudentCents,
		GracePeriodDays:         grace,
		IsActive:                false,
		CreatedBy:               input.CreatedBy,
	}
	if err := s.cycleRepo.Create(ctx, cycle); err != nil {
		return nil, err
	}

	// Activation is a separate transactional step so the one-active-cycle
	// invariant is enforced in exactly one place.
	if input.IsActive {
		if err := s.cycleRepo.Activate(ctx, cycle.ID); err != nil {
			return nil, err
		}
		cycle.IsActive = true
	}

	logger.Info("Dues cycle created", "cycle_id", cycle.ID, "name", cycle.Name, "active", cycle.IsActive)
	return cycle, nil
}

func (s *duesCycleService) GetActiveCycle(ctx context.Context) (*domain.DuesCycle, error) {
	return s.cycleRepo.GetActive(ctx)
}

func (s *duesCycleService) ListCycles(ctx context.Context) ([]domain.DuesCycle, error) {
	return s.cycleRepo.List(ctx)
}

func (s *duesCycleService) UpdateCycle(ctx context.Context, id string, input UpdateCycleInput) (*domain.DuesCycle, error) {
	cycle, err := s.cycleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		cycle.Name = *input.Name
	}
	if input.StartDate != nil {
		cycle.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		cycle.EndDate = input.EndDate
	}
	if input.AmountProfessionalCents != nil {
		cycle.AmountProfessionalCents = *input.AmountProfessionalCents
	}
	if input.AmountStudentCents != nil {
		cycle.AmountStudentCents = *input.AmountStudentCents
	}
	if input.GracePeriodDays != nil {
		cycle.GracePeriodDays = *input.GracePeriodDays
	}

	if cycle.StartDate != nil && cycle.EndDate != nil && !cycle.EndDate.After(*cycle.StartDate) {
		return nil, domain.ErrInvalidCycleDates
	}

	if err := s.cycleRepo.Update(ctx, cycle); err != nil {
		return nil, err
	}

	if input.IsActive != nil {
		if *input.IsActive {
			if err := s.cycleRepo.Activate(ctx, cycle.ID); err != nil {
				return nil, err
			}
			cycle.IsActive = true
		} else if cycle.IsActive {
			cycle.IsActive = false
			if err := s.cycleRepo.Update(ctx, cycle); err != nil {
				return nil, err
			}
		}
	}

	logger.Info("Dues cycle updated", "cycle_id", cycle.ID, "active", cycle.IsActive)
	return cycle, nil
}
