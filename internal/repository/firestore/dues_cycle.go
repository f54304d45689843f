package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/edlight123/rotaractnyc-sub001/internal/domain"
	"github.com/edlight123/rotaractnyc-sub001/internal/logger"
)

type duesCycleRepo struct {
	client *firestore.Client
}

func (r *duesCycleRepo) cycles() *firestore.CollectionRef {
	return r.client.Collection(collDuesCycles)
}

func (r *duesCycleRepo) Create(ctx context.Context, cycle *domain.DuesCycle) error {
	if cycle.ID == "" {
		cycle.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	cycle.CreatedAt = now
	cycle.UpdatedAt = now

	logger.DatabaseCall("Create", collDuesCycles, "cycle_id", cycle.ID)
	_, err := r.cycles().Doc(cycle.ID).Create(ctx, cycle)
	if err != nil {
		return fmt.Errorf("failed to create dues cycle: %w", err)
	}
	return nil
}

func (r *duesCycleRepo) GetByID(ctx context.Context, id string) (*domain.DuesCycle, error) {
	snap, err := r.cycles().Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrCycleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dues cycle %s: %w", id, err)
	}
	return cycleFromSnapshot(snap)
}

func (r *duesCycleRepo) GetActive(ctx context.Context) (*domain.DuesCycle, error) {
	// Re-queried on every invocation; automation runs are stateless and
	// infrequent, so no caching.
	iter := r.cycles().Where("isActive", "==", true).Limit(2).Documents(ctx)
	defer iter.Stop()

	var cycles []*domain.DuesCycle
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query active dues cycle: %w", err)
		}
		cycle, err := cycleFromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		cycles = append(cycles, cycle)
	}

	if len(cycles) == 0 {
		return nil, domain.ErrNoActiveCycle
	}
	if len(cycles) > 1 {
		// Should be impossible given transactional activation.
		logger.Warn("Multiple active dues cycles found", "using", cycles[0].ID)
	}
	return cycles[0], nil
}

func (r *duesCycleRepo) List(ctx context.Context) ([]domain.DuesCycle, error) {
	iter := r.cycles().OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var out []domain.DuesCycle
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list dues cycles: %w", err)
		}
		cycle, err := cycleFromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, *cycle)
	}
	return out, nil
}

func (r *duesCycleRepo) Update(ctx context.Context, cycle *domain.DuesCycle) error {
	cycle.UpdatedAt = time.Now().UTC()

	logger.DatabaseCall("Update", collDuesCycles, "cycle_id", cycle.ID)
	_, err := r.cycles().Doc(cycle.ID).Set(ctx, cycle)
	if err != nil {
		return fmt.Errorf("failed to update dues cycle %s: %w", cycle.ID, err)
	}
	return nil
}

// Activate flips isActive on the target cycle and clears it on every other
// cycle inside one transaction, so a reader can never observe two active
// cycles, even if the commit races another activation.
func (r *duesCycleRepo) Activate(ctx context.Context, id string) error {
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		target := r.cycles().Doc(id)
		snap, err := tx.Get(target)
		if status.Code(err) == codes.NotFound {
			return domain.ErrCycleNotFound
		}
		if err != nil {
			return err
		}

		activeIter := tx.Documents(r.cycles().Where("isActive", "==", true))
		var toDeactivate []*firestore.DocumentRef
		for {
			active, err := activeIter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return err
			}
			if active.Ref.ID != id {
				toDeactivate = append(toDeactivate, active.Ref)
			}
		}

		now := time.Now().UTC()
		for _, ref := range toDeactivate {
			if err := tx.Update(ref, []firestore.Update{
				{Path: "isActive", Value: false},
				{Path: "updatedAt", Value: now},
			}); err != nil {
				return err
			}
		}
		return tx.Update(snap.Ref, []firestore.Update{
			{Path: "isActive", Value: true},
			{Path: "updatedAt", Value: now},
		})
	})
	if err == nil || err == domain.ErrCycleNotFound {
		return err
	}
	return fmt.Errorf("failed to activate dues cycle %s: %w", id, err)
}

func cycleFromSnapshot(snap *firestore.DocumentSnapshot) (*domain.DuesCycle, error) {
	var cycle domain.DuesCycle
	if err := snap.DataTo(&cycle); err != nil {
		return nil, fmt.Errorf("failed to decode dues cycle %s: %w", snap.Ref.ID, err)
	}
	cycle.ID = snap.Ref.ID
	return &cycle, nil
}
