package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/edlight123/rotaractnyc-sub001/internal/domain"
	"github.com/edlight123/rotaractnyc-sub001/internal/logger"
)

type memberRepo struct {
	client *firestore.Client
}

func (r *memberRepo) members() *firestore.CollectionRef {
	return r.client.Collection(collMembers)
}

func (r *memberRepo) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	snap, err := r.members().Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member %s: %w", id, err)
	}
	return memberFromSnapshot(snap)
}

func (r *memberRepo) List(ctx context.Context) ([]domain.Member, error) {
	return r.list(ctx, r.members().Query)
}

func (r *memberRepo) ListActive(ctx context.Context) ([]domain.Member, error) {
	return r.list(ctx, r.members().Where("status", "==", string(domain.MemberStatusActive)))
}

func (r *memberRepo) list(ctx context.Context, q firestore.Query) ([]domain.Member, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []domain.Member
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list members: %w", err)
		}
		m, err := memberFromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, nil
}

// FlagInactive commits every status flip in one transaction: a crash mid-run
// leaves either all members flagged or none. A Firestore transaction holds
// at most 500 writes, which comfortably covers a club-sized registry.
func (r *memberRepo) FlagInactive(ctx context.Context, memberIDs []string, reason string, at time.Time) error {
	if len(memberIDs) == 0 {
		return nil
	}

	logger.DatabaseCall("FlagInactive", collMembers, "count", len(memberIDs))
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		for _, id := range memberIDs {
			if err := tx.Update(r.members().Doc(id), []firestore.Update{
				{Path: "status", Value: string(domain.MemberStatusInactive)},
				{Path: "statusReason", Value: reason},
				{Path: "statusUpdatedAt", Value: at},
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to flag %d members inactive: %w", len(memberIDs), err)
	}
	return nil
}

func memberFromSnapshot(snap *firestore.DocumentSnapshot) (*domain.Member, error) {
	var m domain.Member
	if err := snap.DataTo(&m); err != nil {
		return nil, fmt.Errorf("failed to decode member %s: %w", snap.Ref.ID, err)
	}
	m.ID = snap.Ref.ID
	return &m, nil
}
