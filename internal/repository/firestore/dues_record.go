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

type duesRecordRepo struct {
	client *firestore.Client
}

// Records are keyed by member id within their cycle's subcollection, which
// enforces the at-most-one-record-per-(member, cycle) identity for free.
func (r *duesRecordRepo) records(cycleID string) *firestore.CollectionRef {
	return r.client.Collection(collDuesCycles).Doc(cycleID).Collection(collDuesRecords)
}

func (r *duesRecordRepo) Get(ctx context.Context, cycleID, memberID string) (*domain.MemberDuesRecord, error) {
	snap, err := r.records(cycleID).Doc(memberID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		// No record means UNPAID; not an error.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dues record %s/%s: %w", cycleID, memberID, err)
	}
	return recordFromSnapshot(snap)
}

func (r *duesRecordRepo) ListByCycle(ctx context.Context, cycleID string) (map[string]*domain.MemberDuesRecord, error) {
	iter := r.records(cycleID).Documents(ctx)
	defer iter.Stop()

	out := make(map[string]*domain.MemberDuesRecord)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list dues records for cycle %s: %w", cycleID, err)
		}
		rec, err := recordFromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		out[rec.MemberID] = rec
	}
	return out, nil
}

func (r *duesRecordRepo) Set(ctx context.Context, rec *domain.MemberDuesRecord) error {
	rec.UpdatedAt = time.Now().UTC()

	logger.DatabaseCall("Set", collDuesRecords, "cycle_id", rec.CycleID, "member_id", rec.MemberID)
	_, err := r.records(rec.CycleID).Doc(rec.MemberID).Set(ctx, rec)
	if err != nil {
		return fmt.Errorf("failed to write dues record %s/%s: %w", rec.CycleID, rec.MemberID, err)
	}
	return nil
}

func recordFromSnapshot(snap *firestore.DocumentSnapshot) (*domain.MemberDuesRecord, error) {
	var rec domain.MemberDuesRecord
	if err := snap.DataTo(&rec); err != nil {
		return nil, fmt.Errorf("failed to decode dues record %s: %w", snap.Ref.ID, err)
	}
	if rec.MemberID == "" {
		rec.MemberID = snap.Ref.ID
	}
	return &rec, nil
}
