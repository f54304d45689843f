package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/edlight123/rotaractnyc-sub001/internal/repository"
)

// Collection names. Records live in a subcollection under their cycle so a
// cycle's roster is one query and historical cycles keep their records.
const (
	collDuesCycles  = "duesCycles"
	collDuesRecords = "records"
	collMembers     = "members"
)

// Store bundles all Firestore-backed repositories.
type Store struct {
	DuesCycleRepository  repository.DuesCycleRepository
	DuesRecordRepository repository.DuesRecordRepository
	MemberRepository     repository.MemberRepository
}

// NewStore creates repositories sharing one Firestore client.
func NewStore(client *firestore.Client) *Store {
	return &Store{
		DuesCycleRepository:  &duesCycleRepo{client: client},
		DuesRecordRepository: &duesRecordRepo{client: client},
		MemberRepository:     &memberRepo{client: client},
	}
}

// NewClient initializes the Firestore client through the Firebase app so the
// same credentials serve both the store and any future Firebase services.
// credentialsFile may be empty, in which case application default
// credentials apply.
func NewClient(ctx context.Context, projectID, credentialsFile string) (*firestore.Client, error) {
	conf := &firebase.Config{ProjectID: projectID}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firestore client: %w", err)
	}
	return client, nil
}
