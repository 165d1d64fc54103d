package storage

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hireflow/backend/config"
	"github.com/hireflow/backend/models"
)

// FirestoreStore keeps candidate records in a Firestore collection
type FirestoreStore struct {
	client     *firestore.Client
	collection string
}

// NewFirestoreStore creates a new Firestore-backed candidate store
func NewFirestoreStore(ctx context.Context, cfg *config.Config) (*FirestoreStore, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreStore{client: client, collection: cfg.CandidatesCollection}, nil
}

// Close closes the Firestore client
func (f *FirestoreStore) Close() error {
	return f.client.Close()
}

// Create inserts a new candidate document
func (f *FirestoreStore) Create(ctx context.Context, c *models.Candidate) error {
	prepareNew(c)

	if _, err := f.client.Collection(f.collection).Doc(c.ID).Create(ctx, c); err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	return nil
}

// Get retrieves a candidate by ID
func (f *FirestoreStore) Get(ctx context.Context, id string) (*models.Candidate, error) {
	doc, err := f.client.Collection(f.collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return decodeCandidate(doc)
}

// List returns candidates newest first, optionally filtered by status
func (f *FirestoreStore) List(ctx context.Context, filter CandidateFilter) ([]*models.Candidate, error) {
	query := f.client.Collection(f.collection).Query
	if filter.Status != "" {
		query = query.Where("status", "==", string(filter.Status))
	}
	iter := query.OrderBy("created_at", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	candidates := []*models.Candidate{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list candidates: %w", err)
		}

		c, err := decodeCandidate(doc)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// Update applies a partial update and returns the stored record
func (f *FirestoreStore) Update(ctx context.Context, id string, update CandidateUpdate) (*models.Candidate, error) {
	if update.IsEmpty() {
		return f.Get(ctx, id)
	}

	updates := []firestore.Update{{Path: "updated_at", Value: time.Now().UTC()}}
	if update.Status != nil {
		updates = append(updates, firestore.Update{Path: "status", Value: string(*update.Status)})
	}
	if update.Score != nil {
		updates = append(updates, firestore.Update{Path: "score", Value: *update.Score})
	}
	if update.Analysis != nil {
		updates = append(updates, firestore.Update{Path: "analysis", Value: *update.Analysis})
	}
	if update.AvatarURL != nil {
		updates = append(updates, firestore.Update{Path: "avatar_url", Value: *update.AvatarURL})
	}

	docRef := f.client.Collection(f.collection).Doc(id)
	if _, err := docRef.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update candidate: %w", err)
	}
	return f.Get(ctx, id)
}

// Delete removes a candidate document
func (f *FirestoreStore) Delete(ctx context.Context, id string) error {
	docRef := f.client.Collection(f.collection).Doc(id)
	if _, err := docRef.Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	return nil
}

func decodeCandidate(doc *firestore.DocumentSnapshot) (*models.Candidate, error) {
	var c models.Candidate
	if err := doc.DataTo(&c); err != nil {
		return nil, fmt.Errorf("failed to parse candidate data: %w", err)
	}
	c.ID = doc.Ref.ID
	return &c, nil
}
