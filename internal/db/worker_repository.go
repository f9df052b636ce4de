package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/saathiconnect/saathi-backend/internal/models"
)

const workersCollection = "workers"

// firestoreWorkerRepository implements the WorkerRepository interface using Firestore.
type firestoreWorkerRepository struct {
	client *firestore.Client
}

// NewFirestoreWorkerRepository creates a new instance of firestoreWorkerRepository.
func NewFirestoreWorkerRepository(client *firestore.Client) WorkerRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for WorkerRepository.")
	}
	return &firestoreWorkerRepository{client: client}
}

// Create adds a worker document under the given UID, the same document ID as
// the matching user document.
func (r *firestoreWorkerRepository) Create(ctx context.Context, uid string, worker *models.WorkerProfile) error {
	if uid == "" {
		return errors.New("uid cannot be empty for Create operation")
	}
	_, err := r.client.Collection(workersCollection).Doc(uid).Create(ctx, worker)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("worker profile '%s' already exists: %w", uid, err)
		}
		return fmt.Errorf("failed to create worker profile '%s': %w", uid, err)
	}
	return nil
}

// GetByID retrieves a worker document by UID. Absence is reported as
// ErrNotFound; callers treat that as an expected state.
func (r *firestoreWorkerRepository) GetByID(ctx context.Context, uid string) (*models.WorkerProfile, error) {
	if uid == "" {
		return nil, errors.New("uid cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(workersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("worker profile '%s' not found: %w", uid, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get worker profile '%s': %w", uid, err)
	}

	var worker models.WorkerProfile
	if err := docSnap.DataTo(&worker); err != nil {
		return nil, fmt.Errorf("failed to decode worker profile '%s': %w", uid, err)
	}
	worker.ID = docSnap.Ref.ID

	return &worker, nil
}

// UpdateFields applies a partial update touching only the named fields.
func (r *firestoreWorkerRepository) UpdateFields(ctx context.Context, uid string, fields map[string]interface{}) error {
	if uid == "" {
		return errors.New("uid cannot be empty for UpdateFields operation")
	}
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	_, err := r.client.Collection(workersCollection).Doc(uid).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("worker profile '%s' not found: %w", uid, ErrNotFound)
		}
		return fmt.Errorf("failed to update worker profile '%s': %w", uid, err)
	}
	return nil
}

// ListByCategory returns worker documents matching a service category.
func (r *firestoreWorkerRepository) ListByCategory(ctx context.Context, category string) ([]*models.WorkerProfile, error) {
	query := r.client.Collection(workersCollection).Where("category", "==", category)
	return r.collect(ctx, query.Documents(ctx))
}

// ListByIDs returns the worker documents with the given IDs, chunked to stay
// within Firestore's "in" clause limit.
func (r *firestoreWorkerRepository) ListByIDs(ctx context.Context, ids []string) ([]*models.WorkerProfile, error) {
	var out []*models.WorkerProfile
	coll := r.client.Collection(workersCollection)
	for _, chunk := range chunkIDs(ids) {
		refs := make([]*firestore.DocumentRef, 0, len(chunk))
		for _, id := range chunk {
			refs = append(refs, coll.Doc(id))
		}
		workers, err := r.collect(ctx, coll.Where(firestore.DocumentID, "in", refs).Documents(ctx))
		if err != nil {
			return nil, err
		}
		out = append(out, workers...)
	}
	return out, nil
}

// ListAll returns every worker document.
func (r *firestoreWorkerRepository) ListAll(ctx context.Context) ([]*models.WorkerProfile, error) {
	return r.collect(ctx, r.client.Collection(workersCollection).Documents(ctx))
}

func (r *firestoreWorkerRepository) collect(ctx context.Context, iter *firestore.DocumentIterator) ([]*models.WorkerProfile, error) {
	defer iter.Stop()
	var workers []*models.WorkerProfile
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate worker profiles: %w", err)
		}
		var worker models.WorkerProfile
		if err := doc.DataTo(&worker); err != nil {
			return nil, fmt.Errorf("failed to decode worker profile '%s': %w", doc.Ref.ID, err)
		}
		worker.ID = doc.Ref.ID
		workers = append(workers, &worker)
	}
	return workers, nil
}
