package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/saathiconnect/saathi-backend/internal/models"
)

const reviewsCollection = "reviews"

// firestoreReviewRepository implements the ReviewRepository interface using
// Firestore.
type firestoreReviewRepository struct {
	client *firestore.Client
}

// NewFirestoreReviewRepository creates a new instance of firestoreReviewRepository.
func NewFirestoreReviewRepository(client *firestore.Client) ReviewRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ReviewRepository.")
	}
	return &firestoreReviewRepository{client: client}
}

// Create adds a new review document with an auto-generated ID.
func (r *firestoreReviewRepository) Create(ctx context.Context, review *models.Review) (string, error) {
	docRef := r.client.Collection(reviewsCollection).NewDoc()
	review.ID = docRef.ID
	if _, err := docRef.Create(ctx, review); err != nil {
		return "", fmt.Errorf("failed to create review: %w", err)
	}
	return docRef.ID, nil
}

// ListByWorker returns all reviews written about a worker.
func (r *firestoreReviewRepository) ListByWorker(ctx context.Context, workerID string) ([]*models.Review, error) {
	iter := r.client.Collection(reviewsCollection).
		Where("workerId", "==", workerID).
		Documents(ctx)
	defer iter.Stop()

	var reviews []*models.Review
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate reviews: %w", err)
		}
		var review models.Review
		if err := doc.DataTo(&review); err != nil {
			return nil, fmt.Errorf("failed to decode review '%s': %w", doc.Ref.ID, err)
		}
		review.ID = doc.Ref.ID
		reviews = append(reviews, &review)
	}
	return reviews, nil
}

// Exists reports whether a review for the (jobID, workerID) pair exists.
// Uniqueness is only presence-checked here, never enforced by the store.
func (r *firestoreReviewRepository) Exists(ctx context.Context, jobID, workerID string) (bool, error) {
	iter := r.client.Collection(reviewsCollection).
		Where("jobId", "==", jobID).
		Where("workerId", "==", workerID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()
	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check review existence: %w", err)
	}
	return true, nil
}
