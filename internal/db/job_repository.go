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

const jobsCollection = "jobs"

// firestoreJobRepository implements the JobRepository interface using Firestore.
type firestoreJobRepository struct {
	client *firestore.Client
}

// NewFirestoreJobRepository creates a new instance of firestoreJobRepository.
func NewFirestoreJobRepository(client *firestore.Client) JobRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for JobRepository.")
	}
	return &firestoreJobRepository{client: client}
}

// Create adds a new job document with an auto-generated ID and sets job.ID
// before saving.
func (r *firestoreJobRepository) Create(ctx context.Context, job *models.Job) (string, error) {
	docRef := r.client.Collection(jobsCollection).NewDoc()
	job.ID = docRef.ID
	if _, err := docRef.Create(ctx, job); err != nil {
		return "", fmt.Errorf("failed to create job: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves a job document by its ID.
func (r *firestoreJobRepository) GetByID(ctx context.Context, jobID string) (*models.Job, error) {
	if jobID == "" {
		return nil, errors.New("jobID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(jobsCollection).Doc(jobID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("job '%s' not found: %w", jobID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get job '%s': %w", jobID, err)
	}

	var job models.Job
	if err := docSnap.DataTo(&job); err != nil {
		return nil, fmt.Errorf("failed to decode job '%s': %w", jobID, err)
	}
	job.ID = docSnap.Ref.ID

	return &job, nil
}

// ListByOwner returns all jobs posted by a citizen.
func (r *firestoreJobRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Job, error) {
	if ownerID == "" {
		return nil, errors.New("ownerID cannot be empty for ListByOwner operation")
	}
	query := r.client.Collection(jobsCollection).Where("postedBy", "==", ownerID)
	return r.collect(ctx, query.Documents(ctx))
}

// Find lists board jobs newest first, optionally filtered by pincode and/or
// category.
func (r *firestoreJobRepository) Find(ctx context.Context, pincode, category string) ([]*models.Job, error) {
	query := r.client.Collection(jobsCollection).Query
	if pincode != "" {
		query = query.Where("location", "==", pincode)
	}
	if category != "" {
		query = query.Where("category", "==", category)
	}
	query = query.OrderBy("createdAt", firestore.Desc)
	return r.collect(ctx, query.Documents(ctx))
}

// UpdateStatus sets the status field only.
func (r *firestoreJobRepository) UpdateStatus(ctx context.Context, jobID string, jobStatus models.JobStatus) error {
	if jobID == "" {
		return errors.New("jobID cannot be empty for UpdateStatus operation")
	}
	_, err := r.client.Collection(jobsCollection).Doc(jobID).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(jobStatus)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("job '%s' not found: %w", jobID, ErrNotFound)
		}
		return fmt.Errorf("failed to update job '%s' status: %w", jobID, err)
	}
	return nil
}

// Delete removes a job document.
func (r *firestoreJobRepository) Delete(ctx context.Context, jobID string) error {
	if jobID == "" {
		return errors.New("jobID cannot be empty for Delete operation")
	}
	if _, err := r.client.Collection(jobsCollection).Doc(jobID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete job '%s': %w", jobID, err)
	}
	return nil
}

func (r *firestoreJobRepository) collect(ctx context.Context, iter *firestore.DocumentIterator) ([]*models.Job, error) {
	defer iter.Stop()
	var jobs []*models.Job
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate jobs: %w", err)
		}
		var job models.Job
		if err := doc.DataTo(&job); err != nil {
			return nil, fmt.Errorf("failed to decode job '%s': %w", doc.Ref.ID, err)
		}
		job.ID = doc.Ref.ID
		jobs = append(jobs, &job)
	}
	return jobs, nil
}
