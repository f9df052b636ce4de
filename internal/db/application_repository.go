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

const applicationsCollection = "applications"

// firestoreApplicationRepository implements the ApplicationRepository
// interface using Firestore.
type firestoreApplicationRepository struct {
	client *firestore.Client
}

// NewFirestoreApplicationRepository creates a new instance of
// firestoreApplicationRepository.
func NewFirestoreApplicationRepository(client *firestore.Client) ApplicationRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ApplicationRepository.")
	}
	return &firestoreApplicationRepository{client: client}
}

// Create adds a new application document with an auto-generated ID.
func (r *firestoreApplicationRepository) Create(ctx context.Context, app *models.Application) (string, error) {
	docRef := r.client.Collection(applicationsCollection).NewDoc()
	app.ID = docRef.ID
	if _, err := docRef.Create(ctx, app); err != nil {
		return "", fmt.Errorf("failed to create application: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves an application document by its ID.
func (r *firestoreApplicationRepository) GetByID(ctx context.Context, appID string) (*models.Application, error) {
	if appID == "" {
		return nil, errors.New("appID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(applicationsCollection).Doc(appID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("application '%s' not found: %w", appID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get application '%s': %w", appID, err)
	}

	var app models.Application
	if err := docSnap.DataTo(&app); err != nil {
		return nil, fmt.Errorf("failed to decode application '%s': %w", appID, err)
	}
	app.ID = docSnap.Ref.ID

	return &app, nil
}

// ListByJob returns all applications for a job.
func (r *firestoreApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]*models.Application, error) {
	query := r.client.Collection(applicationsCollection).Where("jobId", "==", jobID)
	return r.collect(ctx, query.Documents(ctx))
}

// ListByWorker returns all applications submitted by a worker.
func (r *firestoreApplicationRepository) ListByWorker(ctx context.Context, workerID string) ([]*models.Application, error) {
	query := r.client.Collection(applicationsCollection).Where("workerId", "==", workerID)
	return r.collect(ctx, query.Documents(ctx))
}

// ListByJobAndStatus returns a job's applications with the given status.
func (r *firestoreApplicationRepository) ListByJobAndStatus(ctx context.Context, jobID string, appStatus models.ApplicationStatus) ([]*models.Application, error) {
	query := r.client.Collection(applicationsCollection).
		Where("jobId", "==", jobID).
		Where("status", "==", string(appStatus))
	return r.collect(ctx, query.Documents(ctx))
}

// Exists reports whether the worker already applied to the job.
func (r *firestoreApplicationRepository) Exists(ctx context.Context, jobID, workerID string) (bool, error) {
	iter := r.client.Collection(applicationsCollection).
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
		return false, fmt.Errorf("failed to check application existence: %w", err)
	}
	return true, nil
}

// UpdateStatus sets the status field only.
func (r *firestoreApplicationRepository) UpdateStatus(ctx context.Context, appID string, appStatus models.ApplicationStatus) error {
	if appID == "" {
		return errors.New("appID cannot be empty for UpdateStatus operation")
	}
	_, err := r.client.Collection(applicationsCollection).Doc(appID).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(appStatus)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("application '%s' not found: %w", appID, ErrNotFound)
		}
		return fmt.Errorf("failed to update application '%s' status: %w", appID, err)
	}
	return nil
}

func (r *firestoreApplicationRepository) collect(ctx context.Context, iter *firestore.DocumentIterator) ([]*models.Application, error) {
	defer iter.Stop()
	var apps []*models.Application
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate applications: %w", err)
		}
		var app models.Application
		if err := doc.DataTo(&app); err != nil {
			return nil, fmt.Errorf("failed to decode application '%s': %w", doc.Ref.ID, err)
		}
		app.ID = doc.Ref.ID
		apps = append(apps, &app)
	}
	return apps, nil
}
