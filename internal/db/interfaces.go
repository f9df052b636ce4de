package db

import (
	"context"
	"errors"

	"github.com/saathiconnect/saathi-backend/internal/models"
)

// ErrNotFound is returned when a document is not found in Firestore.
var ErrNotFound = errors.New("document not found")

// UserRepository defines storage operations for the users collection.
// Document IDs are Firebase Auth UIDs.
type UserRepository interface {
	GetByID(ctx context.Context, uid string) (*models.UserProfile, error)
	Create(ctx context.Context, profile *models.UserProfile) error
	// UpdateFields applies a partial update to the named fields only.
	UpdateFields(ctx context.Context, uid string, fields map[string]interface{}) error
	// ListWorkersByPincode returns user documents with role=worker in the
	// given pincode.
	ListWorkersByPincode(ctx context.Context, pincode string) ([]*models.UserProfile, error)
	// ListByIDs returns the user documents with the given IDs, additionally
	// restricted by pincode when pincode is non-empty.
	ListByIDs(ctx context.Context, ids []string, pincode string) ([]*models.UserProfile, error)
}

// WorkerRepository defines storage operations for the workers collection.
// A worker document shares its ID with the matching user document.
type WorkerRepository interface {
	GetByID(ctx context.Context, uid string) (*models.WorkerProfile, error)
	Create(ctx context.Context, uid string, worker *models.WorkerProfile) error
	UpdateFields(ctx context.Context, uid string, fields map[string]interface{}) error
	ListByCategory(ctx context.Context, category string) ([]*models.WorkerProfile, error)
	ListByIDs(ctx context.Context, ids []string) ([]*models.WorkerProfile, error)
	ListAll(ctx context.Context) ([]*models.WorkerProfile, error)
}

// JobRepository defines storage operations for the jobs collection.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) (string, error)
	GetByID(ctx context.Context, jobID string) (*models.Job, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Job, error)
	// Find lists open-board jobs newest first, optionally filtered by
	// pincode and/or category.
	Find(ctx context.Context, pincode, category string) ([]*models.Job, error)
	UpdateStatus(ctx context.Context, jobID string, status models.JobStatus) error
	Delete(ctx context.Context, jobID string) error
}

// ApplicationRepository defines storage operations for the applications
// collection.
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) (string, error)
	GetByID(ctx context.Context, appID string) (*models.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]*models.Application, error)
	ListByWorker(ctx context.Context, workerID string) ([]*models.Application, error)
	ListByJobAndStatus(ctx context.Context, jobID string, status models.ApplicationStatus) ([]*models.Application, error)
	Exists(ctx context.Context, jobID, workerID string) (bool, error)
	UpdateStatus(ctx context.Context, appID string, status models.ApplicationStatus) error
}

// InviteRepository defines storage operations for the invites collection.
type InviteRepository interface {
	Create(ctx context.Context, invite *models.Invite) (string, error)
	GetByID(ctx context.Context, inviteID string) (*models.Invite, error)
	// ListForWorker returns a worker's invites newest first.
	ListForWorker(ctx context.Context, workerID string) ([]*models.Invite, error)
	ListForWorkerByStatus(ctx context.Context, workerID string, status models.InviteStatus) ([]*models.Invite, error)
	// ListActiveForCitizen returns a citizen's invites not yet completed.
	ListActiveForCitizen(ctx context.Context, citizenID string) ([]*models.Invite, error)
	ListForCitizenByStatus(ctx context.Context, citizenID string, status models.InviteStatus) ([]*models.Invite, error)
	UpdateStatus(ctx context.Context, inviteID string, status models.InviteStatus) error
}

// ReviewRepository defines storage operations for the reviews collection.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) (string, error)
	ListByWorker(ctx context.Context, workerID string) ([]*models.Review, error)
	// Exists reports whether a review for the (jobID, workerID) pair exists.
	Exists(ctx context.Context, jobID, workerID string) (bool, error)
}

// IntentRepository defines storage operations for completion intents.
type IntentRepository interface {
	Create(ctx context.Context, intent *models.CompletionIntent) (string, error)
	GetByID(ctx context.Context, intentID string) (*models.CompletionIntent, error)
	UpdateStage(ctx context.Context, intentID string, stage models.IntentStage) error
	// ListUnfulfilledForCitizen returns a citizen's intents still short of
	// the fulfilled stage, pending ones included.
	ListUnfulfilledForCitizen(ctx context.Context, citizenID string) ([]*models.CompletionIntent, error)
}

// PhotoStore persists uploaded profile photos and returns a public view URL.
type PhotoStore interface {
	Save(ctx context.Context, data []byte, contentType string) (string, error)
}
