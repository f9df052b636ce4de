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

const invitesCollection = "invites"

// firestoreInviteRepository implements the InviteRepository interface using
// Firestore.
type firestoreInviteRepository struct {
	client *firestore.Client
}

// NewFirestoreInviteRepository creates a new instance of firestoreInviteRepository.
func NewFirestoreInviteRepository(client *firestore.Client) InviteRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for InviteRepository.")
	}
	return &firestoreInviteRepository{client: client}
}

// Create adds a new invite document with an auto-generated ID.
func (r *firestoreInviteRepository) Create(ctx context.Context, invite *models.Invite) (string, error) {
	docRef := r.client.Collection(invitesCollection).NewDoc()
	invite.ID = docRef.ID
	if _, err := docRef.Create(ctx, invite); err != nil {
		return "", fmt.Errorf("failed to create invite: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves an invite document by its ID.
func (r *firestoreInviteRepository) GetByID(ctx context.Context, inviteID string) (*models.Invite, error) {
	if inviteID == "" {
		return nil, errors.New("inviteID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(invitesCollection).Doc(inviteID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("invite '%s' not found: %w", inviteID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get invite '%s': %w", inviteID, err)
	}

	var invite models.Invite
	if err := docSnap.DataTo(&invite); err != nil {
		return nil, fmt.Errorf("failed to decode invite '%s': %w", inviteID, err)
	}
	invite.ID = docSnap.Ref.ID

	return &invite, nil
}

// ListForWorker returns a worker's invites newest first.
func (r *firestoreInviteRepository) ListForWorker(ctx context.Context, workerID string) ([]*models.Invite, error) {
	query := r.client.Collection(invitesCollection).
		Where("workerId", "==", workerID).
		OrderBy("createdAt", firestore.Desc)
	return r.collect(ctx, query.Documents(ctx))
}

// ListForWorkerByStatus returns a worker's invites with the given status.
func (r *firestoreInviteRepository) ListForWorkerByStatus(ctx context.Context, workerID string, inviteStatus models.InviteStatus) ([]*models.Invite, error) {
	query := r.client.Collection(invitesCollection).
		Where("workerId", "==", workerID).
		Where("status", "==", string(inviteStatus))
	return r.collect(ctx, query.Documents(ctx))
}

// ListActiveForCitizen returns a citizen's invites not yet completed.
func (r *firestoreInviteRepository) ListActiveForCitizen(ctx context.Context, citizenID string) ([]*models.Invite, error) {
	query := r.client.Collection(invitesCollection).
		Where("citizenId", "==", citizenID).
		Where("status", "!=", string(models.InviteCompleted))
	return r.collect(ctx, query.Documents(ctx))
}

// ListForCitizenByStatus returns a citizen's invites with the given status.
func (r *firestoreInviteRepository) ListForCitizenByStatus(ctx context.Context, citizenID string, inviteStatus models.InviteStatus) ([]*models.Invite, error) {
	query := r.client.Collection(invitesCollection).
		Where("citizenId", "==", citizenID).
		Where("status", "==", string(inviteStatus))
	return r.collect(ctx, query.Documents(ctx))
}

// UpdateStatus sets the status field only.
func (r *firestoreInviteRepository) UpdateStatus(ctx context.Context, inviteID string, inviteStatus models.InviteStatus) error {
	if inviteID == "" {
		return errors.New("inviteID cannot be empty for UpdateStatus operation")
	}
	_, err := r.client.Collection(invitesCollection).Doc(inviteID).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(inviteStatus)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("invite '%s' not found: %w", inviteID, ErrNotFound)
		}
		return fmt.Errorf("failed to update invite '%s' status: %w", inviteID, err)
	}
	return nil
}

func (r *firestoreInviteRepository) collect(ctx context.Context, iter *firestore.DocumentIterator) ([]*models.Invite, error) {
	defer iter.Stop()
	var invites []*models.Invite
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate invites: %w", err)
		}
		var invite models.Invite
		if err := doc.DataTo(&invite); err != nil {
			return nil, fmt.Errorf("failed to decode invite '%s': %w", doc.Ref.ID, err)
		}
		invite.ID = doc.Ref.ID
		invites = append(invites, &invite)
	}
	return invites, nil
}
