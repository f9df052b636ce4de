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

const intentsCollection = "completion_intents"

// firestoreIntentRepository implements the IntentRepository interface using
// Firestore.
type firestoreIntentRepository struct {
	client *firestore.Client
}

// NewFirestoreIntentRepository creates a new instance of firestoreIntentRepository.
func NewFirestoreIntentRepository(client *firestore.Client) IntentRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for IntentRepository.")
	}
	return &firestoreIntentRepository{client: client}
}

// Create adds a new intent document with an auto-generated ID.
func (r *firestoreIntentRepository) Create(ctx context.Context, intent *models.CompletionIntent) (string, error) {
	docRef := r.client.Collection(intentsCollection).NewDoc()
	intent.ID = docRef.ID
	if _, err := docRef.Create(ctx, intent); err != nil {
		return "", fmt.Errorf("failed to create completion intent: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves an intent document by its ID.
func (r *firestoreIntentRepository) GetByID(ctx context.Context, intentID string) (*models.CompletionIntent, error) {
	if intentID == "" {
		return nil, errors.New("intentID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(intentsCollection).Doc(intentID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("completion intent '%s' not found: %w", intentID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get completion intent '%s': %w", intentID, err)
	}

	var intent models.CompletionIntent
	if err := docSnap.DataTo(&intent); err != nil {
		return nil, fmt.Errorf("failed to decode completion intent '%s': %w", intentID, err)
	}
	intent.ID = docSnap.Ref.ID

	return &intent, nil
}

// UpdateStage sets the stage field only.
func (r *firestoreIntentRepository) UpdateStage(ctx context.Context, intentID string, stage models.IntentStage) error {
	if intentID == "" {
		return errors.New("intentID cannot be empty for UpdateStage operation")
	}
	_, err := r.client.Collection(intentsCollection).Doc(intentID).Update(ctx, []firestore.Update{
		{Path: "stage", Value: string(stage)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("completion intent '%s' not found: %w", intentID, ErrNotFound)
		}
		return fmt.Errorf("failed to update completion intent '%s': %w", intentID, err)
	}
	return nil
}

// ListUnfulfilledForCitizen returns a citizen's intents that have not
// reached the fulfilled stage. Pending intents are included because a
// failed stage write can strand a completed target at pending; the
// service layer filters out the ones whose status write never landed.
func (r *firestoreIntentRepository) ListUnfulfilledForCitizen(ctx context.Context, citizenID string) ([]*models.CompletionIntent, error) {
	iter := r.client.Collection(intentsCollection).
		Where("citizenId", "==", citizenID).
		Where("stage", "in", []string{string(models.IntentPending), string(models.IntentStatusDone)}).
		Documents(ctx)
	defer iter.Stop()

	var intents []*models.CompletionIntent
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate completion intents: %w", err)
		}
		var intent models.CompletionIntent
		if err := doc.DataTo(&intent); err != nil {
			return nil, fmt.Errorf("failed to decode completion intent '%s': %w", doc.Ref.ID, err)
		}
		intent.ID = doc.Ref.ID
		intents = append(intents, &intent)
	}
	return intents, nil
}
