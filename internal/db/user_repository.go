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

const usersCollection = "users"

// firestoreUserRepository implements the UserRepository interface using Firestore.
type firestoreUserRepository struct {
	client *firestore.Client
}

// NewFirestoreUserRepository creates a new instance of firestoreUserRepository.
func NewFirestoreUserRepository(client *firestore.Client) UserRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for UserRepository.")
	}
	return &firestoreUserRepository{client: client}
}

// Create adds a new user document. The profile.ID (Firebase Auth UID) is used
// as the Firestore document ID, which is what makes the 1:1 join with the
// workers collection work.
func (r *firestoreUserRepository) Create(ctx context.Context, profile *models.UserProfile) error {
	if profile.ID == "" {
		return errors.New("profile ID cannot be empty for Create operation")
	}
	_, err := r.client.Collection(usersCollection).Doc(profile.ID).Create(ctx, profile)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("user profile '%s' already exists: %w", profile.ID, err)
		}
		return fmt.Errorf("failed to create user profile '%s': %w", profile.ID, err)
	}
	return nil
}

// GetByID retrieves a user document by its ID (Firebase Auth UID).
func (r *firestoreUserRepository) GetByID(ctx context.Context, uid string) (*models.UserProfile, error) {
	if uid == "" {
		return nil, errors.New("uid cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("user profile '%s' not found: %w", uid, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user profile '%s': %w", uid, err)
	}

	var profile models.UserProfile
	if err := docSnap.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode user profile '%s': %w", uid, err)
	}
	profile.ID = docSnap.Ref.ID

	return &profile, nil
}

// UpdateFields applies a partial update touching only the named fields,
// so the phone-verification sync never clobbers concurrent profile edits
// to unrelated fields.
func (r *firestoreUserRepository) UpdateFields(ctx context.Context, uid string, fields map[string]interface{}) error {
	if uid == "" {
		return errors.New("uid cannot be empty for UpdateFields operation")
	}
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	_, err := r.client.Collection(usersCollection).Doc(uid).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("user profile '%s' not found: %w", uid, ErrNotFound)
		}
		return fmt.Errorf("failed to update user profile '%s': %w", uid, err)
	}
	return nil
}

// ListWorkersByPincode returns the user documents with role=worker in the
// given pincode.
func (r *firestoreUserRepository) ListWorkersByPincode(ctx context.Context, pincode string) ([]*models.UserProfile, error) {
	query := r.client.Collection(usersCollection).
		Where("pincode", "==", pincode).
		Where("role", "==", string(models.RoleWorker))
	return r.collect(ctx, query.Documents(ctx))
}

// ListByIDs returns the user documents with the given IDs, additionally
// restricted by pincode when pincode is non-empty. IDs are chunked to stay
// within Firestore's "in" clause limit.
func (r *firestoreUserRepository) ListByIDs(ctx context.Context, ids []string, pincode string) ([]*models.UserProfile, error) {
	var out []*models.UserProfile
	coll := r.client.Collection(usersCollection)
	for _, chunk := range chunkIDs(ids) {
		refs := make([]*firestore.DocumentRef, 0, len(chunk))
		for _, id := range chunk {
			refs = append(refs, coll.Doc(id))
		}
		query := coll.Where(firestore.DocumentID, "in", refs)
		if pincode != "" {
			query = query.Where("pincode", "==", pincode)
		}
		profiles, err := r.collect(ctx, query.Documents(ctx))
		if err != nil {
			return nil, err
		}
		out = append(out, profiles...)
	}
	return out, nil
}

func (r *firestoreUserRepository) collect(ctx context.Context, iter *firestore.DocumentIterator) ([]*models.UserProfile, error) {
	defer iter.Stop()
	var profiles []*models.UserProfile
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate user profiles: %w", err)
		}
		var profile models.UserProfile
		if err := doc.DataTo(&profile); err != nil {
			return nil, fmt.Errorf("failed to decode user profile '%s': %w", doc.Ref.ID, err)
		}
		profile.ID = doc.Ref.ID
		profiles = append(profiles, &profile)
	}
	return profiles, nil
}
