package core

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"

	"github.com/saathiconnect/saathi-backend/internal/models"
)

// firebaseIdentity adapts the Firebase Auth client to the small identity
// interfaces the services depend on, so tests can substitute fakes.
type firebaseIdentity struct {
	client *auth.Client
}

// NewFirebaseIdentity wraps a Firebase Auth client as TokenVerifier,
// IdentityProvider and IdentityAdmin.
func NewFirebaseIdentity(client *auth.Client) *firebaseIdentity {
	return &firebaseIdentity{client: client}
}

// VerifyToken checks a Firebase ID token and returns the caller's UID.
func (f *firebaseIdentity) VerifyToken(ctx context.Context, idToken string) (string, error) {
	token, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("failed to verify ID token: %w", err)
	}
	return token.UID, nil
}

// GetUser loads the identity record for a UID. A phone number on a Firebase
// user record is always device-verified, so its presence doubles as the
// verified flag.
func (f *firebaseIdentity) GetUser(ctx context.Context, uid string) (*models.Identity, error) {
	user, err := f.client.GetUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to get identity '%s': %w", uid, err)
	}
	return &models.Identity{
		UID:           user.UID,
		Email:         user.Email,
		DisplayName:   user.DisplayName,
		PhotoURL:      user.PhotoURL,
		Phone:         user.PhoneNumber,
		PhoneVerified: user.PhoneNumber != "",
	}, nil
}

// CreateUser creates a fresh identity and returns its UID.
func (f *firebaseIdentity) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)
	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to create identity: %w", err)
	}
	return user.UID, nil
}

// RevokeSessions invalidates all refresh tokens for a UID.
func (f *firebaseIdentity) RevokeSessions(ctx context.Context, uid string) error {
	if err := f.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return fmt.Errorf("failed to revoke sessions for '%s': %w", uid, err)
	}
	return nil
}
