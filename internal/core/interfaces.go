package core

import (
	"context"

	"github.com/saathiconnect/saathi-backend/internal/models"
)

// TokenVerifier checks a bearer ID token and returns the caller's UID.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, idToken string) (string, error)
}

// IdentityProvider reads identity records from the authentication subsystem.
type IdentityProvider interface {
	GetUser(ctx context.Context, uid string) (*models.Identity, error)
}

// IdentityAdmin performs privileged identity operations.
type IdentityAdmin interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	RevokeSessions(ctx context.Context, uid string) error
}

// SessionService resolves "who is logged in and what is their domain
// profile" for the rest of the application.
type SessionService interface {
	// Resolve returns nil when the caller cannot be identified (anonymous);
	// identity-resolution failure and "no session" are deliberately
	// indistinguishable. A session with a nil Profile means authenticated
	// but onboarding incomplete.
	Resolve(ctx context.Context, uid string) *models.Session
}

// AuthService owns login, signup and logout against the identity platform.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.AuthTokens, error)
	Signup(ctx context.Context, email, password, name string) (*models.AuthTokens, error)
	Logout(ctx context.Context, uid string) error
}

// ProfileService owns onboarding and profile edits.
type ProfileService interface {
	CompleteOnboarding(ctx context.Context, identity *models.Identity, role models.Role, pincode string) (*models.Profile, error)
	Update(ctx context.Context, session *models.Session, req models.UpdateProfileRequest) error
	UploadPhoto(ctx context.Context, uid string, data []byte, contentType string) (string, error)
	SetAvailability(ctx context.Context, uid string, available bool) error
}

// SearchService joins the two denormalized profile collections into a
// merged worker list.
type SearchService interface {
	// SearchWorkers applies the optional pincode and category filters.
	// Query failures yield an empty result, not a distinguishable error.
	SearchWorkers(ctx context.Context, pincode, category string) []*models.Profile
}

// JobService owns the open job board.
type JobService interface {
	Post(ctx context.Context, session *models.Session, req models.PostJobRequest) (*models.Job, error)
	Find(ctx context.Context, pincode, category string) ([]*models.Job, error)
	ListForOwner(ctx context.Context, ownerID string) ([]*models.Job, error)
	GetForOwner(ctx context.Context, ownerID, jobID string) (*models.Job, error)
	ToggleStatus(ctx context.Context, ownerID, jobID string) (models.JobStatus, error)
	Delete(ctx context.Context, ownerID, jobID string) error
}

// ApplicationService owns worker applications to board jobs.
type ApplicationService interface {
	Apply(ctx context.Context, session *models.Session, jobID string) (*models.Application, error)
	ListForJob(ctx context.Context, callerID, jobID string) ([]*models.Application, error)
	ListForWorker(ctx context.Context, workerID string) ([]*models.Application, error)
	SetStatus(ctx context.Context, callerID, appID string, status models.ApplicationStatus) error
}

// InviteService owns direct citizen-to-worker offers.
type InviteService interface {
	Create(ctx context.Context, session *models.Session, req models.OfferRequest) (*models.Invite, error)
	ListForWorker(ctx context.Context, workerID string) ([]*models.Invite, error)
	ListActiveForCitizen(ctx context.Context, citizenID string) ([]*models.Invite, error)
	ListCompleted(ctx context.Context, session *models.Session) ([]*models.Invite, error)
	ListScheduled(ctx context.Context, session *models.Session) ([]*models.Invite, error)
	Respond(ctx context.Context, workerID, inviteID string, status models.InviteStatus) error
}

// CompletionService wraps the two-step close-then-review flows in a
// persisted intent so a failed review write stays retryable.
type CompletionService interface {
	CompleteInvite(ctx context.Context, session *models.Session, inviteID string, review models.ReviewRequest) error
	CompleteJob(ctx context.Context, session *models.Session, jobID, workerID string, review models.ReviewRequest) error
	RetryReview(ctx context.Context, citizenID, intentID string, review models.ReviewRequest) error
	ListPending(ctx context.Context, citizenID string) ([]*models.CompletionIntent, error)
}

// ReviewService reads worker reviews.
type ReviewService interface {
	ListForWorker(ctx context.Context, workerID string) ([]*models.Review, error)
	HasReview(ctx context.Context, jobID, workerID string) (bool, error)
}
