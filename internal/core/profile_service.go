package core

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/saathiconnect/saathi-backend/internal/db"
	"github.com/saathiconnect/saathi-backend/internal/models"
)

var (
	// ErrProfileExists is returned when onboarding runs for an identity
	// that already has a profile document.
	ErrProfileExists = errors.New("profile already exists")
	// ErrInvalidRole is returned for a role outside {citizen, worker}.
	ErrInvalidRole = errors.New("invalid role")
	// ErrInvalidPincode is returned for a pincode that is not 6 digits.
	ErrInvalidPincode = errors.New("pincode must be 6 digits")
	// ErrNotWorker is returned for worker-only operations on a citizen.
	ErrNotWorker = errors.New("profile is not a worker")
)

var pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)

// profileService implements the ProfileService interface.
type profileService struct {
	users   db.UserRepository
	workers db.WorkerRepository
	photos  db.PhotoStore
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(users db.UserRepository, workers db.WorkerRepository, photos db.PhotoStore) ProfileService {
	return &profileService{users: users, workers: workers, photos: photos}
}

// CompleteOnboarding creates the profile document under the identity's UID
// and, for workers, the worker document sharing the same ID with the
// onboarding defaults.
func (s *profileService) CompleteOnboarding(ctx context.Context, identity *models.Identity, role models.Role, pincode string) (*models.Profile, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	if !pincodePattern.MatchString(pincode) {
		return nil, ErrInvalidPincode
	}

	if _, err := s.users.GetByID(ctx, identity.UID); err == nil {
		return nil, ErrProfileExists
	} else if !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}

	userProfile := &models.UserProfile{
		ID:          identity.UID,
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
		Role:        role,
		Pincode:     pincode,
	}
	if err := s.users.Create(ctx, userProfile); err != nil {
		return nil, err
	}

	profile := &models.Profile{UserProfile: *userProfile}

	if role == models.RoleWorker {
		worker := &models.WorkerProfile{
			ID:           identity.UID,
			Category:     models.DefaultWorkerCategory,
			Experience:   0,
			DailyRateMin: 0,
			DailyRateMax: 0,
			Bio:          "",
			IsAvailable:  true,
		}
		if err := s.workers.Create(ctx, identity.UID, worker); err != nil {
			return nil, err
		}
		profile.Worker = worker
	}

	return profile, nil
}

// Update edits the caller's profile. Common fields land on the users
// document; worker fields land on the workers document, creating it if
// absent.
func (s *profileService) Update(ctx context.Context, session *models.Session, req models.UpdateProfileRequest) error {
	uid := session.Identity.UID

	userFields := make(map[string]interface{})
	if req.PhotoURL != nil {
		userFields["photoURL"] = *req.PhotoURL
	}
	if req.Phone != nil {
		userFields["phone"] = *req.Phone
	}
	if len(userFields) > 0 {
		if err := s.users.UpdateFields(ctx, uid, userFields); err != nil {
			return err
		}
	}

	if session.Profile.Role != models.RoleWorker {
		return nil
	}

	workerFields := make(map[string]interface{})
	if req.Category != nil {
		workerFields["category"] = *req.Category
	}
	if req.Experience != nil {
		workerFields["experience"] = *req.Experience
	}
	if req.Languages != nil {
		workerFields["languages"] = req.Languages
	}
	if req.ServiceArea != nil {
		workerFields["serviceArea"] = req.ServiceArea
	}
	if req.DailyRateMin != nil {
		workerFields["dailyRateMin"] = *req.DailyRateMin
	}
	if req.DailyRateMax != nil {
		workerFields["dailyRateMax"] = *req.DailyRateMax
	}
	if req.Bio != nil {
		workerFields["bio"] = *req.Bio
	}
	if len(workerFields) == 0 {
		return nil
	}

	err := s.workers.UpdateFields(ctx, uid, workerFields)
	if errors.Is(err, db.ErrNotFound) {
		// The worker document can be legitimately absent; create it from
		// the edit instead of failing.
		worker := &models.WorkerProfile{
			ID:          uid,
			Category:    models.DefaultWorkerCategory,
			IsAvailable: true,
		}
		applyWorkerFields(worker, req)
		return s.workers.Create(ctx, uid, worker)
	}
	return err
}

func applyWorkerFields(worker *models.WorkerProfile, req models.UpdateProfileRequest) {
	if req.Category != nil {
		worker.Category = *req.Category
	}
	if req.Experience != nil {
		worker.Experience = *req.Experience
	}
	if req.Languages != nil {
		worker.Languages = req.Languages
	}
	if req.ServiceArea != nil {
		worker.ServiceArea = req.ServiceArea
	}
	if req.DailyRateMin != nil {
		worker.DailyRateMin = *req.DailyRateMin
	}
	if req.DailyRateMax != nil {
		worker.DailyRateMax = *req.DailyRateMax
	}
	if req.Bio != nil {
		worker.Bio = *req.Bio
	}
}

// UploadPhoto stores the photo and points the profile at its view URL.
func (s *profileService) UploadPhoto(ctx context.Context, uid string, data []byte, contentType string) (string, error) {
	url, err := s.photos.Save(ctx, data, contentType)
	if err != nil {
		return "", err
	}
	if err := s.users.UpdateFields(ctx, uid, map[string]interface{}{"photoURL": url}); err != nil {
		return "", err
	}
	return url, nil
}

// SetAvailability toggles the worker's availability flag.
func (s *profileService) SetAvailability(ctx context.Context, uid string, available bool) error {
	err := s.workers.UpdateFields(ctx, uid, map[string]interface{}{"isAvailable": available})
	if errors.Is(err, db.ErrNotFound) {
		return ErrNotWorker
	}
	return err
}
