package core

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/saathiconnect/saathi-backend/internal/db"
	"github.com/saathiconnect/saathi-backend/internal/models"
)

// sessionService implements the SessionService interface.
type sessionService struct {
	identity IdentityProvider
	users    db.UserRepository
	workers  db.WorkerRepository
	logger   *zap.Logger
}

// NewSessionService creates a new SessionService instance.
func NewSessionService(identity IdentityProvider, users db.UserRepository, workers db.WorkerRepository, logger *zap.Logger) SessionService {
	return &sessionService{
		identity: identity,
		users:    users,
		workers:  workers,
		logger:   logger,
	}
}

// Resolve loads the identity record and the domain profile for a UID and
// reconciles the denormalized phone-verification state between the two
// stores. Identity failure of any kind resolves to anonymous.
func (s *sessionService) Resolve(ctx context.Context, uid string) *models.Session {
	identity, err := s.identity.GetUser(ctx, uid)
	if err != nil {
		s.logger.Debug("identity resolution failed, treating caller as anonymous",
			zap.String("uid", uid), zap.Error(err))
		return nil
	}

	session := &models.Session{Identity: identity}

	userProfile, err := s.users.GetByID(ctx, uid)
	if err != nil {
		// No profile document means onboarding is incomplete; anything else
		// is logged but degrades the same way the original client did.
		if !errors.Is(err, db.ErrNotFound) {
			s.logger.Warn("failed to load user profile", zap.String("uid", uid), zap.Error(err))
		}
		return session
	}

	profile := &models.Profile{UserProfile: *userProfile}

	if userProfile.Role == models.RoleWorker {
		worker, err := s.workers.GetByID(ctx, uid)
		if err != nil {
			if !errors.Is(err, db.ErrNotFound) {
				s.logger.Warn("failed to load worker profile", zap.String("uid", uid), zap.Error(err))
			}
			// Absent worker document is an expected state; the merged
			// profile simply lacks worker-specific fields.
		} else {
			profile.Worker = worker
		}
	}

	s.syncPhoneVerification(ctx, identity, profile)

	session.Profile = profile
	return session
}

// syncPhoneVerification converges the identity subsystem's device-verified
// phone state into the profile document. It runs on every resolution and is
// idempotent: with already-synced data it issues no write.
func (s *sessionService) syncPhoneVerification(ctx context.Context, identity *models.Identity, profile *models.Profile) {
	switch {
	case identity.PhoneVerified && !profile.PhoneVerified:
		fields := map[string]interface{}{"phoneVerified": true}
		if identity.Phone != "" {
			fields["phone"] = identity.Phone
		}
		if err := s.users.UpdateFields(ctx, profile.ID, fields); err != nil {
			s.logger.Warn("failed to sync phone verification to profile",
				zap.String("uid", profile.ID), zap.Error(err))
			return
		}
		profile.PhoneVerified = true
		if identity.Phone != "" {
			profile.Phone = identity.Phone
		}
	case identity.Phone != "" && profile.Phone == "":
		// Copy the number across without altering the verified flag.
		if err := s.users.UpdateFields(ctx, profile.ID, map[string]interface{}{"phone": identity.Phone}); err != nil {
			s.logger.Warn("failed to sync phone number to profile",
				zap.String("uid", profile.ID), zap.Error(err))
			return
		}
		profile.Phone = identity.Phone
	}
}
