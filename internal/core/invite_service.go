package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/saathiconnect/saathi-backend/internal/db"
	"github.com/saathiconnect/saathi-backend/internal/models"
)

var (
	// ErrInviteNotFound is returned when an invite does not exist.
	ErrInviteNotFound = errors.New("invite not found")
	// ErrWorkerNotFound is returned when the offer target has no profile.
	ErrWorkerNotFound = errors.New("worker not found")
)

// inviteService implements the InviteService interface.
type inviteService struct {
	invites db.InviteRepository
	users   db.UserRepository
}

// NewInviteService creates a new InviteService instance.
func NewInviteService(invites db.InviteRepository, users db.UserRepository) InviteService {
	return &inviteService{invites: invites, users: users}
}

// Create sends a direct offer from the calling citizen to a worker. Contact
// phones for both parties are denormalized from their profile documents so
// the two can call each other once the offer is accepted.
func (s *inviteService) Create(ctx context.Context, session *models.Session, req models.OfferRequest) (*models.Invite, error) {
	workerUser, err := s.users.GetByID(ctx, req.WorkerID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}

	workType := req.WorkType
	customWorkType := ""
	if req.WorkType == models.DefaultWorkerCategory && req.CustomWorkType != "" {
		workType = req.CustomWorkType
		customWorkType = req.CustomWorkType
	}

	invite := &models.Invite{
		CitizenID:      session.Identity.UID,
		CitizenName:    session.Identity.DisplayName,
		CitizenPhone:   session.Profile.Phone,
		WorkerID:       req.WorkerID,
		WorkerPhone:    workerUser.Phone,
		WorkType:       workType,
		CustomWorkType: customWorkType,
		Price:          req.Price,
		Date:           req.Date,
		Description:    req.Description,
		Status:         models.InvitePending,
	}
	if _, err := s.invites.Create(ctx, invite); err != nil {
		return nil, err
	}
	return invite, nil
}

// ListForWorker returns the worker's received invites newest first.
func (s *inviteService) ListForWorker(ctx context.Context, workerID string) ([]*models.Invite, error) {
	return s.invites.ListForWorker(ctx, workerID)
}

// ListActiveForCitizen returns the citizen's sent offers not yet completed.
func (s *inviteService) ListActiveForCitizen(ctx context.Context, citizenID string) ([]*models.Invite, error) {
	return s.invites.ListActiveForCitizen(ctx, citizenID)
}

// ListCompleted returns finished work, from whichever side the caller is on.
func (s *inviteService) ListCompleted(ctx context.Context, session *models.Session) ([]*models.Invite, error) {
	if session.Profile.Role == models.RoleWorker {
		return s.invites.ListForWorkerByStatus(ctx, session.Identity.UID, models.InviteCompleted)
	}
	return s.invites.ListForCitizenByStatus(ctx, session.Identity.UID, models.InviteCompleted)
}

// ListScheduled returns accepted invites, from whichever side the caller is on.
func (s *inviteService) ListScheduled(ctx context.Context, session *models.Session) ([]*models.Invite, error) {
	if session.Profile.Role == models.RoleWorker {
		return s.invites.ListForWorkerByStatus(ctx, session.Identity.UID, models.InviteAccepted)
	}
	return s.invites.ListForCitizenByStatus(ctx, session.Identity.UID, models.InviteAccepted)
}

// Respond lets the invited worker accept or reject a pending offer. The
// lifecycle is monotonic: completed is terminal and decided offers cannot
// be re-decided.
func (s *inviteService) Respond(ctx context.Context, workerID, inviteID string, status models.InviteStatus) error {
	if status != models.InviteAccepted && status != models.InviteRejected {
		return fmt.Errorf("%w: %q", ErrInvalidTransition, status)
	}

	invite, err := s.invites.GetByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrInviteNotFound
		}
		return err
	}
	if invite.WorkerID != workerID {
		return ErrForbidden
	}
	if invite.Status != models.InvitePending {
		return fmt.Errorf("%w: invite is %s", ErrInvalidTransition, invite.Status)
	}

	return s.invites.UpdateStatus(ctx, inviteID, status)
}
