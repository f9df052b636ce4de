package core

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/saathiconnect/saathi-backend/internal/db"
	"github.com/saathiconnect/saathi-backend/internal/models"
)

// ErrIntentNotFound is returned when a retry names an unknown intent.
var ErrIntentNotFound = errors.New("completion intent not found")

// ReviewPendingError reports that the status write of a completion
// succeeded but the review write did not. The completion is not rolled
// back; the caller retries the review against the named intent.
type ReviewPendingError struct {
	IntentID string
	Err      error
}

func (e *ReviewPendingError) Error() string {
	return fmt.Sprintf("completed but review write failed (intent %s): %v", e.IntentID, e.Err)
}

func (e *ReviewPendingError) Unwrap() error { return e.Err }

// completionService implements the CompletionService interface. Each
// completion runs as a small saga: persist an intent, flip the target's
// status, write the review, mark the intent fulfilled. A crash or write
// failure between the status and review steps leaves an intent that
// RetryReview can finish.
type completionService struct {
	intents      db.IntentRepository
	invites      db.InviteRepository
	jobs         db.JobRepository
	applications db.ApplicationRepository
	reviews      db.ReviewRepository
	logger       *zap.Logger
}

// NewCompletionService creates a new CompletionService instance.
func NewCompletionService(intents db.IntentRepository, invites db.InviteRepository, jobs db.JobRepository, applications db.ApplicationRepository, reviews db.ReviewRepository, logger *zap.Logger) CompletionService {
	return &completionService{
		intents:      intents,
		invites:      invites,
		jobs:         jobs,
		applications: applications,
		reviews:      reviews,
		logger:       logger,
	}
}

// CompleteInvite marks an accepted invite as completed and records the
// citizen's review of the worker.
func (s *completionService) CompleteInvite(ctx context.Context, session *models.Session, inviteID string, review models.ReviewRequest) error {
	invite, err := s.invites.GetByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrInviteNotFound
		}
		return err
	}
	if invite.CitizenID != session.Identity.UID {
		return ErrForbidden
	}
	if invite.Status != models.InviteAccepted {
		return fmt.Errorf("%w: invite is %s", ErrInvalidTransition, invite.Status)
	}

	intent := &models.CompletionIntent{
		Kind:        models.IntentInvite,
		TargetID:    inviteID,
		JobID:       inviteID,
		WorkerID:    invite.WorkerID,
		CitizenID:   session.Identity.UID,
		CitizenName: session.Identity.DisplayName,
		Stage:       models.IntentPending,
	}
	intentID, err := s.intents.Create(ctx, intent)
	if err != nil {
		return err
	}

	if err := s.invites.UpdateStatus(ctx, inviteID, models.InviteCompleted); err != nil {
		return err
	}
	return s.finish(ctx, intentID, intent, review)
}

// CompleteJob closes an open job for its accepted worker and records the
// citizen's review of that worker.
func (s *completionService) CompleteJob(ctx context.Context, session *models.Session, jobID, workerID string, review models.ReviewRequest) error {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrJobNotFound
		}
		return err
	}
	if job.PostedBy != session.Identity.UID {
		return ErrForbidden
	}
	if job.Status != models.JobOpen {
		return fmt.Errorf("%w: job is %s", ErrInvalidTransition, job.Status)
	}

	accepted, err := s.applications.ListByJobAndStatus(ctx, jobID, models.ApplicationAccepted)
	if err != nil {
		return err
	}
	hired := false
	for _, app := range accepted {
		if app.WorkerID == workerID {
			hired = true
			break
		}
	}
	if !hired {
		return fmt.Errorf("%w: worker was not accepted for this job", ErrInvalidTransition)
	}

	intent := &models.CompletionIntent{
		Kind:        models.IntentJob,
		TargetID:    jobID,
		JobID:       jobID,
		WorkerID:    workerID,
		CitizenID:   session.Identity.UID,
		CitizenName: session.Identity.DisplayName,
		Stage:       models.IntentPending,
	}
	intentID, err := s.intents.Create(ctx, intent)
	if err != nil {
		return err
	}

	if err := s.jobs.UpdateStatus(ctx, jobID, models.JobClosed); err != nil {
		return err
	}
	return s.finish(ctx, intentID, intent, review)
}

// finish advances a pending intent through statusDone to fulfilled,
// writing the review in between.
func (s *completionService) finish(ctx context.Context, intentID string, intent *models.CompletionIntent, review models.ReviewRequest) error {
	if err := s.intents.UpdateStage(ctx, intentID, models.IntentStatusDone); err != nil {
		// The status write already landed; the intent stays at pending and
		// RetryReview recovers it from there.
		s.logger.Error("failed to record completion progress", zap.String("intentID", intentID), zap.Error(err))
		return &ReviewPendingError{IntentID: intentID, Err: err}
	}

	if err := s.writeReview(ctx, intent, review); err != nil {
		s.logger.Error("review write failed after completion", zap.String("intentID", intentID), zap.Error(err))
		return &ReviewPendingError{IntentID: intentID, Err: err}
	}

	if err := s.intents.UpdateStage(ctx, intentID, models.IntentFulfilled); err != nil {
		// Review landed; a stale statusDone intent only risks a duplicate
		// review attempt, which RetryReview deduplicates.
		s.logger.Warn("intent left unfulfilled after successful review", zap.String("intentID", intentID), zap.Error(err))
	}
	return nil
}

// RetryReview finishes the review step of an intent whose status write
// succeeded earlier. A pending intent is accepted too, provided the
// target's status write actually landed: that is the state finish leaves
// behind when the statusDone stage write itself failed.
func (s *completionService) RetryReview(ctx context.Context, citizenID, intentID string, review models.ReviewRequest) error {
	intent, err := s.intents.GetByID(ctx, intentID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrIntentNotFound
		}
		return err
	}
	if intent.CitizenID != citizenID {
		return ErrForbidden
	}
	switch intent.Stage {
	case models.IntentStatusDone:
	case models.IntentPending:
		landed, err := s.statusLanded(ctx, intent)
		if err != nil {
			return err
		}
		if !landed {
			return fmt.Errorf("%w: completion never landed", ErrInvalidTransition)
		}
		if err := s.intents.UpdateStage(ctx, intentID, models.IntentStatusDone); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: intent is %s", ErrInvalidTransition, intent.Stage)
	}

	exists, err := s.reviews.Exists(ctx, intent.JobID, intent.WorkerID)
	if err != nil {
		return err
	}
	if !exists {
		if err := s.writeReview(ctx, intent, review); err != nil {
			return &ReviewPendingError{IntentID: intentID, Err: err}
		}
	}
	return s.intents.UpdateStage(ctx, intentID, models.IntentFulfilled)
}

// ListPending returns the citizen's completions still owing a review.
// Pending-stage intents count only when their status write landed;
// anything else is an aborted completion, not an owed review.
func (s *completionService) ListPending(ctx context.Context, citizenID string) ([]*models.CompletionIntent, error) {
	intents, err := s.intents.ListUnfulfilledForCitizen(ctx, citizenID)
	if err != nil {
		return nil, err
	}
	owed := make([]*models.CompletionIntent, 0, len(intents))
	for _, intent := range intents {
		if intent.Stage == models.IntentPending {
			landed, err := s.statusLanded(ctx, intent)
			if err != nil {
				s.logger.Warn("could not verify completion intent", zap.String("intentID", intent.ID), zap.Error(err))
				continue
			}
			if !landed {
				continue
			}
		}
		owed = append(owed, intent)
	}
	return owed, nil
}

// statusLanded reports whether the intent's target reached its completed
// status. A missing target counts as not landed.
func (s *completionService) statusLanded(ctx context.Context, intent *models.CompletionIntent) (bool, error) {
	switch intent.Kind {
	case models.IntentInvite:
		invite, err := s.invites.GetByID(ctx, intent.TargetID)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return false, nil
			}
			return false, err
		}
		return invite.Status == models.InviteCompleted, nil
	case models.IntentJob:
		job, err := s.jobs.GetByID(ctx, intent.TargetID)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return false, nil
			}
			return false, err
		}
		return job.Status == models.JobClosed, nil
	}
	return false, nil
}

func (s *completionService) writeReview(ctx context.Context, intent *models.CompletionIntent, review models.ReviewRequest) error {
	_, err := s.reviews.Create(ctx, &models.Review{
		JobID:        intent.JobID,
		WorkerID:     intent.WorkerID,
		CitizenID:    intent.CitizenID,
		ReviewerName: intent.CitizenName,
		Rating:       review.Rating,
		Comment:      review.Comment,
	})
	return err
}
