package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/saathiconnect/saathi-backend/internal/db"
	"github.com/saathiconnect/saathi-backend/internal/models"
)

var (
	// ErrAlreadyApplied is returned when the worker already has an
	// application for the job.
	ErrAlreadyApplied = errors.New("already applied to this job")
	// ErrApplicationNotFound is returned when an application does not exist.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrInvalidTransition is returned for a status change the lifecycle
	// does not allow.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// applicationService implements the ApplicationService interface.
type applicationService struct {
	applications db.ApplicationRepository
	jobs         db.JobRepository
}

// NewApplicationService creates a new ApplicationService instance.
func NewApplicationService(applications db.ApplicationRepository, jobs db.JobRepository) ApplicationService {
	return &applicationService{applications: applications, jobs: jobs}
}

// Apply submits the calling worker's application for a board job,
// denormalizing the job and worker display fields. One application per
// (job, worker) pair.
func (s *applicationService) Apply(ctx context.Context, session *models.Session, jobID string) (*models.Application, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	exists, err := s.applications.Exists(ctx, jobID, session.Identity.UID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing application: %w", err)
	}
	if exists {
		return nil, ErrAlreadyApplied
	}

	workerPhone := session.Profile.Phone
	if workerPhone == "" {
		workerPhone = "Not provided"
	}
	app := &models.Application{
		JobID:       jobID,
		WorkerID:    session.Identity.UID,
		Status:      models.ApplicationPending,
		JobTitle:    job.Title,
		JobLocation: job.Location,
		WorkerName:  session.Identity.DisplayName,
		WorkerPhone: workerPhone,
	}
	if _, err := s.applications.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// ListForJob returns a job's applications to its poster only.
func (s *applicationService) ListForJob(ctx context.Context, callerID, jobID string) ([]*models.Application, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	if job.PostedBy != callerID {
		return nil, ErrForbidden
	}
	return s.applications.ListByJob(ctx, jobID)
}

// ListForWorker returns the worker's own applications.
func (s *applicationService) ListForWorker(ctx context.Context, workerID string) ([]*models.Application, error) {
	return s.applications.ListByWorker(ctx, workerID)
}

// SetStatus decides a pending application. Only the job owner decides, and
// only pending -> accepted | rejected is allowed.
func (s *applicationService) SetStatus(ctx context.Context, callerID, appID string, status models.ApplicationStatus) error {
	if status != models.ApplicationAccepted && status != models.ApplicationRejected {
		return fmt.Errorf("%w: %q", ErrInvalidTransition, status)
	}

	app, err := s.applications.GetByID(ctx, appID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrApplicationNotFound
		}
		return err
	}
	if app.Status != models.ApplicationPending {
		return fmt.Errorf("%w: application is %s", ErrInvalidTransition, app.Status)
	}

	job, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrJobNotFound
		}
		return err
	}
	if job.PostedBy != callerID {
		return ErrForbidden
	}

	return s.applications.UpdateStatus(ctx, appID, status)
}
