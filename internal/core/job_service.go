package core

import (
	"context"
	"errors"

	"github.com/saathiconnect/saathi-backend/internal/db"
	"github.com/saathiconnect/saathi-backend/internal/models"
)

var (
	// ErrJobNotFound is returned when a job does not exist.
	ErrJobNotFound = errors.New("job not found")
	// ErrForbidden is returned when the caller does not own the resource
	// an operation requires ownership of.
	ErrForbidden = errors.New("forbidden")
)

// jobService implements the JobService interface.
type jobService struct {
	jobs db.JobRepository
}

// NewJobService creates a new JobService instance.
func NewJobService(jobs db.JobRepository) JobService {
	return &jobService{jobs: jobs}
}

// Post creates an open board job attributed to the calling citizen.
func (s *jobService) Post(ctx context.Context, session *models.Session, req models.PostJobRequest) (*models.Job, error) {
	job := &models.Job{
		PostedBy:     session.Identity.UID,
		PostedByName: session.Identity.DisplayName,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Budget:       req.Budget,
		Location:     req.Location,
		Status:       models.JobOpen,
	}
	if _, err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Find lists board jobs newest first with optional pincode/category filters.
func (s *jobService) Find(ctx context.Context, pincode, category string) ([]*models.Job, error) {
	return s.jobs.Find(ctx, pincode, category)
}

// ListForOwner returns the citizen's own postings.
func (s *jobService) ListForOwner(ctx context.Context, ownerID string) ([]*models.Job, error) {
	return s.jobs.ListByOwner(ctx, ownerID)
}

// GetForOwner returns a job only to its poster.
func (s *jobService) GetForOwner(ctx context.Context, ownerID, jobID string) (*models.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	if job.PostedBy != ownerID {
		return nil, ErrForbidden
	}
	return job, nil
}

// ToggleStatus flips a job between open and closed. Owner only.
func (s *jobService) ToggleStatus(ctx context.Context, ownerID, jobID string) (models.JobStatus, error) {
	job, err := s.GetForOwner(ctx, ownerID, jobID)
	if err != nil {
		return "", err
	}
	newStatus := models.JobClosed
	if job.Status == models.JobClosed {
		newStatus = models.JobOpen
	}
	if err := s.jobs.UpdateStatus(ctx, jobID, newStatus); err != nil {
		return "", err
	}
	return newStatus, nil
}

// Delete removes a job. Owner only.
func (s *jobService) Delete(ctx context.Context, ownerID, jobID string) error {
	if _, err := s.GetForOwner(ctx, ownerID, jobID); err != nil {
		return err
	}
	return s.jobs.Delete(ctx, jobID)
}
