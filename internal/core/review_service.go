package core

import (
	"context"

	"github.com/saathiconnect/saathi-backend/internal/db"
	"github.com/saathiconnect/saathi-backend/internal/models"
)

// reviewService implements the ReviewService interface.
type reviewService struct {
	reviews db.ReviewRepository
}

// NewReviewService creates a new ReviewService instance.
func NewReviewService(reviews db.ReviewRepository) ReviewService {
	return &reviewService{reviews: reviews}
}

// ListForWorker returns a worker's reviews newest first.
func (s *reviewService) ListForWorker(ctx context.Context, workerID string) ([]*models.Review, error) {
	return s.reviews.ListByWorker(ctx, workerID)
}

// HasReview reports whether the (job, worker) pair already has a review.
func (s *reviewService) HasReview(ctx context.Context, jobID, workerID string) (bool, error) {
	return s.reviews.Exists(ctx, jobID, workerID)
}
