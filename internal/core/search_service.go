package core

import (
	"context"

	"go.uber.org/zap"

	"github.com/saathiconnect/saathi-backend/internal/db"
	"github.com/saathiconnect/saathi-backend/internal/models"
)

// searchService implements the SearchService interface. The users and
// workers collections are denormalized halves of one worker record with no
// native cross-collection query, so the filter pair is resolved with two
// sequential queries and an in-memory inner join.
type searchService struct {
	users   db.UserRepository
	workers db.WorkerRepository
	logger  *zap.Logger
}

// NewSearchService creates a new SearchService instance.
func NewSearchService(users db.UserRepository, workers db.WorkerRepository, logger *zap.Logger) SearchService {
	return &searchService{users: users, workers: workers, logger: logger}
}

// SearchWorkers resolves the (pincode, category) filter pair. Four mutually
// exclusive cases decide which collection is queried first; an empty first
// result set short-circuits without issuing the second query. Any query
// error yields an empty result.
func (s *searchService) SearchWorkers(ctx context.Context, pincode, category string) []*models.Profile {
	var userDocs []*models.UserProfile
	var workerDocs []*models.WorkerProfile
	var err error

	switch {
	case category != "":
		// Category first (workers collection), then the profile query,
		// additionally restricted by pincode when both filters are present.
		workerDocs, err = s.workers.ListByCategory(ctx, category)
		if err != nil {
			s.logger.Warn("worker search failed", zap.String("category", category), zap.Error(err))
			return nil
		}
		if len(workerDocs) == 0 {
			return nil
		}
		userDocs, err = s.users.ListByIDs(ctx, collectWorkerIDs(workerDocs), pincode)

	case pincode != "":
		// Pincode first (users collection, role=worker), then the worker query.
		userDocs, err = s.users.ListWorkersByPincode(ctx, pincode)
		if err != nil {
			s.logger.Warn("worker search failed", zap.String("pincode", pincode), zap.Error(err))
			return nil
		}
		if len(userDocs) == 0 {
			return nil
		}
		workerDocs, err = s.workers.ListByIDs(ctx, collectUserIDs(userDocs))

	default:
		// No filters: list every worker document, then their profiles.
		workerDocs, err = s.workers.ListAll(ctx)
		if err != nil {
			s.logger.Warn("worker search failed", zap.Error(err))
			return nil
		}
		if len(workerDocs) == 0 {
			return nil
		}
		userDocs, err = s.users.ListByIDs(ctx, collectWorkerIDs(workerDocs), "")
	}
	if err != nil {
		s.logger.Warn("worker search failed on second query", zap.Error(err))
		return nil
	}

	return innerJoin(userDocs, workerDocs)
}

// innerJoin merges the two document sets by shared ID. A worker appears in
// the result only if both halves exist. Order follows userDocs, the set
// returned by whichever query executed second in the category-first paths;
// no further sort is imposed.
func innerJoin(userDocs []*models.UserProfile, workerDocs []*models.WorkerProfile) []*models.Profile {
	workersByID := make(map[string]*models.WorkerProfile, len(workerDocs))
	for _, w := range workerDocs {
		workersByID[w.ID] = w
	}

	var merged []*models.Profile
	for _, u := range userDocs {
		w, found := workersByID[u.ID]
		if !found {
			continue
		}
		merged = append(merged, &models.Profile{UserProfile: *u, Worker: w})
	}
	return merged
}

func collectWorkerIDs(workers []*models.WorkerProfile) []string {
	ids := make([]string, 0, len(workers))
	for _, w := range workers {
		ids = append(ids, w.ID)
	}
	return ids
}

func collectUserIDs(users []*models.UserProfile) []string {
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}
