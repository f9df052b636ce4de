package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/saathiconnect/saathi-backend/internal/middleware"
	"github.com/saathiconnect/saathi-backend/internal/models"
)

type stubApplicationService struct {
	apps []*models.Application
	err  error
}

func (s *stubApplicationService) Apply(ctx context.Context, session *models.Session, jobID string) (*models.Application, error) {
	return nil, s.err
}

func (s *stubApplicationService) ListForJob(ctx context.Context, callerID, jobID string) ([]*models.Application, error) {
	return s.apps, s.err
}

func (s *stubApplicationService) ListForWorker(ctx context.Context, workerID string) ([]*models.Application, error) {
	return s.apps, s.err
}

func (s *stubApplicationService) SetStatus(ctx context.Context, callerID, appID string, status models.ApplicationStatus) error {
	return s.err
}

type stubReviewService struct {
	reviewed map[string]bool // keyed by jobID
	err      error
	lookups  []string
}

func (s *stubReviewService) ListForWorker(ctx context.Context, workerID string) ([]*models.Review, error) {
	return nil, s.err
}

func (s *stubReviewService) HasReview(ctx context.Context, jobID, workerID string) (bool, error) {
	s.lookups = append(s.lookups, jobID)
	return s.reviewed[jobID], s.err
}

func listMineResponse(t *testing.T, apps *stubApplicationService, reviews *stubReviewService) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewApplicationHandler(apps, reviews, zap.NewNop())
	router.GET("/applications/mine", func(c *gin.Context) {
		c.Set(middleware.SessionKey, &models.Session{
			Identity: &models.Identity{UID: "worker-1"},
			Profile:  &models.Profile{UserProfile: models.UserProfile{ID: "worker-1", Role: models.RoleWorker}},
		})
	}, handler.ListMine)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/applications/mine", nil)
	router.ServeHTTP(rec, req)
	return rec
}

func TestListMine_FlagsReviewedApplications(t *testing.T) {
	apps := &stubApplicationService{apps: []*models.Application{
		{ID: "app-1", JobID: "job-1", WorkerID: "worker-1", Status: models.ApplicationAccepted},
		{ID: "app-2", JobID: "job-2", WorkerID: "worker-1", Status: models.ApplicationAccepted},
		{ID: "app-3", JobID: "job-3", WorkerID: "worker-1", Status: models.ApplicationPending},
	}}
	reviews := &stubReviewService{reviewed: map[string]bool{"job-1": true}}

	rec := listMineResponse(t, apps, reviews)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Applications []struct {
			ID        string `json:"id"`
			Status    string `json:"status"`
			HasReview bool   `json:"hasReview"`
		} `json:"applications"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Applications, 3)
	assert.True(t, resp.Applications[0].HasReview)
	assert.False(t, resp.Applications[1].HasReview)
	assert.False(t, resp.Applications[2].HasReview)
	// Pending applications never trigger a review lookup.
	assert.Equal(t, []string{"job-1", "job-2"}, reviews.lookups)
}

func TestListMine_ReviewLookupFailureStillLists(t *testing.T) {
	apps := &stubApplicationService{apps: []*models.Application{
		{ID: "app-1", JobID: "job-1", WorkerID: "worker-1", Status: models.ApplicationAccepted},
	}}
	reviews := &stubReviewService{err: errors.New("firestore unavailable")}

	rec := listMineResponse(t, apps, reviews)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Applications []struct {
			HasReview bool `json:"hasReview"`
		} `json:"applications"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Applications, 1)
	assert.False(t, resp.Applications[0].HasReview)
}

func TestListMine_EmptyListStaysEmptyArray(t *testing.T) {
	rec := listMineResponse(t, &stubApplicationService{}, &stubReviewService{})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"applications":[]}`, rec.Body.String())
}
