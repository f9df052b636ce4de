package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/saathiconnect/saathi-backend/internal/db"
	"github.com/saathiconnect/saathi-backend/internal/models"
)

func workerSession(uid, name, phone string) *models.Session {
	return &models.Session{
		Identity: &models.Identity{UID: uid, DisplayName: name},
		Profile: &models.Profile{
			UserProfile: models.UserProfile{ID: uid, Role: models.RoleWorker, Phone: phone},
		},
	}
}

func TestApply_DenormalizesJobAndWorkerFields(t *testing.T) {
	apps := new(MockApplicationRepository)
	jobs := new(MockJobRepository)
	jobs.On("GetByID", mock.Anything, "job-1").Return(&models.Job{
		ID: "job-1", Title: "Fix kitchen sink", Location: "110001", Status: models.JobOpen,
	}, nil)
	apps.On("Exists", mock.Anything, "job-1", "worker-1").Return(false, nil)
	apps.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Application) bool {
		return a.JobTitle == "Fix kitchen sink" &&
			a.JobLocation == "110001" &&
			a.WorkerName == "Ravi" &&
			a.WorkerPhone == "+916666666666" &&
			a.Status == models.ApplicationPending
	})).Return("app-1", nil).Once()

	svc := NewApplicationService(apps, jobs)
	app, err := svc.Apply(context.Background(), workerSession("worker-1", "Ravi", "+916666666666"), "job-1")

	assert.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, app.Status)
	apps.AssertExpectations(t)
}

func TestApply_MissingPhoneGetsPlaceholder(t *testing.T) {
	apps := new(MockApplicationRepository)
	jobs := new(MockJobRepository)
	jobs.On("GetByID", mock.Anything, "job-1").Return(&models.Job{ID: "job-1"}, nil)
	apps.On("Exists", mock.Anything, "job-1", "worker-1").Return(false, nil)
	apps.On("Create", mock.Anything, mock.Anything).Return("app-1", nil)

	svc := NewApplicationService(apps, jobs)
	app, err := svc.Apply(context.Background(), workerSession("worker-1", "Ravi", ""), "job-1")

	assert.NoError(t, err)
	assert.Equal(t, "Not provided", app.WorkerPhone)
}

func TestApply_OneApplicationPerJobAndWorker(t *testing.T) {
	apps := new(MockApplicationRepository)
	jobs := new(MockJobRepository)
	jobs.On("GetByID", mock.Anything, "job-1").Return(&models.Job{ID: "job-1"}, nil)
	apps.On("Exists", mock.Anything, "job-1", "worker-1").Return(true, nil)

	svc := NewApplicationService(apps, jobs)
	_, err := svc.Apply(context.Background(), workerSession("worker-1", "Ravi", ""), "job-1")

	assert.ErrorIs(t, err, ErrAlreadyApplied)
	apps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApply_UnknownJob(t *testing.T) {
	apps := new(MockApplicationRepository)
	jobs := new(MockJobRepository)
	jobs.On("GetByID", mock.Anything, "ghost").Return(nil, db.ErrNotFound)

	svc := NewApplicationService(apps, jobs)
	_, err := svc.Apply(context.Background(), workerSession("worker-1", "Ravi", ""), "ghost")

	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestListForJob_OwnerOnly(t *testing.T) {
	apps := new(MockApplicationRepository)
	jobs := new(MockJobRepository)
	jobs.On("GetByID", mock.Anything, "job-1").Return(&models.Job{ID: "job-1", PostedBy: "cit-1"}, nil)

	svc := NewApplicationService(apps, jobs)
	_, err := svc.ListForJob(context.Background(), "cit-2", "job-1")

	assert.ErrorIs(t, err, ErrForbidden)
	apps.AssertNotCalled(t, "ListByJob", mock.Anything, mock.Anything)
}

func TestSetStatus_PendingToAccepted(t *testing.T) {
	apps := new(MockApplicationRepository)
	jobs := new(MockJobRepository)
	apps.On("GetByID", mock.Anything, "app-1").Return(&models.Application{
		ID: "app-1", JobID: "job-1", Status: models.ApplicationPending,
	}, nil)
	jobs.On("GetByID", mock.Anything, "job-1").Return(&models.Job{ID: "job-1", PostedBy: "cit-1"}, nil)
	apps.On("UpdateStatus", mock.Anything, "app-1", models.ApplicationAccepted).Return(nil).Once()

	svc := NewApplicationService(apps, jobs)
	err := svc.SetStatus(context.Background(), "cit-1", "app-1", models.ApplicationAccepted)

	assert.NoError(t, err)
	apps.AssertExpectations(t)
}

func TestSetStatus_DecidedApplicationIsImmutable(t *testing.T) {
	apps := new(MockApplicationRepository)
	jobs := new(MockJobRepository)
	apps.On("GetByID", mock.Anything, "app-1").Return(&models.Application{
		ID: "app-1", JobID: "job-1", Status: models.ApplicationAccepted,
	}, nil)

	svc := NewApplicationService(apps, jobs)
	err := svc.SetStatus(context.Background(), "cit-1", "app-1", models.ApplicationRejected)

	assert.ErrorIs(t, err, ErrInvalidTransition)
	apps.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetStatus_RejectsPendingTarget(t *testing.T) {
	apps := new(MockApplicationRepository)
	jobs := new(MockJobRepository)

	svc := NewApplicationService(apps, jobs)
	err := svc.SetStatus(context.Background(), "cit-1", "app-1", models.ApplicationPending)

	assert.ErrorIs(t, err, ErrInvalidTransition)
	apps.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestSetStatus_OnlyJobOwnerDecides(t *testing.T) {
	apps := new(MockApplicationRepository)
	jobs := new(MockJobRepository)
	apps.On("GetByID", mock.Anything, "app-1").Return(&models.Application{
		ID: "app-1", JobID: "job-1", Status: models.ApplicationPending,
	}, nil)
	jobs.On("GetByID", mock.Anything, "job-1").Return(&models.Job{ID: "job-1", PostedBy: "cit-1"}, nil)

	svc := NewApplicationService(apps, jobs)
	err := svc.SetStatus(context.Background(), "cit-2", "app-1", models.ApplicationAccepted)

	assert.ErrorIs(t, err, ErrForbidden)
}
