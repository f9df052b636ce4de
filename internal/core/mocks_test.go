package core

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/saathiconnect/saathi-backend/internal/models"
)

// MockUserRepository is a mock implementation of db.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, uid string) (*models.UserProfile, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, profile *models.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateFields(ctx context.Context, uid string, fields map[string]interface{}) error {
	args := m.Called(ctx, uid, fields)
	return args.Error(0)
}

func (m *MockUserRepository) ListWorkersByPincode(ctx context.Context, pincode string) ([]*models.UserProfile, error) {
	args := m.Called(ctx, pincode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.UserProfile), args.Error(1)
}

func (m *MockUserRepository) ListByIDs(ctx context.Context, ids []string, pincode string) ([]*models.UserProfile, error) {
	args := m.Called(ctx, ids, pincode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.UserProfile), args.Error(1)
}

// MockWorkerRepository is a mock implementation of db.WorkerRepository.
type MockWorkerRepository struct {
	mock.Mock
}

func (m *MockWorkerRepository) GetByID(ctx context.Context, uid string) (*models.WorkerProfile, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkerProfile), args.Error(1)
}

func (m *MockWorkerRepository) Create(ctx context.Context, uid string, worker *models.WorkerProfile) error {
	args := m.Called(ctx, uid, worker)
	return args.Error(0)
}

func (m *MockWorkerRepository) UpdateFields(ctx context.Context, uid string, fields map[string]interface{}) error {
	args := m.Called(ctx, uid, fields)
	return args.Error(0)
}

func (m *MockWorkerRepository) ListByCategory(ctx context.Context, category string) ([]*models.WorkerProfile, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.WorkerProfile), args.Error(1)
}

func (m *MockWorkerRepository) ListByIDs(ctx context.Context, ids []string) ([]*models.WorkerProfile, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.WorkerProfile), args.Error(1)
}

func (m *MockWorkerRepository) ListAll(ctx context.Context) ([]*models.WorkerProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.WorkerProfile), args.Error(1)
}

// MockJobRepository is a mock implementation of db.JobRepository.
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Create(ctx context.Context, job *models.Job) (string, error) {
	args := m.Called(ctx, job)
	return args.String(0), args.Error(1)
}

func (m *MockJobRepository) GetByID(ctx context.Context, jobID string) (*models.Job, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Job, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Job), args.Error(1)
}

func (m *MockJobRepository) Find(ctx context.Context, pincode, category string) ([]*models.Job, error) {
	args := m.Called(ctx, pincode, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Job), args.Error(1)
}

func (m *MockJobRepository) UpdateStatus(ctx context.Context, jobID string, status models.JobStatus) error {
	args := m.Called(ctx, jobID, status)
	return args.Error(0)
}

func (m *MockJobRepository) Delete(ctx context.Context, jobID string) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

// MockApplicationRepository is a mock implementation of db.ApplicationRepository.
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, app *models.Application) (string, error) {
	args := m.Called(ctx, app)
	return args.String(0), args.Error(1)
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, appID string) (*models.Application, error) {
	args := m.Called(ctx, appID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]*models.Application, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListByWorker(ctx context.Context, workerID string) ([]*models.Application, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListByJobAndStatus(ctx context.Context, jobID string, status models.ApplicationStatus) ([]*models.Application, error) {
	args := m.Called(ctx, jobID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) Exists(ctx context.Context, jobID, workerID string) (bool, error) {
	args := m.Called(ctx, jobID, workerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepository) UpdateStatus(ctx context.Context, appID string, status models.ApplicationStatus) error {
	args := m.Called(ctx, appID, status)
	return args.Error(0)
}

// MockInviteRepository is a mock implementation of db.InviteRepository.
type MockInviteRepository struct {
	mock.Mock
}

func (m *MockInviteRepository) Create(ctx context.Context, invite *models.Invite) (string, error) {
	args := m.Called(ctx, invite)
	return args.String(0), args.Error(1)
}

func (m *MockInviteRepository) GetByID(ctx context.Context, inviteID string) (*models.Invite, error) {
	args := m.Called(ctx, inviteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invite), args.Error(1)
}

func (m *MockInviteRepository) ListForWorker(ctx context.Context, workerID string) ([]*models.Invite, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Invite), args.Error(1)
}

func (m *MockInviteRepository) ListForWorkerByStatus(ctx context.Context, workerID string, status models.InviteStatus) ([]*models.Invite, error) {
	args := m.Called(ctx, workerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Invite), args.Error(1)
}

func (m *MockInviteRepository) ListActiveForCitizen(ctx context.Context, citizenID string) ([]*models.Invite, error) {
	args := m.Called(ctx, citizenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Invite), args.Error(1)
}

func (m *MockInviteRepository) ListForCitizenByStatus(ctx context.Context, citizenID string, status models.InviteStatus) ([]*models.Invite, error) {
	args := m.Called(ctx, citizenID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Invite), args.Error(1)
}

func (m *MockInviteRepository) UpdateStatus(ctx context.Context, inviteID string, status models.InviteStatus) error {
	args := m.Called(ctx, inviteID, status)
	return args.Error(0)
}

// MockReviewRepository is a mock implementation of db.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) (string, error) {
	args := m.Called(ctx, review)
	return args.String(0), args.Error(1)
}

func (m *MockReviewRepository) ListByWorker(ctx context.Context, workerID string) ([]*models.Review, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Review), args.Error(1)
}

func (m *MockReviewRepository) Exists(ctx context.Context, jobID, workerID string) (bool, error) {
	args := m.Called(ctx, jobID, workerID)
	return args.Bool(0), args.Error(1)
}

// MockIntentRepository is a mock implementation of db.IntentRepository.
type MockIntentRepository struct {
	mock.Mock
}

func (m *MockIntentRepository) Create(ctx context.Context, intent *models.CompletionIntent) (string, error) {
	args := m.Called(ctx, intent)
	return args.String(0), args.Error(1)
}

func (m *MockIntentRepository) GetByID(ctx context.Context, intentID string) (*models.CompletionIntent, error) {
	args := m.Called(ctx, intentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CompletionIntent), args.Error(1)
}

func (m *MockIntentRepository) UpdateStage(ctx context.Context, intentID string, stage models.IntentStage) error {
	args := m.Called(ctx, intentID, stage)
	return args.Error(0)
}

func (m *MockIntentRepository) ListUnfulfilledForCitizen(ctx context.Context, citizenID string) ([]*models.CompletionIntent, error) {
	args := m.Called(ctx, citizenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CompletionIntent), args.Error(1)
}

// MockIdentityProvider is a mock implementation of IdentityProvider.
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) GetUser(ctx context.Context, uid string) (*models.Identity, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Identity), args.Error(1)
}

// MockIdentityAdmin is a mock implementation of IdentityAdmin.
type MockIdentityAdmin struct {
	mock.Mock
}

func (m *MockIdentityAdmin) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	args := m.Called(ctx, email, password, displayName)
	return args.String(0), args.Error(1)
}

func (m *MockIdentityAdmin) RevokeSessions(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

// MockPhotoStore is a mock implementation of db.PhotoStore.
type MockPhotoStore struct {
	mock.Mock
}

func (m *MockPhotoStore) Save(ctx context.Context, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, data, contentType)
	return args.String(0), args.Error(1)
}
