package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/saathiconnect/saathi-backend/internal/db"
	"github.com/saathiconnect/saathi-backend/internal/models"
)

func TestCompleteOnboarding_WorkerGetsBothDocumentsUnderOneID(t *testing.T) {
	users := new(MockUserRepository)
	workers := new(MockWorkerRepository)
	photos := new(MockPhotoStore)
	users.On("GetByID", mock.Anything, "uid-1").Return(nil, db.ErrNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.UserProfile) bool {
		return u.ID == "uid-1" && u.Role == models.RoleWorker && u.Pincode == "110001"
	})).Return(nil).Once()
	workers.On("Create", mock.Anything, "uid-1", mock.MatchedBy(func(w *models.WorkerProfile) bool {
		return w.ID == "uid-1" && w.Category == "Other" && w.Experience == 0 && w.IsAvailable
	})).Return(nil).Once()

	svc := NewProfileService(users, workers, photos)
	profile, err := svc.CompleteOnboarding(context.Background(), &models.Identity{UID: "uid-1", Email: "r@s.in", DisplayName: "Ravi"}, models.RoleWorker, "110001")

	assert.NoError(t, err)
	assert.Equal(t, "uid-1", profile.ID)
	assert.Equal(t, "uid-1", profile.Worker.ID)
	assert.Equal(t, "Other", profile.Worker.Category)
	users.AssertExpectations(t)
	workers.AssertExpectations(t)
}

func TestCompleteOnboarding_CitizenGetsNoWorkerDocument(t *testing.T) {
	users := new(MockUserRepository)
	workers := new(MockWorkerRepository)
	photos := new(MockPhotoStore)
	users.On("GetByID", mock.Anything, "uid-2").Return(nil, db.ErrNotFound)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewProfileService(users, workers, photos)
	profile, err := svc.CompleteOnboarding(context.Background(), &models.Identity{UID: "uid-2"}, models.RoleCitizen, "110001")

	assert.NoError(t, err)
	assert.Nil(t, profile.Worker)
	workers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompleteOnboarding_RejectsSecondRun(t *testing.T) {
	users := new(MockUserRepository)
	workers := new(MockWorkerRepository)
	photos := new(MockPhotoStore)
	users.On("GetByID", mock.Anything, "uid-1").Return(&models.UserProfile{ID: "uid-1"}, nil)

	svc := NewProfileService(users, workers, photos)
	_, err := svc.CompleteOnboarding(context.Background(), &models.Identity{UID: "uid-1"}, models.RoleCitizen, "110001")

	assert.ErrorIs(t, err, ErrProfileExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCompleteOnboarding_ValidatesRoleAndPincode(t *testing.T) {
	users := new(MockUserRepository)
	workers := new(MockWorkerRepository)
	photos := new(MockPhotoStore)

	svc := NewProfileService(users, workers, photos)

	_, err := svc.CompleteOnboarding(context.Background(), &models.Identity{UID: "u"}, models.Role("admin"), "110001")
	assert.ErrorIs(t, err, ErrInvalidRole)

	for _, pincode := range []string{"1234", "12345678", "11000a", ""} {
		_, err := svc.CompleteOnboarding(context.Background(), &models.Identity{UID: "u"}, models.RoleCitizen, pincode)
		assert.ErrorIs(t, err, ErrInvalidPincode)
	}
}

func TestUpdate_SplitsFieldsAcrossCollections(t *testing.T) {
	users := new(MockUserRepository)
	workers := new(MockWorkerRepository)
	photos := new(MockPhotoStore)
	users.On("UpdateFields", mock.Anything, "worker-1", map[string]interface{}{
		"phone": "+915555555555",
	}).Return(nil).Once()
	workers.On("UpdateFields", mock.Anything, "worker-1", map[string]interface{}{
		"category":   "Electrician",
		"experience": 4,
	}).Return(nil).Once()

	phone := "+915555555555"
	category := "Electrician"
	experience := 4

	svc := NewProfileService(users, workers, photos)
	err := svc.Update(context.Background(), workerSession("worker-1", "Ravi", ""), models.UpdateProfileRequest{
		Phone:      &phone,
		Category:   &category,
		Experience: &experience,
	})

	assert.NoError(t, err)
	users.AssertExpectations(t)
	workers.AssertExpectations(t)
}

func TestUpdate_CitizenIgnoresWorkerFields(t *testing.T) {
	users := new(MockUserRepository)
	workers := new(MockWorkerRepository)
	photos := new(MockPhotoStore)

	category := "Electrician"

	svc := NewProfileService(users, workers, photos)
	err := svc.Update(context.Background(), citizenSession("cit-1", "Asha", ""), models.UpdateProfileRequest{
		Category: &category,
	})

	assert.NoError(t, err)
	workers.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_CreatesMissingWorkerDocument(t *testing.T) {
	users := new(MockUserRepository)
	workers := new(MockWorkerRepository)
	photos := new(MockPhotoStore)
	workers.On("UpdateFields", mock.Anything, "worker-1", mock.Anything).Return(db.ErrNotFound)
	workers.On("Create", mock.Anything, "worker-1", mock.MatchedBy(func(w *models.WorkerProfile) bool {
		return w.Category == "Mason" && w.IsAvailable
	})).Return(nil).Once()

	category := "Mason"

	svc := NewProfileService(users, workers, photos)
	err := svc.Update(context.Background(), workerSession("worker-1", "Ravi", ""), models.UpdateProfileRequest{
		Category: &category,
	})

	assert.NoError(t, err)
	workers.AssertExpectations(t)
}

func TestUploadPhoto_StoresAndPointsProfile(t *testing.T) {
	users := new(MockUserRepository)
	workers := new(MockWorkerRepository)
	photos := new(MockPhotoStore)
	photos.On("Save", mock.Anything, []byte("img"), "image/png").Return("https://bucket/photo-1", nil)
	users.On("UpdateFields", mock.Anything, "uid-1", map[string]interface{}{
		"photoURL": "https://bucket/photo-1",
	}).Return(nil).Once()

	svc := NewProfileService(users, workers, photos)
	url, err := svc.UploadPhoto(context.Background(), "uid-1", []byte("img"), "image/png")

	assert.NoError(t, err)
	assert.Equal(t, "https://bucket/photo-1", url)
	users.AssertExpectations(t)
}

func TestSetAvailability_NonWorker(t *testing.T) {
	users := new(MockUserRepository)
	workers := new(MockWorkerRepository)
	photos := new(MockPhotoStore)
	workers.On("UpdateFields", mock.Anything, "cit-1", mock.Anything).Return(db.ErrNotFound)

	svc := NewProfileService(users, workers, photos)
	err := svc.SetAvailability(context.Background(), "cit-1", false)

	assert.ErrorIs(t, err, ErrNotWorker)
}
