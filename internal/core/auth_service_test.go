package core

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestLogin_ReturnsTokensOnSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts:signInWithPassword", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "a@b.c", body["email"])
		assert.Equal(t, true, body["returnSecureToken"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"localId":      "uid-1",
			"idToken":      "id-token",
			"refreshToken": "refresh-token",
			"expiresIn":    "3600",
		})
	}))
	defer server.Close()

	admin := new(MockIdentityAdmin)
	svc := NewAuthServiceWithBaseURL(admin, "test-key", server.URL, zap.NewNop())

	tokens, err := svc.Login(context.Background(), "a@b.c", "secret123")

	assert.NoError(t, err)
	assert.Equal(t, "uid-1", tokens.UID)
	assert.Equal(t, "id-token", tokens.IDToken)
	assert.Equal(t, "3600", tokens.ExpiresIn)
}

func TestLogin_BadCredentialsSurfaceProviderMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{"message": "INVALID_LOGIN_CREDENTIALS"},
		})
	}))
	defer server.Close()

	admin := new(MockIdentityAdmin)
	svc := NewAuthServiceWithBaseURL(admin, "test-key", server.URL, zap.NewNop())

	_, err := svc.Login(context.Background(), "a@b.c", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "INVALID_LOGIN_CREDENTIALS")
}

func TestSignup_CreatesIdentityThenLogsIn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"localId": "uid-new", "idToken": "t", "refreshToken": "r", "expiresIn": "3600",
		})
	}))
	defer server.Close()

	admin := new(MockIdentityAdmin)
	admin.On("CreateUser", mock.Anything, "new@b.c", "secret123", "New User").Return("uid-new", nil).Once()

	svc := NewAuthServiceWithBaseURL(admin, "test-key", server.URL, zap.NewNop())
	tokens, err := svc.Signup(context.Background(), "new@b.c", "secret123", "New User")

	assert.NoError(t, err)
	assert.Equal(t, "uid-new", tokens.UID)
	admin.AssertExpectations(t)
}

func TestSignup_CreateFailureSkipsLogin(t *testing.T) {
	admin := new(MockIdentityAdmin)
	admin.On("CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("email already exists"))

	svc := NewAuthServiceWithBaseURL(admin, "test-key", "http://127.0.0.1:0", zap.NewNop())
	_, err := svc.Signup(context.Background(), "dup@b.c", "secret123", "Dup")

	assert.Error(t, err)
}

func TestLogout_RevokesSessions(t *testing.T) {
	admin := new(MockIdentityAdmin)
	admin.On("RevokeSessions", mock.Anything, "uid-1").Return(nil).Once()

	svc := NewAuthServiceWithBaseURL(admin, "test-key", "http://127.0.0.1:0", zap.NewNop())
	err := svc.Logout(context.Background(), "uid-1")

	assert.NoError(t, err)
	admin.AssertExpectations(t)
}
