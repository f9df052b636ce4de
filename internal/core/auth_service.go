package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/saathiconnect/saathi-backend/internal/models"
)

// ErrInvalidCredentials is returned when the identity platform rejects a
// login attempt. The provider's message is wrapped so it reaches the user.
var ErrInvalidCredentials = errors.New("invalid credentials")

const identityToolkitBaseURL = "https://identitytoolkit.googleapis.com/v1"

// signInResponse is the Identity Toolkit signInWithPassword payload.
type signInResponse struct {
	LocalID      string `json:"localId"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

// identityErrorResponse is the Identity Toolkit error envelope.
type identityErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// authService implements the AuthService interface. Email/password sign-in
// is not exposed by the Admin SDK, so it goes through the Identity Toolkit
// REST API with the project's web API key.
type authService struct {
	admin  IdentityAdmin
	rest   *resty.Client
	apiKey string
	logger *zap.Logger
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(admin IdentityAdmin, apiKey string, logger *zap.Logger) AuthService {
	rest := resty.New().SetBaseURL(identityToolkitBaseURL)
	return &authService{admin: admin, rest: rest, apiKey: apiKey, logger: logger}
}

// NewAuthServiceWithBaseURL is NewAuthService with an overridable endpoint,
// used by tests.
func NewAuthServiceWithBaseURL(admin IdentityAdmin, apiKey, baseURL string, logger *zap.Logger) AuthService {
	rest := resty.New().SetBaseURL(baseURL)
	return &authService{admin: admin, rest: rest, apiKey: apiKey, logger: logger}
}

// Login exchanges email/password credentials for tokens. Bad credentials
// surface the provider's message wrapped in ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (*models.AuthTokens, error) {
	var ok signInResponse
	var bad identityErrorResponse

	resp, err := s.rest.R().
		SetContext(ctx).
		SetQueryParam("key", s.apiKey).
		SetBody(map[string]interface{}{
			"email":             email,
			"password":          password,
			"returnSecureToken": true,
		}).
		SetResult(&ok).
		SetError(&bad).
		Post("/accounts:signInWithPassword")
	if err != nil {
		return nil, fmt.Errorf("sign-in request failed: %w", err)
	}
	if resp.IsError() {
		s.logger.Info("login rejected by identity platform",
			zap.String("email", email), zap.String("reason", bad.Error.Message))
		return nil, fmt.Errorf("%w: %s", ErrInvalidCredentials, bad.Error.Message)
	}

	return &models.AuthTokens{
		UID:          ok.LocalID,
		IDToken:      ok.IDToken,
		RefreshToken: ok.RefreshToken,
		ExpiresIn:    ok.ExpiresIn,
	}, nil
}

// Signup creates the identity and immediately logs it in.
func (s *authService) Signup(ctx context.Context, email, password, name string) (*models.AuthTokens, error) {
	if _, err := s.admin.CreateUser(ctx, email, password, name); err != nil {
		return nil, err
	}
	return s.Login(ctx, email, password)
}

// Logout revokes every refresh token for the UID. The client discards its
// ID token; cached profile state dies with the request cycle.
func (s *authService) Logout(ctx context.Context, uid string) error {
	return s.admin.RevokeSessions(ctx, uid)
}
