package service

import (
	"context"

	"github.com/janipakwan/pakwan-api/internal/domain/entity"
	"github.com/janipakwan/pakwan-api/internal/domain/repository"
	"github.com/janipakwan/pakwan-api/pkg/apperror"
	"github.com/janipakwan/pakwan-api/pkg/oauth"
	"github.com/janipakwan/pakwan-api/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo      repository.UserRepository
	googleService *oauth.GoogleService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, googleService *oauth.GoogleService) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		googleService: googleService,
	}
}

// Login verifies the email/password pair against the stored credential. The
// failure message never distinguishes unknown-email from wrong-password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	if email == "" || password == "" {
		return nil, apperror.NewBadRequestError("Email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperror.ErrInvalidCredentials
	}

	return user, nil
}

// GoogleAuthURL returns the consent URL for the Google login flow.
func (s *AuthService) GoogleAuthURL(state string) (string, error) {
	if !s.googleService.IsConfigured() {
		return "", oauth.ErrOAuthNotConfigured
	}
	return s.googleService.AuthURL(state), nil
}

// GoogleLogin completes the OAuth code exchange and matches the Google account
// against a stored user. Unknown or unverified emails are rejected with the
// same generic credentials error as password login.
func (s *AuthService) GoogleLogin(ctx context.Context, code string) (*entity.User, error) {
	if !s.googleService.IsConfigured() {
		return nil, oauth.ErrOAuthNotConfigured
	}

	token, err := s.googleService.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	info, err := s.googleService.UserInfo(ctx, token)
	if err != nil {
		return nil, err
	}
	if !info.VerifiedEmail {
		return nil, apperror.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	return user, nil
}

// FrontendURL returns where the OAuth callback should send the browser.
func (s *AuthService) FrontendURL() string {
	return s.googleService.FrontendURL()
}
