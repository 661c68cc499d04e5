package service

import (
	"context"
	"testing"

	"github.com/janipakwan/pakwan-api/internal/domain/entity"
	"github.com/janipakwan/pakwan-api/pkg/apperror"
	"github.com/janipakwan/pakwan-api/pkg/utils"
)

type stubUserRepo struct {
	users map[string]*entity.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	return nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.users[email], nil
}

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("kitchen123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	repo := &stubUserRepo{users: map[string]*entity.User{
		"admin@pakwan.pk": {UserID: 1, Email: "admin@pakwan.pk", PasswordHash: hash},
	}}
	svc := NewAuthService(repo, nil)

	user, err := svc.Login(context.Background(), "admin@pakwan.pk", "kitchen123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.UserID != 1 {
		t.Errorf("UserID = %d, want 1", user.UserID)
	}
}

func TestLoginFailures(t *testing.T) {
	hash, err := utils.HashPassword("kitchen123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	repo := &stubUserRepo{users: map[string]*entity.User{
		"admin@pakwan.pk": {UserID: 1, Email: "admin@pakwan.pk", PasswordHash: hash},
	}}
	svc := NewAuthService(repo, nil)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "kitchen123"},
		{"empty password", "admin@pakwan.pk", ""},
		{"unknown email", "nobody@pakwan.pk", "kitchen123"},
		{"wrong password", "admin@pakwan.pk", "wrong"},
	}
	for _, tt := range tests {
		if _, err := svc.Login(context.Background(), tt.email, tt.password); err == nil {
			t.Errorf("%s: expected login failure", tt.name)
		}
	}

	// Unknown email and wrong password must be indistinguishable
	_, errUnknown := svc.Login(context.Background(), "nobody@pakwan.pk", "kitchen123")
	_, errWrong := svc.Login(context.Background(), "admin@pakwan.pk", "wrong")
	if apperror.GetAppError(errUnknown).Message != apperror.GetAppError(errWrong).Message {
		t.Error("unknown-email and wrong-password should produce the same message")
	}
}
