package services

import (
	"context"
	stderrors "errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/projectzeus/checkin-backend/internal/config"
	"github.com/projectzeus/checkin-backend/internal/models"
)

func newAuthService(repo *fakeAdminRepo) *AuthService {
	cfg := testConfig()
	cfg.JWT = config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600}
	return NewAuthService(repo, cfg)
}

func TestCreateAdminHashesPassword(t *testing.T) {
	repo := &fakeAdminRepo{}
	svc := newAuthService(repo)

	admin, err := svc.CreateAdmin(context.Background(), "ops@example.com", "s3cret", "admin")
	if err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}

	if admin.Password != "" {
		t.Error("returned record must not carry the password")
	}
	stored := repo.admins[0]
	if stored.Password == "s3cret" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestLogin(t *testing.T) {
	repo := &fakeAdminRepo{}
	svc := newAuthService(repo)
	if _, err := svc.CreateAdmin(context.Background(), "ops@example.com", "s3cret", "admin"); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}

	token, err := svc.Login(context.Background(), &models.LoginRequest{Email: "ops@example.com", Password: "s3cret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Error("token must not be empty")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := &fakeAdminRepo{}
	svc := newAuthService(repo)
	if _, err := svc.CreateAdmin(context.Background(), "ops@example.com", "s3cret", "admin"); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}

	if _, err := svc.Login(context.Background(), &models.LoginRequest{Email: "ops@example.com", Password: "wrong"}); !stderrors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(context.Background(), &models.LoginRequest{Email: "nobody@example.com", Password: "s3cret"}); !stderrors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}
