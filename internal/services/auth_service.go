package services

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/projectzeus/checkin-backend/internal/config"
	"github.com/projectzeus/checkin-backend/internal/models"
	"github.com/projectzeus/checkin-backend/internal/repositories"
	"github.com/projectzeus/checkin-backend/internal/utils"
)

// ErrInvalidCredentials is returned for any failed admin login
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles admin authentication
type AuthService struct {
	adminRepo repositories.AdminUserRepository
	cfg       *config.Config
}

// NewAuthService creates a new AuthService
func NewAuthService(adminRepo repositories.AdminUserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		cfg:       cfg,
	}
}

// Login verifies an admin's credentials and returns a signed JWT
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(admin.ID.Hex(), admin.Role, s.cfg)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return token, nil
}

// CreateAdmin creates a new admin account with a bcrypt-hashed password
func (s *AuthService) CreateAdmin(ctx context.Context, email, password, role string) (*models.AdminUser, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	admin := &models.AdminUser{
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, errors.Wrap(err, "create admin user")
	}

	admin.Password = ""
	return admin, nil
}
