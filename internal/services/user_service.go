package services

import (
	"context"
	stderrors "errors"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/projectzeus/checkin-backend/internal/config"
	"github.com/projectzeus/checkin-backend/internal/identity"
	"github.com/projectzeus/checkin-backend/internal/models"
	"github.com/projectzeus/checkin-backend/internal/repositories"
)

// UserService handles user lookups for the info command and the admin API
type UserService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository, cfg *config.Config) *UserService {
	return &UserService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Info resolves the event's sender and returns their record
func (s *UserService) Info(ctx context.Context, q *models.Query) (*models.User, error) {
	ident := identity.Normalize(q, s.cfg.Bot.CountryCodeDigits, s.cfg.Bot.IdentifierDigits)
	if q.IsGroup && !ident.Resolved() {
		return nil, ErrUnresolvedContact
	}

	user, err := s.userRepo.FindByIdentifier(ctx, ident.ID)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "lookup user")
	}
	return user, nil
}

// GetAllUsers retrieves all user records
func (s *UserService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.FindAll(ctx)
}

// GetUserCount gets the total number of users
func (s *UserService) GetUserCount(ctx context.Context) (int64, error) {
	return s.userRepo.Count(ctx)
}
