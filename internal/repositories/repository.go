package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/projectzeus/checkin-backend/internal/models"
)

// UserRepository defines the interface for user record operations.
// Lookups that find nothing return mongo.ErrNoDocuments.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	FindByReferralCode(ctx context.Context, code string) (*models.User, error)
	FindAll(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	// UpdateCheckIn applies a check-in transition to the record identified
	// by id, conditional on its lastCheckInDate still being prevDate. A
	// stale precondition surfaces as mongo.ErrNoDocuments.
	UpdateCheckIn(ctx context.Context, id primitive.ObjectID, prevDate string, update models.CheckInUpdate) error
	// IncrementReferralCount atomically bumps the referrer's count by one
	IncrementReferralCount(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// AdminUserRepository defines the interface for admin account operations
type AdminUserRepository interface {
	Create(ctx context.Context, adminUser *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
}

// TokenRepository stores the Google OAuth credential shared by the People
// and Fitness clients
type TokenRepository interface {
	Save(ctx context.Context, token *models.OAuthToken) error
	Find(ctx context.Context, provider string) (*models.OAuthToken, error)
}
