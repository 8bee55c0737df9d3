package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/projectzeus/checkin-backend/internal/models"
	"github.com/projectzeus/checkin-backend/internal/repositories"
)

// Compile-time check to ensure TokenRepository implements the interface
var _ repositories.TokenRepository = (*TokenRepository)(nil)

// TokenRepository handles MongoDB operations for OAuth tokens
type TokenRepository struct {
	collection *mongo.Collection
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *mongo.Database) *TokenRepository {
	return &TokenRepository{
		collection: db.Collection("oauth_tokens"),
	}
}

// Save upserts the credential for a provider
func (r *TokenRepository) Save(ctx context.Context, token *models.OAuthToken) error {
	token.UpdatedAt = time.Now()
	filter := bson.M{"provider": token.Provider}
	update := bson.M{"$set": token}
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

// Find retrieves the stored credential for a provider
func (r *TokenRepository) Find(ctx context.Context, provider string) (*models.OAuthToken, error) {
	var token models.OAuthToken
	filter := bson.M{"provider": provider}
	err := r.collection.FindOne(ctx, filter).Decode(&token)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &token, nil
}
