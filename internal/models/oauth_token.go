package models

import (
	"time"
)

// OAuthToken is the persisted Google OAuth credential used by the People
// and Fitness API clients. A single document per provider is kept.
type OAuthToken struct {
	Provider     string    `bson:"provider" json:"provider"`
	AccessToken  string    `bson:"accessToken" json:"-"`
	RefreshToken string    `bson:"refreshToken" json:"-"`
	TokenType    string    `bson:"tokenType" json:"tokenType"`
	Expiry       time.Time `bson:"expiry" json:"expiry"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
