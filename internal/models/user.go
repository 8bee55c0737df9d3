package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered bot user
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Identifier   string             `bson:"identifier" json:"identifier"`
	Username     string             `bson:"username" json:"username"`
	ReferrerCode string             `bson:"referrerCode,omitempty" json:"referrerCode,omitempty"`
	ReferralCode string             `bson:"referralCode" json:"referralCode"`
	Level        int                `bson:"level" json:"level"`
	Streak       int                `bson:"streak" json:"streak"`
	BestStreak   int                `bson:"bestStreak" json:"bestStreak"`
	ReferralCount int               `bson:"referralCount" json:"referralCount"`
	// LastCheckInDate is a YYYY-MM-DD date in the bot timezone.
	// Empty means the user has never checked in.
	LastCheckInDate string    `bson:"lastCheckInDate" json:"lastCheckInDate"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CheckInUpdate is the partial update written by a check-in transition.
// The write is conditional on the record's previous lastCheckInDate so
// concurrent check-ins for the same identifier cannot double-apply.
type CheckInUpdate struct {
	Level           int
	Streak          int
	BestStreak      int
	LastCheckInDate string
}
