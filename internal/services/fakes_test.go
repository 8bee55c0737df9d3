package services

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/projectzeus/checkin-backend/internal/config"
	"github.com/projectzeus/checkin-backend/internal/models"
	"github.com/projectzeus/checkin-backend/internal/repositories"
)

// fakeUserRepo is an in-memory UserRepository preserving insertion order,
// returning copies so service-side mutation cannot leak into the "store".
type fakeUserRepo struct {
	users []*models.User
}

var _ repositories.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	stored := *user
	r.users = append(r.users, &stored)
	return nil
}

func (r *fakeUserRepo) FindByIdentifier(_ context.Context, identifier string) (*models.User, error) {
	for _, u := range r.users {
		if u.Identifier == identifier {
			dup := *u
			return &dup, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) FindByReferralCode(_ context.Context, code string) (*models.User, error) {
	for _, u := range r.users {
		if u.ReferralCode == code {
			dup := *u
			return &dup, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		dup := *u
		out = append(out, &dup)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	for i, u := range r.users {
		if u.ID == user.ID {
			stored := *user
			r.users[i] = &stored
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *fakeUserRepo) UpdateCheckIn(_ context.Context, id primitive.ObjectID, prevDate string, upd models.CheckInUpdate) error {
	for _, u := range r.users {
		if u.ID == id {
			if u.LastCheckInDate != prevDate {
				return mongo.ErrNoDocuments
			}
			u.Level = upd.Level
			u.Streak = upd.Streak
			u.BestStreak = upd.BestStreak
			u.LastCheckInDate = upd.LastCheckInDate
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *fakeUserRepo) IncrementReferralCount(_ context.Context, id primitive.ObjectID) error {
	for _, u := range r.users {
		if u.ID == id {
			u.ReferralCount++
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

// mustGet fetches straight from the backing slice for assertions
func (r *fakeUserRepo) mustGet(identifier string) *models.User {
	for _, u := range r.users {
		if u.Identifier == identifier {
			return u
		}
	}
	return nil
}

// fakeAdminRepo is an in-memory AdminUserRepository
type fakeAdminRepo struct {
	admins []*models.AdminUser
}

var _ repositories.AdminUserRepository = (*fakeAdminRepo)(nil)

func (r *fakeAdminRepo) Create(_ context.Context, admin *models.AdminUser) error {
	admin.ID = primitive.NewObjectID()
	stored := *admin
	r.admins = append(r.admins, &stored)
	return nil
}

func (r *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	for _, a := range r.admins {
		if a.Email == email {
			dup := *a
			return &dup, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

// fakeContacts records contact-creation calls
type fakeContacts struct {
	calls []string
	err   error
}

func (c *fakeContacts) CreateContact(_ context.Context, displayName, phone string) error {
	c.calls = append(c.calls, displayName+"/"+phone)
	return c.err
}

// fakeFitness serves a canned step count
type fakeFitness struct {
	steps int
	err   error
}

func (f *fakeFitness) TodayStepCount(_ context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.steps, nil
}

var errBoom = errors.New("boom")

func testConfig() *config.Config {
	return &config.Config{
		Bot: config.BotConfig{
			Timezone:          "UTC",
			PhotoBonus:        1,
			CountryCodeDigits: 2,
			IdentifierDigits:  5,
			LeaderboardSize:   10,
			Milestones: config.MilestonesConfig{
				Level:         []int{25, 50},
				StreakDivisor: 5,
				Referral:      []int{5, 20},
			},
		},
	}
}
